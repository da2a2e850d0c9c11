package ports

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	// Weather
	WeatherClient WeatherClient
	SnapshotStore SnapshotStore

	// Location
	LocationProvider    LocationProvider
	PermissionChecker   PermissionChecker
	PermissionRequester PermissionRequester

	// Communication
	Notifier Notifier

	// Infrastructure
	ConfigProvider ConfigProvider
	Logger         Logger
	Metrics        MetricsCollector
	HealthChecker  SystemHealthChecker
}
