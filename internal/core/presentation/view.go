package presentation

import (
	"fmt"
	"math"
	"time"
	"unicode"
	"unicode/utf8"

	"allweather.app/internal/core/weather"
)

const iconURLFormat = "https://openweathermap.org/img/wn/%s@2x.png"

var compassPoints = [...]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// View is the render-ready model of the weather screen
type View struct {
	State           string `json:"state"`
	ProgressVisible bool   `json:"progress_visible"`
	CardVisible     bool   `json:"card_visible"`
	ErrorVisible    bool   `json:"error_visible"`
	RetryVisible    bool   `json:"retry_visible"`
	ErrorText       string `json:"error_text,omitempty"`
	City            string `json:"city,omitempty"`
	Temperature     string `json:"temperature,omitempty"`
	Description     string `json:"description,omitempty"`
	FeelsLike       string `json:"feels_like,omitempty"`
	Pressure        string `json:"pressure,omitempty"`
	Humidity        string `json:"humidity,omitempty"`
	Wind            string `json:"wind,omitempty"`
	IconURL         string `json:"icon_url,omitempty"`
	LastUpdated     string `json:"last_updated,omitempty"`
}

// Render maps a weather state onto the screen model
func Render(state weather.State) View {
	switch state.Kind {
	case weather.StateLoading:
		return View{State: state.Kind.String(), ProgressVisible: true}
	case weather.StateSuccess:
		return renderSnapshot(state.Snapshot)
	case weather.StateError:
		return View{
			State:        state.Kind.String(),
			ErrorVisible: true,
			RetryVisible: true,
			ErrorText:    state.Message,
		}
	default:
		return View{State: state.Kind.String()}
	}
}

func renderSnapshot(s *weather.Snapshot) View {
	view := View{State: weather.StateSuccess.String(), CardVisible: true}
	if s == nil {
		return view
	}

	view.City = s.CityName
	view.Temperature = fmt.Sprintf("%d°C", int(s.Temperature))
	view.Description = Capitalize(s.PrimaryDescription())
	view.FeelsLike = fmt.Sprintf("Feels like: %d°C", int(s.FeelsLike))
	view.Pressure = fmt.Sprintf("%d hPa", s.Pressure)
	view.Humidity = fmt.Sprintf("%d%%", s.Humidity)
	view.Wind = fmt.Sprintf("%g m/s, %s", s.WindSpeed, WindDirection(s.WindDegree))
	view.IconURL = IconURL(s.PrimaryIcon())
	if s.LastUpdated > 0 {
		view.LastUpdated = s.CapturedAt().Format(time.RFC3339)
	}
	return view
}

// WindDirection maps degrees onto an 8-point compass with sectors centred on each point
func WindDirection(degrees int) string {
	d := math.Mod(float64(degrees), 360)
	if d < 0 {
		d += 360
	}
	return compassPoints[int(math.Floor((d+22.5)/45))%len(compassPoints)]
}

// IconURL returns the provider icon URL, or "" for an empty icon token
func IconURL(icon string) string {
	if icon == "" {
		return ""
	}
	return fmt.Sprintf(iconURLFormat, icon)
}

// Capitalize upper-cases the first letter of s
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
