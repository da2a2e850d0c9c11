package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"allweather.app/internal/ports"
	"allweather.app/pkg/errors"
)

// LocationRequest carries a manually supplied last-known fix
type LocationRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required,latitude"`
	Longitude *float64 `json:"longitude" binding:"required,longitude"`
}

// PermissionRequest replaces the host's location permissions
type PermissionRequest struct {
	Fine   *bool `json:"fine" binding:"required"`
	Coarse *bool `json:"coarse" binding:"required"`
}

// setLocation handles PUT /api/location
func (s *HTTPServerAdapter) setLocation(c *gin.Context) {
	var req LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.logger.Debug("Location request binding error", ports.F("error", err))
		s.handleError(c, errors.NewValidationError("Invalid coordinates"))
		return
	}

	if err := s.location.SetLocation(*req.Latitude, *req.Longitude); err != nil {
		s.handleError(c, err)
		return
	}

	s.logger.Info("Last known location updated",
		ports.F("lat", *req.Latitude),
		ports.F("lon", *req.Longitude))
	c.JSON(http.StatusOK, ports.Coordinates{Latitude: *req.Latitude, Longitude: *req.Longitude})
}

// setPermission handles PUT /api/location/permission
func (s *HTTPServerAdapter) setPermission(c *gin.Context) {
	var req PermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.logger.Debug("Permission request binding error", ports.F("error", err))
		s.handleError(c, errors.NewValidationError("Invalid permission request"))
		return
	}

	grant := ports.PermissionGrant{Fine: *req.Fine, Coarse: *req.Coarse}
	s.permissions.SetGrant(grant)

	s.logger.Info("Location permission changed",
		ports.F("fine", grant.Fine),
		ports.F("coarse", grant.Coarse))
	c.JSON(http.StatusOK, s.permissions.Grant())
}
