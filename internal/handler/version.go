package handler

import (
	"net/http"
)

// VersionResponse reports the running build
type VersionResponse struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

// HandleVersion reports the service version
// @Summary Service version
// @Tags health
// @Produce json
// @Success 200 {object} VersionResponse
// @Router /version [get]
func HandleVersion(version, environment string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, VersionResponse{
			Version:     version,
			Environment: environment,
		})
	}
}
