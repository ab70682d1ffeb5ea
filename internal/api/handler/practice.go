package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/mdsai/analytics-api/internal/domain"
	"github.com/mdsai/analytics-api/internal/usecases/practice"
	"github.com/mdsai/analytics-api/pkg/apiErrors"
)

type LocationsResponse struct {
	Locations []domain.Location `json:"locations"`
}

// ListLocations returns the location filter entries for the dashboard,
// starting with the aggregate pseudo-location.
func ListLocations(service practice.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		locations, err := service.ListLocations(r.Context())
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error listing locations", nil)
			return
		}

		entries := make([]domain.Location, 0, len(locations)+1)
		entries = append(entries, domain.Location{
			ID:     domain.LocationAll,
			Name:   "All Locations",
			Active: true,
		})
		entries = append(entries, locations...)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(LocationsResponse{Locations: entries}); err != nil {
			logrus.Error(err)
		}
	}
}

func GetPracticeConfig(service practice.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg, err := service.GetConfig(r.Context())
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error reading practice config", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(cfg); err != nil {
			logrus.Error(err)
		}
	}
}

// UpdatePracticeConfig merges the request body over the current config and
// echoes the merged result. Changes live in memory only.
func UpdatePracticeConfig(service practice.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch map[string]interface{}

		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body", nil)
			return
		}

		if patch == nil {
			patch = map[string]interface{}{}
		}

		cfg, err := service.UpdateConfig(r.Context(), patch)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Config fields have the wrong shape", map[string]any{
				"error": err.Error(),
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(cfg); err != nil {
			logrus.Error(err)
		}
	}
}
