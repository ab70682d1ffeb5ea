package handler

import (
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/mdsai/analytics-api/internal/domain"
	"github.com/mdsai/analytics-api/internal/usecases/assisting"
	"github.com/mdsai/analytics-api/pkg/apiErrors"
)

type PopularQuestionsResponse struct {
	Questions []string `json:"questions"`
}

func GetPopularQuestions(service assisting.Assistant) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(PopularQuestionsResponse{
			Questions: service.PopularQuestions(),
		}); err != nil {
			logrus.Error(err)
		}
	}
}

// QueryAssistant answers a free-text question about the practice.
func QueryAssistant(service assisting.Assistant) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.AssistantQuery

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body", nil)
			return
		}

		if strings.TrimSpace(req.Question) == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Question is required", nil)
			return
		}

		answer, err := service.Answer(r.Context(), req.Question)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error answering question", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(answer); err != nil {
			logrus.Error(err)
		}
	}
}
