package domain

type AssistantQuery struct {
	Question string `json:"question" validate:"required"`
}

type AssistantAnswer struct {
	Question           string   `json:"question"`
	Answer             string   `json:"answer"`
	Matched            bool     `json:"matched"`
	SuggestedQuestions []string `json:"suggested_questions,omitempty"`
}
