package dto

import "opsintel/internal/models"

// AskRequest is the body of a natural-language question
type AskRequest struct {
	Question  string `json:"question" validate:"required,max=2000"`
	Mode      string `json:"mode" validate:"omitempty,engine_mode"`
	Interpret *bool  `json:"interpret"`
}

// CompareRequest runs one question on both engines
type CompareRequest struct {
	Question string `json:"question" validate:"required,max=2000"`
}

// AskResponse wraps the assistant answer with the resolved interpretation flag
type AskResponse struct {
	Answer      *models.AssistantAnswer `json:"answer"`
	Interpreted bool                    `json:"interpreted"`
}
