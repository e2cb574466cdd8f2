package handlers

import "github.com/dileepkhanna/jobportal/types"

// SkillsResponse is the payload of GET /api/skills/{role}.
type SkillsResponse struct {
	Skills types.SkillGroups `json:"skills"`
}

// HealthResponse is the payload of GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ErrorResponse is a simple error payload.
type ErrorResponse struct {
	Error string `json:"error"`
}
