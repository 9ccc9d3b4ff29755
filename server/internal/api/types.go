package api

import (
	"github.com/healthtech/healthtech/pkg/types"
	"github.com/healthtech/healthtech/server/internal/alerts"
)

// SubmitResponse is the payload for POST /api/v1/readings.
type SubmitResponse struct {
	Record     types.HealthRecord `json:"record"`
	Assessment types.Assessment   `json:"assessment"`
	Insights   []string           `json:"insights"`
	Chart      types.Chart        `json:"chart"`
	Alerts     []alerts.Alert     `json:"alerts,omitempty"`
}

// errorResponse is a generic JSON error body.
type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}
