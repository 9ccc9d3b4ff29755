package api

import (
	"fmt"
	"log/slog"

	"github.com/healthtech/healthtech/pkg/types"
	"github.com/healthtech/healthtech/pkg/vitals"
	"github.com/healthtech/healthtech/server/internal/alerts"
	"github.com/healthtech/healthtech/server/internal/store"
)

// Submitter processes one form submission end to end. Both the JSON API
// and the HTML form go through it.
type Submitter struct {
	log      *store.Log
	alerts   *alerts.Engine
	validate *vitals.Validator
	onRecord []func(types.HealthRecord)
}

// NewSubmitter creates a Submitter that appends to log and evaluates rules
// on engine. A nil engine disables alerting.
func NewSubmitter(log *store.Log, engine *alerts.Engine) *Submitter {
	return &Submitter{log: log, alerts: engine, validate: vitals.NewValidator()}
}

// OnRecord registers fn to be called with every record appended by Submit.
// It is not safe to call concurrently with Submit; register hooks during
// startup.
func (s *Submitter) OnRecord(fn func(types.HealthRecord)) {
	s.onRecord = append(s.onRecord, fn)
}

// Submit validates r, scores it, and appends the resulting record to the
// log. A *vitals.ValidationError means nothing was recorded.
func (s *Submitter) Submit(r types.Reading) (SubmitResponse, error) {
	if err := s.validate.Validate(r); err != nil {
		return SubmitResponse{}, err
	}

	a, err := vitals.Assess(r)
	if err != nil {
		return SubmitResponse{}, fmt.Errorf("assess reading: %w", err)
	}

	rec := s.log.Record(r, a)
	s.log.Append(rec)
	for _, fn := range s.onRecord {
		fn(rec)
	}

	slog.Info("api: health check recorded",
		"record", rec.ID,
		"health_score", rec.HealthScore,
		"remark", rec.Remark,
		"log_len", s.log.Len(),
	)

	resp := SubmitResponse{
		Record:     rec,
		Assessment: a,
		Insights:   vitals.Insights(r, a),
		Chart:      vitals.AssessmentChart(rec, a),
	}
	if s.alerts != nil {
		resp.Alerts = s.alerts.Evaluate(rec)
	}
	return resp, nil
}
