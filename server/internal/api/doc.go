// Package api implements the HTTP REST API for the HealthTech server and the
// submission path shared with the web form.
//
// New(submitter, log, alerts) returns an http.Handler that serves:
//
//	POST /api/v1/readings              score a Reading, append it to the log
//	GET  /api/v1/records               all records in submission order
//	GET  /api/v1/records.csv           the same records as CSV
//	GET  /api/v1/records/{id}/chart    chart series for one record; 404 if unknown
//	GET  /api/v1/summary/daily         [{date, total_tests}]
//	GET  /api/v1/snapshot              records + daily summary + generated_at
//	GET  /api/v1/alerts                alerts fired in the past hour
//
// All endpoints return 405 for other methods. JSON errors use the body
// {"error": "..."}; validation failures (422) add a "fields" map keyed by
// the JSON field name.
//
// Submitter validates a Reading with go-playground/validator, scores it with
// pkg/vitals, stamps it through the store, appends it, and runs the alert
// rules. No external HTTP framework is used.
package api
