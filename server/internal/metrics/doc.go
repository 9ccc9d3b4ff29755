// Package metrics exposes the session log in the Prometheus text format at
// GET /metrics. Families are rebuilt from the log on every scrape; nothing
// is counted separately from the records themselves.
//
//	healthtech_submissions_total          counter
//	healthtech_remarks_total{remark}      counter
//	healthtech_last_health_score          gauge (absent until the first submission)
//	healthtech_daily_tests{date}          gauge (absent until the first submission)
package metrics
