// Package web serves the single-page HealthTech form.
//
// GET / renders the form plus, when the session has records, the records
// table and the daily test summary. POST / submits the form through
// api.Submitter and re-renders the page with the per-metric insights and an
// inline SVG bar chart of the new record. Out-of-range inputs re-render the
// form with messages and status 422.
//
// The page opens /ws/session and reloads itself when another tab adds a
// record, so all tables are always rendered server-side from the log.
package web
