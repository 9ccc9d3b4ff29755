package alerts

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
)

// eventHealthAlert names the generic "http" webhook payload.
const eventHealthAlert = "health_alert"

// payloadFuncs builds the request body for each supported webhook type.
var payloadFuncs = map[string]func(*Alert) interface{}{
	"slack": slackPayload,
	"teams": teamsPayload,
	"http":  httpPayload,
}

// deliver notifies every configured webhook target about a. Failures are
// logged per target; the remaining targets are still tried.
func (e *Engine) deliver(a *Alert) {
	e.mu.Lock()
	webhooks := e.webhooks
	e.mu.Unlock()

	for _, wh := range webhooks {
		url := wh.URL()
		if url == "" {
			continue
		}
		build, ok := payloadFuncs[wh.Type]
		if !ok {
			slog.Warn("alerts: unknown webhook type, skipping", "type", wh.Type)
			continue
		}
		body, err := json.Marshal(build(a))
		if err != nil {
			slog.Error("alerts: encode webhook payload failed", "type", wh.Type, "err", err)
			continue
		}
		if err := e.post(url, a.RecordID, body); err != nil {
			slog.Error("alerts: webhook delivery failed",
				"type", wh.Type,
				"rule", a.RuleName,
				"record", a.RecordID,
				"err", err,
			)
			continue
		}
		slog.Debug("alerts: webhook delivered", "type", wh.Type, "rule", a.RuleName)
	}
}

func slackPayload(a *Alert) interface{} {
	return map[string]string{
		"text": fmt.Sprintf("%s *%s* for %s\nHealth score %.2f/100 (%s)\n%s",
			severityEmoji(a.Severity), a.RuleName, displayName(a.Name),
			a.HealthScore, a.Remark, a.Message),
	}
}

func teamsPayload(a *Alert) interface{} {
	type fact struct {
		Name  string `json:"name"`
		Value string `json:"value"`
	}
	return map[string]interface{}{
		"@type":      "MessageCard",
		"@context":   "http://schema.org/extensions",
		"themeColor": severityColor(a.Severity),
		"summary":    a.RuleName,
		"title":      fmt.Sprintf("Health check alert: %s", displayName(a.Name)),
		"sections": []map[string]interface{}{{
			"facts": []fact{
				{"Rule", a.RuleName},
				{"Severity", a.Severity},
				{"Health score", strconv.FormatFloat(a.HealthScore, 'f', 2, 64)},
				{"Remark", a.Remark},
				{"Record", a.RecordID},
			},
			"text": a.Message,
		}},
	}
}

func httpPayload(a *Alert) interface{} {
	return struct {
		Event string `json:"event"`
		Alert *Alert `json:"alert"`
	}{eventHealthAlert, a}
}

// post sends body as JSON. recordID is passed in a header so receivers can
// deduplicate retries.
func (e *Engine) post(url, recordID string, body []byte) error {
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if recordID != "" {
		req.Header.Set("X-HealthTech-Record", recordID)
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return fmt.Errorf("http post: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("webhook returned HTTP %d", resp.StatusCode)
	}
	return nil
}

func severityEmoji(s string) string {
	switch s {
	case "critical":
		return "🚨"
	case "warning":
		return "⚠️"
	default:
		return "ℹ️"
	}
}

func severityColor(s string) string {
	switch s {
	case "critical":
		return "FF9999"
	case "warning":
		return "FFCC99"
	default:
		return "66B3FF"
	}
}
