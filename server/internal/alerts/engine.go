package alerts

import (
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/healthtech/healthtech/pkg/types"
	"github.com/healthtech/healthtech/server/internal/config"
)

const (
	defaultCooldown   = 15 * time.Minute
	maxHistoryLen     = 200
	recentWindowHours = 1
)

// Alert represents a single alert event produced by the rule engine.
type Alert struct {
	ID          string    `json:"id"`
	RuleName    string    `json:"rule_name"`
	RecordID    string    `json:"record_id"`
	Name        string    `json:"name"`
	Severity    string    `json:"severity"`
	Message     string    `json:"message"`
	Value       float64   `json:"value"`
	HealthScore float64   `json:"health_score"`
	Remark      string    `json:"remark"`
	FiredAt     time.Time `json:"fired_at"`
}

// Engine evaluates alert rules against new HealthRecords and delivers
// webhook notifications when rules fire.
//
// Engine is safe for concurrent use.
type Engine struct {
	mu       sync.Mutex
	rules    []config.AlertRule
	webhooks []config.WebhookConfig
	lastFire map[string]time.Time // key: "ruleName:name"
	history  []*Alert
	client   *http.Client
	now      func() time.Time
	deliverF func(*Alert)
}

// New creates an Engine from the server alert configuration.
// An Engine with empty rules is valid; Evaluate becomes a no-op.
func New(cfg config.AlertsConfig) *Engine {
	e := &Engine{
		rules:    cfg.Rules,
		webhooks: cfg.Webhooks,
		lastFire: make(map[string]time.Time),
		client:   &http.Client{Timeout: 10 * time.Second},
		now:      time.Now,
	}
	e.deliverF = func(a *Alert) { go e.deliver(a) }
	return e
}

// SetRules replaces the rules and webhooks, e.g. after a config reload.
// Cooldowns of rules that keep their name are preserved.
func (e *Engine) SetRules(cfg config.AlertsConfig) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rules = cfg.Rules
	e.webhooks = cfg.Webhooks
}

// Evaluate tests all configured rules against rec and returns the alerts
// that fired. Webhook delivery happens asynchronously.
func (e *Engine) Evaluate(rec types.HealthRecord) []Alert {
	e.mu.Lock()
	rules := e.rules
	e.mu.Unlock()
	if len(rules) == 0 {
		return nil
	}

	now := e.now()
	var fired []Alert
	for _, rule := range rules {
		ok, value := evalCondition(rule.Condition, rec)
		if !ok {
			continue
		}

		key := rule.Name + ":" + rec.Name
		cooldown := rule.Cooldown
		if cooldown <= 0 {
			cooldown = defaultCooldown
		}

		e.mu.Lock()
		if last, seen := e.lastFire[key]; seen && now.Sub(last) < cooldown {
			e.mu.Unlock()
			continue
		}
		sev := rule.Severity
		if sev == "" {
			sev = "warning"
		}
		a := &Alert{
			ID:       fmt.Sprintf("%s:%s:%d", rule.Name, rec.ID, now.UnixNano()),
			RuleName: rule.Name,
			RecordID: rec.ID,
			Name:     rec.Name,
			Severity: sev,
			Value:    value,
			Message: fmt.Sprintf("[%s] %s fired for %s: %s (health score %.2f, %s)",
				sev, rule.Name, displayName(rec.Name), rule.Condition, rec.HealthScore, rec.Remark),
			HealthScore: rec.HealthScore,
			Remark:      rec.Remark,
			FiredAt:     now,
		}
		e.lastFire[key] = now
		e.history = append(e.history, a)
		if len(e.history) > maxHistoryLen {
			e.history = e.history[len(e.history)-maxHistoryLen:]
		}
		alertCopy := *a
		e.mu.Unlock()

		slog.Warn("alerts: rule fired",
			"rule", rule.Name,
			"record", rec.ID,
			"value", value,
			"severity", sev,
		)
		fired = append(fired, alertCopy)
		e.deliverF(&alertCopy)
	}
	return fired
}

// Recent returns copies of the alerts fired within the past hour, newest first.
func (e *Engine) Recent() []*Alert {
	e.mu.Lock()
	defer e.mu.Unlock()

	cutoff := e.now().Add(-recentWindowHours * time.Hour)
	out := make([]*Alert, 0, len(e.history))
	for _, a := range e.history {
		if a.FiredAt.After(cutoff) {
			cp := *a
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].FiredAt.After(out[j].FiredAt) })
	return out
}

func displayName(name string) string {
	if name == "" {
		return "(unnamed)"
	}
	return name
}
