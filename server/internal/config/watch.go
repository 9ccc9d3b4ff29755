package config

import (
	"context"
	"log/slog"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDelay collapses the burst of events a single save produces
// (truncate, write, chmod) into one reload.
const reloadDelay = 100 * time.Millisecond

// Watch reloads path whenever it changes and hands each valid Config to
// onChange. It runs until ctx is cancelled.
//
// Only alert rules and webhooks are applied at runtime; changes to the port,
// timezone, title, log level or hub interval are logged as needing a
// restart. An invalid file is logged and skipped, so the rules loaded last
// stay active.
func Watch(ctx context.Context, path string, onChange func(*Config)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return err
	}

	current, err := Load(path)
	if err != nil {
		current = nil
	}
	slog.Info("config: watching alert rules", "path", path, "alert_rules", ruleNames(current))

	reload := time.NewTimer(reloadDelay)
	reload.Stop()
	defer reload.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			// Editors often save via rename, so Create counts as a write.
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				reload.Reset(reloadDelay)
			}

		case <-reload.C:
			next, err := Load(path)
			if err != nil {
				slog.Error("config: reload failed, keeping previous alert rules", "path", path, "err", err)
				continue
			}
			logChanges(current, next)
			current = next
			onChange(next)

			// Re-add the file in case an atomic save replaced the inode.
			_ = watcher.Add(path)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("config: watcher error", "err", err)
		}
	}
}

// RuleChanges returns the names of alert rules present only in next (added)
// and only in prev (removed). A nil prev counts as no rules.
func RuleChanges(prev, next *Config) (added, removed []string) {
	before := make(map[string]bool)
	for _, name := range ruleNames(prev) {
		before[name] = true
	}
	after := make(map[string]bool)
	for _, name := range ruleNames(next) {
		after[name] = true
		if !before[name] {
			added = append(added, name)
		}
	}
	for _, name := range ruleNames(prev) {
		if !after[name] {
			removed = append(removed, name)
		}
	}
	return added, removed
}

// RestartFields lists the settings that differ between prev and next but
// are read only at startup.
func RestartFields(prev, next *Config) []string {
	if prev == nil || next == nil {
		return nil
	}
	a, b := prev.Server, next.Server
	var out []string
	if a.HTTPPort != b.HTTPPort {
		out = append(out, "http_port")
	}
	if a.LogLevel != b.LogLevel {
		out = append(out, "log_level")
	}
	if a.Timezone != b.Timezone {
		out = append(out, "timezone")
	}
	if a.Title != b.Title {
		out = append(out, "title")
	}
	if a.Hub.Interval != b.Hub.Interval {
		out = append(out, "hub.interval")
	}
	return out
}

func logChanges(prev, next *Config) {
	added, removed := RuleChanges(prev, next)
	slog.Info("config: alert rules reloaded",
		"alert_rules", ruleNames(next),
		"added", added,
		"removed", removed,
		"webhooks", len(next.Server.Alerts.Webhooks),
	)
	if fields := RestartFields(prev, next); len(fields) > 0 {
		slog.Warn("config: changes take effect after restart", "fields", fields)
	}
}

func ruleNames(cfg *Config) []string {
	if cfg == nil {
		return nil
	}
	names := make([]string, len(cfg.Server.Alerts.Rules))
	for i, r := range cfg.Server.Alerts.Rules {
		names[i] = r.Name
	}
	return names
}
