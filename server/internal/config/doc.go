// Package config loads the server configuration from the `server:` section
// of config.yaml.
//
// Config fields:
//   - HTTPPort      port for the form page, REST API, websocket and /metrics (default 8080)
//   - LogLevel      debug | info | warn | error (default info)
//   - Timezone      IANA zone used to stamp records; empty means local time
//   - Title         page title shown by the web form (default "HealthTech")
//   - Hub.Interval  websocket broadcast interval (default 5s)
//   - Alerts        threshold rules over new records and webhook targets
//
// Load(path) applies defaults before unmarshalling, then validates.
// Watch(ctx, path, fn) reloads the file on change via fsnotify.
package config
