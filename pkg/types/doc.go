// Package types defines the Go types shared by the server and the healthctl
// CLI: the submitted Reading, the per-metric results, and the HealthRecord
// kept in the session log. JSON tags are the wire format of the REST API.
package types
