// Package alerts implements the rule evaluation engine and webhook delivery
// for HealthTech. Rules are evaluated against every new health record;
// webhooks are delivered to Teams, Slack, or generic HTTP targets.
package alerts
