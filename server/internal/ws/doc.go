// Package ws implements the live session view for the HealthTech server.
//
// Hub manages a set of connected websocket clients and sends each of them
// the current session snapshot (records + daily summary) on connect and on
// every tick. The snapshot is pulled from the session log each time; the log
// does not push.
//
// New(log, interval) creates a Hub.
// Hub.Run(ctx) starts the broadcast ticker and blocks until ctx is
// cancelled, then closes all active connections.
// Hub.ServeHTTP upgrades an HTTP connection to websocket.
//
// Message format sent to clients:
//
//	{
//	  "event": "session",
//	  "data":  { /* same schema as GET /api/v1/snapshot */ }
//	}
//
// The endpoint is mounted at /ws/session by the server.
package ws
