// Package api implements the HTTP REST API and WebSocket server for Estate Core.
//
// This package provides:
//   - REST endpoints over the property listings (/property) and the string
//     list (/list), plus the /main status stubs
//   - the generated OpenAPI document (/swagger.json) and Swagger UI (/docs)
//   - a WebSocket hub broadcasting change events (/ws)
//   - operational endpoints (/health, /metrics, /audit)
//   - middleware (request ID, logging, recovery, CORS, body limit)
//
// # Lifecycle
//
//	server, err := api.New(deps)
//	server.Start(ctx)
//	defer server.Close()
//
// # Change Events
//
// Every successful mutation produces one Event. It is queued to the audit
// log, broadcast to WebSocket clients subscribed to "<resource>.<action>"
// or "*", published to MQTT and written to InfluxDB. Only the collections
// are required; each sink is skipped when not configured, and a failing sink
// never fails the request.
//
// # Request Bodies
//
// Bodies are checked against the OpenAPI component schemas before they are
// decoded, so type errors are reported per field with JSON pointers. Field
// rules that span the merged record (update) are enforced by the property
// package.
package api
