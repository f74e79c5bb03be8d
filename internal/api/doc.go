// Package api serves the read-only HTTP view of the smarthome process.
//
// Routes (all under /api/v1):
//
//	GET /health   liveness and version
//	GET /report   latest published report from the report snapshot
//	GET /journal  operation journal entries, newest first
//
// Handlers never touch the registry. They read the report snapshot, which
// holds immutable strings, and the journal database.
//
//	server, err := api.New(deps)
//	server.Start(ctx)
//	defer server.Close()
package api
