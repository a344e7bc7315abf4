// Package server exposes the matchmaking service over HTTP using gin.
//
// Routes:
//   - POST /match: run the match pipeline for a set of tags
//   - GET /health: dependency health report (vector index, database)
//   - GET /: service landing document
//
// The handlers translate pipeline errors into status codes: validation
// failures become 400, upstream failures 500 with a details field. CORS,
// request logging and Prometheus request metrics are applied as middleware.
package server
