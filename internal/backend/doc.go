// Package backend provides the HTTP client for the movie question-answering
// API.
//
// The API exposes three endpoints: GET /status for readiness, GET /movies for
// the catalog, and POST /query for natural-language questions about movie
// scripts. Query answers come from a generative model on the far side, so
// SubmitQuery carries a much longer timeout than the other calls and maps
// 504 responses to a distinguishable error (IsGatewayTimeout).
//
// Status and catalog failures are expected during startup while the backend
// loads its vector index; callers poll and degrade rather than abort.
//
// ImageResolver handles movie artwork: the backend serves static images under
// /images, and URLs that fail a HEAD probe are swapped for the default
// artwork exactly once, with results held in an LRU cache.
package backend
