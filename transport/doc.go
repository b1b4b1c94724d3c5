// Package transport owns all communication with the remote engine API.
//
// Ownership boundary:
// - endpoint URLs and the request/response envelope
//
// - credentials and per-call deadlines
//
// - tile, thumbnail, and download URL construction
//
// The transport holds no request-graph knowledge: callers serialize graphs
// with the engine package and hand the bytes over. There are no retries;
// errors return directly to the caller.
package transport
