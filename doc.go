// Package intenttest verifies a conversational intent detection service
// over gRPC.
//
// The package drives two calling conventions against a session-oriented
// backend: a single-shot request/response call ([Client.DetectOnce]) and a
// bidirectional streaming call ([Client.DetectStream]). Both submit an
// ordered batch of text inputs scoped to one [SessionName] and return a
// mapping from input text to detection result. Streamed responses may
// arrive in any order, so they are correlated by the query text echoed in
// each result rather than by submission position.
//
// The harness deliberately speaks to its target over a plaintext channel
// with no credentials; the target is presumed to be a local mock rather
// than a production endpoint. Transport security and call credentials
// remain available as configuration options.
package intenttest
