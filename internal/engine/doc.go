// Package engine implements the TCP transport to the editor plugin.
//
// Every command is one connection: the dispatcher connects (with
// bounded exponential-backoff retry), writes a single JSON request,
// reads until the accumulated bytes form a complete JSON document, and
// closes the socket. Because the wire protocol has no request/response
// correlation, concurrent callers are fully serialized by a single
// mutex held for the whole send+receive cycle.
//
// Failure modes never escape to callers as Go errors: Send returns a
// normalized protocol.Response with a status discriminator on every
// path. Transient failures (connect, timeout, socket, remote close)
// are retried with the same backoff schedule before the final error
// response is produced.
package engine
