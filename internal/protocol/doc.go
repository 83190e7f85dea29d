// Package protocol defines the wire types exchanged with the editor plugin.
//
// A request is a single UTF-8 JSON object {"type": ..., "params": {...}}
// written to the socket without any length prefix or delimiter. A response
// is a single JSON value whose boundary is detected by the transport
// (see internal/engine). This package also normalizes the two response
// conventions the plugin has used historically into one shape.
package protocol
