package protocol

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Request is one command sent to the editor plugin. Params may be any
// JSON-object-shaped value: a map, or a struct with json tags.
type Request struct {
	Type   string `json:"type"`
	Params any    `json:"params"`
}

// Marshal serializes the request to its wire form. Nil params are sent
// as an empty object, matching what the plugin expects.
func (r Request) Marshal() ([]byte, error) {
	if r.Params == nil {
		r.Params = map[string]any{}
	}
	if m, ok := r.Params.(map[string]any); ok && m == nil {
		r.Params = map[string]any{}
	}
	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("protocol: marshal request %q: %w", r.Type, err)
	}
	return data, nil
}

// Response is the decoded JSON object returned by the plugin. After
// Normalize it always carries "status" set to either "success" or
// "error", and on error a non-empty "error" message.
type Response map[string]any

// StatusSuccess and StatusError are the two values of the "status"
// discriminator.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Normalize rewrites the legacy {"success": false, ...} convention into
// the {"status": "error", "error": ...} shape. Responses already using
// the status convention pass through unchanged.
func Normalize(resp Response) Response {
	if resp == nil {
		return ErrorResponse("empty response")
	}
	if success, ok := resp["success"].(bool); ok && !success {
		return ErrorResponse(errorMessage(resp))
	}
	if status, ok := resp["status"].(string); ok && status == StatusError {
		// Guarantee a non-empty message under the "error" key.
		resp["error"] = errorMessage(resp)
	}
	return resp
}

// ErrorResponse builds a normalized error response with the given message.
func ErrorResponse(msg string) Response {
	if msg == "" {
		msg = "unknown error"
	}
	return Response{"status": StatusError, "error": msg}
}

// IsError reports whether the response carries an error status.
func (r Response) IsError() bool {
	status, _ := r["status"].(string)
	return status == StatusError
}

// ErrorMessage returns the error message of an error response, or ""
// for success responses.
func (r Response) ErrorMessage() string {
	if !r.IsError() {
		return ""
	}
	return errorMessage(r)
}

func errorMessage(resp Response) string {
	if msg, ok := resp["error"].(string); ok && msg != "" {
		return msg
	}
	if msg, ok := resp["message"].(string); ok && msg != "" {
		return msg
	}
	return "unknown error"
}

// largeOperations lists command identifiers known to take substantially
// longer than typical on the plugin side. Matched by substring so that
// variants (e.g. a prefixed or suffixed tool name) inherit the budget.
// The set covers every slow plugin command, including ones with no
// generator in the build package; those still travel via raw send.
var largeOperations = []string{
	"get_available_materials",
	"create_town",
	"create_castle_fortress",
	"construct_mansion",
	"create_suspension_bridge",
	"create_aqueduct",
	"create_maze",
}

// IsLargeOperation reports whether the command name belongs to the
// extended receive-timeout class.
func IsLargeOperation(command string) bool {
	for _, op := range largeOperations {
		if strings.Contains(command, op) {
			return true
		}
	}
	return false
}
