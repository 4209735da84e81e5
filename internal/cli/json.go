package cli

import (
	"encoding/json"
	"os"
)

// Global JSON output flag
var jsonOutput bool

// Response is the standard JSON envelope for all CLI output.
type Response struct {
	OK    bool        `json:"ok"`
	Data  interface{} `json:"data,omitempty"`
	Error *ErrorInfo  `json:"error,omitempty"`
	Meta  *Meta       `json:"meta,omitempty"`
}

// ErrorInfo contains structured error information.
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Meta contains metadata about the response.
type Meta struct {
	Count       int    `json:"count,omitempty"`
	QueryTimeMs int64  `json:"query_time_ms,omitempty"`
	Predicate   string `json:"predicate,omitempty"`
}

func isJSONOutput() bool {
	return jsonOutput
}

func outputJSON(resp Response) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(resp)
}

// outputSuccess outputs a successful JSON response.
func outputSuccess(data interface{}, meta *Meta) {
	outputJSON(Response{OK: true, Data: data, Meta: meta})
}

// outputError outputs an error JSON response.
func outputError(code, message string) {
	outputJSON(Response{OK: false, Error: &ErrorInfo{Code: code, Message: message}})
}
