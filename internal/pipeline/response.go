package pipeline

import (
	"encoding/json"
	"net/http"
)

// Response is the outbound message of one pipeline call. It is produced by
// the terminal handler or by a short-circuiting middleware and is passed
// outward through the layers, each of which may observe or replace it.
type Response struct {
	// Status is the HTTP status code of the response.
	Status int

	// Header holds the response headers.
	Header http.Header

	// Body is the serialized response body.
	Body []byte
}

// NewResponse builds an empty Response with the given status code.
func NewResponse(status int) *Response {
	return &Response{
		Status: status,
		Header: make(http.Header),
	}
}

// JSON builds a Response carrying the JSON serialization of v with the given
// status code. Serialization failure degrades to a plain 500 response; it
// indicates a programming error in the value passed, not a request problem.
func JSON(status int, v any) *Response {
	body, err := json.Marshal(v)
	if err != nil {
		resp := NewResponse(http.StatusInternalServerError)
		resp.Header.Set("Content-Type", "text/plain; charset=utf-8")
		resp.Body = []byte(http.StatusText(http.StatusInternalServerError))
		return resp
	}

	resp := NewResponse(status)
	resp.Header.Set("Content-Type", "application/json")
	resp.Body = body

	return resp
}
