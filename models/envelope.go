package models

import "net/http"

// Envelope is the uniform JSON body returned by the demo API and by every
// middleware that short-circuits a request. Code mirrors the HTTP status of
// the response carrying the envelope, Msg is a human-readable summary, and
// Data holds the optional payload.
type Envelope struct {
	// Code is the machine-readable status of the envelope. It follows
	// HTTP-style semantics: 2xx success, 4xx client error, 5xx server error.
	Code int `json:"code"`

	// Msg is a short human-readable message. Never contains stack traces or
	// internal error detail.
	Msg string `json:"msg"`

	// Data is the optional payload. Omitted from the serialized form when nil.
	Data any `json:"data,omitempty"`
}

// Ok builds a 200 envelope with the default message and the given payload.
func Ok(data any) Envelope {
	return Envelope{Code: http.StatusOK, Msg: "ok", Data: data}
}

// Success builds a 200 envelope with a custom message and payload.
func Success(msg string, data any) Envelope {
	return Envelope{Code: http.StatusOK, Msg: msg, Data: data}
}

// Failed builds an envelope with an arbitrary status code and message and no
// payload.
func Failed(code int, msg string) Envelope {
	return Envelope{Code: code, Msg: msg}
}

// AuthFailed builds a 401 envelope. An empty msg falls back to a generic
// authentication failure message.
func AuthFailed(msg string) Envelope {
	if msg == "" {
		msg = "authentication failed"
	}

	return Envelope{Code: http.StatusUnauthorized, Msg: msg}
}

// Reject builds a 403 envelope used by request-rejection policies such as the
// IP denylist. An empty msg falls back to a generic denial message.
func Reject(msg string) Envelope {
	if msg == "" {
		msg = "access denied"
	}

	return Envelope{Code: http.StatusForbidden, Msg: msg}
}

// ValidateFailed builds a 422 envelope for request payloads that fail
// validation. An empty msg falls back to a generic validation message.
func ValidateFailed(msg string) Envelope {
	if msg == "" {
		msg = "validation failed"
	}

	return Envelope{Code: http.StatusUnprocessableEntity, Msg: msg}
}

// InternalError builds a 500 envelope. An empty msg falls back to a generic
// server error message.
func InternalError(msg string) Envelope {
	if msg == "" {
		msg = "internal server error"
	}

	return Envelope{Code: http.StatusInternalServerError, Msg: msg}
}
