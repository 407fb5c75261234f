package token

import "errors"

// Sentinel errors returned by the codec. Callers match them with errors.Is;
// the auth middleware converts ErrInvalidToken into a 401 envelope.
var (
	// ErrInvalidToken is returned by Decode for every verification failure:
	// malformed token, signature mismatch, or expired claims.
	ErrInvalidToken = errors.New("token is expired or invalid")

	// ErrEncode is returned by Encode when signing the serialized claims
	// fails.
	ErrEncode = errors.New("error encoding token")
)
