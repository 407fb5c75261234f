package http

import "errors"

// ErrInvalidUserName is returned when a login payload carries a user name
// outside the allowed length range.
var ErrInvalidUserName = errors.New("user name must be 3 to 24 characters long")
