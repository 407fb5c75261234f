package models

// User is the demo account payload carried inside issued tokens.
// The pipeline itself is agnostic to its shape; it only travels through the
// claims attached to a request after authentication.
type User struct {
	// UID is the unique identifier of the user.
	UID uint64 `json:"uid"`

	// Name is the display name of the user. The login handler requires it to
	// be between 3 and 24 characters.
	Name string `json:"name"`
}
