package model

import "errors"

// Machine-readable auth error codes surfaced alongside 401 responses so the
// SPA can distinguish "log in again" from "token rotted".
const (
	CodeTokenExpired   = "TOKEN_EXPIRED"
	CodeTokenInvalid   = "TOKEN_INVALID"
	CodeSessionExpired = "SESSION_EXPIRED"
)

// LoginRequest is the console login form.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionToken is the issued console session.
type SessionToken struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

// AdminIdentity describes the logged-in console operator.
type AdminIdentity struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

var (
	// ErrInvalidCredentials is returned when console login fails.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrSessionExpired is returned when the backend answers 401: the service
	// bearer token was rejected and the dashboard session must be torn down.
	ErrSessionExpired = errors.New("backend session expired")
)
