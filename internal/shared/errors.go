package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Session and credential errors
	ErrAuthFailed          = fmt.Errorf("authentication failed")
	ErrNotAuthenticated    = fmt.Errorf("not authenticated")
	ErrNotAuthorized       = fmt.Errorf("not authorized")
	ErrTokenExpired        = fmt.Errorf("token expired")
	ErrMalformedCredential = fmt.Errorf("malformed credential")

	// API and service errors
	ErrAPIRequest         = fmt.Errorf("API request failed")
	ErrServiceUnavailable = fmt.Errorf("service unavailable")
	ErrCollectionNotFound = fmt.Errorf("collection not found")
	ErrGameNotFound       = fmt.Errorf("game not found")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
)

// User-facing failure messages for list-level operations. The authorization
// message is deliberately distinct from the generic one so an expired or
// missing credential is never reported as a transient fetch problem.
const (
	MsgNotAuthorized = "not authorized, please log in again"
	MsgLoadFailed    = "could not load, try again"
	MsgLoginFailed   = "invalid email or password"
)
