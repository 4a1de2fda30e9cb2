// Package common contains constants shared by the client layers.
package common

// Credential store keys. The session manager is the only writer of both;
// the HTTP client reads TokenKey before every request.
const (
	TokenKey = "token"
	UserKey  = "user"
)

// HTTP header names and values attached to outgoing requests.
const (
	AuthorizationHeaderName = "Authorization"
	BearerScheme            = "Bearer"
	RequestIDHeaderName     = "X-Request-ID"
	ContentTypeJSON         = "application/json"
)
