// Package models defines the records exchanged with the events API: users
// and their roles, events, and the request/response bodies of the auth
// endpoints.
package models
