// Package client contains the request layer of the unievents client.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface) with the four
//     JSON verbs used by the services: Get, Post, Put, Delete.
//  2. A concrete net/http implementation (see HTTPClient) bound to a base
//     address and a request timeout, sending JSON and running request
//     interceptors before every call. NewBearerInterceptor attaches the stored
//     session token as an Authorization header.
//
// # Error Handling
//
// Every failure is an *Error carrying the operation, the failure Kind, the
// HTTP status and the server payload ({"message"} or {"error"}) when one was
// sent. *Error unwraps to sentinels that callers can match with errors.Is:
// ErrUnavailable, ErrUnauthorized, ErrNotFound, ErrUnexpectedStatus.
// Normalize turns any error into an *Error whose Message is what a user
// should see.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept
// context.Context; the configured timeout applies on top of it.
package client
