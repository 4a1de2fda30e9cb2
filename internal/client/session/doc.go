// Package session owns the authenticated session of the client: who is
// logged in, with which token, and whether a transition is in flight.
//
// A Manager is created once at startup. Bootstrap restores a persisted
// session and checks it against the server, Login and Logout move between
// the authenticated and unauthenticated states, and Subscribe lets the UI
// react to every change. The Manager is the only writer of the "token" and
// "user" credential keys.
package session
