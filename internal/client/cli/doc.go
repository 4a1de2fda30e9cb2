// Package cli provides the interactive unievents command-line client.
//
// It wires configuration, the credential store, the API services and the
// session manager, then runs a REPL whose commands depend on the session
// state: while loading nothing is accepted, a guest can log in or register,
// and a logged-in user can browse and manage events.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
