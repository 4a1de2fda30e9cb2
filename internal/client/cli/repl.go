package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) error
	TestConnection(ctx context.Context) error
	List(ctx context.Context) error
	Show(ctx context.Context, args []string) error
	Create(ctx context.Context) error
	Edit(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
}

const (
	helpGuest = "Available commands: login, register, test, help, exit"
	helpUser  = "Available commands: (l)ist, show <id>, create, edit <id>, delete <id>, profile, logout, test, help, exit"
)

// runREPL reads commands line by line from r and dispatches them to a.
//
// The prompt shows the current status (from statusFn). Commands that need a
// logged-in user are refused for guests, and login/register are refused once
// logged in. Handler errors are not fatal: they are printed and the loop
// goes on. The loop exits on EOF or when the user types "exit" or "quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, r *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("unievents %s > ", statusFn()))
		line, err := r.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpUser)
			} else {
				printlnFn(helpGuest)
			}
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		case "test":
			report(a.TestConnection(ctx))
			continue
		}

		if a.isLoggedIn() {
			switch cmd {
			case "l", "list", "events":
				report(a.List(ctx))
			case "show":
				report(a.Show(ctx, args))
			case "create":
				report(a.Create(ctx))
			case "edit":
				report(a.Edit(ctx, args))
			case "delete":
				report(a.Delete(ctx, args))
			case "profile":
				report(a.Profile(ctx))
			case "logout":
				report(a.Logout(ctx))
			case "login", "register":
				printlnFn("Already logged in, use logout first")
			default:
				printlnFn("Unknown command:", cmd)
			}
			continue
		}

		switch cmd {
		case "login":
			report(a.Login(ctx))
		case "register":
			report(a.Register(ctx))
		case "l", "list", "events", "show", "create", "edit", "delete", "profile", "logout":
			printlnFn("Please log in first")
		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func report(err error) {
	if err != nil {
		printlnFn("Error:", errorText(err))
	}
}
