package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	touch()
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Register(ctx context.Context) error
	Whoami(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Inventory(ctx context.Context) error
	Orders(ctx context.Context) error
	Suppliers(ctx context.Context) error
	Users(ctx context.Context) error
	Activity(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the PrintFlow CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Every processed command counts as user activity and rearms the session's
// inactivity timer.
//
// Any errors returned by command handlers are ignored here; handlers should
// report their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("pf> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		a.touch()

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, dashboard, inventory, orders, suppliers, users, activity, register, logout, exit")
			} else {
				printlnFn("Available commands: login, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "register":
			_ = a.Register(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "dashboard":
			_ = a.Dashboard(ctx)

		case "inventory":
			_ = a.Inventory(ctx)

		case "orders":
			_ = a.Orders(ctx)

		case "suppliers":
			_ = a.Suppliers(ctx)

		case "users":
			_ = a.Users(ctx)

		case "activity":
			_ = a.Activity(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
