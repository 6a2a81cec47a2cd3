package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it
// with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs. The real
// Shell type satisfies this interface; tests provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isAdmin() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Publish(ctx context.Context) error
	List(ctx context.Context) error
	Search(ctx context.Context) error
	Interest(ctx context.Context) error
	Users(ctx context.Context) error
	AllItems(ctx context.Context) error
	DeleteUser(ctx context.Context) error
	DeleteItem(ctx context.Context) error
	Promote(ctx context.Context) error
}

// runREPL reads a line from the scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are
// reported back to the user. The loop exits on scanner EOF or when the
// user types "exit" or "quit".
//
// Errors returned by command handlers are ignored here; handlers render
// their own failures. That keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("fm> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		switch cmd := parts[0]; cmd {
		case "help":
			printHelp(a)
		case "register":
			a.Register(ctx)
		case "login":
			a.Login(ctx)
		case "logout":
			a.Logout(ctx)
		case "publish":
			a.Publish(ctx)
		case "list":
			a.List(ctx)
		case "search":
			a.Search(ctx)
		case "interest":
			a.Interest(ctx)
		case "users":
			a.Users(ctx)
		case "items":
			a.AllItems(ctx)
		case "deluser":
			a.DeleteUser(ctx)
		case "delitem":
			a.DeleteItem(ctx)
		case "promote":
			a.Promote(ctx)
		case "exit", "quit":
			return
		default:
			printlnFn(fmt.Sprintf("Unknown command: %s (type 'help')", cmd))
		}
	}
}

func printHelp(a execIface) {
	switch {
	case a.isLoggedIn() && a.isAdmin():
		printlnFn("Available commands: publish, list, search, interest, users, items, deluser, delitem, promote, logout, exit")
	case a.isLoggedIn():
		printlnFn("Available commands: publish, list, search, interest, logout, exit")
	default:
		printlnFn("Available commands: register, login, list, search, exit")
	}
}
