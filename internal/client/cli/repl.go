package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with
// a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Browse(ctx context.Context, query string) error
	Review(ctx context.Context, arg string) error
	MyRecipes(ctx context.Context) error
	CreateRecipe(ctx context.Context) error
	WhoAmI(ctx context.Context) error
}

// runREPL starts the read-eval-print loop of the Tastebook CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. The prompt shows the current
// status (from statusFn). The loop exits on scanner EOF or when the user
// types "exit" or "quit".
//
// The available commands form the session gate: while no session exists
// only register and login are offered; once authenticated the resource
// screens open and register/login disappear. Anything unknown falls through
// to a default handler, mirroring a catch-all route.
//
//	Anonymous:
//	  - register       - create an account
//	  - login          - authenticate
//	Authenticated:
//	  - (l)ist [query] - browse all recipes, optionally filtered by title
//	  - review <n>     - review recipe n from the last listing
//	  - my             - list your own recipes
//	  - create         - create a recipe interactively
//	  - whoami         - show the current identity
//	  - logout         - drop the session
//
// Errors returned by command handlers are ignored here; handlers print
// their own messages. This keeps the loop focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("tb %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := strings.Join(parts[1:], " ")

		if !a.isLoggedIn() {
			switch cmd {
			case "help":
				printlnFn("Available commands: register, login, exit")
			case "register":
				_ = a.Register(ctx)
			case "login":
				_ = a.Login(ctx)
			case "exit", "quit":
				printlnFn("Bye!")
				return
			default:
				printlnFn("Please log in first (commands: register, login, exit)")
			}
			continue
		}

		switch cmd {
		case "help":
			printlnFn("Available commands: (l)ist [query], review <n>, my, create, whoami, logout, exit")

		case "l", "list", "search":
			_ = a.Browse(ctx, args)

		case "review":
			_ = a.Review(ctx, args)

		case "my":
			_ = a.MyRecipes(ctx)

		case "create":
			_ = a.CreateRecipe(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			// Catch-all: an unknown command while authenticated lands on the
			// default screen, like an unknown route redirecting home.
			printlnFn("Unknown command:", cmd)
			_ = a.Browse(ctx, "")
		}
	}
}
