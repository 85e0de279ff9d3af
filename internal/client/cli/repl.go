package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/aka-Harsh/eventbook/internal/client/nav"
)

// printlnFn is a test seam for user-facing output. In tests, replace it
// with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isAdmin() bool

	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	Back(ctx context.Context) error
	SelectTab(ctx context.Context, t nav.Tab) error

	ShowEvent(ctx context.Context, arg string) error
	SearchEvents(ctx context.Context, query string) error
	FilterEvents(ctx context.Context, eventType string) error
	BookEvent(ctx context.Context, args []string) error
	CreateEvent(ctx context.Context) error
	UpdateEvent(ctx context.Context, arg string) error
	DeleteEvent(ctx context.Context, arg string) error

	CancelBooking(ctx context.Context, arg string) error
	SaveQR(ctx context.Context, arg string) error

	AddReview(ctx context.Context, arg string) error
	EventReviews(ctx context.Context, arg string) error

	VerifyCode(ctx context.Context, payload string) error
	LookupReference(ctx context.Context, ref string) error
}

// runREPL starts the read-eval-print loop for the eventbook client.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Tab names double as commands: typing "bookings" switches the active view
// the way clicking the tab did in the browser client. Remaining commands
// act within the current view.
//
// Any errors returned by command handlers are ignored here; handlers print
// and log their own failures. This keeps the loop resilient and focused
// on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("eb %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]
		arg := ""
		if len(args) > 0 {
			arg = args[0]
		}

		switch cmd {
		case "help":
			printHelp(a)

		case "login":
			_ = a.Login(ctx)

		case "register":
			_ = a.Register(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "back":
			_ = a.Back(ctx)

		case "dashboard", "events", "bookings", "reviews", "qr-scanner":
			_ = a.SelectTab(ctx, nav.Tab(cmd))

		case "show":
			_ = a.ShowEvent(ctx, arg)

		case "search":
			_ = a.SearchEvents(ctx, strings.Join(args, " "))

		case "type":
			_ = a.FilterEvents(ctx, arg)

		case "book":
			_ = a.BookEvent(ctx, args)

		case "create":
			_ = a.CreateEvent(ctx)

		case "update":
			_ = a.UpdateEvent(ctx, arg)

		case "delete":
			_ = a.DeleteEvent(ctx, arg)

		case "cancel":
			_ = a.CancelBooking(ctx, arg)

		case "qr":
			_ = a.SaveQR(ctx, arg)

		case "review":
			_ = a.AddReview(ctx, arg)

		case "event-reviews":
			_ = a.EventReviews(ctx, arg)

		case "verify":
			_ = a.VerifyCode(ctx, strings.Join(args, " "))

		case "lookup":
			_ = a.LookupReference(ctx, arg)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func printHelp(a execIface) {
	switch {
	case !a.isLoggedIn():
		printlnFn("Available commands: login, register, back, exit")
	case a.isAdmin():
		printlnFn("Tabs: dashboard, events, bookings, reviews, qr-scanner")
		printlnFn("Events: show <id>, search <query>, type <type>, create, update <id>, delete <id>")
		printlnFn("Bookings: cancel <id>, qr <id> | Reviews: review <eventID>, event-reviews <eventID>")
		printlnFn("Scanner: verify <payload>, lookup <reference> | logout, exit")
	default:
		printlnFn("Tabs: events, bookings, reviews")
		printlnFn("Events: show <id>, search <query>, type <type>, book <eventID> <tickets>")
		printlnFn("Bookings: cancel <id>, qr <id> | Reviews: review <eventID>, event-reviews <eventID>")
		printlnFn("logout, exit")
	}
}
