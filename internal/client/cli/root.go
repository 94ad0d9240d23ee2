package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/bookswap/internal/client/models"
	"github.com/dmitrijs2005/bookswap/internal/client/session"
)

func (a *App) getStatus() string {
	if u := a.session.User(); u != nil {
		return fmt.Sprintf("(%s)", u.Name)
	}
	return ""
}

// Root resolves any stored session and runs the command loop until exit
// or EOF.
func (a *App) Root(ctx context.Context) {

	fmt.Fprintln(a.out, "Welcome to BookSwap CLI (type 'help' for commands)")

	// The 401 observer below fires when any authenticated call comes back
	// rejected; the session is already cleared by then, this is only the
	// user-facing notice.
	prev := a.session.State()
	a.session.OnChange(func(s session.State) {
		if s == session.StateAnonymous && prev == session.StateAuthenticated {
			fmt.Fprintln(a.out, "Session expired, please log in again.")
		}
		prev = s
	})

	a.session.Resolve(ctx)
	if u := a.session.User(); u != nil {
		fmt.Fprintf(a.out, "Logged in as %s\n", u.Name)
	}

	for {
		fmt.Fprintf(a.out, "bookswap %s> ", a.getStatus())
		line, err := a.reader.ReadString('\n')
		if err != nil && line == "" {
			break
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			a.printHelp()

		case "register":
			if err := a.Register(ctx); err != nil {
				fmt.Fprintf(a.out, "error: %s\n", err)
			}
		case "login":
			if err := a.Login(ctx); err != nil {
				fmt.Fprintf(a.out, "error: %s\n", err)
			}
		case "logout":
			a.Logout(ctx)
		case "whoami":
			a.WhoAmI()

		case "books":
			a.listBooks(ctx)
		case "book":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: book <id>")
				continue
			}
			a.showBook(ctx, args[0])
		case "search":
			a.searchBooks(ctx)
		case "mine":
			a.listMyBooks(ctx)
		case "add":
			a.addBook(ctx)
		case "update":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: update <id>")
				continue
			}
			a.updateBook(ctx, args[0])
		case "delete":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: delete <id>")
				continue
			}
			a.deleteBook(ctx, args[0])

		case "request":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: request <bookID>")
				continue
			}
			a.createRequest(ctx, args[0])
		case "received":
			a.listReceived(ctx)
		case "sent":
			a.listSent(ctx)
		case "accept":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: accept <id>")
				continue
			}
			a.answerRequest(ctx, args[0], models.StatusAccepted)
		case "decline":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: decline <id>")
				continue
			}
			a.answerRequest(ctx, args[0], models.StatusDeclined)
		case "cancel":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: cancel <id>")
				continue
			}
			a.cancelRequest(ctx, args[0])

		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return

		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

func (a *App) printHelp() {
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "Available commands: books, book <id>, search, mine, add, update <id>, delete <id>, request <bookID>, received, sent, accept <id>, decline <id>, cancel <id>, whoami, logout, exit")
	} else {
		fmt.Fprintln(a.out, "Available commands: books, book <id>, search, register, login, exit")
	}
}
