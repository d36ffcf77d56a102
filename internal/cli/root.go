package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/freshtrack/freshtrack/internal/service"
)

func (a *App) getStatus() string {
	s := a.manager.Session()
	if !s.Active() {
		return ""
	}
	return fmt.Sprintf("(%s)", s.Username)
}

// Root runs the command loop. On startup it performs the one-time auth
// check: a stored token is either confirmed (and the data refreshed) or
// cleared, so the loop always starts from a coherent state.
func (a *App) Root(ctx context.Context) {
	fmt.Println("Welcome to FreshTrack (type 'help' for commands)")

	s, err := a.manager.CheckAuth(ctx)
	switch {
	case errors.Is(err, service.ErrSessionInvalid):
		fmt.Println("Your session has expired, please log in again.")
	case err != nil:
		fmt.Printf("Startup error: %v\n", err)
	case s.Active():
		fmt.Printf("Welcome back, %s!\n", s.Username)
	}

	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("ftrack %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Println("Available commands: list, expiring, history, add, edit, delete, deleteall, recipes, refresh, logout, exit")
			} else {
				fmt.Println("Available commands: login, signup, exit")
			}
		case "login":
			a.Login(ctx)
		case "signup", "register":
			a.Register(ctx)
		case "list":
			a.List(ctx)
		case "expiring":
			a.Expiring(ctx)
		case "history":
			a.History(ctx)
		case "add":
			a.Add(ctx)
		case "edit":
			a.Edit(ctx)
		case "delete":
			a.Delete(ctx)
		case "deleteall":
			a.DeleteAll(ctx)
		case "recipes":
			a.Recipes(ctx)
		case "refresh":
			a.Refresh(ctx)
		case "logout":
			a.Logout(ctx)
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command:", cmd)
		}
	}
}
