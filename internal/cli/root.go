package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	if user := a.auth.CurrentUser(); user != nil {
		return fmt.Sprintf("(%s)", user.StudentID)
	}
	return ""
}

func (a *App) Root(ctx context.Context) {
	fmt.Println("Welcome to the campus parking wallet (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("cpark %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isSignedIn() {
				fmt.Println("Available commands: profile, history, topup, linkbank, endpoint [url], logout, exit")
			} else {
				fmt.Println("Available commands: login, register, endpoint [url], exit")
			}
		case "login":
			_ = a.Login(ctx)
		case "register":
			_ = a.Register(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "profile":
			_ = a.Profile(ctx)
		case "history":
			_ = a.History(ctx)
		case "topup":
			_ = a.TopUp(ctx)
		case "linkbank":
			_ = a.LinkBank(ctx)
		case "endpoint":
			_ = a.Endpoint(ctx, args)
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command:", cmd)
		}
	}
}
