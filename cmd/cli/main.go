// Command cli is a small admin tool for the ledgerbook backend: create
// users and accounts, purge expired refresh tokens.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"syscall"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/omaradel/ledgerbook/infra"
	infrarepo "github.com/omaradel/ledgerbook/infra/repository"
	"github.com/omaradel/ledgerbook/pkg/config"
	"github.com/omaradel/ledgerbook/pkg/dto"
	"github.com/omaradel/ledgerbook/pkg/logging"
	authsvc "github.com/omaradel/ledgerbook/pkg/service/auth"
	ledgersvc "github.com/omaradel/ledgerbook/pkg/service/ledger"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	cfg, err := config.Load(".env")
	if err != nil {
		color.Red("failed to load configuration: %v", err)
		os.Exit(1)
	}
	logger := logging.New("warn", cfg.Log.Format, "cli", cfg.Log.TimeFormat)

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		color.Red("failed to connect to database: %v", err)
		os.Exit(1)
	}
	uow := infrarepo.NewUoW(db)
	ctx := context.Background()

	switch os.Args[1] {
	case "user":
		if len(os.Args) < 5 || os.Args[2] != "create" {
			usage()
			return
		}
		username, email := os.Args[3], os.Args[4]
		fmt.Print("Password: ")
		password, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			color.Red("failed to read password: %v", err)
			os.Exit(1)
		}
		svc := authsvc.New(uow, cfg.Jwt, cfg.RefreshToken, logger)
		session, err := svc.Signup(ctx, username, email, string(password), "cli")
		if err != nil {
			color.Red("failed to create user: %v", err)
			os.Exit(1)
		}
		color.Green("user created: %s (%s)", session.User.Username, session.User.ID)

	case "account":
		if len(os.Args) < 4 || os.Args[2] != "create" {
			usage()
			return
		}
		opening := int64(0)
		if len(os.Args) > 4 {
			opening, err = strconv.ParseInt(os.Args[4], 10, 64)
			if err != nil {
				color.Red("invalid opening balance: %v", err)
				os.Exit(1)
			}
		}
		svc := ledgersvc.New(uow, logger)
		acct, err := svc.CreateAccount(ctx, dto.AccountCreate{Name: os.Args[3], OpeningBalance: opening})
		if err != nil {
			color.Red("failed to create account: %v", err)
			os.Exit(1)
		}
		color.Green("account created: %s (%s), balance %d", acct.Name, acct.ID, acct.Balance)

	case "tokens":
		if len(os.Args) < 3 || os.Args[2] != "purge" {
			usage()
			return
		}
		svc := authsvc.New(uow, cfg.Jwt, cfg.RefreshToken, logger)
		n, err := svc.PurgeExpiredTokens(ctx)
		if err != nil {
			color.Red("failed to purge tokens: %v", err)
			os.Exit(1)
		}
		color.Green("purged %d expired refresh tokens", n)

	default:
		usage()
	}
}

func usage() {
	fmt.Println("Usage: cli <command>")
	fmt.Println("Commands:")
	fmt.Println("  user create <username> <email>            create a user (prompts for password)")
	fmt.Println("  account create <name> [opening_balance]   create an account, balance in cents")
	fmt.Println("  tokens purge                              delete expired refresh tokens")
}
