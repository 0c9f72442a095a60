// Command cli is a small admin tool for the ledger: register clients, move
// money and run accrual cycles without going through the HTTP surface.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/minibank/ledger/config"
	"github.com/minibank/ledger/infra/initializer"
	interestsvc "github.com/minibank/ledger/pkg/service/interest"
	registrysvc "github.com/minibank/ledger/pkg/service/registry"
	transfersvc "github.com/minibank/ledger/pkg/service/transfer"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fail("failed to load configuration: %v", err)
	}
	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		fail("failed to initialize dependencies: %v", err)
	}
	ctx := context.Background()

	switch os.Args[1] {
	case "create":
		runCreate(ctx, deps)
	case "transfer":
		runTransfer(ctx, deps)
	case "accrue":
		runAccrue(ctx, deps)
	case "balance":
		runBalance(ctx, deps)
	default:
		usage()
	}
}

func usage() {
	fmt.Println("Usage: cli <command> [arguments]")
	fmt.Println("Commands:")
	fmt.Println("  create <username> <name> <dob> <initial_balance>   register a client (password prompted)")
	fmt.Println("  transfer <from_client_id> <to_client_id> <amount>  move funds between accounts")
	fmt.Println("  accrue                                             run one interest cycle")
	fmt.Println("  balance <client_id>                                show an account balance")
}

func fail(format string, args ...any) {
	color.Red(format, args...)
	os.Exit(1)
}

func runCreate(ctx context.Context, deps config.Deps) {
	if len(os.Args) < 6 {
		usage()
		return
	}
	initialBalance, err := strconv.ParseFloat(os.Args[5], 64)
	if err != nil {
		fail("invalid initial balance: %v", err)
	}

	fmt.Print("Password: ")
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		fail("failed to read password: %v", err)
	}

	svc := registrysvc.New(deps.Uow, deps.Logger)
	created, err := svc.Create(ctx, registrysvc.CreateInput{
		Username:       os.Args[2],
		Password:       strings.TrimSpace(string(raw)),
		Name:           os.Args[3],
		DOB:            os.Args[4],
		InitialBalance: initialBalance,
		Phones:         []string{},
		Emails:         []string{},
	})
	if err != nil {
		fail("error creating client: %v", err)
	}
	color.Green("Client created: id=%d username=%s balance=%.2f", created.ID, created.Username, initialBalance)
}

func runTransfer(ctx context.Context, deps config.Deps) {
	if len(os.Args) < 5 {
		usage()
		return
	}
	from, err := strconv.ParseUint(os.Args[2], 10, 64)
	if err != nil {
		fail("invalid from_client_id: %v", err)
	}
	to, err := strconv.ParseUint(os.Args[3], 10, 64)
	if err != nil {
		fail("invalid to_client_id: %v", err)
	}
	amount, err := strconv.ParseFloat(os.Args[4], 64)
	if err != nil {
		fail("invalid amount: %v", err)
	}

	svc := transfersvc.New(deps.Uow, deps.Logger)
	receipt, err := svc.Transfer(ctx, uint(from), uint(to), amount)
	if err != nil {
		fail("transfer failed: %v", err)
	}
	color.Green("Transferred %.2f (ref %s). From balance: %.2f, to balance: %.2f",
		amount, receipt.Reference, receipt.FromBalance, receipt.ToBalance)
}

func runAccrue(ctx context.Context, deps config.Deps) {
	svc := interestsvc.New(deps.Uow, deps.Config.Accrual, deps.Logger)
	if err := svc.RunCycle(ctx); err != nil {
		fail("accrual cycle failed: %v", err)
	}
	color.Green("Accrual cycle completed")
}

func runBalance(ctx context.Context, deps config.Deps) {
	if len(os.Args) < 3 {
		usage()
		return
	}
	id, err := strconv.ParseUint(os.Args[2], 10, 64)
	if err != nil {
		fail("invalid client_id: %v", err)
	}
	accounts, err := deps.Uow.AccountRepository()
	if err != nil {
		fail("error opening repository: %v", err)
	}
	acc, err := accounts.GetByClientID(ctx, uint(id))
	if err != nil {
		fail("error fetching balance: %v", err)
	}
	color.Cyan("Client %d: balance %.2f (initial %.2f, cap %.2f)",
		id, acc.CurrentBalance, acc.InitialBalance, acc.Cap(deps.Config.Accrual.CapFactor))
}
