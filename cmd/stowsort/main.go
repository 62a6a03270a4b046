package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
)

const (
	appName    = "Stowsort"
	appVersion = "1.0.0"
	appDesc    = "Reorders a container monitoring report by Bay-Row-Tier stowage"
)

// pauseOnExit is set once the configuration is known
var pauseOnExit bool

func main() {
	exitCode := 0

	// Keep the console open on panic or error when launched by double-click
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("\n❌ PANIC: %v\n", r)
			exitCode = 2
		}
		if pauseOnExit {
			waitForEnter()
		}
		os.Exit(exitCode)
	}()

	exitCode = run(os.Args[1:])
}

func run(args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := newRootCmd()
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Printf("❌ %v\n", err)
		return 1
	}
	return 0
}

// waitForEnter pauses execution and waits for user to press Enter
func waitForEnter() {
	fmt.Println("\n==========================================")
	fmt.Println("Execution Finished. Press 'Enter' to exit.")
	fmt.Println("==========================================")
	bufio.NewReader(os.Stdin).ReadBytes('\n')
}

func printBanner() {
	banner := `
╔═══════════════════════════════════════════════════════════╗
║                      STOWSORT v1.0.0                      ║
║        Bay-Row-Tier Reordering for Monitoring Reports     ║
╚═══════════════════════════════════════════════════════════╝
`
	fmt.Println(banner)
}
