// Command recitation records recitations of texts, keeps them in a local
// store and serves them over HTTP.
//
// Exit codes: 0 ok, 1 error, 2 usage, 3 microphone or store setup,
// 4 validation, 5 not found, 130 interrupted.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/heartmarshall/recitation/internal/app"
	"github.com/heartmarshall/recitation/internal/cli"
)

func main() {
	// A missing .env is fine.
	_ = godotenv.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	root := cli.NewRootCmd(cli.DefaultEnv(), app.BuildVersion())

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(cli.ExitCode(err))
	}
}
