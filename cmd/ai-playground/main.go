// Package main is the ai-playground terminal chat client.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
)

// main is the program entry point.
func main() {
	_ = godotenv.Load()

	a := &app{
		in:        os.Stdin,
		out:       os.Stdout,
		errOut:    os.Stderr,
		getenv:    os.Getenv,
		newClient: defaultNewClient,
		newLogger: defaultNewLogger,
	}
	os.Exit(execute(context.Background(), a, os.Args[1:]))
}

// execute runs the command line and returns the process exit code.
func execute(ctx context.Context, a *app, args []string) int {
	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetIn(a.in)
	cmd.SetOut(a.out)
	cmd.SetErr(a.errOut)

	if err := cmd.ExecuteContext(ctx); err != nil {
		errOut := a.errOut
		if errOut == nil {
			errOut = io.Discard
		}
		_, _ = fmt.Fprintf(errOut, "Erreur : %v\n", err)
		return 1
	}
	return 0
}
