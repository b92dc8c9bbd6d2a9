// Package main provides the interactive CLI for gemini-chat-go.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/minhyannv/gemini-chat-go/pkg/geminichat"
)

// main is the program entry point.
func main() {
	config, err := parseCLIConfig()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	session, err := geminichat.New(context.Background(), config)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := runREPL(session, replOptions{
		Stream:      config.Stream,
		Verbose:     config.Verbose,
		HistoryFile: config.HistoryFile,
		Logger:      config.Logger,
	}, os.Stdin, os.Stdout); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
