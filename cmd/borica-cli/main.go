// Package main is the entry point for the borica-cli application.
// It registers the key, merchant and gateway-simulator commands and executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/MGTheTrain/borica-gateway/cmd/borica-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "borica-cli",
		Short: "BORICA eBorica payment gateway CLI tool",
		Long: `borica-cli builds and verifies eBorica messages for the BORICA payment gateway.
It generates and inspects RSA keys, signs merchant requests, verifies gateway responses
and can play the gateway's side for local testing.

Gateway settings are read from the file given with --config and from environment
variables prefixed with BORICA_, e.g. BORICA_GATEWAY_TERMINAL_ID. Flags take precedence.`,
		SilenceUsage: true,
	}

	commands.InitRootFlags(rootCmd)

	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitKeyCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize key commands: %w", err)
	}

	if err := commands.InitGatewayCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize gateway commands: %w", err)
	}

	if err := commands.InitSimulatorCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize simulator commands: %w", err)
	}

	return nil
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
