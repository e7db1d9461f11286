package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Aashish23092/visa-document-scanner/config"
	"github.com/Aashish23092/visa-document-scanner/logger"
)

var version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "visascan",
	Short: "Extract identity fields from visa and residence documents",
	Long: `visascan reads a scanned visa, residence permit or Emirates ID
(JPEG, PNG, GIF, BMP, WebP or PDF), runs OCR over it and prints the
extracted record as JSON.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command with cfg available to subcommands.
func Execute(cfg *config.Config) {
	log := logger.WithComponent("cmd")

	rootCmd.AddCommand(newScanCmd(cfg))
	if err := rootCmd.Execute(); err != nil {
		log.Error().
			Err(err).
			Msg("Command execution failed")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
