package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var noColor bool

var rootCmd = &cobra.Command{
	Use:     "foliochat",
	Short:   "Portfolio chat assistant server and CLI",
	Version: version,
	Long: `foliochat serves a portfolio website's chat assistant: it classifies
visitor questions, answers through a completion gateway grounded in the
owner's profile, and falls back to canned answers when the gateway is
unavailable.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resumeCmd)
	rootCmd.AddCommand(coverLetterCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
