package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var requestPath string

var rootCmd = &cobra.Command{
	Use:   "pilefem",
	Short: "Steel pile foundation analysis for solar trackers",
	Long: `pilefem runs the axial, lateral, group, BNWF, load-combination, and
Broms analyses of the solarpile/pilefem core against a JSON request and
prints the JSON result. Every subcommand is a direct call into package
pilefem; this binary holds no analysis logic of its own.`,
}

// Execute runs the root command, exiting non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "pilefem:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&requestPath, "request", "r", "-", "path to a JSON request file, or - for stdin")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// readRequest decodes requestPath (or stdin, for "-") into v.
func readRequest(v any) error {
	var r io.Reader = os.Stdin
	if requestPath != "-" {
		f, err := os.Open(requestPath)
		if err != nil {
			return fmt.Errorf("opening request file: %w", err)
		}
		defer f.Close()
		r = f
	}
	dec := json.NewDecoder(r)
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decoding request: %w", err)
	}
	return nil
}

// printResult writes v to stdout as indented JSON.
func printResult(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	fmt.Println(string(b))
	return nil
}
