package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/solarpile/pilefem"
	"github.com/solarpile/pilefem/loads"
)

var loadsMethodFlag string

var loadsCmd = &cobra.Command{
	Use:   "loads",
	Short: "Run load_combinations against a JSON LoadInput",
	RunE: func(cmd *cobra.Command, args []string) error {
		var in loads.Input
		if err := readRequest(&in); err != nil {
			return err
		}
		method, err := parseLoadsMethod(loadsMethodFlag)
		if err != nil {
			return err
		}
		res := pilefem.LoadCombinations(in, method)
		return printResult(res)
	},
}

func parseLoadsMethod(s string) (loads.Method, error) {
	switch strings.ToLower(s) {
	case "lrfd":
		return loads.LRFD, nil
	case "asd":
		return loads.ASD, nil
	case "both", "":
		return loads.Both, nil
	default:
		return loads.Both, fmt.Errorf("unknown --method %q, want lrfd, asd, or both", s)
	}
}

func init() {
	loadsCmd.Flags().StringVar(&loadsMethodFlag, "method", "both", "combination family: lrfd, asd, or both")
	rootCmd.AddCommand(loadsCmd)
}
