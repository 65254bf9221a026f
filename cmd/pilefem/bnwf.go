package main

import (
	"github.com/spf13/cobra"

	"github.com/solarpile/pilefem"
	"github.com/solarpile/pilefem/bnwf"
)

var bnwfCmd = &cobra.Command{
	Use:   "bnwf",
	Short: "Run bnwf_analysis against a JSON BNWFRequest",
	RunE: func(cmd *cobra.Command, args []string) error {
		var req bnwf.Request
		if err := readRequest(&req); err != nil {
			return err
		}
		res, err := pilefem.BNWFAnalysis(req)
		if err != nil {
			return err
		}
		return printResult(res)
	},
}

func init() {
	rootCmd.AddCommand(bnwfCmd)
}
