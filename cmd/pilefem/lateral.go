package main

import (
	"github.com/spf13/cobra"

	"github.com/solarpile/pilefem"
	"github.com/solarpile/pilefem/lateral"
)

var lateralCmd = &cobra.Command{
	Use:   "lateral",
	Short: "Run lateral_analysis against a JSON LateralRequest",
	RunE: func(cmd *cobra.Command, args []string) error {
		var req lateral.Request
		if err := readRequest(&req); err != nil {
			return err
		}
		res, err := pilefem.LateralAnalysis(req)
		if err != nil {
			return err
		}
		return printResult(res)
	},
}

func init() {
	rootCmd.AddCommand(lateralCmd)
}
