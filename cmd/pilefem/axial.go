package main

import (
	"github.com/spf13/cobra"

	"github.com/solarpile/pilefem"
	"github.com/solarpile/pilefem/axial"
)

var axialCmd = &cobra.Command{
	Use:   "axial",
	Short: "Run axial_capacity against a JSON AxialRequest",
	RunE: func(cmd *cobra.Command, args []string) error {
		var req axial.Request
		if err := readRequest(&req); err != nil {
			return err
		}
		res, err := pilefem.AxialCapacity(req)
		if err != nil {
			return err
		}
		return printResult(res)
	},
}

func init() {
	rootCmd.AddCommand(axialCmd)
}
