package main

import (
	"github.com/spf13/cobra"

	"github.com/solarpile/pilefem"
	"github.com/solarpile/pilefem/broms"
)

var bromsCmd = &cobra.Command{
	Use:   "broms",
	Short: "Run broms_lateral against a JSON BromsRequest",
	RunE: func(cmd *cobra.Command, args []string) error {
		var req broms.Request
		if err := readRequest(&req); err != nil {
			return err
		}
		res, err := pilefem.BromsLateral(req)
		if err != nil {
			return err
		}
		return printResult(res)
	},
}

func init() {
	rootCmd.AddCommand(bromsCmd)
}
