package main

import (
	"github.com/spf13/cobra"

	"github.com/solarpile/pilefem"
	"github.com/solarpile/pilefem/group"
)

var groupCmd = &cobra.Command{
	Use:   "group",
	Short: "Run group_analysis against a JSON GroupRequest",
	RunE: func(cmd *cobra.Command, args []string) error {
		var req group.Request
		if err := readRequest(&req); err != nil {
			return err
		}
		res, err := pilefem.GroupAnalysis(req)
		if err != nil {
			return err
		}
		return printResult(res)
	},
}

func init() {
	rootCmd.AddCommand(groupCmd)
}
