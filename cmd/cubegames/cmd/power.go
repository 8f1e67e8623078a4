package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var powerCmd = &cobra.Command{
	Use:   "power <file>",
	Short: "Sum the per-game products of the per-color maximum counts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEvaluator()
		if err != nil {
			return err
		}

		total, err := e.EvaluatePower(args[0])
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), total)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(powerCmd)
}
