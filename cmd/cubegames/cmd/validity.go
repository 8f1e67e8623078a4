package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validityCmd = &cobra.Command{
	Use:   "validity <file>",
	Short: "Sum the ids of the games that stay within the cube limits",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEvaluator()
		if err != nil {
			return err
		}

		total, err := e.EvaluateValidity(args[0])
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), total)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validityCmd)
}
