package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

func guessCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "guess <guess> <target>",
		Short: "Compare a guess against a target and print the feedback as JSON",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.svc.SubmitGuess(args[0], args[1])
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		},
	}
}
