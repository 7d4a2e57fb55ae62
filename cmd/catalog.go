package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func catalogCommand(a *app) *cobra.Command {
	var generations int
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the names in a generation pool",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if generations != 0 {
				if err := a.svc.ValidateGenerations(generations); err != nil {
					return err
				}
			}
			for _, name := range a.svc.ListEntityNames(generations) {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&generations, "generations", 0, "highest generation to include (0: all)")
	return cmd
}
