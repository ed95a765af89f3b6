package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) listCmd() *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the implemented days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, p := range a.deps.Registry.List() {
				if year != 0 && p.ID().Year != year {
					continue
				}
				if _, err := fmt.Fprintf(a.stdout, "%s  %s\n", p.ID(), p.Title()); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&year, "year", "y", 0, "Only list days of this year")

	return cmd
}
