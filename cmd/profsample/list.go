// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the profiles of the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if len(a.doc.Profiles) == 0 {
				fmt.Fprintln(out, "No profiles.")
				return nil
			}

			width := len("ID")
			for _, e := range a.doc.Profiles {
				width = max(width, len(e.ID))
			}
			st := newStyles(out)
			fmt.Fprintln(out, st.header.Render(fmt.Sprintf("%-*s  %s", width, "ID", "SHAPE")))
			for _, e := range a.doc.Profiles {
				fmt.Fprintf(out, "%-*s  %s\n", width, e.ID, e.Name)
			}
			return nil
		},
	}
}
