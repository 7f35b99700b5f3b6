// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newDescribeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "describe <id>",
		Short: "Print the resolved parameters of a profile as YAML",
		Long: `describe builds the profile and prints the metadata it carries, with every
default resolved against the catalog context (derived constants such as
sigma and slopes included).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			it, err := a.build(args[0])
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(it.Profile.Metadata()); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}
