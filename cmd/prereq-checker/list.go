package main

import (
	"github.com/spf13/cobra"

	"github.com/openshift/managed-upgrade-prechecks/pkg/prereq"
	"github.com/openshift/managed-upgrade-prechecks/pkg/prereq/checks"
	"github.com/openshift/managed-upgrade-prechecks/pkg/report"
)

func newListCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the enabled prerequisite checks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			// Descriptions do not depend on cluster state.
			registry, err := checks.NewDefaultRegistry(nil, nil, cfg)
			if err != nil {
				return err
			}
			var descriptions []prereq.CheckDescription
			for _, c := range registry.Checks() {
				descriptions = append(descriptions, c.Description())
			}
			return report.Checks(cmd.OutOrStdout(), descriptions)
		},
	}
}
