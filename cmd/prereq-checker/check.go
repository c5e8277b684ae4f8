package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/openshift/managed-upgrade-prechecks/config"
	"github.com/openshift/managed-upgrade-prechecks/pkg/clusterstate"
	"github.com/openshift/managed-upgrade-prechecks/pkg/hostcomponentstate"
	"github.com/openshift/managed-upgrade-prechecks/pkg/metrics"
	"github.com/openshift/managed-upgrade-prechecks/pkg/prereq"
	"github.com/openshift/managed-upgrade-prechecks/pkg/prereq/checks"
	"github.com/openshift/managed-upgrade-prechecks/pkg/report"
	"github.com/openshift/managed-upgrade-prechecks/util"
)

func newCheckCmd(root *rootOptions) *cobra.Command {
	var (
		clusterName, statePath, output, metricsFile string
		params                                       map[string]string
	)
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run all enabled prerequisite checks against a cluster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if clusterName == "" {
				name, err := util.GetClusterName()
				if err != nil {
					return fmt.Errorf("no cluster given: set --cluster or %s", config.EnvClusterName)
				}
				clusterName = name
			}
			if statePath == "" {
				statePath = util.GetStatePath()
			}
			if statePath == "" {
				return fmt.Errorf("no cluster state given: set --state or %s", config.EnvStatePath)
			}
			format, err := report.ParseFormat(output)
			if err != nil {
				return err
			}

			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			logger := util.NewLogger(cmd.ErrOrStderr(), root.debug).WithName("check")

			snapshot, err := clusterstate.LoadSnapshot(statePath)
			if err != nil {
				return err
			}
			registry, err := checks.NewDefaultRegistry(snapshot, hostcomponentstate.NewSnapshotDAO(snapshot), cfg)
			if err != nil {
				return err
			}

			promRegistry := prometheus.NewRegistry()
			metricsClient, err := metrics.NewMetrics(promRegistry)
			if err != nil {
				return err
			}

			ctx, cancel := signalContext(cmd.Context())
			defer cancel()

			executor := prereq.NewCheckExecutor(snapshot, registry, metricsClient, cfg.Executor, logger)
			r, err := executor.RunAll(ctx, prereq.NewPrereqCheckRequest(clusterName, params))
			if err != nil {
				if clusterstate.IsClusterNotFound(err) {
					return fmt.Errorf("%w (known clusters: %s)", err, strings.Join(snapshot.ClusterNames(), ", "))
				}
				return err
			}

			if metricsFile != "" {
				if err := prometheus.WriteToTextfile(metricsFile, promRegistry); err != nil {
					return fmt.Errorf("unable to write metrics to %s: %w", metricsFile, err)
				}
			}
			if err := report.Render(cmd.OutOrStdout(), r, format); err != nil {
				return err
			}
			if r.Blocking(cfg.Report.FailOnWarning) {
				return errBlocked
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&clusterName, "cluster", "", fmt.Sprintf("name of the cluster to check (default $%s)", config.EnvClusterName))
	cmd.Flags().StringVar(&statePath, "state", "", fmt.Sprintf("path to the cluster state snapshot (default $%s)", config.EnvStatePath))
	cmd.Flags().StringToStringVar(&params, "param", nil, "request parameter as key=value, e.g. "+prereq.ParamTargetStackVersion+"=2.3")
	cmd.Flags().StringVarP(&output, "output", "o", string(report.FormatTable), "output format: table|json|yaml")
	cmd.Flags().StringVar(&metricsFile, "metrics-file", "", "write run metrics in text exposition format to this file")
	return cmd
}

func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
