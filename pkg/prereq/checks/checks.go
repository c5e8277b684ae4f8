// Package checks contains the upgrade prerequisite checks shipped with the checker.
package checks

import (
	"context"
	"sort"

	"github.com/openshift/managed-upgrade-prechecks/pkg/clusterstate"
	"github.com/openshift/managed-upgrade-prechecks/pkg/prereq"
)

const (
	ServiceHDFS = "HDFS"

	ComponentSecondaryNamenode = "SECONDARY_NAMENODE"

	ConfigTypeHdfsSite   = "hdfs-site"
	PropertyNameservices = "dfs.nameservices"
)

// isServiceInstalled reports whether the requested cluster has serviceName installed.
// A missing service is an answer, not an error.
func isServiceInstalled(ctx context.Context, clusters clusterstate.Clusters, request prereq.PrereqCheckRequest, serviceName string) (bool, error) {
	cluster, err := clusters.GetCluster(ctx, request.ClusterName())
	if err != nil {
		return false, err
	}
	if _, err := cluster.GetService(serviceName); err != nil {
		if clusterstate.IsServiceNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// clusterExists is the applicability rule of checks that apply to every cluster.
func clusterExists(ctx context.Context, clusters clusterstate.Clusters, request prereq.PrereqCheckRequest) (bool, error) {
	if _, err := clusters.GetCluster(ctx, request.ClusterName()); err != nil {
		return false, err
	}
	return true, nil
}

func sortedServiceNames(services map[string]clusterstate.Service) []string {
	names := make([]string, 0, len(services))
	for name := range services {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
