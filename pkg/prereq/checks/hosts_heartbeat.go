package checks

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/openshift/managed-upgrade-prechecks/pkg/clusterstate"
	"github.com/openshift/managed-upgrade-prechecks/pkg/prereq"
)

var hostsHeartbeatDescription = prereq.CheckDescription{
	ID:          "HOSTS_HEARTBEAT",
	Type:        prereq.CheckTypeHost,
	Description: "All hosts must be communicating with the server. Hosts which are not reachable should be placed in Maintenance Mode",
	FailReason:  "the following hosts have lost their heartbeat: %s",
}

// HostsHeartbeatCheck fails when a host outside maintenance mode has lost its heartbeat.
type HostsHeartbeatCheck struct {
	clusters clusterstate.Clusters
}

var _ prereq.RegisteredCheck = &HostsHeartbeatCheck{}

func NewHostsHeartbeatCheck(clusters clusterstate.Clusters) *HostsHeartbeatCheck {
	return &HostsHeartbeatCheck{clusters: clusters}
}

func (c *HostsHeartbeatCheck) Description() prereq.CheckDescription {
	return hostsHeartbeatDescription
}

func (c *HostsHeartbeatCheck) IsApplicable(ctx context.Context, request prereq.PrereqCheckRequest) (bool, error) {
	return clusterExists(ctx, c.clusters, request)
}

func (c *HostsHeartbeatCheck) Perform(ctx context.Context, result *prereq.PrerequisiteCheck, request prereq.PrereqCheckRequest) error {
	cluster, err := c.clusters.GetCluster(ctx, request.ClusterName())
	if err != nil {
		return err
	}

	var lost []string
	for name, host := range cluster.Hosts() {
		if host.MaintenanceState == clusterstate.MaintenanceStateOn {
			continue
		}
		if host.State == clusterstate.HostStateHeartbeatLost {
			lost = append(lost, name)
		}
	}

	if len(lost) > 0 {
		sort.Strings(lost)
		result.Fail(fmt.Sprintf(hostsHeartbeatDescription.FailReason, strings.Join(lost, ", ")), lost...)
		return nil
	}
	result.Pass()
	return nil
}
