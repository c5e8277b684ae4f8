package checks

import (
	"context"
	"strings"

	"github.com/openshift/managed-upgrade-prechecks/pkg/clusterstate"
	"github.com/openshift/managed-upgrade-prechecks/pkg/prereq"
)

var servicesNamenodeHighAvailabilityDescription = prereq.CheckDescription{
	ID:          "SERVICES_NAMENODE_HA",
	Type:        prereq.CheckTypeService,
	Description: "NameNode High Availability must be enabled",
	FailReason:  "NameNode High Availability is not enabled, hdfs-site/dfs.nameservices is not set",
}

// ServicesNamenodeHighAvailabilityCheck fails when HDFS runs without a nameservice configured.
type ServicesNamenodeHighAvailabilityCheck struct {
	clusters clusterstate.Clusters
}

var _ prereq.RegisteredCheck = &ServicesNamenodeHighAvailabilityCheck{}

func NewServicesNamenodeHighAvailabilityCheck(clusters clusterstate.Clusters) *ServicesNamenodeHighAvailabilityCheck {
	return &ServicesNamenodeHighAvailabilityCheck{clusters: clusters}
}

func (c *ServicesNamenodeHighAvailabilityCheck) Description() prereq.CheckDescription {
	return servicesNamenodeHighAvailabilityDescription
}

func (c *ServicesNamenodeHighAvailabilityCheck) IsApplicable(ctx context.Context, request prereq.PrereqCheckRequest) (bool, error) {
	return isServiceInstalled(ctx, c.clusters, request, ServiceHDFS)
}

func (c *ServicesNamenodeHighAvailabilityCheck) Perform(ctx context.Context, result *prereq.PrerequisiteCheck, request prereq.PrereqCheckRequest) error {
	cluster, err := c.clusters.GetCluster(ctx, request.ClusterName())
	if err != nil {
		return err
	}

	nameservices, ok := cluster.DesiredConfigProperty(ConfigTypeHdfsSite, PropertyNameservices)
	if !ok || strings.TrimSpace(nameservices) == "" {
		result.Fail(servicesNamenodeHighAvailabilityDescription.FailReason, ServiceHDFS)
		return nil
	}
	result.Pass()
	return nil
}
