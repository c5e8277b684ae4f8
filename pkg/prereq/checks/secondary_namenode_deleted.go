package checks

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/openshift/managed-upgrade-prechecks/pkg/clusterstate"
	"github.com/openshift/managed-upgrade-prechecks/pkg/hostcomponentstate"
	"github.com/openshift/managed-upgrade-prechecks/pkg/prereq"
)

var secondaryNamenodeDeletedDescription = prereq.CheckDescription{
	ID:          "SECONDARY_NAMENODE_MUST_BE_DELETED",
	Type:        prereq.CheckTypeHost,
	Description: "The SNameNode component must be deleted from all hosts",
	FailReason:  "component %s still present on hosts: %s",
}

// SecondaryNamenodeDeletedCheck fails while SECONDARY_NAMENODE is still assigned to any host.
// It applies only to clusters with HDFS installed.
type SecondaryNamenodeDeletedCheck struct {
	clusters              clusterstate.Clusters
	hostComponentStateDao hostcomponentstate.DAO
}

var _ prereq.RegisteredCheck = &SecondaryNamenodeDeletedCheck{}

func NewSecondaryNamenodeDeletedCheck(clusters clusterstate.Clusters, dao hostcomponentstate.DAO) *SecondaryNamenodeDeletedCheck {
	return &SecondaryNamenodeDeletedCheck{
		clusters:              clusters,
		hostComponentStateDao: dao,
	}
}

func (c *SecondaryNamenodeDeletedCheck) Description() prereq.CheckDescription {
	return secondaryNamenodeDeletedDescription
}

func (c *SecondaryNamenodeDeletedCheck) IsApplicable(ctx context.Context, request prereq.PrereqCheckRequest) (bool, error) {
	return isServiceInstalled(ctx, c.clusters, request, ServiceHDFS)
}

// Perform reads the host assignments of SECONDARY_NAMENODE. An empty assignment passes.
// When the component is missing from the service, the host component state records are
// consulted before the check passes.
func (c *SecondaryNamenodeDeletedCheck) Perform(ctx context.Context, result *prereq.PrerequisiteCheck, request prereq.PrereqCheckRequest) error {
	hosts, found, err := c.assignedHosts(ctx, request.ClusterName())
	if err != nil {
		return err
	}

	if !found {
		records, err := c.hostComponentStateDao.FindByServiceAndComponent(ctx, request.ClusterName(), ServiceHDFS, ComponentSecondaryNamenode)
		if err != nil {
			return fmt.Errorf("unable to query host component state: %w", err)
		}
		for _, r := range records {
			hosts = append(hosts, r.HostName)
		}
		sort.Strings(hosts)
	}

	if len(hosts) > 0 {
		result.Fail(fmt.Sprintf(secondaryNamenodeDeletedDescription.FailReason, ComponentSecondaryNamenode, strings.Join(hosts, ", ")), hosts...)
		return nil
	}

	result.Pass()
	return nil
}

// assignedHosts returns the sorted hosts SECONDARY_NAMENODE is assigned to, and whether the
// component is part of the HDFS service at all.
func (c *SecondaryNamenodeDeletedCheck) assignedHosts(ctx context.Context, clusterName string) ([]string, bool, error) {
	cluster, err := c.clusters.GetCluster(ctx, clusterName)
	if err != nil {
		return nil, false, err
	}
	service, err := cluster.GetService(ServiceHDFS)
	if err != nil {
		if clusterstate.IsServiceNotFound(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	component, err := service.GetServiceComponent(ComponentSecondaryNamenode)
	if err != nil {
		// the component may already have been removed from the service
		if clusterstate.IsComponentNotFound(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return clusterstate.SortedKeys(component.GetServiceComponentHosts()), true, nil
}
