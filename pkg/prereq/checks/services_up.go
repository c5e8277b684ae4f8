package checks

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/openshift/managed-upgrade-prechecks/pkg/clusterstate"
	"github.com/openshift/managed-upgrade-prechecks/pkg/prereq"
)

var servicesUpDescription = prereq.CheckDescription{
	ID:          "SERVICES_UP",
	Type:        prereq.CheckTypeService,
	Description: "All services must be started",
	FailReason:  "the following services must be started: %s",
}

// ServicesUpCheck fails when a non-client component instance is not STARTED. Instances on
// hosts in maintenance mode are ignored.
type ServicesUpCheck struct {
	clusters clusterstate.Clusters
}

var _ prereq.RegisteredCheck = &ServicesUpCheck{}

func NewServicesUpCheck(clusters clusterstate.Clusters) *ServicesUpCheck {
	return &ServicesUpCheck{clusters: clusters}
}

func (c *ServicesUpCheck) Description() prereq.CheckDescription {
	return servicesUpDescription
}

func (c *ServicesUpCheck) IsApplicable(ctx context.Context, request prereq.PrereqCheckRequest) (bool, error) {
	return clusterExists(ctx, c.clusters, request)
}

func (c *ServicesUpCheck) Perform(ctx context.Context, result *prereq.PrerequisiteCheck, request prereq.PrereqCheckRequest) error {
	cluster, err := c.clusters.GetCluster(ctx, request.ClusterName())
	if err != nil {
		return err
	}
	hosts := cluster.Hosts()

	var down []string
	services := cluster.Services()
	for _, name := range sortedServiceNames(services) {
		if !isServiceUp(services[name], hosts) {
			down = append(down, name)
		}
	}

	if len(down) > 0 {
		sort.Strings(down)
		result.Fail(fmt.Sprintf(servicesUpDescription.FailReason, strings.Join(down, ", ")), down...)
		return nil
	}
	result.Pass()
	return nil
}

func isServiceUp(service clusterstate.Service, hosts map[string]*clusterstate.Host) bool {
	for _, component := range service.ServiceComponents() {
		if component.IsClientComponent() {
			continue
		}
		for hostName, sch := range component.GetServiceComponentHosts() {
			if h, ok := hosts[hostName]; ok && h.MaintenanceState == clusterstate.MaintenanceStateOn {
				continue
			}
			if sch == nil || sch.State != clusterstate.StateStarted {
				return false
			}
		}
	}
	return true
}
