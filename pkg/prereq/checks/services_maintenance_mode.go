package checks

import (
	"context"
	"fmt"
	"strings"

	"github.com/openshift/managed-upgrade-prechecks/pkg/clusterstate"
	"github.com/openshift/managed-upgrade-prechecks/pkg/prereq"
)

var servicesMaintenanceModeDescription = prereq.CheckDescription{
	ID:          "SERVICES_MAINTENANCE_MODE",
	Type:        prereq.CheckTypeService,
	Description: "No services can be in Maintenance Mode",
	FailReason:  "the following services are in maintenance mode: %s",
}

// ServicesMaintenanceModeCheck fails when any service is in maintenance mode.
type ServicesMaintenanceModeCheck struct {
	clusters clusterstate.Clusters
}

var _ prereq.RegisteredCheck = &ServicesMaintenanceModeCheck{}

func NewServicesMaintenanceModeCheck(clusters clusterstate.Clusters) *ServicesMaintenanceModeCheck {
	return &ServicesMaintenanceModeCheck{clusters: clusters}
}

func (c *ServicesMaintenanceModeCheck) Description() prereq.CheckDescription {
	return servicesMaintenanceModeDescription
}

func (c *ServicesMaintenanceModeCheck) IsApplicable(ctx context.Context, request prereq.PrereqCheckRequest) (bool, error) {
	return clusterExists(ctx, c.clusters, request)
}

func (c *ServicesMaintenanceModeCheck) Perform(ctx context.Context, result *prereq.PrerequisiteCheck, request prereq.PrereqCheckRequest) error {
	cluster, err := c.clusters.GetCluster(ctx, request.ClusterName())
	if err != nil {
		return err
	}

	var inMaintenance []string
	services := cluster.Services()
	for _, name := range sortedServiceNames(services) {
		if services[name].MaintenanceState() == clusterstate.MaintenanceStateOn {
			inMaintenance = append(inMaintenance, name)
		}
	}

	if len(inMaintenance) > 0 {
		result.Fail(fmt.Sprintf(servicesMaintenanceModeDescription.FailReason, strings.Join(inMaintenance, ", ")), inMaintenance...)
		return nil
	}
	result.Pass()
	return nil
}
