package checks

import (
	"fmt"

	"github.com/openshift/managed-upgrade-prechecks/pkg/clusterstate"
	"github.com/openshift/managed-upgrade-prechecks/pkg/hostcomponentstate"
	"github.com/openshift/managed-upgrade-prechecks/pkg/prereq"
)

// DefaultChecks returns every shipped check in registration order.
func DefaultChecks(clusters clusterstate.Clusters, dao hostcomponentstate.DAO) []prereq.RegisteredCheck {
	return []prereq.RegisteredCheck{
		NewSecondaryNamenodeDeletedCheck(clusters, dao),
		NewServicesUpCheck(clusters),
		NewServicesMaintenanceModeCheck(clusters),
		NewHostsHeartbeatCheck(clusters),
		NewServicesNamenodeHighAvailabilityCheck(clusters),
		NewStackVersionCheck(clusters),
	}
}

// NewDefaultRegistry registers the shipped checks minus those disabled in cfg.
// Disabling an unknown check ID is an error.
func NewDefaultRegistry(clusters clusterstate.Clusters, dao hostcomponentstate.DAO, cfg *prereq.Config) (*prereq.Registry, error) {
	all := DefaultChecks(clusters, dao)

	known := map[string]bool{}
	for _, c := range all {
		known[c.Description().ID] = true
	}
	for _, id := range cfg.Checks.Disabled {
		if !known[id] {
			return nil, fmt.Errorf("cannot disable unknown check %s", id)
		}
	}

	var enabled []prereq.RegisteredCheck
	for _, c := range all {
		if cfg.IsDisabled(c.Description().ID) {
			continue
		}
		enabled = append(enabled, c)
	}
	return prereq.NewRegistry(enabled...)
}
