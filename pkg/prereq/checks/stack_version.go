package checks

import (
	"context"
	"fmt"

	"github.com/openshift/managed-upgrade-prechecks/pkg/clusterstate"
	"github.com/openshift/managed-upgrade-prechecks/pkg/prereq"
	"github.com/openshift/managed-upgrade-prechecks/util"
)

var stackVersionDescription = prereq.CheckDescription{
	ID:          "STACK_VERSION",
	Type:        prereq.CheckTypeCluster,
	Description: "The target stack version must be newer than the current stack version",
}

// StackVersionCheck validates the requested target stack version against the cluster's
// current one. It applies only when the request names a target version.
type StackVersionCheck struct {
	clusters clusterstate.Clusters
}

var _ prereq.RegisteredCheck = &StackVersionCheck{}

func NewStackVersionCheck(clusters clusterstate.Clusters) *StackVersionCheck {
	return &StackVersionCheck{clusters: clusters}
}

func (c *StackVersionCheck) Description() prereq.CheckDescription {
	return stackVersionDescription
}

func (c *StackVersionCheck) IsApplicable(ctx context.Context, request prereq.PrereqCheckRequest) (bool, error) {
	target, ok := request.Param(prereq.ParamTargetStackVersion)
	if !ok || target == "" {
		return false, nil
	}
	return clusterExists(ctx, c.clusters, request)
}

func (c *StackVersionCheck) Perform(ctx context.Context, result *prereq.PrerequisiteCheck, request prereq.PrereqCheckRequest) error {
	cluster, err := c.clusters.GetCluster(ctx, request.ClusterName())
	if err != nil {
		return err
	}
	clusterName := request.ClusterName()
	current := cluster.CurrentStackVersion()
	target, _ := request.Param(prereq.ParamTargetStackVersion)

	comparison, err := util.CompareStackVersions(current, target)
	if err != nil {
		result.Fail(fmt.Sprintf("unable to compare current stack version %q with target %q: %s", current, target, err), clusterName)
		return nil
	}

	switch comparison {
	case util.VersionDowngrade:
		result.Fail(fmt.Sprintf("target stack version %s is lower than current stack version %s", target, current), clusterName)
		return nil
	case util.VersionEqual:
		result.Fail(fmt.Sprintf("cluster is already at stack version %s", current), clusterName)
		return nil
	}

	// Both versions parsed above, so this cannot fail.
	majorJump, _ := util.IsMajorVersionJump(current, target)
	if majorJump {
		result.Warn(fmt.Sprintf("upgrade from %s to %s crosses a major stack version", current, target), clusterName)
		return nil
	}
	result.Pass()
	return nil
}
