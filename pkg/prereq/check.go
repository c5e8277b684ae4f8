package prereq

import (
	"context"
)

// RegisteredCheck is a single named prerequisite rule.
//
// IsApplicable must be cheap and free of side effects: the executor calls it for every
// registered check on every run. A check that finds the governing service absent should
// answer false rather than fail. Perform records exactly one status on result.
//
// Implementations hold no per-run state; collaborators are passed to their constructors and
// shared with other checks.
//go:generate mockgen -destination=mocks/check.go -package=mocks github.com/openshift/managed-upgrade-prechecks/pkg/prereq RegisteredCheck
type RegisteredCheck interface {
	Description() CheckDescription
	IsApplicable(ctx context.Context, request PrereqCheckRequest) (bool, error)
	Perform(ctx context.Context, result *PrerequisiteCheck, request PrereqCheckRequest) error
}
