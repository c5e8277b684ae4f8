// Package prereq runs upgrade prerequisite checks against a cluster and aggregates their results.
package prereq

import (
	"sort"
)

// PrereqCheckStatus is the verdict of a single check or of a whole run.
type PrereqCheckStatus string

const (
	// StatusPending is the initial status of a result that no check has written yet.
	StatusPending PrereqCheckStatus = "PENDING"
	// StatusPass indicates the prerequisite is met.
	StatusPass PrereqCheckStatus = "PASS"
	// StatusFail indicates the prerequisite is not met and the operation must not proceed.
	StatusFail PrereqCheckStatus = "FAIL"
	// StatusWarning indicates the operation may proceed but the operator should review the result.
	StatusWarning PrereqCheckStatus = "WARNING"
	// StatusNotApplicable indicates the check is irrelevant to the cluster and was not performed.
	StatusNotApplicable PrereqCheckStatus = "NOT_APPLICABLE"
)

// CheckType tells what kind of resource identifiers a check reports in FailedOn.
type CheckType string

const (
	CheckTypeCluster CheckType = "CLUSTER"
	CheckTypeService CheckType = "SERVICE"
	CheckTypeHost    CheckType = "HOST"
)

// Well-known request parameters.
const (
	// ParamTargetStackVersion is the stack version the cluster is about to be upgraded to.
	ParamTargetStackVersion = "target_stack_version"
)

// PrereqCheckRequest identifies the cluster and the operation being validated.
// It is immutable once built.
type PrereqCheckRequest struct {
	clusterName string
	params      map[string]string
}

// NewPrereqCheckRequest builds a request. params is copied.
func NewPrereqCheckRequest(clusterName string, params map[string]string) PrereqCheckRequest {
	copied := make(map[string]string, len(params))
	for k, v := range params {
		copied[k] = v
	}
	return PrereqCheckRequest{clusterName: clusterName, params: copied}
}

func (r PrereqCheckRequest) ClusterName() string {
	return r.clusterName
}

// Param returns the value of a request parameter and whether it was set.
func (r PrereqCheckRequest) Param(key string) (string, bool) {
	v, ok := r.params[key]
	return v, ok
}

// Params returns a copy of all request parameters.
func (r PrereqCheckRequest) Params() map[string]string {
	copied := make(map[string]string, len(r.params))
	for k, v := range r.params {
		copied[k] = v
	}
	return copied
}

// CheckDescription is the static identity of a registered check.
type CheckDescription struct {
	// ID is the stable key the check is registered under.
	ID          string
	Type        CheckType
	Description string
	// FailReason is a fmt template; checks fill it with the resources they failed on.
	FailReason string
}

// PrerequisiteCheck is the result of running one check against one request.
// Status starts as StatusPending and is written once: the first terminal status recorded
// through Pass, Fail, Warn or NotApplicable wins and later writes are discarded.
// The fields are exported for serialization only; checks record their verdict through
// Pass, Fail or Warn. The executor replaces any other outcome of Perform with a FAIL.
type PrerequisiteCheck struct {
	ID          string            `json:"id" yaml:"id"`
	Description string            `json:"description" yaml:"description"`
	Type        CheckType         `json:"type" yaml:"type"`
	ClusterName string            `json:"clusterName" yaml:"clusterName"`
	Status      PrereqCheckStatus `json:"status" yaml:"status"`
	FailReason  string            `json:"failReason,omitempty" yaml:"failReason,omitempty"`
	FailedOn    []string          `json:"failedOn" yaml:"failedOn"`
}

// NewPrerequisiteCheck creates a pending result for the described check.
func NewPrerequisiteCheck(desc CheckDescription, clusterName string) *PrerequisiteCheck {
	return &PrerequisiteCheck{
		ID:          desc.ID,
		Description: desc.Description,
		Type:        desc.Type,
		ClusterName: clusterName,
		Status:      StatusPending,
		FailedOn:    []string{},
	}
}

// IsPending reports whether no terminal status has been recorded.
func (pc *PrerequisiteCheck) IsPending() bool {
	return pc.Status == StatusPending || pc.Status == ""
}

// Pass records a PASS. It returns false if a status was already recorded.
func (pc *PrerequisiteCheck) Pass() bool {
	return pc.record(StatusPass, "", nil)
}

// Fail records a FAIL with a reason and the affected resources.
// It returns false if a status was already recorded.
func (pc *PrerequisiteCheck) Fail(reason string, failedOn ...string) bool {
	return pc.record(StatusFail, reason, failedOn)
}

// Warn records a WARNING with a reason and the affected resources.
// It returns false if a status was already recorded.
func (pc *PrerequisiteCheck) Warn(reason string, failedOn ...string) bool {
	return pc.record(StatusWarning, reason, failedOn)
}

// NotApplicable records that the check was skipped without being performed. Only the
// executor uses it; a performed check that ends NOT_APPLICABLE is turned into a FAIL.
// It returns false if a status was already recorded.
func (pc *PrerequisiteCheck) NotApplicable() bool {
	return pc.record(StatusNotApplicable, "", nil)
}

func (pc *PrerequisiteCheck) record(status PrereqCheckStatus, reason string, failedOn []string) bool {
	if !pc.IsPending() {
		return false
	}
	pc.Status = status
	pc.FailReason = reason
	pc.FailedOn = dedupSorted(failedOn)
	return true
}

func dedupSorted(in []string) []string {
	out := make([]string, 0, len(in))
	seen := map[string]bool{}
	for _, s := range in {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
