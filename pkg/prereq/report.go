package prereq

import (
	"time"
)

// Report is the outcome of one run of all registered checks against one request.
type Report struct {
	RunID          string               `json:"runId" yaml:"runId"`
	ClusterName    string               `json:"clusterName" yaml:"clusterName"`
	Params         map[string]string    `json:"params,omitempty" yaml:"params,omitempty"`
	Status         PrereqCheckStatus    `json:"status" yaml:"status"`
	Checks         []*PrerequisiteCheck `json:"checks" yaml:"checks"`
	StartTime      time.Time            `json:"startTime" yaml:"startTime"`
	CompletionTime time.Time            `json:"completionTime" yaml:"completionTime"`
	// Errors holds the execution errors of individual checks. Each of them is also
	// reflected as a FAIL entry in Checks.
	Errors error `json:"-" yaml:"-"`
}

// AggregateStatus folds individual results into a run verdict: FAIL if any check failed,
// otherwise WARNING if any check warned, otherwise PASS.
func AggregateStatus(checks []*PrerequisiteCheck) PrereqCheckStatus {
	status := StatusPass
	for _, c := range checks {
		switch c.Status {
		case StatusFail:
			return StatusFail
		case StatusWarning:
			status = StatusWarning
		}
	}
	return status
}

// ChecksWithStatus returns the results that ended in status, in report order.
func (r *Report) ChecksWithStatus(status PrereqCheckStatus) []*PrerequisiteCheck {
	var out []*PrerequisiteCheck
	for _, c := range r.Checks {
		if c.Status == status {
			out = append(out, c)
		}
	}
	return out
}

// Blocking reports whether the run verdict should stop the operation.
func (r *Report) Blocking(failOnWarning bool) bool {
	return r.Status == StatusFail || (failOnWarning && r.Status == StatusWarning)
}
