package prereq

import (
	"context"
	"fmt"
	"time"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"

	"github.com/openshift/managed-upgrade-prechecks/pkg/clusterstate"
	"github.com/openshift/managed-upgrade-prechecks/pkg/metrics"
)

const (
	// ReasonExecutionError is the fail reason recorded when a check errors or panics.
	ReasonExecutionError = "check execution error"
	// ReasonNoStatusRecorded is the fail reason recorded when Perform returns without a
	// PASS, FAIL or WARNING verdict.
	ReasonNoStatusRecorded = "check did not record a status"
)

// CheckExecutor runs every registered check against a request.
type CheckExecutor interface {
	// RunAll returns an error only when the run cannot start, for example because the
	// cluster is unknown. Failures of individual checks are reported as FAIL results.
	RunAll(ctx context.Context, request PrereqCheckRequest) (*Report, error)
}

type checkExecutor struct {
	// Cluster state the requested cluster is resolved against before any check runs
	clusters clusterstate.Clusters

	// Ordered checks to evaluate
	registry *Registry

	// Metrics client used to record check outcomes
	metrics metrics.Metrics

	config ExecutorConfig
	logger logr.Logger
}

// NewCheckExecutor returns a CheckExecutor over the checks in registry.
func NewCheckExecutor(clusters clusterstate.Clusters, registry *Registry, m metrics.Metrics, cfg ExecutorConfig, logger logr.Logger) CheckExecutor {
	return &checkExecutor{
		clusters: clusters,
		registry: registry,
		metrics:  m,
		config:   cfg,
		logger:   logger,
	}
}

type checkOutcome struct {
	result *PrerequisiteCheck
	err    error
}

func (e *checkExecutor) RunAll(ctx context.Context, request PrereqCheckRequest) (*Report, error) {
	clusterName := request.ClusterName()
	runID := uuid.New().String()
	logger := e.logger.WithValues("cluster", clusterName, "runID", runID)

	if _, err := e.clusters.GetCluster(ctx, clusterName); err != nil {
		logger.Error(err, "unable to resolve cluster, no checks will run")
		return nil, fmt.Errorf("unable to resolve cluster %s: %w", clusterName, err)
	}

	start := time.Now()
	checks := e.registry.Checks()
	logger.Info(fmt.Sprintf("running %d prerequisite checks", len(checks)), "parallel", e.config.Parallel)

	var outcomes []checkOutcome
	if e.config.Parallel {
		outcomes = e.runParallel(ctx, checks, request, logger)
	} else {
		outcomes = e.runSequential(ctx, checks, request, logger)
	}

	report := &Report{
		RunID:       runID,
		ClusterName: clusterName,
		Params:      request.Params(),
		Checks:      make([]*PrerequisiteCheck, 0, len(outcomes)),
		StartTime:   start,
	}
	me := &multierror.Error{}
	for _, o := range outcomes {
		report.Checks = append(report.Checks, o.result)
		if o.err != nil {
			me = multierror.Append(me, fmt.Errorf("%s: %w", o.result.ID, o.err))
		}
		e.recordCheckMetrics(clusterName, o.result)
	}
	report.Errors = me.ErrorOrNil()
	report.Status = AggregateStatus(report.Checks)
	report.CompletionTime = time.Now()

	e.metrics.UpdateMetricRunCompleted(clusterName, string(report.Status), report.CompletionTime.Sub(start))
	if report.Errors != nil {
		logger.Info(fmt.Sprintf("prerequisite checks encountered errors: %s", report.Errors))
	}
	logger.Info(fmt.Sprintf("prerequisite checks completed with status %s", report.Status))
	return report, nil
}

func (e *checkExecutor) runSequential(ctx context.Context, checks []RegisteredCheck, request PrereqCheckRequest, logger logr.Logger) []checkOutcome {
	outcomes := make([]checkOutcome, len(checks))
	for i, c := range checks {
		outcomes[i] = e.runCheck(ctx, c, request, logger)
	}
	return outcomes
}

// runParallel evaluates checks concurrently. Every goroutine owns its result and its slot
// in outcomes, so registration order is preserved.
func (e *checkExecutor) runParallel(ctx context.Context, checks []RegisteredCheck, request PrereqCheckRequest, logger logr.Logger) []checkOutcome {
	outcomes := make([]checkOutcome, len(checks))
	var g errgroup.Group
	if e.config.MaxConcurrency > 0 {
		g.SetLimit(e.config.MaxConcurrency)
	}
	for i, c := range checks {
		i, c := i, c
		g.Go(func() error {
			outcomes[i] = e.runCheck(ctx, c, request, logger)
			return nil
		})
	}
	_ = g.Wait()
	return outcomes
}

func (e *checkExecutor) runCheck(ctx context.Context, check RegisteredCheck, request PrereqCheckRequest, logger logr.Logger) checkOutcome {
	desc := check.Description()
	clusterName := request.ClusterName()
	logger = logger.WithValues("check", desc.ID)

	applicable, err := isApplicable(ctx, check, request)
	if err != nil {
		if !clusterstate.IsNotFound(err) {
			logger.Error(err, "unable to determine check applicability")
			return failedOutcome(desc, clusterName, ReasonExecutionError, err)
		}
		applicable = false
	}
	if !applicable {
		logger.V(1).Info("check is not applicable")
		result := NewPrerequisiteCheck(desc, clusterName)
		result.NotApplicable()
		return checkOutcome{result: result}
	}

	result := NewPrerequisiteCheck(desc, clusterName)
	if err := perform(ctx, check, result, request); err != nil {
		logger.Error(err, "check execution failed")
		return failedOutcome(desc, clusterName, ReasonExecutionError, err)
	}
	if !isPerformedStatus(result.Status) {
		err := fmt.Errorf("check %s returned with status %q instead of a verdict", desc.ID, result.Status)
		logger.Error(err, "check execution incomplete")
		return failedOutcome(desc, clusterName, ReasonNoStatusRecorded, err)
	}

	logger.V(1).Info(fmt.Sprintf("check finished with status %s", result.Status), "failedOn", result.FailedOn)
	return checkOutcome{result: result}
}

// isPerformedStatus reports whether status is a verdict a performed check may end with.
// NOT_APPLICABLE is reserved for checks that were never performed.
func isPerformedStatus(status PrereqCheckStatus) bool {
	switch status {
	case StatusPass, StatusFail, StatusWarning:
		return true
	}
	return false
}

func (e *checkExecutor) recordCheckMetrics(clusterName string, result *PrerequisiteCheck) {
	e.metrics.UpdateMetricCheckResult(clusterName, result.ID, string(result.Status))
	switch result.Status {
	case StatusFail:
		e.metrics.UpdateMetricCheckFailed(clusterName, result.ID)
	case StatusPass, StatusWarning:
		e.metrics.UpdateMetricCheckSucceeded(clusterName, result.ID)
	}
}

// failedOutcome builds a fresh FAIL result so that whatever a failing check wrote to its own
// result is never reused.
func failedOutcome(desc CheckDescription, clusterName string, reason string, err error) checkOutcome {
	result := NewPrerequisiteCheck(desc, clusterName)
	result.Fail(reason)
	return checkOutcome{result: result, err: err}
}

func isApplicable(ctx context.Context, check RegisteredCheck, request PrereqCheckRequest) (applicable bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			applicable, err = false, fmt.Errorf("panic while checking applicability: %v", r)
		}
	}()
	return check.IsApplicable(ctx, request)
}

func perform(ctx context.Context, check RegisteredCheck, result *PrerequisiteCheck, request PrereqCheckRequest) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic while performing check: %v", r)
		}
	}()
	return check.Perform(ctx, result, request)
}
