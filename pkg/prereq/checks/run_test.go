package checks_test

import (
	"context"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/go-logr/logr"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/openshift/managed-upgrade-prechecks/pkg/clusterstate"
	"github.com/openshift/managed-upgrade-prechecks/pkg/hostcomponentstate"
	"github.com/openshift/managed-upgrade-prechecks/pkg/metrics"
	"github.com/openshift/managed-upgrade-prechecks/pkg/prereq"
	"github.com/openshift/managed-upgrade-prechecks/pkg/prereq/checks"
	"github.com/openshift/managed-upgrade-prechecks/util/mocks/structs"
)

var _ = Describe("Running the default checks", func() {
	run := func(snapshot *clusterstate.Snapshot, cfg prereq.ExecutorConfig) *prereq.Report {
		registry, err := checks.NewDefaultRegistry(snapshot, hostcomponentstate.NewSnapshotDAO(snapshot), &prereq.Config{})
		Expect(err).NotTo(HaveOccurred())
		m, err := metrics.NewMetrics(prometheus.NewRegistry())
		Expect(err).NotTo(HaveOccurred())

		report, err := prereq.NewCheckExecutor(snapshot, registry, m, cfg, logr.Discard()).
			RunAll(context.TODO(), prereq.NewPrereqCheckRequest("c1", nil))
		Expect(err).NotTo(HaveOccurred())
		return report
	}

	statusOf := func(report *prereq.Report, id string) prereq.PrereqCheckStatus {
		for _, c := range report.Checks {
			if c.ID == id {
				return c.Status
			}
		}
		Fail("no result for " + id)
		return ""
	}

	for _, parallel := range []bool{false, true} {
		cfg := prereq.ExecutorConfig{Parallel: parallel}

		Context(fmt.Sprintf("on a cluster without HDFS with parallel=%t", parallel), func() {
			It("skips the HDFS checks and passes", func() {
				snapshot := structs.NewSnapshotBuilder().
					WithComponent("YARN", "RESOURCEMANAGER", false, map[string]clusterstate.State{"host1": clusterstate.StateStarted}).
					GetSnapshot()

				report := run(snapshot, cfg)
				Expect(statusOf(report, "SECONDARY_NAMENODE_MUST_BE_DELETED")).To(Equal(prereq.StatusNotApplicable))
				Expect(statusOf(report, "SERVICES_NAMENODE_HA")).To(Equal(prereq.StatusNotApplicable))
				Expect(report.Status).To(Equal(prereq.StatusPass))
				Expect(report.Errors).To(BeNil())
			})
		})

		Context(fmt.Sprintf("on an HDFS cluster with parallel=%t", parallel), func() {
			It("passes when SECONDARY_NAMENODE has no hosts", func() {
				snapshot := structs.NewSnapshotBuilder().
					WithComponent("HDFS", "NAMENODE", false, map[string]clusterstate.State{"host1": clusterstate.StateStarted}).
					WithComponent("HDFS", "SECONDARY_NAMENODE", false, map[string]clusterstate.State{}).
					WithConfig("hdfs-site", "dfs.nameservices", "ns1").
					GetSnapshot()

				report := run(snapshot, cfg)
				Expect(report.Checks[0].Status).To(Equal(prereq.StatusPass))
				Expect(report.Checks[0].FailedOn).To(BeEmpty())
				Expect(report.Status).To(Equal(prereq.StatusPass))
			})

			It("fails on the hosts still running SECONDARY_NAMENODE", func() {
				snapshot := structs.NewSnapshotBuilder().
					WithComponent("HDFS", "NAMENODE", false, map[string]clusterstate.State{"host1": clusterstate.StateStarted}).
					WithComponent("HDFS", "SECONDARY_NAMENODE", false, map[string]clusterstate.State{"host2": clusterstate.StateStarted}).
					WithConfig("hdfs-site", "dfs.nameservices", "ns1").
					GetSnapshot()

				report := run(snapshot, cfg)
				Expect(report.Checks[0].Status).To(Equal(prereq.StatusFail))
				Expect(report.Checks[0].FailedOn).To(Equal([]string{"host2"}))
				Expect(report.Status).To(Equal(prereq.StatusFail))
			})
		})
	}
})
