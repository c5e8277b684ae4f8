package prereq_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/openshift/managed-upgrade-prechecks/pkg/prereq"
)

var _ = Describe("Config", func() {
	It("accepts the zero config", func() {
		cfg := &prereq.Config{}
		Expect(cfg.IsValid()).To(Succeed())
		Expect(cfg.IsDisabled("SERVICES_UP")).To(BeFalse())
	})

	It("rejects a negative concurrency limit", func() {
		cfg := &prereq.Config{Executor: prereq.ExecutorConfig{Parallel: true, MaxConcurrency: -1}}
		Expect(cfg.IsValid()).NotTo(Succeed())
	})

	It("rejects empty and repeated disabled IDs", func() {
		Expect((&prereq.Config{Checks: prereq.ChecksConfig{Disabled: []string{""}}}).IsValid()).NotTo(Succeed())
		Expect((&prereq.Config{Checks: prereq.ChecksConfig{Disabled: []string{"A", "A"}}}).IsValid()).NotTo(Succeed())
	})

	It("reports disabled checks", func() {
		cfg := &prereq.Config{Checks: prereq.ChecksConfig{Disabled: []string{"SERVICES_UP"}}}
		Expect(cfg.IsValid()).To(Succeed())
		Expect(cfg.IsDisabled("SERVICES_UP")).To(BeTrue())
		Expect(cfg.IsDisabled("HOSTS_HEARTBEAT")).To(BeFalse())
	})
})
