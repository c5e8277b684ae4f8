package checks_test

import (
	"context"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	gomock "go.uber.org/mock/gomock"

	"github.com/openshift/managed-upgrade-prechecks/pkg/clusterstate"
	clusterstateMocks "github.com/openshift/managed-upgrade-prechecks/pkg/clusterstate/mocks"
	"github.com/openshift/managed-upgrade-prechecks/pkg/hostcomponentstate"
	daoMocks "github.com/openshift/managed-upgrade-prechecks/pkg/hostcomponentstate/mocks"
	"github.com/openshift/managed-upgrade-prechecks/pkg/prereq"
	"github.com/openshift/managed-upgrade-prechecks/pkg/prereq/checks"
)

var _ = Describe("SecondaryNamenodeDeletedCheck", func() {
	var (
		ctx           context.Context
		mockCtrl      *gomock.Controller
		mockClusters  *clusterstateMocks.MockClusters
		mockCluster   *clusterstateMocks.MockCluster
		mockService   *clusterstateMocks.MockService
		mockComponent *clusterstateMocks.MockServiceComponent
		mockDao       *daoMocks.MockDAO
		check         *checks.SecondaryNamenodeDeletedCheck
		request       prereq.PrereqCheckRequest
		result        *prereq.PrerequisiteCheck
	)

	BeforeEach(func() {
		ctx = context.TODO()
		mockCtrl = gomock.NewController(GinkgoT())
		mockClusters = clusterstateMocks.NewMockClusters(mockCtrl)
		mockCluster = clusterstateMocks.NewMockCluster(mockCtrl)
		mockService = clusterstateMocks.NewMockService(mockCtrl)
		mockComponent = clusterstateMocks.NewMockServiceComponent(mockCtrl)
		mockDao = daoMocks.NewMockDAO(mockCtrl)
		check = checks.NewSecondaryNamenodeDeletedCheck(mockClusters, mockDao)
		request = prereq.NewPrereqCheckRequest("cluster", nil)
		result = prereq.NewPrerequisiteCheck(check.Description(), "cluster")

		mockClusters.EXPECT().GetCluster(gomock.Any(), "cluster").Return(mockCluster, nil).AnyTimes()
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("describes itself as a host check", func() {
		desc := check.Description()
		Expect(desc.ID).To(Equal("SECONDARY_NAMENODE_MUST_BE_DELETED"))
		Expect(desc.Type).To(Equal(prereq.CheckTypeHost))
	})

	Context("IsApplicable", func() {
		It("applies when HDFS is installed", func() {
			mockCluster.EXPECT().GetService("HDFS").Return(mockService, nil)
			applicable, err := check.IsApplicable(ctx, request)
			Expect(err).NotTo(HaveOccurred())
			Expect(applicable).To(BeTrue())
		})

		It("does not apply when HDFS is not installed", func() {
			mockCluster.EXPECT().GetService("HDFS").Return(nil, &clusterstate.ServiceNotFoundError{ClusterName: "cluster", ServiceName: "HDFS"})
			applicable, err := check.IsApplicable(ctx, request)
			Expect(err).NotTo(HaveOccurred())
			Expect(applicable).To(BeFalse())
		})

		It("propagates other service lookup errors", func() {
			mockCluster.EXPECT().GetService("HDFS").Return(nil, fmt.Errorf("backend unavailable"))
			_, err := check.IsApplicable(ctx, request)
			Expect(err).To(HaveOccurred())
		})
	})

	Context("Perform", func() {
		BeforeEach(func() {
			mockCluster.EXPECT().GetService("HDFS").Return(mockService, nil).AnyTimes()
		})

		It("passes when the component has no host assignments", func() {
			mockService.EXPECT().GetServiceComponent("SECONDARY_NAMENODE").Return(mockComponent, nil)
			mockComponent.EXPECT().GetServiceComponentHosts().Return(map[string]*clusterstate.ServiceComponentHost{})
			mockDao.EXPECT().FindByServiceAndComponent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return([]hostcomponentstate.HostComponentState{
				{ClusterName: "cluster", ServiceName: "HDFS", ComponentName: "SECONDARY_NAMENODE", HostName: "ghost"},
			}, nil).Times(0)

			Expect(check.Perform(ctx, result, request)).To(Succeed())
			Expect(result.Status).To(Equal(prereq.StatusPass))
			Expect(result.FailedOn).To(BeEmpty())
		})

		It("fails on the hosts the component is still assigned to", func() {
			mockService.EXPECT().GetServiceComponent("SECONDARY_NAMENODE").Return(mockComponent, nil)
			mockComponent.EXPECT().GetServiceComponentHosts().Return(map[string]*clusterstate.ServiceComponentHost{
				"host2": {HostName: "host2", State: clusterstate.StateStarted},
				"host1": {HostName: "host1", State: clusterstate.StateInstalled},
			})

			Expect(check.Perform(ctx, result, request)).To(Succeed())
			Expect(result.Status).To(Equal(prereq.StatusFail))
			Expect(result.FailedOn).To(Equal([]string{"host1", "host2"}))
			Expect(result.FailReason).To(Equal("component SECONDARY_NAMENODE still present on hosts: host1, host2"))
		})

		It("passes when the component was removed from the service", func() {
			mockService.EXPECT().GetServiceComponent("SECONDARY_NAMENODE").Return(nil, &clusterstate.ComponentNotFoundError{
				ClusterName: "cluster", ServiceName: "HDFS", ComponentName: "SECONDARY_NAMENODE",
			})
			mockDao.EXPECT().FindByServiceAndComponent(gomock.Any(), "cluster", "HDFS", "SECONDARY_NAMENODE").Return(nil, nil)

			Expect(check.Perform(ctx, result, request)).To(Succeed())
			Expect(result.Status).To(Equal(prereq.StatusPass))
		})

		It("fails on hosts still recorded in host component state", func() {
			mockService.EXPECT().GetServiceComponent("SECONDARY_NAMENODE").Return(nil, &clusterstate.ComponentNotFoundError{
				ClusterName: "cluster", ServiceName: "HDFS", ComponentName: "SECONDARY_NAMENODE",
			})
			mockDao.EXPECT().FindByServiceAndComponent(gomock.Any(), "cluster", "HDFS", "SECONDARY_NAMENODE").Return([]hostcomponentstate.HostComponentState{
				{ClusterName: "cluster", ServiceName: "HDFS", ComponentName: "SECONDARY_NAMENODE", HostName: "host3"},
			}, nil)

			Expect(check.Perform(ctx, result, request)).To(Succeed())
			Expect(result.Status).To(Equal(prereq.StatusFail))
			Expect(result.FailedOn).To(Equal([]string{"host3"}))
		})

		It("returns host component state errors", func() {
			mockService.EXPECT().GetServiceComponent("SECONDARY_NAMENODE").Return(nil, &clusterstate.ComponentNotFoundError{
				ClusterName: "cluster", ServiceName: "HDFS", ComponentName: "SECONDARY_NAMENODE",
			})
			mockDao.EXPECT().FindByServiceAndComponent(gomock.Any(), "cluster", "HDFS", "SECONDARY_NAMENODE").Return(nil, fmt.Errorf("db down"))

			Expect(check.Perform(ctx, result, request)).NotTo(Succeed())
			Expect(result.IsPending()).To(BeTrue())
		})

		It("returns the same verdict when performed twice", func() {
			mockService.EXPECT().GetServiceComponent("SECONDARY_NAMENODE").Return(mockComponent, nil).Times(2)
			mockComponent.EXPECT().GetServiceComponentHosts().Return(map[string]*clusterstate.ServiceComponentHost{
				"host1": {HostName: "host1", State: clusterstate.StateInstalled},
			}).Times(2)

			Expect(check.Perform(ctx, result, request)).To(Succeed())
			second := prereq.NewPrerequisiteCheck(check.Description(), "cluster")
			Expect(check.Perform(ctx, second, request)).To(Succeed())
			Expect(second.Status).To(Equal(result.Status))
			Expect(second.FailedOn).To(Equal(result.FailedOn))
		})
	})
})
