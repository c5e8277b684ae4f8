package hostcomponentstate

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/openshift/managed-upgrade-prechecks/pkg/clusterstate"
	testStructs "github.com/openshift/managed-upgrade-prechecks/util/mocks/structs"
)

var _ = Describe("Snapshot DAO", func() {
	var (
		ctx context.Context
		dao DAO
	)

	BeforeEach(func() {
		ctx = context.TODO()
		snapshot := testStructs.NewSnapshotBuilder().
			WithComponent("HDFS", "SECONDARY_NAMENODE", false, map[string]clusterstate.State{
				"host2": clusterstate.StateStarted,
				"host1": clusterstate.StateInstalled,
			}).
			WithComponent("HDFS", "NAMENODE", false, map[string]clusterstate.State{"host1": clusterstate.StateStarted}).
			WithComponent("HDFS", "JOURNALNODE", false, map[string]clusterstate.State{}).
			WithComponent("ZOOKEEPER", "ZOOKEEPER_SERVER", false, map[string]clusterstate.State{"host3": clusterstate.StateStarted}).
			GetSnapshot()
		dao = NewSnapshotDAO(snapshot)
	})

	Context("When querying by service and component", func() {
		It("returns matching records sorted by host", func() {
			records, err := dao.FindByServiceAndComponent(ctx, "c1", "HDFS", "SECONDARY_NAMENODE")
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(Equal([]HostComponentState{
				{ClusterName: "c1", ServiceName: "HDFS", ComponentName: "SECONDARY_NAMENODE", HostName: "host1", State: clusterstate.StateInstalled},
				{ClusterName: "c1", ServiceName: "HDFS", ComponentName: "SECONDARY_NAMENODE", HostName: "host2", State: clusterstate.StateStarted},
			}))
		})

		It("returns an empty result for an unassigned component", func() {
			records, err := dao.FindByServiceAndComponent(ctx, "c1", "HDFS", "JOURNALNODE")
			Expect(err).NotTo(HaveOccurred())
			Expect(records).NotTo(BeNil())
			Expect(records).To(BeEmpty())
		})

		It("returns an empty result for an unknown service", func() {
			records, err := dao.FindByServiceAndComponent(ctx, "c1", "YARN", "RESOURCEMANAGER")
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(BeEmpty())
		})

		It("reports an unknown cluster as not found", func() {
			_, err := dao.FindByServiceAndComponent(ctx, "c9", "HDFS", "NAMENODE")
			Expect(clusterstate.IsClusterNotFound(err)).To(BeTrue())
		})
	})

	Context("When listing all records", func() {
		It("orders by service, component and host", func() {
			records, err := dao.FindAll(ctx, "c1")
			Expect(err).NotTo(HaveOccurred())
			var keys []string
			for _, r := range records {
				keys = append(keys, r.ServiceName+"/"+r.ComponentName+"/"+r.HostName)
			}
			Expect(keys).To(Equal([]string{
				"HDFS/NAMENODE/host1",
				"HDFS/SECONDARY_NAMENODE/host1",
				"HDFS/SECONDARY_NAMENODE/host2",
				"ZOOKEEPER/ZOOKEEPER_SERVER/host3",
			}))
		})
	})
})
