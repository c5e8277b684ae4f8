// Package hostcomponentstate provides lookup of component instance state records by key.
package hostcomponentstate

import (
	"context"
	"sort"

	"github.com/openshift/managed-upgrade-prechecks/pkg/clusterstate"
)

// HostComponentState is one component instance record.
type HostComponentState struct {
	ClusterName   string
	ServiceName   string
	ComponentName string
	HostName      string
	State         clusterstate.State
}

// DAO gives read-only access to host component state records.
// Lookups against an unknown cluster return a *clusterstate.ClusterNotFoundError; a known cluster
// without matching records yields an empty result and no error.
//go:generate mockgen -destination=mocks/dao.go -package=mocks github.com/openshift/managed-upgrade-prechecks/pkg/hostcomponentstate DAO
type DAO interface {
	FindAll(ctx context.Context, clusterName string) ([]HostComponentState, error)
	FindByServiceAndComponent(ctx context.Context, clusterName string, serviceName string, componentName string) ([]HostComponentState, error)
}

// NewSnapshotDAO returns a DAO backed by cluster state.
func NewSnapshotDAO(clusters clusterstate.Clusters) DAO {
	return &snapshotDAO{clusters: clusters}
}

type snapshotDAO struct {
	clusters clusterstate.Clusters
}

func (d *snapshotDAO) FindAll(ctx context.Context, clusterName string) ([]HostComponentState, error) {
	return d.find(ctx, clusterName, func(string, string) bool { return true })
}

func (d *snapshotDAO) FindByServiceAndComponent(ctx context.Context, clusterName string, serviceName string, componentName string) ([]HostComponentState, error) {
	return d.find(ctx, clusterName, func(svc, comp string) bool {
		return svc == serviceName && comp == componentName
	})
}

func (d *snapshotDAO) find(ctx context.Context, clusterName string, match func(service, component string) bool) ([]HostComponentState, error) {
	cluster, err := d.clusters.GetCluster(ctx, clusterName)
	if err != nil {
		return nil, err
	}

	records := []HostComponentState{}
	for svcName, svc := range cluster.Services() {
		for compName, comp := range svc.ServiceComponents() {
			if !match(svcName, compName) {
				continue
			}
			for hostName, sch := range comp.GetServiceComponentHosts() {
				state := clusterstate.StateUnknown
				if sch != nil {
					state = sch.State
				}
				records = append(records, HostComponentState{
					ClusterName:   clusterName,
					ServiceName:   svcName,
					ComponentName: compName,
					HostName:      hostName,
					State:         state,
				})
			}
		}
	}

	sort.Slice(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if a.ServiceName != b.ServiceName {
			return a.ServiceName < b.ServiceName
		}
		if a.ComponentName != b.ComponentName {
			return a.ComponentName < b.ComponentName
		}
		return a.HostName < b.HostName
	})
	return records, nil
}
