package structs

import (
	"github.com/openshift/managed-upgrade-prechecks/pkg/clusterstate"
)

type SnapshotBuilder struct {
	spec clusterstate.SnapshotSpec
}

// NewSnapshotBuilder returns a builder seeded with one cluster named "c1" on stack 2.2.0
// with a single healthy host, "host1".
func NewSnapshotBuilder() *SnapshotBuilder {
	return &SnapshotBuilder{
		spec: clusterstate.SnapshotSpec{
			Clusters: []clusterstate.ClusterSpec{
				{
					Name:         "c1",
					StackVersion: "2.2.0",
					Hosts:        []clusterstate.HostSpec{{Name: "host1"}},
				},
			},
		},
	}
}

func (t *SnapshotBuilder) cluster() *clusterstate.ClusterSpec {
	return &t.spec.Clusters[len(t.spec.Clusters)-1]
}

func (t *SnapshotBuilder) service(name string) *clusterstate.ServiceSpec {
	c := t.cluster()
	for i := range c.Services {
		if c.Services[i].Name == name {
			return &c.Services[i]
		}
	}
	c.Services = append(c.Services, clusterstate.ServiceSpec{Name: name})
	return &c.Services[len(c.Services)-1]
}

// WithClusterName renames the cluster currently being built.
func (t *SnapshotBuilder) WithClusterName(name string) *SnapshotBuilder {
	t.cluster().Name = name
	return t
}

// WithCluster starts a new cluster; subsequent calls apply to it.
func (t *SnapshotBuilder) WithCluster(name string) *SnapshotBuilder {
	t.spec.Clusters = append(t.spec.Clusters, clusterstate.ClusterSpec{Name: name})
	return t
}

func (t *SnapshotBuilder) WithStackVersion(version string) *SnapshotBuilder {
	t.cluster().StackVersion = version
	return t
}

func (t *SnapshotBuilder) WithHost(name string, state clusterstate.HostState, maintenance bool) *SnapshotBuilder {
	c := t.cluster()
	for i := range c.Hosts {
		if c.Hosts[i].Name == name {
			c.Hosts[i].State = state
			c.Hosts[i].Maintenance = maintenance
			return t
		}
	}
	c.Hosts = append(c.Hosts, clusterstate.HostSpec{Name: name, State: state, Maintenance: maintenance})
	return t
}

func (t *SnapshotBuilder) WithService(name string) *SnapshotBuilder {
	t.service(name)
	return t
}

func (t *SnapshotBuilder) WithServiceInMaintenance(name string) *SnapshotBuilder {
	t.service(name).Maintenance = true
	return t
}

// WithComponent adds a component to a service, creating the service if needed. hosts maps
// host name to component state; hosts not yet declared are added as healthy hosts.
func (t *SnapshotBuilder) WithComponent(service string, component string, client bool, hosts map[string]clusterstate.State) *SnapshotBuilder {
	for hostName := range hosts {
		t.ensureHost(hostName)
	}
	svc := t.service(service)
	copied := map[string]clusterstate.State{}
	for k, v := range hosts {
		copied[k] = v
	}
	svc.Components = append(svc.Components, clusterstate.ComponentSpec{Name: component, Client: client, Hosts: copied})
	return t
}

func (t *SnapshotBuilder) WithConfig(configType string, key string, value string) *SnapshotBuilder {
	c := t.cluster()
	if c.Configs == nil {
		c.Configs = map[string]map[string]string{}
	}
	if c.Configs[configType] == nil {
		c.Configs[configType] = map[string]string{}
	}
	c.Configs[configType][key] = value
	return t
}

func (t *SnapshotBuilder) ensureHost(name string) {
	for _, h := range t.cluster().Hosts {
		if h.Name == name {
			return
		}
	}
	t.cluster().Hosts = append(t.cluster().Hosts, clusterstate.HostSpec{Name: name})
}

func (t *SnapshotBuilder) GetSpec() clusterstate.SnapshotSpec {
	return t.spec
}

// GetSnapshot builds the snapshot and panics if the spec is invalid.
func (t *SnapshotBuilder) GetSnapshot() *clusterstate.Snapshot {
	s, err := clusterstate.NewSnapshot(t.spec)
	if err != nil {
		panic(err)
	}
	return s
}
