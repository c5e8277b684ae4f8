package clusterstate

import (
	"context"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v2"
)

// SnapshotSpec is the on-disk model of a point-in-time view of one or more clusters.
type SnapshotSpec struct {
	Clusters []ClusterSpec `yaml:"clusters"`
}

// ClusterSpec describes one cluster in a SnapshotSpec.
type ClusterSpec struct {
	Name         string                       `yaml:"name"`
	StackVersion string                       `yaml:"stackVersion"`
	Hosts        []HostSpec                   `yaml:"hosts"`
	Configs      map[string]map[string]string `yaml:"configs"`
	Services     []ServiceSpec                `yaml:"services"`
}

// HostSpec describes one host of a cluster.
type HostSpec struct {
	Name        string    `yaml:"name"`
	State       HostState `yaml:"state"`
	Maintenance bool      `yaml:"maintenance"`
}

// ServiceSpec describes an installed service.
type ServiceSpec struct {
	Name        string          `yaml:"name"`
	Maintenance bool            `yaml:"maintenance"`
	Components  []ComponentSpec `yaml:"components"`
}

// ComponentSpec describes a service component and the hosts it is assigned to.
type ComponentSpec struct {
	Name   string           `yaml:"name"`
	Client bool             `yaml:"client"`
	Hosts  map[string]State `yaml:"hosts"`
}

// Snapshot is an immutable, in-memory Clusters implementation.
type Snapshot struct {
	clusters map[string]*snapshotCluster
	names    []string
}

var _ Clusters = &Snapshot{}

// LoadSnapshot reads and validates a YAML snapshot from path.
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read cluster snapshot %s: %w", path, err)
	}
	s, err := ParseSnapshot(data)
	if err != nil {
		return nil, fmt.Errorf("load cluster snapshot %s: %w", path, err)
	}
	return s, nil
}

// ParseSnapshot decodes and validates a YAML snapshot.
func ParseSnapshot(data []byte) (*Snapshot, error) {
	var spec SnapshotSpec
	if err := yaml.UnmarshalStrict(data, &spec); err != nil {
		return nil, fmt.Errorf("incorrect yaml formatting: %w", err)
	}
	return NewSnapshot(spec)
}

// NewSnapshot validates spec and builds a Snapshot from it.
func NewSnapshot(spec SnapshotSpec) (*Snapshot, error) {
	s := &Snapshot{clusters: map[string]*snapshotCluster{}}
	for _, cs := range spec.Clusters {
		if cs.Name == "" {
			return nil, fmt.Errorf("cluster name must not be empty")
		}
		if _, ok := s.clusters[cs.Name]; ok {
			return nil, fmt.Errorf("duplicate cluster %q", cs.Name)
		}
		c, err := newSnapshotCluster(cs)
		if err != nil {
			return nil, fmt.Errorf("cluster %q: %w", cs.Name, err)
		}
		s.clusters[cs.Name] = c
		s.names = append(s.names, cs.Name)
	}
	return s, nil
}

// GetCluster implements Clusters.
func (s *Snapshot) GetCluster(_ context.Context, clusterName string) (Cluster, error) {
	c, ok := s.clusters[clusterName]
	if !ok {
		return nil, &ClusterNotFoundError{ClusterName: clusterName}
	}
	return c, nil
}

// ClusterNames returns cluster names in declaration order.
func (s *Snapshot) ClusterNames() []string {
	return append([]string(nil), s.names...)
}

type snapshotCluster struct {
	name         string
	stackVersion string
	hosts        map[string]*Host
	configs      map[string]map[string]string
	services     map[string]*snapshotService
}

func newSnapshotCluster(cs ClusterSpec) (*snapshotCluster, error) {
	c := &snapshotCluster{
		name:         cs.Name,
		stackVersion: cs.StackVersion,
		hosts:        map[string]*Host{},
		configs:      map[string]map[string]string{},
		services:     map[string]*snapshotService{},
	}
	for _, hs := range cs.Hosts {
		if hs.Name == "" {
			return nil, fmt.Errorf("host name must not be empty")
		}
		if _, ok := c.hosts[hs.Name]; ok {
			return nil, fmt.Errorf("duplicate host %q", hs.Name)
		}
		state := hs.State
		if state == "" {
			state = HostStateHealthy
		}
		if !validHostState(state) {
			return nil, fmt.Errorf("host %q: invalid state %q", hs.Name, state)
		}
		c.hosts[hs.Name] = &Host{HostName: hs.Name, State: state, MaintenanceState: maintenanceState(hs.Maintenance)}
	}
	for configType, props := range cs.Configs {
		copied := make(map[string]string, len(props))
		for k, v := range props {
			copied[k] = v
		}
		c.configs[configType] = copied
	}
	for _, ss := range cs.Services {
		if ss.Name == "" {
			return nil, fmt.Errorf("service name must not be empty")
		}
		if _, ok := c.services[ss.Name]; ok {
			return nil, fmt.Errorf("duplicate service %q", ss.Name)
		}
		svc, err := c.newService(ss)
		if err != nil {
			return nil, fmt.Errorf("service %q: %w", ss.Name, err)
		}
		c.services[ss.Name] = svc
	}
	return c, nil
}

func (c *snapshotCluster) newService(ss ServiceSpec) (*snapshotService, error) {
	svc := &snapshotService{
		clusterName: c.name,
		name:        ss.Name,
		maintenance: maintenanceState(ss.Maintenance),
		components:  map[string]*snapshotComponent{},
	}
	for _, cs := range ss.Components {
		if cs.Name == "" {
			return nil, fmt.Errorf("component name must not be empty")
		}
		if _, ok := svc.components[cs.Name]; ok {
			return nil, fmt.Errorf("duplicate component %q", cs.Name)
		}
		comp := &snapshotComponent{name: cs.Name, client: cs.Client, hosts: map[string]State{}}
		for hostName, state := range cs.Hosts {
			if _, ok := c.hosts[hostName]; !ok {
				return nil, fmt.Errorf("component %q: host %q is not a member of the cluster", cs.Name, hostName)
			}
			if state == "" {
				state = StateInstalled
			}
			if !validState(state) {
				return nil, fmt.Errorf("component %q on host %q: invalid state %q", cs.Name, hostName, state)
			}
			comp.hosts[hostName] = state
		}
		svc.components[cs.Name] = comp
	}
	return svc, nil
}

func (c *snapshotCluster) ClusterName() string { return c.name }

func (c *snapshotCluster) CurrentStackVersion() string { return c.stackVersion }

func (c *snapshotCluster) GetService(serviceName string) (Service, error) {
	svc, ok := c.services[serviceName]
	if !ok {
		return nil, &ServiceNotFoundError{ClusterName: c.name, ServiceName: serviceName}
	}
	return svc, nil
}

func (c *snapshotCluster) Services() map[string]Service {
	out := make(map[string]Service, len(c.services))
	for name, svc := range c.services {
		out[name] = svc
	}
	return out
}

func (c *snapshotCluster) Hosts() map[string]*Host {
	out := make(map[string]*Host, len(c.hosts))
	for name, h := range c.hosts {
		host := *h
		out[name] = &host
	}
	return out
}

func (c *snapshotCluster) DesiredConfigProperty(configType string, key string) (string, bool) {
	props, ok := c.configs[configType]
	if !ok {
		return "", false
	}
	v, ok := props[key]
	return v, ok
}

type snapshotService struct {
	clusterName string
	name        string
	maintenance MaintenanceState
	components  map[string]*snapshotComponent
}

func (s *snapshotService) Name() string { return s.name }

func (s *snapshotService) MaintenanceState() MaintenanceState { return s.maintenance }

func (s *snapshotService) GetServiceComponent(componentName string) (ServiceComponent, error) {
	comp, ok := s.components[componentName]
	if !ok {
		return nil, &ComponentNotFoundError{ClusterName: s.clusterName, ServiceName: s.name, ComponentName: componentName}
	}
	return comp, nil
}

func (s *snapshotService) ServiceComponents() map[string]ServiceComponent {
	out := make(map[string]ServiceComponent, len(s.components))
	for name, comp := range s.components {
		out[name] = comp
	}
	return out
}

type snapshotComponent struct {
	name   string
	client bool
	hosts  map[string]State
}

func (sc *snapshotComponent) Name() string { return sc.name }

func (sc *snapshotComponent) IsClientComponent() bool { return sc.client }

func (sc *snapshotComponent) GetServiceComponentHosts() map[string]*ServiceComponentHost {
	out := make(map[string]*ServiceComponentHost, len(sc.hosts))
	for hostName, state := range sc.hosts {
		out[hostName] = &ServiceComponentHost{HostName: hostName, State: state}
	}
	return out
}

// SortedKeys returns the keys of a host assignment mapping in lexical order.
func SortedKeys(hosts map[string]*ServiceComponentHost) []string {
	keys := make([]string, 0, len(hosts))
	for k := range hosts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func maintenanceState(on bool) MaintenanceState {
	if on {
		return MaintenanceStateOn
	}
	return MaintenanceStateOff
}

func validState(s State) bool {
	switch s {
	case StateInit, StateInstalling, StateInstallFailed, StateInstalled,
		StateStarting, StateStarted, StateStopping, StateUnknown:
		return true
	}
	return false
}

func validHostState(s HostState) bool {
	switch s {
	case HostStateHealthy, HostStateUnhealthy, HostStateHeartbeatLost:
		return true
	}
	return false
}
