// Package clusterstate provides read-only access to the topology of managed clusters:
// services, their components and the hosts each component is assigned to.
package clusterstate

import (
	"context"
)

// State is the lifecycle state of a component instance on a host.
type State string

const (
	StateInit          State = "INIT"
	StateInstalling    State = "INSTALLING"
	StateInstallFailed State = "INSTALL_FAILED"
	StateInstalled     State = "INSTALLED"
	StateStarting      State = "STARTING"
	StateStarted       State = "STARTED"
	StateStopping      State = "STOPPING"
	StateUnknown       State = "UNKNOWN"
)

// HostState is the agent-reported health of a host.
type HostState string

const (
	HostStateHealthy       HostState = "HEALTHY"
	HostStateUnhealthy     HostState = "UNHEALTHY"
	HostStateHeartbeatLost HostState = "HEARTBEAT_LOST"
)

// MaintenanceState reports whether a service or host has been placed in maintenance mode.
type MaintenanceState string

const (
	MaintenanceStateOff MaintenanceState = "OFF"
	MaintenanceStateOn  MaintenanceState = "ON"
)

// ServiceComponentHost is a single component instance assigned to a host.
type ServiceComponentHost struct {
	HostName string
	State    State
}

// Host is a cluster member host.
type Host struct {
	HostName         string
	State            HostState
	MaintenanceState MaintenanceState
}

// Clusters is the entry point into cluster state.
//go:generate mockgen -destination=mocks/clusterstate.go -package=mocks github.com/openshift/managed-upgrade-prechecks/pkg/clusterstate Clusters,Cluster,Service,ServiceComponent
type Clusters interface {
	// GetCluster returns a *ClusterNotFoundError if no cluster is registered under clusterName.
	GetCluster(ctx context.Context, clusterName string) (Cluster, error)
}

// Cluster is a read-only view of one cluster.
type Cluster interface {
	ClusterName() string
	CurrentStackVersion() string
	// GetService returns a *ServiceNotFoundError if the service is not installed.
	GetService(serviceName string) (Service, error)
	Services() map[string]Service
	Hosts() map[string]*Host
	DesiredConfigProperty(configType string, key string) (string, bool)
}

// Service is a read-only view of an installed service.
type Service interface {
	Name() string
	MaintenanceState() MaintenanceState
	// GetServiceComponent returns a *ComponentNotFoundError if the component is not part of the service.
	GetServiceComponent(componentName string) (ServiceComponent, error)
	ServiceComponents() map[string]ServiceComponent
}

// ServiceComponent is a read-only view of a component of a service.
type ServiceComponent interface {
	Name() string
	IsClientComponent() bool
	// GetServiceComponentHosts maps host name to the component instance on that host.
	// The map is never nil; an empty map means the component exists but is not assigned anywhere.
	GetServiceComponentHosts() map[string]*ServiceComponentHost
}
