package clusterstate

import (
	"errors"
	"fmt"
)

// ClusterNotFoundError is returned when a cluster name is unknown.
type ClusterNotFoundError struct {
	ClusterName string
}

func (e *ClusterNotFoundError) Error() string {
	return fmt.Sprintf("cluster not found, clusterName=%s", e.ClusterName)
}

// ServiceNotFoundError is returned when a service is not installed on a cluster.
type ServiceNotFoundError struct {
	ClusterName string
	ServiceName string
}

func (e *ServiceNotFoundError) Error() string {
	return fmt.Sprintf("service not found, clusterName=%s, serviceName=%s", e.ClusterName, e.ServiceName)
}

// ComponentNotFoundError is returned when a component is not part of a service.
type ComponentNotFoundError struct {
	ClusterName   string
	ServiceName   string
	ComponentName string
}

func (e *ComponentNotFoundError) Error() string {
	return fmt.Sprintf("service component not found, clusterName=%s, serviceName=%s, serviceComponentName=%s",
		e.ClusterName, e.ServiceName, e.ComponentName)
}

// IsClusterNotFound reports whether err, or any error it wraps, is a *ClusterNotFoundError.
func IsClusterNotFound(err error) bool {
	var target *ClusterNotFoundError
	return errors.As(err, &target)
}

// IsServiceNotFound reports whether err, or any error it wraps, is a *ServiceNotFoundError.
func IsServiceNotFound(err error) bool {
	var target *ServiceNotFoundError
	return errors.As(err, &target)
}

// IsComponentNotFound reports whether err, or any error it wraps, is a *ComponentNotFoundError.
func IsComponentNotFound(err error) bool {
	var target *ComponentNotFoundError
	return errors.As(err, &target)
}

// IsNotFound reports whether err signals that a service or a component is absent.
// A missing cluster is deliberately excluded: it is never a recoverable condition.
func IsNotFound(err error) bool {
	return IsServiceNotFound(err) || IsComponentNotFound(err)
}
