package prereq

import (
	"fmt"
)

// Registry is the ordered, immutable set of checks available to an executor.
type Registry struct {
	checks []RegisteredCheck
	byID   map[string]RegisteredCheck
}

// NewRegistry registers checks in the given order. Every check needs a non-empty, unique ID.
func NewRegistry(checks ...RegisteredCheck) (*Registry, error) {
	r := &Registry{byID: map[string]RegisteredCheck{}}
	for i, c := range checks {
		if c == nil {
			return nil, fmt.Errorf("check at position %d is nil", i)
		}
		id := c.Description().ID
		if id == "" {
			return nil, fmt.Errorf("check at position %d has an empty ID", i)
		}
		if _, ok := r.byID[id]; ok {
			return nil, fmt.Errorf("check %s is registered more than once", id)
		}
		r.byID[id] = c
		r.checks = append(r.checks, c)
	}
	return r, nil
}

// Checks returns the registered checks in registration order.
func (r *Registry) Checks() []RegisteredCheck {
	return append([]RegisteredCheck(nil), r.checks...)
}

// Get returns the check registered under id.
func (r *Registry) Get(id string) (RegisteredCheck, bool) {
	c, ok := r.byID[id]
	return c, ok
}

// IDs returns check IDs in registration order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.checks))
	for _, c := range r.checks {
		ids = append(ids, c.Description().ID)
	}
	return ids
}

func (r *Registry) Len() int {
	return len(r.checks)
}
