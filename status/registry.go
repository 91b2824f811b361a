package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Registry is the central metrics facade
// Owners cache pointers at construction; tick code writes directly to atomics
type Registry struct {
	ints   *metricMap[atomic.Int64]
	floats *metricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		ints:   newMetricMap[atomic.Int64](),
		floats: newMetricMap[AtomicFloat](),
	}
}

// Int returns the integer metric registered under name
func (r *Registry) Int(name string) *atomic.Int64 {
	return r.ints.get(name)
}

// Float returns the float metric registered under name
func (r *Registry) Float(name string) *AtomicFloat {
	return r.floats.get(name)
}

// Count returns total metrics across all types
func (r *Registry) Count() int {
	return r.ints.count() + r.floats.count()
}

// String formats every metric as "name=value", sorted, space separated
func (r *Registry) String() string {
	var parts []string
	r.ints.each(func(key string, v *atomic.Int64) {
		parts = append(parts, fmt.Sprintf("%s=%d", key, v.Load()))
	})
	r.floats.each(func(key string, v *AtomicFloat) {
		parts = append(parts, fmt.Sprintf("%s=%.2f", key, v.Get()))
	})
	return strings.Join(parts, " ")
}
