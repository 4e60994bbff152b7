package registry

import (
	"fmt"
	"sync"

	"flatten-generator/internal/common"
	"flatten-generator/internal/schema"
)

// DuplicatePolicy controls what Register does when a name is already
// present.
type DuplicatePolicy int

const (
	// PolicyReject makes Register return a DuplicateDefinitionError for
	// an already-registered name. This is the default.
	PolicyReject DuplicatePolicy = iota

	// PolicyOverwrite makes Register silently replace the previous entry
	// (last-write-wins).
	PolicyOverwrite
)

// String returns a human-readable policy name.
func (p DuplicatePolicy) String() string {
	switch p {
	case PolicyReject:
		return "reject"
	case PolicyOverwrite:
		return "overwrite"
	default:
		return common.UnknownStr
	}
}

// DuplicateDefinitionError reports a Register call for a name that is
// already present under PolicyReject.
type DuplicateDefinitionError struct {
	Name string
}

// Error implements the error interface.
func (e *DuplicateDefinitionError) Error() string {
	return fmt.Sprintf("type %s is already registered", e.Name)
}

// Entry is one (name, resolved fields) pair in a Registry snapshot.
type Entry struct {
	Name   string
	Fields []schema.Field
}

// Registry maps type names to their fully resolved field lists. Entries
// hold no flatten markers: the engine only registers post-flattening
// output, and package-seeded entries are flat by construction.
//
// A Registry is caller-owned, never ambient. It accumulates for the
// lifetime of a processing pass and is never pruned. The RWMutex gives
// drivers that parallelize across independent inputs concurrent reads
// with exclusive writes; a single sequential pass never contends.
type Registry struct {
	mu      sync.RWMutex
	policy  DuplicatePolicy
	entries map[string][]schema.Field
	order   []string
}

// New creates an empty Registry with PolicyReject.
func New() *Registry {
	return NewWithPolicy(PolicyReject)
}

// NewWithPolicy creates an empty Registry with the given duplicate policy.
func NewWithPolicy(policy DuplicatePolicy) *Registry {
	return &Registry{
		policy:  policy,
		entries: make(map[string][]schema.Field),
	}
}

// Policy returns the registry's duplicate policy.
func (r *Registry) Policy() DuplicatePolicy {
	return r.policy
}

// Register stores the resolved field list for name. Under PolicyReject a
// second Register for the same name fails with DuplicateDefinitionError
// and leaves the existing entry untouched. The field list is copied, so
// later caller mutations cannot corrupt the entry.
func (r *Registry) Register(name string, fields []schema.Field) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[name]; exists {
		if r.policy == PolicyReject {
			return &DuplicateDefinitionError{Name: name}
		}
	} else {
		r.order = append(r.order, name)
	}

	r.entries[name] = schema.CloneFields(fields)

	return nil
}

// Lookup returns the resolved field list for name, or false if the name
// was never registered. The returned slice is a copy.
func (r *Registry) Lookup(name string) ([]schema.Field, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fields, ok := r.entries[name]
	if !ok {
		return nil, false
	}

	return schema.CloneFields(fields), true
}

// Len returns the number of registered entries.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries)
}

// Entries returns a snapshot of all entries in first-registration order,
// for diagnostics and debug output.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make([]Entry, 0, len(r.order))
	for _, name := range r.order {
		snapshot = append(snapshot, Entry{
			Name:   name,
			Fields: schema.CloneFields(r.entries[name]),
		})
	}

	return snapshot
}
