// Package baseunit assigns process-wide identities to base units.
//
// A base unit is an atomic unit of measure ("meters", "seconds") or a
// semantic tag ("width", "depth"). Each distinct kind is assigned a
// dense, totally ordered ID exactly once; dimension vectors are sorted
// by these IDs, so identity assignment is the root of canonical form.
//
// Registration is idempotent and safe for concurrent use. Most callers
// use the package-level Register against the Default registry at
// module scope:
//
//	var (
//		Meters = baseunit.Register("meters")
//		Width  = baseunit.Register("width")
//	)
package baseunit

import (
	"log/slog"
	"sync"
)

// ID identifies a registered base-unit kind.
//
// IDs are dense (1, 2, 3, ...) in registration order and never change
// once assigned. The zero value is reserved and never assigned.
type ID uint64

// Invalid is the reserved zero ID.
const Invalid ID = 0

// Options configures a Registry.
type Options struct {
	// Logger receives a debug record on every first-time registration.
	Logger *slog.Logger
}

// DefaultOptions returns default registry options.
var DefaultOptions = Options{
	Logger: nil,
}

// WithLogger configures the registry logger.
func WithLogger(logger *slog.Logger) func(o *Options) {
	return func(o *Options) {
		o.Logger = logger
	}
}

// Registry assigns IDs to base-unit kinds.
//
// The registry is an arena: kinds are appended in registration order
// and an entry's position determines its ID. Entries are never removed.
type Registry struct {
	mu     sync.RWMutex
	ids    map[string]ID
	kinds  []string
	logger *slog.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry(optFns ...func(o *Options)) *Registry {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Registry{
		ids:    make(map[string]ID),
		logger: opts.Logger,
	}
}

// Register returns the ID for kind, assigning the next free ID on
// first registration. Re-registering a kind returns the same ID.
func (r *Registry) Register(kind string) ID {
	r.mu.RLock()
	id, ok := r.ids[kind]
	r.mu.RUnlock()
	if ok {
		return id
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under the write lock: another goroutine may have
	// registered the kind between the two lock acquisitions.
	if id, ok := r.ids[kind]; ok {
		return id
	}

	r.kinds = append(r.kinds, kind)
	id = ID(len(r.kinds))
	r.ids[kind] = id

	if r.logger != nil {
		r.logger.Debug("registered base unit", "kind", kind, "id", uint64(id))
	}

	return id
}

// Lookup returns the ID for kind without registering it.
func (r *Registry) Lookup(kind string) (ID, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.ids[kind]
	return id, ok
}

// KindOf returns the kind registered under id.
func (r *Registry) KindOf(id ID) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if id == Invalid || int(id) > len(r.kinds) {
		return "", false
	}
	return r.kinds[id-1], true
}

// Len returns the number of registered kinds.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.kinds)
}

// Kinds returns all registered kinds in ID order.
func (r *Registry) Kinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.kinds))
	copy(out, r.kinds)
	return out
}

// Default is the process-wide registry used by the package-level
// functions. Module-scope base-unit declarations register here.
var Default = NewRegistry()

// Register registers kind with the Default registry.
func Register(kind string) ID {
	return Default.Register(kind)
}

// Lookup looks kind up in the Default registry.
func Lookup(kind string) (ID, bool) {
	return Default.Lookup(kind)
}

// KindOf resolves id in the Default registry.
func KindOf(id ID) (string, bool) {
	return Default.KindOf(id)
}
