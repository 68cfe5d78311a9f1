package schedulers

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrInvalidConfiguration is returned for unknown scheme ids and malformed
// queue ladders.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// QueueSpec configures one level of a ladder.
type QueueSpec struct {
	Policy  PolicyKind `json:"policy"`
	Quantum int        `json:"quantum,omitempty"`
	// Demote moves a process that used its whole slice without finishing
	// to the next lower level.
	Demote bool `json:"demote"`
	// Rotate moves such a process to the back of its own level instead,
	// when it is not demoted.
	Rotate bool `json:"rotate,omitempty"`
}

// NewQueueSpec returns a spec with the policy's default demotion behaviour.
func NewQueueSpec(kind PolicyKind, quantum int) QueueSpec {
	return QueueSpec{Policy: kind, Quantum: quantum, Demote: kind.DemotesByDefault()}
}

func (q QueueSpec) String() string {
	if q.Policy == PolicyRoundRobin {
		return fmt.Sprintf("RR(%d)", q.Quantum)
	}
	return strings.ToUpper(string(q.Policy))
}

// Scheme is an immutable, ordered queue ladder; index 0 is the highest
// priority level.
type Scheme struct {
	ID     int         `json:"id"`
	Queues []QueueSpec `json:"queues"`
}

// Depth is the number of levels in the ladder.
func (s Scheme) Depth() int {
	return len(s.Queues)
}

func (s Scheme) String() string {
	levels := make([]string, len(s.Queues))
	for i, q := range s.Queues {
		levels[i] = q.String()
	}
	return fmt.Sprintf("scheme %d: %s", s.ID, strings.Join(levels, " > "))
}

// Validate checks every level can be turned into a policy.
func (s Scheme) Validate() error {
	if len(s.Queues) == 0 {
		return fmt.Errorf("scheme %d has no queues: %w", s.ID, ErrInvalidConfiguration)
	}
	for i, q := range s.Queues {
		if !validPolicyKinds[q.Policy] {
			return fmt.Errorf("scheme %d queue %d: unknown policy %q: %w", s.ID, i+1, q.Policy, ErrInvalidConfiguration)
		}
		if q.Policy == PolicyRoundRobin && q.Quantum <= 0 {
			return fmt.Errorf("scheme %d queue %d: round-robin quantum must be positive, got %d: %w", s.ID, i+1, q.Quantum, ErrInvalidConfiguration)
		}
	}
	return nil
}

func clone(s Scheme) Scheme {
	queues := make([]QueueSpec, len(s.Queues))
	copy(queues, s.Queues)
	return Scheme{ID: s.ID, Queues: queues}
}

// builtinSchemes are the three ladders every registry starts with.
var builtinSchemes = []Scheme{
	{ID: 1, Queues: []QueueSpec{
		NewQueueSpec(PolicyRoundRobin, 1),
		NewQueueSpec(PolicyRoundRobin, 3),
		NewQueueSpec(PolicyRoundRobin, 4),
		NewQueueSpec(PolicyShortestJobFirst, 0),
	}},
	{ID: 2, Queues: []QueueSpec{
		NewQueueSpec(PolicyRoundRobin, 2),
		NewQueueSpec(PolicyRoundRobin, 3),
		NewQueueSpec(PolicyRoundRobin, 4),
		NewQueueSpec(PolicyShortestTimeToCompletionFirst, 0),
	}},
	{ID: 3, Queues: []QueueSpec{
		NewQueueSpec(PolicyRoundRobin, 3),
		NewQueueSpec(PolicyRoundRobin, 5),
		NewQueueSpec(PolicyRoundRobin, 6),
		NewQueueSpec(PolicyRoundRobin, 20),
	}},
}

// Registry maps scheme ids to ladders.
type Registry struct {
	schemes map[int]Scheme
}

// NewRegistry returns a registry holding the built-in schemes 1, 2 and 3.
func NewRegistry() *Registry {
	r := &Registry{schemes: make(map[int]Scheme, len(builtinSchemes))}
	for _, s := range builtinSchemes {
		r.schemes[s.ID] = clone(s)
	}
	return r
}

// Register adds a scheme after validating it. Ids already taken, including
// the built-in ones, are rejected so a registered ladder never changes.
func (r *Registry) Register(s Scheme) error {
	if _, taken := r.schemes[s.ID]; taken {
		return fmt.Errorf("scheme %d is already registered: %w", s.ID, ErrInvalidConfiguration)
	}
	if err := s.Validate(); err != nil {
		return err
	}
	r.schemes[s.ID] = clone(s)
	return nil
}

// Lookup returns a copy of the scheme registered under id.
func (r *Registry) Lookup(id int) (Scheme, error) {
	s, ok := r.schemes[id]
	if !ok {
		return Scheme{}, fmt.Errorf("unsupported scheme %d: %w", id, ErrInvalidConfiguration)
	}
	return clone(s), nil
}

// IDs returns the registered scheme ids in ascending order.
func (r *Registry) IDs() []int {
	ids := make([]int, 0, len(r.schemes))
	for id := range r.schemes {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Schemes returns every registered scheme ordered by id.
func (r *Registry) Schemes() []Scheme {
	ids := r.IDs()
	out := make([]Scheme, len(ids))
	for i, id := range ids {
		out[i] = clone(r.schemes[id])
	}
	return out
}

var defaultRegistry = NewRegistry()

// LookupScheme resolves id against the built-in schemes.
func LookupScheme(id int) (Scheme, error) {
	return defaultRegistry.Lookup(id)
}
