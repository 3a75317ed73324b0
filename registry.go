package instance

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/a-peyrard/instance/fn"
	"github.com/a-peyrard/instance/option"
	"github.com/rs/zerolog"
)

type (
	// Registry is the table of hooks of every decorated type.
	//
	// Hooks are registered at startup, then replayed by the constructors of each type.
	// A type becomes read-only as soon as its first instance is constructed.
	Registry struct {
		mu      sync.Mutex
		classes map[reflect.Type]*class

		logger zerolog.Logger
	}

	RegistryOptions struct {
		logger zerolog.Logger
	}

	// EmptyRegistry is embedded by the registries generated by instancegen,
	// the generated Register shadows this one.
	EmptyRegistry struct{}

	// class holds the ordered hooks of one type.
	class struct {
		typ    reflect.Type
		hooks  *SortedCOWSlice[*hook]
		logger zerolog.Logger

		mu     sync.Mutex
		sealed bool
	}
)

func WithLogger(logger zerolog.Logger) option.Option[RegistryOptions] {
	return func(opts *RegistryOptions) {
		opts.logger = logger
	}
}

// NewRegistry creates an empty registry, it logs nothing unless a logger is given.
func NewRegistry(opts ...option.Option[RegistryOptions]) *Registry {
	options := option.Build(
		&RegistryOptions{
			logger: zerolog.Nop(),
		},
		opts...,
	)

	return &Registry{
		classes: make(map[reflect.Type]*class),
		logger:  options.logger,
	}
}

func (EmptyRegistry) Register(*Registry) error {
	return nil
}

func (r *Registry) classOf(typ reflect.Type) *class {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c, found := r.classes[typ]; found {
		return c
	}

	c := &class{
		typ:    typ,
		hooks:  NewSortedCOWSlice[*hook](fn.ReverseComparator(compareHooksByPriority)),
		logger: r.logger.With().Str("type", typ.String()).Logger(),
	}
	r.classes[typ] = c
	return c
}

// Types lists the types known by the registry, sorted by name.
func (r *Registry) Types() []reflect.Type {
	r.mu.Lock()
	defer r.mu.Unlock()

	types := make([]reflect.Type, 0, len(r.classes))
	for typ := range r.classes {
		types = append(types, typ)
	}
	sort.Slice(types, func(i, j int) bool {
		return types[i].String() < types[j].String()
	})
	return types
}

func (r *Registry) Describe() string {
	var b strings.Builder
	b.WriteString("* Types:\n")
	for _, typ := range r.Types() {
		c := r.classOf(typ)
		b.WriteString(fmt.Sprintf("\t- %s (sealed=%t)\n", typ, c.isSealed()))
		for _, h := range c.hooks.All() {
			b.WriteString(fmt.Sprintf("\t\t- %s\n", h))
			if h.description != "" {
				b.WriteString(fmt.Sprintf("\t\t\tdescription: %s\n", h.description))
			}
		}
	}
	return b.String()
}

func (c *class) add(h *hook) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sealed {
		return fmt.Errorf("cannot add hook %s to %s:\n\t%w", h, c.typ, ErrSealed)
	}
	c.hooks.Add(h)

	c.logger.Debug().
		Str("member", h.member.name).
		Stringer("kind", h.decorator.kind).
		Int("priority", h.priority).
		Msg("hook registered")
	return nil
}

// snapshot seals the class and returns its hooks in replay order.
func (c *class) snapshot() []*hook {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.sealed {
		c.sealed = true
		c.logger.Debug().Int("hooks", c.hooks.Len()).Msg("type sealed")
	}
	return c.hooks.All()
}

func (c *class) isSealed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sealed
}
