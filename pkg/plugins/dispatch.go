package plugins

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Fepozopo/pictool/pkg/pixel"
)

// UnknownCommandError reports a command name that is not in the registry.
type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("error: unrecognized command %q", e.Name)
}

// MalformedPluginError reports a registry entry that violates the
// one-buffer-parameter contract: every parameter after the first must carry
// a default value.
type MalformedPluginError struct {
	Name string
}

func (e *MalformedPluginError) Error() string {
	return fmt.Sprintf("error: plugin %q does not have default values after first parameter", e.Name)
}

// UnrecognizedOptionsError reports option keys the chosen command does not
// accept. All offending keys are collected, not just the first.
type UnrecognizedOptionsError struct {
	Name string
	Keys []string
}

func (e *UnrecognizedOptionsError) Error() string {
	flags := make([]string, len(e.Keys))
	for i, k := range e.Keys {
		flags[i] = "--" + k
	}
	return fmt.Sprintf("error: plugin %q does not recognize the following options: %s",
		e.Name, strings.Join(flags, ", "))
}

// Registry is an immutable catalog of command descriptors, built once at
// startup and handed to the dispatcher. Lookup is by exact name; there is
// no case normalization or partial matching.
type Registry struct {
	specs  []CommandSpec
	byName map[string]CommandSpec
}

// NewRegistry builds a registry from a descriptor list.
func NewRegistry(specs []CommandSpec) *Registry {
	r := &Registry{specs: specs, byName: make(map[string]CommandSpec, len(specs))}
	for _, c := range specs {
		r.byName[c.Name] = c
	}
	return r
}

// DefaultRegistry returns a registry over the built-in Commands list.
func DefaultRegistry() *Registry {
	return NewRegistry(Commands)
}

// Specs returns the registered descriptors in registration order.
func (r *Registry) Specs() []CommandSpec {
	return r.specs
}

// BoundCall is a validated command plus its supplied options, ready to
// invoke once the pipeline has a buffer.
type BoundCall struct {
	spec CommandSpec
	opts map[string]Value
}

// Resolve validates a requested command name and option set against the
// registry and binds them into a call. It has no side effects and touches
// no image data, so the pipeline can run it before the (possibly slow)
// decode and surface configuration errors before any expensive I/O.
func (r *Registry) Resolve(name string, options map[string]Value) (*BoundCall, error) {
	spec, ok := r.byName[name]
	if !ok {
		return nil, &UnknownCommandError{Name: name}
	}
	// Every registered descriptor should already satisfy this, but
	// re-checking here surfaces a bad registration as a dispatch error
	// instead of a misbound call.
	if len(spec.Params) != len(spec.Defaults)+1 {
		return nil, &MalformedPluginError{Name: name}
	}
	var bad []string
	for key := range options {
		found := false
		for _, param := range spec.Params[1:] {
			if key == param {
				found = true
				break
			}
		}
		if !found {
			bad = append(bad, key)
		}
	}
	if len(bad) > 0 {
		sort.Strings(bad)
		return nil, &UnrecognizedOptionsError{Name: name, Keys: bad}
	}
	return &BoundCall{spec: spec, opts: options}, nil
}

// Name returns the bound command's name.
func (c *BoundCall) Name() string {
	return c.spec.Name
}

// Invoke merges the descriptor defaults with the supplied options and runs
// the transform against img. It reports whether the buffer was mutated.
func (c *BoundCall) Invoke(img *pixel.Buffer) (bool, error) {
	args := make(Args, len(c.spec.Params)-1)
	for i, name := range c.spec.Params[1:] {
		args[name] = c.spec.Defaults[i]
	}
	for k, v := range c.opts {
		args[k] = v
	}
	return c.spec.Run(img, args)
}
