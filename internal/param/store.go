// Package param provides the mutable parameter store driving an animation.
//
// A Store holds named scalar values (voltages, resistances, counts) that are
// mutated only by the animation director and read by derivation and redraw
// functions. It is an explicit context object: scenes pass the store to
// whatever needs it instead of capturing ambient globals. Everything here is
// single-threaded by construction; the director is the single writer.
package param

import "fmt"

type Store struct {
	names []string
	vals  map[string]float64
}

func NewStore() *Store {
	return &Store{vals: make(map[string]float64)}
}

// Define registers a parameter with its initial value. Defining the same
// name twice is a scene construction bug.
func (s *Store) Define(name string, initial float64) {
	if _, ok := s.vals[name]; ok {
		panic(fmt.Sprintf("param: %q defined twice", name))
	}
	s.names = append(s.names, name)
	s.vals[name] = initial
}

// Set overwrites the current value. The parameter must be defined.
func (s *Store) Set(name string, v float64) {
	if _, ok := s.vals[name]; !ok {
		panic(fmt.Sprintf("param: set of undefined parameter %q", name))
	}
	s.vals[name] = v
}

// Get returns the current value. The parameter must be defined.
func (s *Store) Get(name string) float64 {
	v, ok := s.vals[name]
	if !ok {
		panic(fmt.Sprintf("param: get of undefined parameter %q", name))
	}
	return v
}

// Lookup returns the current value and whether the parameter is defined.
func (s *Store) Lookup(name string) (float64, bool) {
	v, ok := s.vals[name]
	return v, ok
}

// Names returns parameter names in definition order.
func (s *Store) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Snapshot returns a copy of every parameter's current value.
func (s *Store) Snapshot() map[string]float64 {
	out := make(map[string]float64, len(s.vals))
	for k, v := range s.vals {
		out[k] = v
	}
	return out
}
