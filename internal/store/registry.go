package store

import (
	"slices"
	"sync"
)

// Registry owns one Store per patient. The embedding application creates it
// and decides when stores are dropped.
type Registry struct {
	mu     sync.Mutex
	stores map[string]*Store
}

func NewRegistry() *Registry {
	return &Registry{stores: make(map[string]*Store)}
}

// ForPatient returns the patient's store, creating an empty one on first use.
func (r *Registry) ForPatient(patientID string) *Store {
	r.mu.Lock()
	defer r.mu.Unlock()

	st, ok := r.stores[patientID]
	if !ok {
		st = New()
		r.stores[patientID] = st
	}
	return st
}

func (r *Registry) Drop(patientID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.stores, patientID)
}

// Patients lists the patients that currently own a store, sorted.
func (r *Registry) Patients() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, 0, len(r.stores))
	for id := range r.stores {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.stores)
}
