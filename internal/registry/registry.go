// Package registry holds the in-memory product collection, synchronized
// to the persistent store on every mutation. The collection keeps
// insertion order; every mutation rewrites the whole record, which is
// fine at catalog scale.
package registry

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/jon4hz/productflow/internal/store"
)

// Registry is the persistence-backed product collection. It is safe for
// concurrent use by HTTP handlers.
type Registry struct {
	store store.Store

	mu       sync.RWMutex
	products []Product
}

// New creates a registry backed by s. On first run (no persisted
// collection) it seeds the fixed catalog and persists it immediately.
// A corrupt collection record is discarded with a logged diagnostic and
// replaced by the seed catalog.
func New(s store.Store) (*Registry, error) {
	r := &Registry{store: s}

	raw, ok, err := s.Read(store.KeyProducts)
	if err != nil {
		return nil, fmt.Errorf("failed to load product collection: %w", err)
	}

	if ok {
		var products []Product
		if err := json.Unmarshal([]byte(raw), &products); err != nil {
			log.Warn("discarding corrupt product collection, reseeding", "error", err)
		} else {
			r.products = products
			return r, nil
		}
	}

	r.products = seedCatalog()
	if err := r.persistLocked(); err != nil {
		return nil, err
	}
	return r, nil
}

// Add creates a product from the given fields, assigns it a fresh id and
// identical creation/update timestamps, and appends it to the collection.
func (r *Registry) Add(fields Fields) (Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	product := Product{
		ID:          uuid.NewString(),
		Name:        fields.Name,
		Price:       fields.Price,
		Quantity:    fields.Quantity,
		Category:    fields.Category,
		Description: fields.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	r.products = append(r.products, product)
	if err := r.persistLocked(); err != nil {
		r.products = r.products[:len(r.products)-1]
		return Product{}, err
	}
	return product, nil
}

// Update merges the patch into the product with the given id and
// refreshes its update timestamp. An unknown id leaves the collection
// unchanged and reports false.
func (r *Registry) Update(id string, patch Patch) (Product, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexLocked(id)
	if idx < 0 {
		return Product{}, false, nil
	}

	prev := r.products[idx]
	merged := prev
	if patch.Name != nil {
		merged.Name = *patch.Name
	}
	if patch.Price != nil {
		merged.Price = *patch.Price
	}
	if patch.Quantity != nil {
		merged.Quantity = *patch.Quantity
	}
	if patch.Category != nil {
		merged.Category = *patch.Category
	}
	if patch.Description != nil {
		merged.Description = *patch.Description
	}
	merged.UpdatedAt = time.Now().UTC()

	r.products[idx] = merged
	if err := r.persistLocked(); err != nil {
		r.products[idx] = prev
		return Product{}, false, err
	}
	return merged, true, nil
}

// Delete removes the product with the given id. Deleting an unknown id
// is a no-op.
func (r *Registry) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexLocked(id)
	if idx < 0 {
		return nil
	}

	prev := r.products
	r.products = append(r.products[:idx:idx], r.products[idx+1:]...)
	if err := r.persistLocked(); err != nil {
		r.products = prev
		return err
	}
	return nil
}

// Get returns the product with the given id.
func (r *Registry) Get(id string) (Product, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.indexLocked(id)
	if idx < 0 {
		return Product{}, false
	}
	return r.products[idx], true
}

// List returns a copy of the collection in insertion order.
func (r *Registry) List() []Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]Product, len(r.products))
	copy(products, r.products)
	return products
}

func (r *Registry) indexLocked(id string) int {
	for i, p := range r.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (r *Registry) persistLocked() error {
	raw, err := json.Marshal(r.products)
	if err != nil {
		return fmt.Errorf("failed to serialize product collection: %w", err)
	}
	if err := r.store.Write(store.KeyProducts, string(raw)); err != nil {
		return fmt.Errorf("failed to persist product collection: %w", err)
	}
	return nil
}
