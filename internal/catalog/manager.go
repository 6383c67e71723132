// Package catalog owns the product list and writes it through to the
// store on every change.
package catalog

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"nova-packaging/internal/models"
	"nova-packaging/internal/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrEmptyName        = errors.New("catalog: product name is required")
	ErrEmptyDescription = errors.New("catalog: product description is required")
	ErrNegativePrice    = errors.New("catalog: price must not be negative")
)

// Manager is the only component allowed to mutate products. Constructed
// once at startup and passed to the handlers that need it.
type Manager struct {
	mu       sync.Mutex
	st       store.Store
	log      *zap.Logger
	products []models.Product
}

// NewManager loads the catalog from the store. A missing or unreadable
// blob falls back to the seeded default catalog.
func NewManager(st store.Store, log *zap.Logger) *Manager {
	m := &Manager{st: st, log: log}

	if err := st.Load(store.KeyProducts, &m.products); err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Warn("product catalog unreadable, using defaults", zap.Error(err))
		}
		m.products = defaultProducts()
		m.persist()
	}
	return m
}

// List returns the products in insertion order.
func (m *Manager) List() []models.Product {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Product, len(m.products))
	copy(out, m.products)
	return out
}

// Get returns the product with the given id, or false.
func (m *Manager) Get(id string) (models.Product, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// Add assigns a fresh id and appends the product to the catalog.
func (m *Manager) Add(p models.Product) (models.Product, error) {
	if err := validate(p.Name, p.Description, p.Price); err != nil {
		return models.Product{}, err
	}
	if !p.Icon.Valid() {
		p.Icon = models.IconBox
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	p.ID = uuid.NewString()
	m.products = append(m.products, p)
	m.persist()
	return p, nil
}

// Update merges the patch into the matching product. An absent id is a
// no-op.
func (m *Manager) Update(id string, patch models.ProductPatch) error {
	if patch.Price != nil && *patch.Price < 0 {
		return ErrNegativePrice
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return ErrEmptyName
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.products {
		if m.products[i].ID != id {
			continue
		}
		apply(&m.products[i], patch)
		m.persist()
		return nil
	}
	return nil
}

// Delete removes the matching product. An absent id is a no-op.
func (m *Manager) Delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, p := range m.products {
		if p.ID == id {
			m.products = append(m.products[:i], m.products[i+1:]...)
			m.persist()
			return
		}
	}
}

func validate(name, description string, price float64) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(description) == "" {
		return ErrEmptyDescription
	}
	if price < 0 {
		return fmt.Errorf("%w: %.2f", ErrNegativePrice, price)
	}
	return nil
}

func apply(p *models.Product, patch models.ProductPatch) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}
	if patch.Icon != nil && patch.Icon.Valid() {
		p.Icon = *patch.Icon
	}
}

// persist is called with the lock held.
func (m *Manager) persist() {
	if err := m.st.Save(store.KeyProducts, m.products); err != nil {
		m.log.Error("failed to persist product catalog", zap.Error(err))
	}
}
