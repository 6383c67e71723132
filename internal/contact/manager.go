// Package contact owns the inquiry list submitted through the public
// contact form.
package contact

import (
	"errors"
	"strings"
	"sync"
	"time"

	"nova-packaging/internal/models"
	"nova-packaging/internal/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrMissingField  = errors.New("contact: name, email and message are required")
	ErrUnknownStatus = errors.New("contact: unknown status")
)

// Manager keeps messages newest first: Add prepends. Constructed once at
// startup and injected where needed.
type Manager struct {
	mu       sync.Mutex
	st       store.Store
	log      *zap.Logger
	messages []models.ContactMessage
	now      func() time.Time
}

// NewManager loads the messages from the store. A missing or unreadable
// blob falls back to an empty list.
func NewManager(st store.Store, log *zap.Logger) *Manager {
	m := &Manager{st: st, log: log, now: time.Now}

	if err := st.Load(store.KeyMessages, &m.messages); err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Warn("contact messages unreadable, starting empty", zap.Error(err))
		}
		m.messages = []models.ContactMessage{}
	}
	return m
}

// List returns the messages newest first.
func (m *Manager) List() []models.ContactMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.ContactMessage, len(m.messages))
	copy(out, m.messages)
	return out
}

// FilterByStatus is a read-side projection over List; the relative order
// is preserved.
func (m *Manager) FilterByStatus(status models.MessageStatus) []models.ContactMessage {
	all := m.List()
	out := make([]models.ContactMessage, 0, len(all))
	for _, msg := range all {
		if msg.Status == status {
			out = append(out, msg)
		}
	}
	return out
}

// Add records a new inquiry. The status is always pending regardless of
// what the caller might want.
func (m *Manager) Add(name, email, message string) (models.ContactMessage, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" || strings.TrimSpace(message) == "" {
		return models.ContactMessage{}, ErrMissingField
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	msg := models.ContactMessage{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Message:   message,
		Timestamp: m.now(),
		Status:    models.StatusPending,
	}
	m.messages = append([]models.ContactMessage{msg}, m.messages...)
	m.persist()
	return msg, nil
}

// SetStatus overwrites the status field only. Any known status is
// reachable from any other; an absent id is a no-op.
func (m *Manager) SetStatus(id string, status models.MessageStatus) error {
	if !status.Valid() {
		return ErrUnknownStatus
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.messages {
		if m.messages[i].ID == id {
			m.messages[i].Status = status
			m.persist()
			return nil
		}
	}
	return nil
}

// Delete removes the matching message. An absent id is a no-op.
func (m *Manager) Delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, msg := range m.messages {
		if msg.ID == id {
			m.messages = append(m.messages[:i], m.messages[i+1:]...)
			m.persist()
			return
		}
	}
}

// persist is called with the lock held.
func (m *Manager) persist() {
	if err := m.st.Save(store.KeyMessages, m.messages); err != nil {
		m.log.Error("failed to persist contact messages", zap.Error(err))
	}
}
