// Package auth holds the admin credential check and the persisted
// session snapshot.
package auth

import (
	"errors"
	"sync"

	"nova-packaging/internal/models"
	"nova-packaging/internal/store"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Gate is a two-state machine: anonymous or authenticated admin. There
// is exactly one protected identity, supplied by configuration.
type Gate struct {
	mu           sync.Mutex
	st           store.Store
	log          *zap.Logger
	adminEmail   string
	passwordHash string

	session models.Session
}

// NewGate restores a previously persisted session if one exists. The
// restore does not re-verify the password; the stored snapshot is
// trusted as-is ("remember me").
func NewGate(st store.Store, log *zap.Logger, adminEmail, passwordHash string) *Gate {
	g := &Gate{
		st:           st,
		log:          log,
		adminEmail:   adminEmail,
		passwordHash: passwordHash,
	}

	var saved models.Session
	if err := st.Load(store.KeyAuth, &saved); err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Warn("saved session unreadable, staying anonymous", zap.Error(err))
		}
		return g
	}
	if saved.IsAuthenticated && saved.IsAdmin {
		g.session = saved
		log.Info("restored admin session", zap.String("email", saved.User.Email))
	}
	return g
}

// Login succeeds only when the email matches the configured admin and
// the password matches its bcrypt hash. A mismatch is a plain false,
// never an error.
func (g *Gate) Login(email, password string) bool {
	if email != g.adminEmail {
		return false
	}
	if err := bcrypt.CompareHashAndPassword([]byte(g.passwordHash), []byte(password)); err != nil {
		return false
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.session = models.Session{
		IsAuthenticated: true,
		IsAdmin:         true,
		User:            &models.User{ID: "1", Email: g.adminEmail, Role: "admin"},
	}
	if err := g.st.Save(store.KeyAuth, g.session); err != nil {
		g.log.Error("failed to persist session", zap.Error(err))
	}
	return true
}

// Logout drops the session unconditionally.
func (g *Gate) Logout() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.session = models.Session{}
	if err := g.st.Delete(store.KeyAuth); err != nil {
		g.log.Error("failed to clear persisted session", zap.Error(err))
	}
}

// Session returns a copy of the current state.
func (g *Gate) Session() models.Session {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.session
}

// IsAdmin reports whether the gate is in the authenticated-admin state.
func (g *Gate) IsAdmin() bool {
	s := g.Session()
	return s.IsAuthenticated && s.IsAdmin
}
