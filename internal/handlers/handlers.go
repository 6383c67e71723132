// Package handlers wires HTTP requests to the catalog, contact and auth
// components. State is injected at construction, there are no package
// globals.
package handlers

import (
	"nova-packaging/internal/auth"
	"nova-packaging/internal/catalog"
	"nova-packaging/internal/contact"

	"go.uber.org/zap"
)

// Sender relays a contact submission by email. *mailer.Mailer implements
// it; a nil mailer skips sending.
type Sender interface {
	SendContact(name, email, message string) error
}

type Handlers struct {
	Products *catalog.Manager
	Messages *contact.Manager
	Gate     *auth.Gate
	Mail     Sender
	Log      *zap.Logger
}

func New(products *catalog.Manager, messages *contact.Manager, gate *auth.Gate, mail Sender, log *zap.Logger) *Handlers {
	return &Handlers{
		Products: products,
		Messages: messages,
		Gate:     gate,
		Mail:     mail,
		Log:      log,
	}
}
