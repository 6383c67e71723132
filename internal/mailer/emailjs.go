// Package mailer forwards contact-form submissions to EmailJS. Delivery
// is best effort: the message is already stored before the send, and a
// failure only surfaces as a warning to the visitor.
package mailer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

// Mailer sends one transactional template per contact submission.
type Mailer struct {
	serviceID  string
	templateID string
	publicKey  string
	endpoint   string
	client     *http.Client
}

// New returns nil when the EmailJS keys are not configured; a nil Mailer
// skips sending.
func New(serviceID, templateID, publicKey string) *Mailer {
	if serviceID == "" || templateID == "" || publicKey == "" {
		return nil
	}
	return &Mailer{
		serviceID:  serviceID,
		templateID: templateID,
		publicKey:  publicKey,
		endpoint:   defaultEndpoint,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

type sendRequest struct {
	ServiceID      string         `json:"service_id"`
	TemplateID     string         `json:"template_id"`
	UserID         string         `json:"user_id"`
	TemplateParams templateParams `json:"template_params"`
}

type templateParams struct {
	FromName  string `json:"from_name"`
	FromEmail string `json:"from_email"`
	Message   string `json:"message"`
}

// SendContact posts the compiled template. No retries; success or
// failure is the only signal the caller gets.
func (m *Mailer) SendContact(name, email, message string) error {
	if m == nil {
		return nil
	}

	body, err := json.Marshal(sendRequest{
		ServiceID:  m.serviceID,
		TemplateID: m.templateID,
		UserID:     m.publicKey,
		TemplateParams: templateParams{
			FromName:  name,
			FromEmail: email,
			Message:   message,
		},
	})
	if err != nil {
		return err
	}

	resp, err := m.client.Post(m.endpoint, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("emailjs send: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("emailjs send: status %d: %s", resp.StatusCode, detail)
	}
	return nil
}
