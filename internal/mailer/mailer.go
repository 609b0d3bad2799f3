// Package mailer delivers the verification and password-reset notifications.
// Delivery is fire-and-forget: failures are logged here and never propagate
// to the request path.
package mailer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

type Mailer struct {
	apiURL     string
	apiKey     string
	fromEmail  string
	fromName   string
	httpClient *http.Client
}

func New(apiURL, apiKey, fromEmail, fromName string) *Mailer {
	return &Mailer{
		apiURL:    apiURL,
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (m *Mailer) SendVerificationEmail(to, token string) {
	if err := m.send(to, "Verify your email", fmt.Sprintf("Your email verification token: %s", token)); err != nil {
		log.Printf("mailer: failed to send verification email to %s: %v", to, err)
	}
}

func (m *Mailer) SendPasswordResetEmail(to, token string) {
	if err := m.send(to, "Reset your password", fmt.Sprintf("Your password reset token: %s", token)); err != nil {
		log.Printf("mailer: failed to send password reset email to %s: %v", to, err)
	}
}

func (m *Mailer) send(to, subject, text string) error {
	if m.apiKey == "" {
		// No mail provider configured; log the token so local flows stay
		// usable.
		log.Printf("mailer: no API key configured, would send to %s: %s", to, text)
		return nil
	}

	reqBody := map[string]interface{}{
		"from": map[string]string{
			"email": m.fromEmail,
			"name":  m.fromName,
		},
		"to": []map[string]string{
			{"email": to},
		},
		"subject": subject,
		"text":    text,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("marshaling email request: %w", err)
	}

	httpReq, err := http.NewRequest(http.MethodPost, m.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("creating HTTP request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+m.apiKey)

	resp, err := m.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("sending email request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("mail API returned status %d", resp.StatusCode)
	}

	return nil
}
