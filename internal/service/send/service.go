// Package send delivers finished documents over SMTP and builds mailto
// links for manual submission.
package send

import (
	"fmt"
	"log"
	"mime"
	"net/smtp"
	"net/url"
	"strings"

	"github.com/zhalobnik/backend/internal/config"
)

// Clients choke on very long mailto URLs, so the body is clamped and the
// reader pointed at the full document.
const maxMailtoBody = 1500

// Service sends documents through a configured SMTP relay.
type Service struct {
	cfg config.SMTPConfig
}

// NewService builds the mail sender.
func NewService(cfg config.SMTPConfig) *Service {
	return &Service{cfg: cfg}
}

// Configured reports whether direct delivery is possible.
func (s *Service) Configured() bool {
	return s.cfg.Configured()
}

// SendDocument mails the document text to one recipient. The sender name
// goes into the From header when present.
func (s *Service) SendDocument(to, subject, body, senderName string) error {
	if !s.Configured() {
		return fmt.Errorf("smtp not configured")
	}

	from := s.cfg.From
	fromHeader := from
	if senderName != "" {
		fromHeader = fmt.Sprintf("%s <%s>", mime.QEncoding.Encode("utf-8", senderName), from)
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", fromHeader)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	addr := s.cfg.Host + ":" + s.cfg.Port
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	if err := smtp.SendMail(addr, auth, from, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("send to %s: %w", to, err)
	}

	log.Printf("[send] delivered document to %s", to)
	return nil
}

// MailtoLink builds a prefilled mailto URL. The user's own address is added
// as CC so they keep a copy.
func MailtoLink(email, subject, body, userEmail string) string {
	if runes := []rune(body); len(runes) > maxMailtoBody {
		body = string(runes[:maxMailtoBody]) + "\n\n[Полный текст жалобы приложите отдельным файлом]"
	}

	var params strings.Builder
	params.WriteString("subject=" + encodeParam(subject))
	params.WriteString("&body=" + encodeParam(body))
	if userEmail != "" {
		params.WriteString("&cc=" + encodeParam(userEmail))
	}

	return "mailto:" + email + "?" + params.String()
}

// encodeParam percent-encodes a mailto parameter. QueryEscape's plus signs
// are not understood by mail clients, so spaces become %20.
func encodeParam(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
