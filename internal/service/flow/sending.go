package flow

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/zhalobnik/backend/internal/model/dialog"
	"github.com/zhalobnik/backend/internal/model/recipient"
	"github.com/zhalobnik/backend/internal/service/send"
)

// Delivery methods in preference order.
const (
	MethodEmail  = "email"
	MethodPortal = "portal"
	MethodManual = "manual"
)

// Delivery statuses.
const (
	StatusReady = "ready"
	StatusSent  = "sent"
)

// DeliveryRecord is one entry of the sending manifest: the addressed
// document plus every submission detail known for the recipient.
type DeliveryRecord struct {
	RecipientID       string   `json:"recipient_id"`
	RecipientName     string   `json:"recipient_name"`
	DocumentText      string   `json:"complaint_text"`
	Status            string   `json:"status"`
	Method            string   `json:"method"`
	Email             string   `json:"email,omitempty"`
	Website           string   `json:"website,omitempty"`
	MailtoLink        string   `json:"mailto_link,omitempty"`
	Address           string   `json:"address,omitempty"`
	Phone             string   `json:"phone,omitempty"`
	WorkingHours      string   `json:"working_hours,omitempty"`
	PortalName        string   `json:"portal_name,omitempty"`
	SubmissionMethods []string `json:"submission_methods,omitempty"`
	AuthRequired      string   `json:"auth_required,omitempty"`
	DocumentsNeeded   []string `json:"documents_needed,omitempty"`
	ProcessingTime    string   `json:"processing_time,omitempty"`
	Tips              string   `json:"tips,omitempty"`
	Recommendation    string   `json:"recommendation,omitempty"`
	Source            string   `json:"source,omitempty"`
	Confidence        string   `json:"confidence,omitempty"`
}

// renderSending builds the delivery manifest for every selected recipient:
// placeholder substitution, contact resolution (cache first), submission
// method choice and, when a relay is configured, direct email delivery.
func (m *Machine) renderSending(ctx context.Context, state *dialog.State) *Response {
	subject := "Жалоба"
	if state.Data.CategoryName != "" {
		subject = "Жалоба на " + state.Data.CategoryName
	}

	results := make([]DeliveryRecord, 0, len(state.Data.SelectedRecipients))
	for _, rec := range state.Data.SelectedRecipients {
		results = append(results, m.deliveryRecord(ctx, state, rec, subject))
	}

	message := fmt.Sprintf("🎉 **Жалоба готова к отправке!**\nПолучателей: **%d**\n---\nВыберите удобный способ подачи для каждого органа ⬇️", len(results))

	return &Response{
		Message:   message,
		Results:   results,
		InputMode: dialog.InputSendingResults,
		Step:      dialog.StepComplete,
		CanGoBack: false,
	}
}

func (m *Machine) deliveryRecord(ctx context.Context, state *dialog.State, rec recipient.Recipient, subject string) DeliveryRecord {
	name := rec.Name
	if name == "" {
		name = "Государственный орган"
	}

	details, cached := state.Data.RecipientDetails[rec.ID]
	if !cached && m.verifier != nil && m.verifier.Enabled() {
		if fresh, err := m.verifier.Verify(ctx, name, state.Data.CategoryName); err == nil && fresh != nil {
			details = *fresh
			if state.Data.RecipientDetails == nil {
				state.Data.RecipientDetails = make(map[string]recipient.ContactDetails)
			}
			state.Data.RecipientDetails[rec.ID] = details
			cached = true
		} else if err != nil {
			log.Printf("[flow] sending-time lookup failed for %s: %v", rec.ID, err)
		}
	}

	record := DeliveryRecord{
		RecipientID:   rec.ID,
		RecipientName: name,
		Status:        StatusReady,
		Source:        "static_database",
		Confidence:    recipient.ConfidenceStatic,
	}

	email := rec.Email
	website := rec.Website
	address := ""
	if cached && details.Verified {
		if details.Email != "" {
			email = details.Email
		}
		if details.PortalURL != "" {
			website = details.PortalURL
		}
		address = details.Address
		record.Phone = details.Phone
		record.WorkingHours = details.WorkingHours
		record.PortalName = details.PortalName
		record.SubmissionMethods = details.SubmissionMethods
		record.AuthRequired = details.AuthRequired
		record.DocumentsNeeded = details.DocumentsNeeded
		record.ProcessingTime = details.ProcessingTime
		record.Tips = details.Tips
		record.Recommendation = details.Recommendation
		record.Source = details.Source
		record.Confidence = details.Confidence
	}

	record.DocumentText = substitutePlaceholders(state.Data.DocumentText, name, address)
	record.Address = address
	record.Website = website

	switch {
	case email != "":
		record.Method = MethodEmail
		record.Email = email
		record.MailtoLink = send.MailtoLink(email, subject, record.DocumentText, state.Data.User.Email)
		if m.sender != nil && m.sender.Configured() {
			if err := m.sender.SendDocument(email, subject, record.DocumentText, state.Data.User.FIO); err != nil {
				log.Printf("[flow] direct delivery to %s failed: %v", rec.ID, err)
			} else {
				record.Status = StatusSent
			}
		}
	case website != "":
		record.Method = MethodPortal
	default:
		record.Method = MethodManual
	}

	return record
}

// substitutePlaceholders addresses the generated header to one concrete
// recipient. An unknown address removes the placeholder instead of leaking
// it into the final text.
func substitutePlaceholders(text, name, address string) string {
	out := strings.ReplaceAll(text, "[название органа]", name)
	if address != "" {
		out = strings.ReplaceAll(out, "[адрес органа, если известен]", address)
		return strings.ReplaceAll(out, "[адрес органа]", address)
	}
	out = strings.ReplaceAll(out, "[адрес органа, если известен]\n", "")
	out = strings.ReplaceAll(out, "[адрес органа, если известен]", "")
	return strings.ReplaceAll(out, "[адрес органа]", "")
}
