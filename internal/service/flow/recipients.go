package flow

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/zhalobnik/backend/internal/model/dialog"
	"github.com/zhalobnik/backend/internal/model/recipient"
	"github.com/zhalobnik/backend/internal/service/ai"
)

// renderRecipients runs the recommendation pipeline, enriches each
// candidate with live contacts and presents the multiselect. The candidate
// list and lookup results are cached on the state so the selection and
// sending steps reuse them without re-querying.
func (m *Machine) renderRecipients(ctx context.Context, state *dialog.State) *Response {
	recipients := m.recommendRecipients(ctx, state)

	options := make([]dialog.Choice, 0, len(recipients)+1)
	for i := range recipients {
		rec := &recipients[i]
		m.enrichRecipient(ctx, state, rec)

		prefix := ""
		if rec.Priority == recipient.PriorityPrimary {
			prefix = "⭐ "
		}
		var meta map[string]string
		if rec.Level != "" || rec.Effectiveness != "" {
			meta = map[string]string{}
			if rec.Level != "" {
				meta["level"] = rec.Level
			}
			if rec.Effectiveness != "" {
				meta["effectiveness"] = rec.Effectiveness
			}
		}
		options = append(options, dialog.Choice{
			ID:          rec.ID,
			Label:       prefix + rec.Name,
			Description: rec.Reason,
			Metadata:    meta,
		})
	}
	options = append(options, dialog.Choice{ID: "custom", Label: "📧 Другой адрес (ввести вручную)"})

	state.Data.RecipientOptions = recipients

	return &Response{
		Message:   "**Куда отправить жалобу?**\n\n🏠 местный — быстрее, знают специфику\n🏛️ региональный — если местный не помог\n🏛️ федеральный — серьёзные нарушения\n\n⭐ — рекомендуемые варианты:",
		Options:   options,
		InputMode: dialog.InputMultiselect,
		Step:      dialog.StepRecipients,
		CanGoBack: true,
	}
}

// enrichRecipient overlays verified live contacts onto a candidate. A
// failed lookup changes nothing: static directory data always survives.
func (m *Machine) enrichRecipient(ctx context.Context, state *dialog.State, rec *recipient.Recipient) {
	if m.verifier == nil || !m.verifier.Enabled() {
		return
	}

	details, err := m.verifier.Verify(ctx, rec.Name, state.Data.CategoryName)
	if err != nil || details == nil {
		log.Printf("[flow] contact lookup failed for %s: %v", rec.ID, err)
		return
	}

	if state.Data.RecipientDetails == nil {
		state.Data.RecipientDetails = make(map[string]recipient.ContactDetails)
	}
	state.Data.RecipientDetails[rec.ID] = *details

	if !details.Verified {
		return
	}
	if details.Email != "" {
		rec.Email = details.Email
	}
	if details.PortalURL != "" {
		rec.Website = details.PortalURL
	}
	if details.Address != "" {
		rec.Address = details.Address
	}
	rec.SourceConfidence = recipient.ConfidenceVerified
}

// recommendRecipients resolves candidates in three tiers: the model
// recommendation, the static category mapping, and finally the universal
// supervisory body. Repeated ids from the recommendation are dropped, the
// first occurrence wins.
func (m *Machine) recommendRecipients(ctx context.Context, state *dialog.State) []recipient.Recipient {
	suggestions, err := m.recommender.RecommendRecipients(ctx, ai.RecipientInput{
		CategoryName: state.Data.CategoryName,
		Pairs:        state.QAPairs,
		Company:      state.Data.Company,
		DocumentText: state.Data.DocumentText,
	})
	if err != nil || len(suggestions) == 0 {
		log.Printf("[flow] recommendation failed for category %q, using static mapping: %v", state.Data.Category, err)
		return m.staticRecipients(state.Data.Category)
	}

	out := make([]recipient.Recipient, 0, len(suggestions))
	seen := make(map[string]bool, len(suggestions))
	for _, s := range suggestions {
		if s.ID == "" || seen[s.ID] {
			continue
		}
		seen[s.ID] = true

		rec := recipient.Recipient{
			ID:               s.ID,
			Name:             s.Name,
			Priority:         s.Priority,
			Level:            s.Level,
			Effectiveness:    s.Effectiveness,
			Reason:           s.Reason,
			SourceConfidence: recipient.ConfidenceUnknown,
			IsCustom:         true,
		}
		if rec.Priority == "" {
			rec.Priority = recipient.PrioritySecondary
		}
		if rec.Effectiveness == "" {
			rec.Effectiveness = "medium"
		}

		if entry, found := m.registry.Find(s.ID); found {
			rec.IsCustom = false
			rec.SourceConfidence = recipient.ConfidenceStatic
			rec.Email = entry.Email
			rec.Website = entry.Website
			rec.Jurisdiction = entry.Jurisdiction
			if rec.Name == "" {
				rec.Name = entry.Name
			}
			if rec.Reason == "" {
				rec.Reason = entry.Reason
			}
		}
		if rec.Name == "" {
			rec.Name = rec.ID
		}

		out = append(out, rec)
	}
	if len(out) == 0 {
		return m.staticRecipients(state.Data.Category)
	}
	return out
}

func (m *Machine) staticRecipients(category string) []recipient.Recipient {
	rec, ok := m.registry.Recommendation(category)
	if !ok {
		rec = recipient.Recommendation{Primary: []string{"prosecution"}}
	}

	out := make([]recipient.Recipient, 0, len(rec.Primary)+len(rec.Secondary))
	appendIDs := func(ids []string, priority string) {
		for _, id := range ids {
			r := recipient.Recipient{
				ID:               id,
				Name:             id,
				Priority:         priority,
				SourceConfidence: recipient.ConfidenceUnknown,
				IsCustom:         true,
			}
			if entry, found := m.registry.Find(id); found {
				r.Name = entry.Name
				r.Reason = entry.Reason
				r.Email = entry.Email
				r.Website = entry.Website
				r.Jurisdiction = entry.Jurisdiction
				r.SourceConfidence = recipient.ConfidenceStatic
				r.IsCustom = false
			}
			out = append(out, r)
		}
	}
	appendIDs(rec.Primary, recipient.PriorityPrimary)
	appendIDs(rec.Secondary, recipient.PrioritySecondary)
	return out
}

// parseSelection resolves the multiselect answer into recipients. Ids are
// deduplicated in order; the manual-entry marker is dropped. Resolution
// prefers the cached candidate list, then the directory, and finally keeps
// the raw id as both id and name.
func (m *Machine) parseSelection(state *dialog.State, input string) []recipient.Recipient {
	cached := make(map[string]recipient.Recipient, len(state.Data.RecipientOptions))
	for _, r := range state.Data.RecipientOptions {
		cached[r.ID] = r
	}

	seen := make(map[string]bool)
	var out []recipient.Recipient
	for _, id := range parseSelectionIDs(input) {
		if id == "" || id == "custom" || seen[id] {
			continue
		}
		seen[id] = true

		if r, ok := cached[id]; ok {
			out = append(out, r)
			continue
		}
		if entry, ok := m.registry.Find(id); ok {
			out = append(out, recipient.Recipient{
				ID:               id,
				Name:             entry.Name,
				Reason:           entry.Reason,
				Email:            entry.Email,
				Website:          entry.Website,
				Jurisdiction:     entry.Jurisdiction,
				SourceConfidence: recipient.ConfidenceStatic,
			})
			continue
		}
		out = append(out, recipient.Recipient{
			ID:               id,
			Name:             id,
			SourceConfidence: recipient.ConfidenceUnknown,
			IsCustom:         true,
		})
	}
	return out
}

func parseSelectionIDs(input string) []string {
	trimmed := strings.TrimSpace(input)

	if strings.HasPrefix(trimmed, "[") {
		var arr []string
		if err := json.Unmarshal([]byte(trimmed), &arr); err == nil {
			for i := range arr {
				arr[i] = strings.TrimSpace(arr[i])
			}
			return arr
		}
	}

	parts := strings.Split(trimmed, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
