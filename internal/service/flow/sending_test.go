package flow

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/zhalobnik/backend/internal/model/dialog"
	"github.com/zhalobnik/backend/internal/model/recipient"
)

func sendingState(selected ...recipient.Recipient) *dialog.State {
	state := dialog.NewState()
	state.Step = dialog.StepSending
	state.Data.CategoryName = "Управляющая компания / ЖКХ"
	state.Data.DocumentText = "В [название органа]\n[адрес органа, если известен]\n\nЖАЛОБА\n\nТекст обращения."
	state.Data.SelectedRecipients = selected
	return state
}

func TestSendingMethodPriority(t *testing.T) {
	f := newFixture()
	state := sendingState(
		recipient.Recipient{ID: "with_email", Name: "Орган А", Email: "a@example.com", Website: "https://a.example.com"},
		recipient.Recipient{ID: "with_portal", Name: "Орган Б", Website: "https://b.example.com"},
		recipient.Recipient{ID: "bare", Name: "Орган В"},
	)

	resp := f.machine.Render(context.Background(), state)

	if len(resp.Results) != 3 {
		t.Fatalf("expected 3 manifest entries, got %d", len(resp.Results))
	}
	if resp.Results[0].Method != MethodEmail {
		t.Fatalf("email beats portal, got %s", resp.Results[0].Method)
	}
	if !strings.HasPrefix(resp.Results[0].MailtoLink, "mailto:a@example.com?") {
		t.Fatalf("unexpected mailto link %q", resp.Results[0].MailtoLink)
	}
	if resp.Results[1].Method != MethodPortal {
		t.Fatalf("portal beats manual, got %s", resp.Results[1].Method)
	}
	if resp.Results[2].Method != MethodManual {
		t.Fatalf("expected manual, got %s", resp.Results[2].Method)
	}
	for _, r := range resp.Results {
		if r.Status != StatusReady {
			t.Fatalf("without a relay every entry stays ready, got %s", r.Status)
		}
	}
	if resp.Step != dialog.StepComplete || resp.CanGoBack {
		t.Fatalf("sending lands on the terminal step: %+v", resp)
	}
}

func TestSendingSubstitutesRecipientName(t *testing.T) {
	f := newFixture()
	state := sendingState(recipient.Recipient{ID: "prosecution", Name: "Прокуратура РФ"})

	resp := f.machine.Render(context.Background(), state)

	text := resp.Results[0].DocumentText
	if !strings.HasPrefix(text, "В Прокуратура РФ\n") {
		t.Fatalf("recipient name not substituted: %q", text)
	}
	if strings.Contains(text, "[название органа]") || strings.Contains(text, "[адрес органа") {
		t.Fatalf("placeholders leaked into the final text: %q", text)
	}
}

func TestSendingUsesCachedDetailsWithoutLookup(t *testing.T) {
	f := newFixture()
	f.verifier.enabled = true
	state := sendingState(recipient.Recipient{ID: "prosecution", Name: "Прокуратура РФ"})
	state.Data.RecipientDetails = map[string]recipient.ContactDetails{
		"prosecution": {
			Verified:   true,
			Email:      "cached@genproc.gov.ru",
			Address:    "г. Москва, ул. Большая Дмитровка, д. 15а",
			Source:     "web",
			Confidence: "high",
		},
	}

	resp := f.machine.Render(context.Background(), state)

	if f.verifier.calls != 0 {
		t.Fatalf("cached details must be reused, lookups=%d", f.verifier.calls)
	}
	record := resp.Results[0]
	if record.Email != "cached@genproc.gov.ru" || record.Method != MethodEmail {
		t.Fatalf("cached contacts not applied: %+v", record)
	}
	if record.Source != "web" || record.Confidence != "high" {
		t.Fatalf("cached provenance not carried: %+v", record)
	}
	if !strings.Contains(record.DocumentText, "г. Москва, ул. Большая Дмитровка, д. 15а") {
		t.Fatalf("known address must replace the placeholder: %q", record.DocumentText)
	}
}

func TestSendingLooksUpUncachedAndCaches(t *testing.T) {
	f := newFixture()
	f.verifier.enabled = true
	f.verifier.details = map[string]*recipient.ContactDetails{
		"Прокуратура РФ": {Verified: true, Email: "fresh@genproc.gov.ru"},
	}
	state := sendingState(recipient.Recipient{ID: "prosecution", Name: "Прокуратура РФ"})

	resp := f.machine.Render(context.Background(), state)

	if f.verifier.calls != 1 {
		t.Fatalf("expected one lookup, got %d", f.verifier.calls)
	}
	if resp.Results[0].Email != "fresh@genproc.gov.ru" {
		t.Fatalf("lookup result not applied: %+v", resp.Results[0])
	}
	if _, ok := state.Data.RecipientDetails["prosecution"]; !ok {
		t.Fatal("lookup result must be cached on the state")
	}
}

func TestSendingLookupFailureFallsBackToStaticContacts(t *testing.T) {
	f := newFixture()
	f.verifier.enabled = true
	f.verifier.err = errors.New("lookup down")
	state := sendingState(recipient.Recipient{ID: "prosecution", Name: "Прокуратура РФ", Email: "genproc@genproc.gov.ru"})

	resp := f.machine.Render(context.Background(), state)

	record := resp.Results[0]
	if record.Email != "genproc@genproc.gov.ru" || record.Method != MethodEmail {
		t.Fatalf("static contacts must survive a failed lookup: %+v", record)
	}
}

func TestSendingDirectDeliveryMarksSent(t *testing.T) {
	f := newFixture()
	f.sender.configured = true
	state := sendingState(recipient.Recipient{ID: "prosecution", Name: "Прокуратура РФ", Email: "genproc@genproc.gov.ru"})
	state.Data.User.FIO = "Иванов Иван"

	resp := f.machine.Render(context.Background(), state)

	if resp.Results[0].Status != StatusSent {
		t.Fatalf("delivered entries must be marked sent, got %s", resp.Results[0].Status)
	}
	if len(f.sender.sent) != 1 {
		t.Fatalf("expected one delivery, got %d", len(f.sender.sent))
	}
	mail := f.sender.sent[0]
	if mail.to != "genproc@genproc.gov.ru" {
		t.Fatalf("unexpected destination %s", mail.to)
	}
	if mail.subject != "Жалоба на Управляющая компания / ЖКХ" {
		t.Fatalf("unexpected subject %q", mail.subject)
	}
	if mail.sender != "Иванов Иван" {
		t.Fatalf("unexpected sender name %q", mail.sender)
	}
}

func TestSendingDeliveryFailureKeepsReady(t *testing.T) {
	f := newFixture()
	f.sender.configured = true
	f.sender.err = errors.New("relay down")
	state := sendingState(recipient.Recipient{ID: "prosecution", Name: "Прокуратура РФ", Email: "genproc@genproc.gov.ru"})

	resp := f.machine.Render(context.Background(), state)

	if resp.Results[0].Status != StatusReady {
		t.Fatalf("failed delivery must stay ready, got %s", resp.Results[0].Status)
	}
}

func TestSendingSubjectWithoutCategory(t *testing.T) {
	f := newFixture()
	f.sender.configured = true
	state := sendingState(recipient.Recipient{ID: "prosecution", Name: "Прокуратура РФ", Email: "genproc@genproc.gov.ru"})
	state.Data.CategoryName = ""

	f.machine.Render(context.Background(), state)

	if f.sender.sent[0].subject != "Жалоба" {
		t.Fatalf("unexpected subject %q", f.sender.sent[0].subject)
	}
}

func TestSendingNamelessRecipientGetsGenericName(t *testing.T) {
	f := newFixture()
	state := sendingState(recipient.Recipient{ID: "mystery"})

	resp := f.machine.Render(context.Background(), state)

	if resp.Results[0].RecipientName != "Государственный орган" {
		t.Fatalf("unexpected name %q", resp.Results[0].RecipientName)
	}
}

func TestSubstitutePlaceholders(t *testing.T) {
	text := "В [название органа]\n[адрес органа, если известен]\n\nТекст"

	withAddress := substitutePlaceholders(text, "Прокуратура РФ", "г. Москва")
	if !strings.Contains(withAddress, "Прокуратура РФ") || !strings.Contains(withAddress, "г. Москва") {
		t.Fatalf("substitution failed: %q", withAddress)
	}

	withoutAddress := substitutePlaceholders(text, "Прокуратура РФ", "")
	if strings.Contains(withoutAddress, "[адрес органа") {
		t.Fatalf("empty address must remove the placeholder: %q", withoutAddress)
	}
	if !strings.HasPrefix(withoutAddress, "В Прокуратура РФ\n\nТекст") {
		t.Fatalf("placeholder line not collapsed: %q", withoutAddress)
	}
}
