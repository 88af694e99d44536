package flow

import (
	"context"
	"testing"

	"github.com/zhalobnik/backend/internal/model/dialog"
)

func TestContactCollectionOrderIndividual(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	state := dialog.NewState()
	state.Step = dialog.StepCollectingContacts
	state.Data.UserType = "individual"

	resp := f.machine.Render(ctx, state)
	if resp.InputMode != dialog.InputAutocompleteFIO {
		t.Fatalf("first question must ask the name, got %s", resp.InputMode)
	}

	resp = f.machine.HandleTurn(ctx, state, "Иванов Иван Иванович", nil)
	if state.Data.User.FIO != "Иванов Иван Иванович" {
		t.Fatalf("name not stored: %q", state.Data.User.FIO)
	}
	if resp.InputMode != dialog.InputAutocompleteAddress {
		t.Fatalf("second question must ask the address, got %s", resp.InputMode)
	}

	resp = f.machine.HandleTurn(ctx, state, "г. Москва, ул. Ленина, д. 1", nil)
	if resp.InputMode != dialog.InputText {
		t.Fatalf("third question must ask the phone, got %s", resp.InputMode)
	}

	resp = f.machine.HandleTurn(ctx, state, "+7 900 000-00-00", nil)
	if resp.InputMode != dialog.InputText {
		t.Fatalf("fourth question must ask the email, got %s", resp.InputMode)
	}

	resp = f.machine.HandleTurn(ctx, state, "ivanov@example.com", nil)
	if state.Data.User.Email != "ivanov@example.com" {
		t.Fatalf("email not stored: %q", state.Data.User.Email)
	}
	if f.drafter.calls != 1 {
		t.Fatalf("completed contacts must trigger generation, calls=%d", f.drafter.calls)
	}
	if resp.Step != dialog.StepPreview {
		t.Fatalf("expected preview after generation, got %s", resp.Step)
	}
	if state.Data.DocumentText == "" {
		t.Fatal("generated text must be stored on the state")
	}
}

func TestContactCollectionOrganizationPayload(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	state := dialog.NewState()
	state.Step = dialog.StepCollectingContacts
	state.Data.UserType = "organization"

	resp := f.machine.Render(ctx, state)
	if resp.InputMode != dialog.InputAutocompleteCompany {
		t.Fatalf("organizations start with the requisites lookup, got %s", resp.InputMode)
	}

	payload := &dialog.CompanyData{
		INN:      "7707083893",
		Address:  "г. Москва, ул. Ленина, д. 1",
		Director: "Сидоров Сидор Сидорович",
	}
	resp = f.machine.HandleTurn(ctx, state, "ООО Ромашка", payload)

	user := state.Data.User
	if user.OrgName != "ООО Ромашка" || user.OrgINN != "7707083893" {
		t.Fatalf("requisites not copied: %+v", user)
	}
	if user.FIO != "Сидоров Сидор Сидорович" {
		t.Fatalf("director not copied as signatory: %+v", user)
	}
	if user.Position != "Руководитель" {
		t.Fatalf("missing post must default to the generic title, got %q", user.Position)
	}
	if resp.InputMode != dialog.InputText {
		t.Fatalf("next question must ask the phone, got %s", resp.InputMode)
	}

	resp = f.machine.HandleTurn(ctx, state, "+7 495 000-00-00", nil)
	if f.drafter.calls != 1 {
		t.Fatalf("completed contacts must trigger generation, calls=%d", f.drafter.calls)
	}
	if resp.Step != dialog.StepPreview {
		t.Fatalf("expected preview after generation, got %s", resp.Step)
	}
}

func TestContactCollectionTrimsInput(t *testing.T) {
	f := newFixture()
	state := dialog.NewState()
	state.Step = dialog.StepCollectingContacts
	state.Data.UserType = "individual"

	f.machine.HandleTurn(context.Background(), state, "  Иванов Иван  ", nil)

	if state.Data.User.FIO != "Иванов Иван" {
		t.Fatalf("input not trimmed: %q", state.Data.User.FIO)
	}
}
