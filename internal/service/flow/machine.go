// Package flow drives the conversation wizard: it applies user input to the
// dialog state and renders the assistant turn for the resulting step.
package flow

import (
	"context"
	"strings"

	"github.com/zhalobnik/backend/internal/model/dialog"
	"github.com/zhalobnik/backend/internal/model/recipient"
)

// Response is one rendered assistant turn.
type Response struct {
	Message      string           `json:"message"`
	Options      []dialog.Choice  `json:"options,omitempty"`
	InputMode    dialog.InputMode `json:"input_type"`
	Step         dialog.FlowStep  `json:"step"`
	DocumentText string           `json:"complaint_text,omitempty"`
	Results      []DeliveryRecord `json:"results,omitempty"`
	CanGoBack    bool             `json:"can_go_back"`
	IsLoading    bool             `json:"is_loading,omitempty"`
}

// Machine routes each turn to the right step handler. It mutates the state
// it is given and leaves persistence to the caller, so a failed turn never
// commits partial changes.
type Machine struct {
	questions   QuestionAgent
	drafter     DocumentAgent
	recommender RecipientAgent
	verifier    ContactVerifier
	sender      DocumentSender
	registry    recipient.Store
}

// NewMachine wires the step handlers to their collaborators.
func NewMachine(questions QuestionAgent, drafter DocumentAgent, recommender RecipientAgent, verifier ContactVerifier, sender DocumentSender, registry recipient.Store) *Machine {
	return &Machine{
		questions:   questions,
		drafter:     drafter,
		recommender: recommender,
		verifier:    verifier,
		sender:      sender,
		registry:    registry,
	}
}

// Start renders the opening turn for a fresh conversation and records it in
// the history.
func (m *Machine) Start(_ context.Context, state *dialog.State) *Response {
	resp := m.renderWelcome(state)
	state.Step = resp.Step
	state.AddMessage(dialog.RoleAssistant, resp.Message, resp.Options, resp.InputMode)
	return resp
}

// HandleTurn processes one user message: merge any autocomplete payload,
// apply the input to the current step, then render the next turn. Step
// handlers degrade internally, so a turn always yields a response.
func (m *Machine) HandleTurn(ctx context.Context, state *dialog.State, input string, payload *dialog.CompanyData) *Response {
	if payload != nil && !payload.Empty() {
		state.Data.Company = dialog.MergeCompanyData(state.Data.Company, *payload)
	}

	state.AddMessage(dialog.RoleUser, input, nil, "")
	m.applyInput(state, input, payload)

	resp := m.process(ctx, state)

	if resp.DocumentText != "" {
		state.Data.DocumentText = resp.DocumentText
	}
	state.Step = resp.Step
	state.AddMessage(dialog.RoleAssistant, resp.Message, resp.Options, resp.InputMode)
	return resp
}

// Render re-renders the current step without consuming input. Used after
// back navigation and draft rehydration.
func (m *Machine) Render(ctx context.Context, state *dialog.State) *Response {
	return m.process(ctx, state)
}

// applyInput folds the user message into the state according to the step
// the question was asked on. Step transitions triggered here are the
// input-driven ones; rendering may advance the step further.
func (m *Machine) applyInput(state *dialog.State, input string, payload *dialog.CompanyData) {
	switch state.Step {
	case dialog.StepUserType:
		state.Data.UserType = strings.TrimSpace(input)

	case dialog.StepCategory:
		id := strings.ToLower(strings.TrimSpace(input))
		state.Data.Category = id
		state.Data.CategoryName = id
		if cat, ok := m.registry.Category(id); ok {
			state.Data.CategoryName = cat.Name
		}
		state.Step = dialog.StepQuiz

	case dialog.StepQuiz:
		question := ""
		if msg, ok := state.LastAssistantMessage(); ok {
			question, _, _ = strings.Cut(msg.Content, "\n")
		}
		state.AddQAPair(question, input)

	case dialog.StepCollectingContacts:
		m.applyContactInput(state, input, payload)

	case dialog.StepPreview:
		switch input {
		case "approve":
			state.Step = dialog.StepRecipients
		case "regenerate":
			state.Step = dialog.StepGeneratingDocument
		}

	case dialog.StepRecipients:
		if input != "approve" && input != "regenerate" {
			state.Data.SelectedRecipients = m.parseSelection(state, input)
			state.Step = dialog.StepConfirmSend
		}

	case dialog.StepConfirmSend:
		switch input {
		case "send":
			state.Step = dialog.StepSending
		case "back":
			state.Step = dialog.StepRecipients
		}
	}
}

// process renders the assistant turn for the current step.
func (m *Machine) process(ctx context.Context, state *dialog.State) *Response {
	switch state.Step {
	case dialog.StepWelcome:
		return m.renderWelcome(state)
	case dialog.StepUserType:
		return m.renderCategories(state)
	case dialog.StepCategory, dialog.StepQuiz:
		return m.renderQuiz(ctx, state)
	case dialog.StepCollectingContacts:
		return m.renderContacts(state)
	case dialog.StepGeneratingDocument:
		return m.renderGenerating(ctx, state)
	case dialog.StepPreview:
		return m.renderPreview(state)
	case dialog.StepRecipients:
		return m.renderRecipients(ctx, state)
	case dialog.StepConfirmSend:
		return m.renderConfirm(state)
	case dialog.StepSending:
		return m.renderSending(ctx, state)
	case dialog.StepComplete:
		return m.renderComplete(state)
	default:
		return m.renderWelcome(state)
	}
}
