package dialog

import (
	"time"

	"github.com/google/uuid"

	"github.com/zhalobnik/backend/internal/model/recipient"
)

// Roles for history entries.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// InputMode tells the frontend which input widget to render for a turn.
type InputMode string

const (
	InputOptions             InputMode = "options"
	InputText                InputMode = "text"
	InputTextarea            InputMode = "textarea"
	InputMultiselect         InputMode = "multiselect"
	InputPreview             InputMode = "preview"
	InputSendingResults      InputMode = "sending_results"
	InputAutocompleteCompany InputMode = "autocomplete_company"
	InputAutocompleteAddress InputMode = "autocomplete_address"
	InputAutocompleteFIO     InputMode = "autocomplete_fio"
)

// MaxQAPairs is the hard cap on collected question/answer exchanges.
const MaxQAPairs = 10

// Choice is one selectable option presented to the user.
type Choice struct {
	ID          string            `json:"id"`
	Label       string            `json:"text"`
	Description string            `json:"description,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// Message is a single history entry. Messages are immutable once appended;
// history only shrinks through GoBack.
type Message struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Options   []Choice  `json:"options,omitempty"`
	InputMode InputMode `json:"input_type,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// QAPair is one resolved fact-gathering exchange. Order is significant: the
// sequence reconstructs the narrative for document generation.
type QAPair struct {
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Timestamp time.Time `json:"timestamp"`
}

// UserData holds the applicant contact fields collected one per turn.
type UserData struct {
	FIO      string `json:"fio,omitempty"`
	Address  string `json:"address,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
	OrgName  string `json:"org_name,omitempty"`
	OrgINN   string `json:"org_inn,omitempty"`
	Position string `json:"position,omitempty"`
}

// Data carries every field accumulated across steps.
type Data struct {
	UserType           string                                 `json:"user_type,omitempty"`
	Category           string                                 `json:"category,omitempty"`
	CategoryName       string                                 `json:"category_name,omitempty"`
	User               UserData                               `json:"user_data"`
	Company            CompanyData                            `json:"company_data"`
	DocumentText       string                                 `json:"document_text,omitempty"`
	SelectedRecipients []recipient.Recipient                  `json:"selected_recipients,omitempty"`
	RecipientOptions   []recipient.Recipient                  `json:"recipient_options,omitempty"`
	RecipientDetails   map[string]recipient.ContactDetails    `json:"recipient_details,omitempty"`
}

// State is the root aggregate, one per user session.
type State struct {
	ID        string    `json:"id"`
	Step      FlowStep  `json:"step"`
	History   []Message `json:"history"`
	Data      Data      `json:"data"`
	QAPairs   []QAPair  `json:"qa_pairs"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewState provisions a fresh conversation positioned at the welcome step.
func NewState() *State {
	now := time.Now().UTC()
	return &State{
		ID:        uuid.NewString(),
		Step:      StepWelcome,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// AddMessage appends a history entry and refreshes the update timestamp.
func (s *State) AddMessage(role, content string, options []Choice, mode InputMode) {
	msg := Message{
		Role:      role,
		Content:   content,
		Timestamp: time.Now().UTC(),
	}
	if role == RoleAssistant {
		msg.Options = options
		msg.InputMode = mode
	}
	s.History = append(s.History, msg)
	s.Touch()
}

// AddQAPair records one exchange. Pairs beyond MaxQAPairs are dropped so the
// log can never grow past the collection cap.
func (s *State) AddQAPair(question, answer string) bool {
	if len(s.QAPairs) >= MaxQAPairs {
		return false
	}
	s.QAPairs = append(s.QAPairs, QAPair{
		Question:  question,
		Answer:    answer,
		Timestamp: time.Now().UTC(),
	})
	s.Touch()
	return true
}

// LastAssistantMessage returns the most recent assistant entry, if any.
func (s *State) LastAssistantMessage() (Message, bool) {
	for i := len(s.History) - 1; i >= 0; i-- {
		if s.History[i].Role == RoleAssistant {
			return s.History[i], true
		}
	}
	return Message{}, false
}

// GoBack pops the latest user+assistant message pair and the latest QAPair.
// When the QA log empties the conversation returns to the quiz step.
func (s *State) GoBack() bool {
	if len(s.History) < 2 {
		return false
	}

	if s.History[len(s.History)-1].Role == RoleAssistant {
		s.History = s.History[:len(s.History)-1]
	}
	if len(s.History) > 0 && s.History[len(s.History)-1].Role == RoleUser {
		s.History = s.History[:len(s.History)-1]
	}

	if len(s.QAPairs) > 0 {
		s.QAPairs = s.QAPairs[:len(s.QAPairs)-1]
	}
	if len(s.QAPairs) == 0 {
		s.Step = StepQuiz
	}

	s.Touch()
	return true
}

// Restart wipes everything but the identity and returns to the welcome step.
func (s *State) Restart() {
	s.Step = StepWelcome
	s.History = nil
	s.QAPairs = nil
	s.Data = Data{}
	s.Touch()
}

// Touch refreshes the update timestamp.
func (s *State) Touch() {
	s.UpdatedAt = time.Now().UTC()
}

// Clone produces an independent deep copy, so callers can mutate freely and
// commit the result only after a turn succeeds.
func (s *State) Clone() *State {
	out := *s

	if s.History != nil {
		out.History = make([]Message, len(s.History))
		for i, msg := range s.History {
			out.History[i] = msg
			if msg.Options != nil {
				out.History[i].Options = cloneChoices(msg.Options)
			}
		}
	}
	if s.QAPairs != nil {
		out.QAPairs = append([]QAPair(nil), s.QAPairs...)
	}
	if s.Data.SelectedRecipients != nil {
		out.Data.SelectedRecipients = append([]recipient.Recipient(nil), s.Data.SelectedRecipients...)
	}
	if s.Data.RecipientOptions != nil {
		out.Data.RecipientOptions = append([]recipient.Recipient(nil), s.Data.RecipientOptions...)
	}
	if s.Data.RecipientDetails != nil {
		details := make(map[string]recipient.ContactDetails, len(s.Data.RecipientDetails))
		for id, d := range s.Data.RecipientDetails {
			details[id] = d
		}
		out.Data.RecipientDetails = details
	}

	return &out
}

func cloneChoices(in []Choice) []Choice {
	out := make([]Choice, len(in))
	for i, c := range in {
		out[i] = c
		if c.Metadata != nil {
			meta := make(map[string]string, len(c.Metadata))
			for k, v := range c.Metadata {
				meta[k] = v
			}
			out[i].Metadata = meta
		}
	}
	return out
}
