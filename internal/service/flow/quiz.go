package flow

import (
	"context"
	"log"
	"strings"

	"github.com/zhalobnik/backend/internal/model/dialog"
	"github.com/zhalobnik/backend/internal/service/ai"
)

// Categories directed at a concrete organization: the wizard asks for the
// offender through company autocomplete so requisites arrive structured.
var orgDirectedCategories = map[string]bool{
	"shop":          true,
	"bank":          true,
	"employer":      true,
	"zhkh":          true,
	"contractor":    true,
	"utilities":     true,
	"landlord":      true,
	"tax":           true,
	"medical":       true,
	"competitor":    true,
	"subcontractor": true,
}

var orgQuestionOverrides = map[string]string{
	"competitor":    "Какая компания ведёт недобросовестную конкуренцию?",
	"subcontractor": "На какого подрядчика / исполнителя жалуетесь?",
}

// renderQuiz produces the next fact-gathering question, or hands over to
// contact collection once enough is known. The model's own "done" signal is
// clamped: never before 8 answers, always at 10.
func (m *Machine) renderQuiz(ctx context.Context, state *dialog.State) *Response {
	if len(state.QAPairs) >= dialog.MaxQAPairs {
		return m.renderContacts(state)
	}

	if resp := m.fixedQuizQuestion(state); resp != nil {
		return resp
	}

	reply, err := m.questions.NextQuestion(ctx, ai.QuizInput{
		Category:     state.Data.Category,
		CategoryName: state.Data.CategoryName,
		UserType:     state.Data.UserType,
		Pairs:        state.QAPairs,
	})
	if err != nil {
		log.Printf("[flow] question agent failed, using fallback ladder: %v", err)
		return m.fallbackQuestion(state)
	}

	if reply.Ready {
		if len(state.QAPairs) >= 8 {
			return m.renderContacts(state)
		}
		// Declared done too early. Keep asking.
		if strings.TrimSpace(reply.Question) == "" {
			return m.fallbackQuestion(state)
		}
	}

	question := strings.TrimSpace(reply.Question)
	if question == "" {
		return m.fallbackQuestion(state)
	}

	mode := dialog.InputMode(reply.InputType)
	options := quizOptions(reply.Options)
	switch {
	case strings.HasPrefix(string(mode), "autocomplete_"):
		options = nil
	case mode == "":
		if len(options) > 0 {
			mode = dialog.InputOptions
		} else {
			mode = dialog.InputTextarea
		}
	}

	return &Response{
		Message:   question,
		Options:   options,
		InputMode: mode,
		Step:      dialog.StepQuiz,
		CanGoBack: true,
	}
}

// fixedQuizQuestion returns the deterministic opening questions: the
// category's sub-problem catalog first, then the offender lookup for
// organization-directed categories.
func (m *Machine) fixedQuizQuestion(state *dialog.State) *Response {
	qa := len(state.QAPairs)
	category := state.Data.Category

	hasCatalog := false
	if cat, ok := m.registry.Category(category); ok && len(cat.Problems) > 0 {
		if qa == 0 {
			options := make([]dialog.Choice, 0, len(cat.Problems))
			for _, p := range cat.Problems {
				options = append(options, dialog.Choice{ID: p.ID, Label: p.Name})
			}
			return &Response{
				Message:   "**Уточните проблему:**",
				Options:   options,
				InputMode: dialog.InputOptions,
				Step:      dialog.StepQuiz,
				CanGoBack: true,
			}
		}
		hasCatalog = true
	}

	orgTurn := 0
	if hasCatalog {
		orgTurn = 1
	}
	if qa == orgTurn && orgDirectedCategories[category] {
		question := orgQuestionOverrides[category]
		if question == "" {
			question = "На какую организацию или компанию вы хотите пожаловаться?"
		}
		return &Response{
			Message:   question,
			InputMode: dialog.InputAutocompleteCompany,
			Step:      dialog.StepQuiz,
			CanGoBack: true,
		}
	}

	return nil
}

// fallbackQuestion serves the static question ladder when the model is
// unavailable. Past the ladder the quiz is considered complete.
func (m *Machine) fallbackQuestion(state *dialog.State) *Response {
	ladder := fallbackLadder()
	idx := len(state.QAPairs)
	if idx >= len(ladder) {
		return m.renderContacts(state)
	}

	resp := ladder[idx]
	resp.Step = dialog.StepQuiz
	resp.CanGoBack = true
	return &resp
}

func fallbackLadder() []Response {
	return []Response{
		{
			Message:   "В чём именно заключается проблема? Опишите кратко.",
			InputMode: dialog.InputTextarea,
		},
		{
			Message: "Когда это произошло? Выберите или напишите свой вариант:",
			Options: []dialog.Choice{
				{ID: "today", Label: "Сегодня"},
				{ID: "week", Label: "На этой неделе"},
				{ID: "month", Label: "В этом месяце"},
				{ID: "long", Label: "Давно (более месяца)"},
			},
			InputMode: dialog.InputOptions,
		},
		{
			Message: "Это единичный случай или проблема повторяется?",
			Options: []dialog.Choice{
				{ID: "once", Label: "Один раз"},
				{ID: "sometimes", Label: "Иногда повторяется"},
				{ID: "often", Label: "Часто"},
				{ID: "constant", Label: "Постоянно"},
			},
			InputMode: dialog.InputOptions,
		},
		{
			Message: "Вы уже обращались куда-то с этой проблемой?",
			Options: []dialog.Choice{
				{ID: "no", Label: "Нет, это первое обращение"},
				{ID: "yes_org", Label: "Да, в саму организацию"},
				{ID: "yes_gov", Label: "Да, в госорганы"},
				{ID: "yes_both", Label: "Да, и туда и туда"},
			},
			InputMode: dialog.InputOptions,
		},
		{
			Message: "Какой результат вы хотите получить?",
			Options: []dialog.Choice{
				{ID: "fix", Label: "Исправить ситуацию"},
				{ID: "compensate", Label: "Получить компенсацию"},
				{ID: "punish", Label: "Наказать виновных"},
				{ID: "all", Label: "Всё вышеперечисленное"},
			},
			InputMode: dialog.InputOptions,
		},
		{
			Message: "Есть ли у вас доказательства? (фото, видео, документы, свидетели)",
			Options: []dialog.Choice{
				{ID: "yes_docs", Label: "Да, есть документы"},
				{ID: "yes_photo", Label: "Да, есть фото/видео"},
				{ID: "yes_witness", Label: "Есть свидетели"},
				{ID: "no", Label: "Нет доказательств"},
			},
			InputMode: dialog.InputOptions,
		},
		{
			Message:   "Укажите подробности: адрес, названия организаций, имена виновных лиц (если известны):",
			InputMode: dialog.InputTextarea,
		},
	}
}

func quizOptions(raw []string) []dialog.Choice {
	if len(raw) == 0 {
		return nil
	}
	out := make([]dialog.Choice, 0, len(raw))
	for _, opt := range raw {
		out = append(out, dialog.Choice{ID: opt, Label: opt})
	}
	return out
}
