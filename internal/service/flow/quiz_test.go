package flow

import (
	"context"
	"errors"
	"testing"

	"github.com/zhalobnik/backend/internal/model/dialog"
	"github.com/zhalobnik/backend/internal/service/ai"
)

func quizState(category string, pairs int) *dialog.State {
	state := dialog.NewState()
	state.Step = dialog.StepQuiz
	state.Data.UserType = "individual"
	state.Data.Category = category
	state.Data.CategoryName = category
	addPairs(state, pairs)
	return state
}

func TestQuizCatalogQuestionFirst(t *testing.T) {
	f := newFixture()
	state := quizState("zhkh", 0)

	resp := f.machine.Render(context.Background(), state)

	if resp.Message != "**Уточните проблему:**" {
		t.Fatalf("expected the catalog question, got %q", resp.Message)
	}
	if len(resp.Options) != 8 {
		t.Fatalf("expected 8 sub-problems, got %d", len(resp.Options))
	}
	if resp.InputMode != dialog.InputOptions {
		t.Fatalf("expected options mode, got %s", resp.InputMode)
	}
	if f.questions.calls != 0 {
		t.Fatal("the catalog question must not consult the model")
	}
}

func TestQuizOrgLookupAfterCatalog(t *testing.T) {
	f := newFixture()
	state := quizState("zhkh", 1)

	resp := f.machine.Render(context.Background(), state)

	if resp.InputMode != dialog.InputAutocompleteCompany {
		t.Fatalf("expected company autocomplete, got %s", resp.InputMode)
	}
	if f.questions.calls != 0 {
		t.Fatal("the offender lookup must not consult the model")
	}
}

func TestQuizOrgLookupFirstWithoutCatalog(t *testing.T) {
	f := newFixture()
	state := quizState("utilities", 0)

	resp := f.machine.Render(context.Background(), state)

	if resp.InputMode != dialog.InputAutocompleteCompany {
		t.Fatalf("expected company autocomplete, got %s", resp.InputMode)
	}
}

func TestQuizOrgQuestionOverride(t *testing.T) {
	f := newFixture()
	state := quizState("competitor", 0)

	resp := f.machine.Render(context.Background(), state)

	if resp.Message != "Какая компания ведёт недобросовестную конкуренцию?" {
		t.Fatalf("expected the category-specific wording, got %q", resp.Message)
	}
	if resp.InputMode != dialog.InputAutocompleteCompany {
		t.Fatalf("expected company autocomplete, got %s", resp.InputMode)
	}
}

func TestQuizAgentQuestionWithOptions(t *testing.T) {
	f := newFixture()
	f.questions.reply = &ai.QuizReply{
		Question: "Как часто шумят соседи?",
		Options:  []string{"Каждый день", "По выходным"},
	}
	state := quizState("neighbors", 1)

	resp := f.machine.Render(context.Background(), state)

	if f.questions.calls != 1 {
		t.Fatalf("expected one model call, got %d", f.questions.calls)
	}
	if resp.Message != "Как часто шумят соседи?" {
		t.Fatalf("unexpected question %q", resp.Message)
	}
	if resp.InputMode != dialog.InputOptions || len(resp.Options) != 2 {
		t.Fatalf("options not mapped: mode=%s n=%d", resp.InputMode, len(resp.Options))
	}
	if resp.Options[0].ID != "Каждый день" || resp.Options[0].Label != "Каждый день" {
		t.Fatalf("plain option must use its text as id: %+v", resp.Options[0])
	}
}

func TestQuizAgentQuestionWithoutOptionsUsesTextarea(t *testing.T) {
	f := newFixture()
	f.questions.reply = &ai.QuizReply{Question: "Опишите подробности."}
	state := quizState("neighbors", 1)

	resp := f.machine.Render(context.Background(), state)

	if resp.InputMode != dialog.InputTextarea {
		t.Fatalf("expected textarea, got %s", resp.InputMode)
	}
}

func TestQuizAutocompleteModeStripsOptions(t *testing.T) {
	f := newFixture()
	f.questions.reply = &ai.QuizReply{
		Question:  "По какому адресу это произошло?",
		Options:   []string{"не важно"},
		InputType: "autocomplete_address",
	}
	state := quizState("neighbors", 1)

	resp := f.machine.Render(context.Background(), state)

	if resp.InputMode != dialog.InputAutocompleteAddress {
		t.Fatalf("expected address autocomplete, got %s", resp.InputMode)
	}
	if resp.Options != nil {
		t.Fatal("autocomplete questions must not carry options")
	}
}

func TestQuizFallbackLadderOnAgentError(t *testing.T) {
	f := newFixture()
	f.questions.err = errors.New("model down")
	state := quizState("neighbors", 2)

	resp := f.machine.Render(context.Background(), state)

	if resp.Message != "Это единичный случай или проблема повторяется?" {
		t.Fatalf("expected the third ladder question, got %q", resp.Message)
	}
	if resp.Step != dialog.StepQuiz || !resp.CanGoBack {
		t.Fatalf("ladder questions stay on the quiz step: %+v", resp)
	}
}

func TestQuizFallbackPastLadderMovesToContacts(t *testing.T) {
	f := newFixture()
	f.questions.err = errors.New("model down")
	state := quizState("neighbors", 7)

	resp := f.machine.Render(context.Background(), state)

	if resp.Step != dialog.StepCollectingContacts {
		t.Fatalf("exhausted ladder must hand over to contacts, got %s", resp.Step)
	}
}

func TestQuizEarlyReadyOverridden(t *testing.T) {
	f := newFixture()
	f.questions.reply = &ai.QuizReply{Ready: true}
	state := quizState("neighbors", 3)

	resp := f.machine.Render(context.Background(), state)

	if resp.Step != dialog.StepQuiz {
		t.Fatalf("ready below the floor must keep asking, got step %s", resp.Step)
	}
	if resp.Message != "Вы уже обращались куда-то с этой проблемой?" {
		t.Fatalf("expected the fourth ladder question, got %q", resp.Message)
	}
}

func TestQuizEarlyReadyWithQuestionKeepsAsking(t *testing.T) {
	f := newFixture()
	f.questions.reply = &ai.QuizReply{Ready: true, Question: "Ещё один важный вопрос?"}
	state := quizState("neighbors", 3)

	resp := f.machine.Render(context.Background(), state)

	if resp.Message != "Ещё один важный вопрос?" {
		t.Fatalf("expected the model's question, got %q", resp.Message)
	}
}

func TestQuizReadyHonoredAtEight(t *testing.T) {
	f := newFixture()
	f.questions.reply = &ai.QuizReply{Ready: true}
	state := quizState("neighbors", 8)

	resp := f.machine.Render(context.Background(), state)

	if resp.Step != dialog.StepCollectingContacts {
		t.Fatalf("ready at 8 answers must move to contacts, got %s", resp.Step)
	}
}

func TestQuizForcedCompletionAtCap(t *testing.T) {
	f := newFixture()
	f.questions.reply = &ai.QuizReply{Question: "Ещё вопрос?"}
	state := quizState("neighbors", dialog.MaxQAPairs)

	resp := f.machine.Render(context.Background(), state)

	if resp.Step != dialog.StepCollectingContacts {
		t.Fatalf("the cap must force completion, got %s", resp.Step)
	}
	if f.questions.calls != 0 {
		t.Fatal("the model must not be consulted past the cap")
	}
}
