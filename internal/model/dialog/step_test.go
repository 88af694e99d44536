package dialog

import "testing"

func TestParseStepKnown(t *testing.T) {
	if got := ParseStep("recipients"); got != StepRecipients {
		t.Fatalf("expected recipients, got %s", got)
	}
}

func TestParseStepUnknownMapsToWelcome(t *testing.T) {
	for _, raw := range []string{"", "bogus", "WELCOME", "quizz"} {
		if got := ParseStep(raw); got != StepWelcome {
			t.Fatalf("ParseStep(%q) = %s, expected welcome", raw, got)
		}
	}
}

func TestNextStep(t *testing.T) {
	cases := []struct {
		current, next FlowStep
	}{
		{StepWelcome, StepUserType},
		{StepUserType, StepCategory},
		{StepCategory, StepQuiz},
		{StepQuiz, StepCollectingContacts},
		{StepCollectingContacts, StepGeneratingDocument},
		{StepGeneratingDocument, StepPreview},
		{StepPreview, StepRecipients},
		{StepRecipients, StepConfirmSend},
		{StepConfirmSend, StepSending},
		{StepSending, StepComplete},
		{StepComplete, StepComplete},
	}
	for _, c := range cases {
		if got := NextStep(c.current); got != c.next {
			t.Fatalf("NextStep(%s) = %s, expected %s", c.current, got, c.next)
		}
	}
}

func TestPreviousStep(t *testing.T) {
	prev, ok := PreviousStep(StepQuiz)
	if !ok || prev != StepCategory {
		t.Fatalf("PreviousStep(quiz) = %s, %t", prev, ok)
	}

	if _, ok := PreviousStep(StepWelcome); ok {
		t.Fatal("welcome must have no predecessor")
	}
	if _, ok := PreviousStep("bogus"); ok {
		t.Fatal("unknown step must have no predecessor")
	}
}
