package dialog

// FlowStep identifies one position in the fixed conversation sequence.
type FlowStep string

const (
	StepWelcome            FlowStep = "welcome"
	StepUserType           FlowStep = "user_type"
	StepCategory           FlowStep = "category"
	StepQuiz               FlowStep = "quiz"
	StepCollectingContacts FlowStep = "collecting_contacts"
	StepGeneratingDocument FlowStep = "generating_document"
	StepPreview            FlowStep = "preview"
	StepRecipients         FlowStep = "recipients"
	StepConfirmSend        FlowStep = "confirm_send"
	StepSending            FlowStep = "sending"
	StepComplete           FlowStep = "complete"
)

// flowOrder is the canonical step sequence. Navigation is table-driven so
// that adding a step cannot desynchronize forward and backward transitions.
var flowOrder = []FlowStep{
	StepWelcome,
	StepUserType,
	StepCategory,
	StepQuiz,
	StepCollectingContacts,
	StepGeneratingDocument,
	StepPreview,
	StepRecipients,
	StepConfirmSend,
	StepSending,
	StepComplete,
}

// ParseStep validates a raw step value. Anything unrecognized maps to
// StepWelcome so that a corrupted or stale state can always be processed.
func ParseStep(raw string) FlowStep {
	candidate := FlowStep(raw)
	for _, step := range flowOrder {
		if step == candidate {
			return step
		}
	}
	return StepWelcome
}

// NextStep returns the step following the given one. The terminal step maps
// to itself.
func NextStep(current FlowStep) FlowStep {
	for i, step := range flowOrder {
		if step == current {
			if i+1 < len(flowOrder) {
				return flowOrder[i+1]
			}
			return StepComplete
		}
	}
	return StepComplete
}

// PreviousStep returns the step preceding the given one. StepWelcome has no
// predecessor, reported by ok == false.
func PreviousStep(current FlowStep) (FlowStep, bool) {
	for i, step := range flowOrder {
		if step == current {
			if i > 0 {
				return flowOrder[i-1], true
			}
			return "", false
		}
	}
	return "", false
}
