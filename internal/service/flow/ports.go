package flow

import (
	"context"

	"github.com/zhalobnik/backend/internal/model/recipient"
	"github.com/zhalobnik/backend/internal/service/ai"
)

// QuestionAgent proposes the next fact-gathering question.
type QuestionAgent interface {
	NextQuestion(ctx context.Context, in ai.QuizInput) (*ai.QuizReply, error)
}

// DocumentAgent drafts the grievance text.
type DocumentAgent interface {
	GenerateDocument(ctx context.Context, in ai.DocumentInput) (string, error)
}

// RecipientAgent recommends destination bodies for the finished document.
type RecipientAgent interface {
	RecommendRecipients(ctx context.Context, in ai.RecipientInput) ([]ai.Suggestion, error)
}

// ContactVerifier fetches live submission contacts for one organization.
type ContactVerifier interface {
	Enabled() bool
	Verify(ctx context.Context, orgName, category string) (*recipient.ContactDetails, error)
}

// DocumentSender performs direct email delivery.
type DocumentSender interface {
	Configured() bool
	SendDocument(to, subject, body, senderName string) error
}
