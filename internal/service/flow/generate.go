package flow

import (
	"context"
	"fmt"
	"log"

	"github.com/zhalobnik/backend/internal/model/dialog"
	"github.com/zhalobnik/backend/internal/service/ai"
)

// renderGenerating drafts the document and lands on the preview step. A
// failed generation keeps the step so the user can retry or step back.
func (m *Machine) renderGenerating(ctx context.Context, state *dialog.State) *Response {
	text, err := m.drafter.GenerateDocument(ctx, ai.DocumentInput{
		CategoryName: state.Data.CategoryName,
		Pairs:        state.QAPairs,
		User:         state.Data.User,
		Company:      state.Data.Company,
	})
	if err != nil {
		log.Printf("[flow] document generation failed: %v", err)
		return &Response{
			Message: "❌ Ошибка при генерации. Попробуем ещё раз?",
			Options: []dialog.Choice{
				{ID: "retry", Label: "🔄 Попробовать снова"},
				{ID: "back", Label: "◀️ Вернуться назад"},
			},
			InputMode: dialog.InputOptions,
			Step:      dialog.StepGeneratingDocument,
			CanGoBack: true,
		}
	}

	return &Response{
		Message:      fmt.Sprintf("✅ **Жалоба готова!** Проверьте текст:\n\n---\n\n%s\n\n---", text),
		DocumentText: text,
		InputMode:    dialog.InputPreview,
		Step:         dialog.StepPreview,
		Options: []dialog.Choice{
			{ID: "approve", Label: "✅ Всё верно, продолжить"},
			{ID: "edit", Label: "✏️ Хочу отредактировать"},
			{ID: "regenerate", Label: "🔄 Сгенерировать заново"},
		},
		CanGoBack: true,
	}
}
