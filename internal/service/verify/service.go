// Package verify looks up live submission contacts for government bodies.
package verify

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/zhalobnik/backend/internal/config"
	"github.com/zhalobnik/backend/internal/model/recipient"
	"github.com/zhalobnik/backend/internal/service/ai"
)

const verifyTemperature = 0.1

// Service runs a model-backed lookup of an organization's current intake
// contacts. When disabled or on any failure the caller keeps its static
// directory data, so the lookup can only add information.
type Service struct {
	enabled bool
	lookup  compose.Runnable[map[string]any, *schema.Message]
}

// NewService compiles the lookup chain. With verification switched off or
// credentials missing the service is constructed disabled.
func NewService(ctx context.Context, aiCfg config.AIConfig, cfg config.VerifyConfig) (*Service, error) {
	svc := &Service{enabled: cfg.Enabled && aiCfg.Enabled()}
	if !svc.enabled {
		log.Printf("[verify] contact verification disabled")
		return svc, nil
	}

	chatModel, err := aiCfg.NewChatModel(ctx, aiCfg.VerifyModel, verifyTemperature)
	if err != nil {
		return nil, fmt.Errorf("create verify model: %w", err)
	}

	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage(verifySystemPrompt),
		schema.UserMessage(verifyUserPrompt),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("compile verify chain: %w", err)
	}

	svc.lookup = runnable
	return svc, nil
}

// Enabled reports whether live lookups run at all.
func (s *Service) Enabled() bool {
	return s != nil && s.enabled && s.lookup != nil
}

type lookupPayload struct {
	Found             bool     `json:"found"`
	Address           string   `json:"address"`
	Phone             string   `json:"phone"`
	Email             string   `json:"email"`
	WorkingHours      string   `json:"working_hours"`
	PortalURL         string   `json:"portal_url"`
	PortalName        string   `json:"portal_name"`
	SubmissionMethods []string `json:"submission_methods"`
	AuthRequired      string   `json:"auth_required"`
	DocumentsNeeded   []string `json:"documents_needed"`
	ProcessingTime    string   `json:"processing_time"`
	Tips              string   `json:"tips"`
	Recommendation    string   `json:"recommendation"`
	Confidence        string   `json:"confidence"`
	Source            string   `json:"source"`
}

// Verify fetches current contacts for one organization. The result is
// marked Verified only when the model found data with high or medium
// confidence; low-confidence answers are returned unverified so callers
// can still show the advisory fields.
func (s *Service) Verify(ctx context.Context, orgName, category string) (*recipient.ContactDetails, error) {
	if !s.Enabled() {
		return nil, fmt.Errorf("verification disabled")
	}

	topic := ""
	if category != "" {
		topic = fmt.Sprintf(" по теме «%s»", category)
	}

	msg, err := s.lookup.Invoke(ctx, map[string]any{
		"org_name": orgName,
		"topic":    topic,
	})
	if err != nil {
		return nil, fmt.Errorf("verify lookup: %w", err)
	}
	if msg == nil || strings.TrimSpace(msg.Content) == "" {
		return nil, fmt.Errorf("verify lookup: empty response")
	}

	raw, err := ai.ExtractJSON(msg.Content)
	if err != nil {
		return nil, fmt.Errorf("verify lookup: %w", err)
	}

	payload := &lookupPayload{}
	if err := json.Unmarshal([]byte(raw), payload); err != nil {
		return nil, fmt.Errorf("verify lookup: %w", err)
	}

	verified := payload.Found && (payload.Confidence == "high" || payload.Confidence == "medium")
	log.Printf("[verify] lookup for %q: found=%t confidence=%s", orgName, payload.Found, payload.Confidence)

	return &recipient.ContactDetails{
		Verified:          verified,
		Address:           payload.Address,
		Phone:             payload.Phone,
		Email:             payload.Email,
		WorkingHours:      payload.WorkingHours,
		PortalURL:         payload.PortalURL,
		PortalName:        payload.PortalName,
		SubmissionMethods: payload.SubmissionMethods,
		AuthRequired:      payload.AuthRequired,
		DocumentsNeeded:   payload.DocumentsNeeded,
		ProcessingTime:    payload.ProcessingTime,
		Tips:              payload.Tips,
		Recommendation:    payload.Recommendation,
		Confidence:        payload.Confidence,
		Source:            payload.Source,
	}, nil
}

const verifySystemPrompt = `Ты — помощник для поиска полной информации о подаче жалоб в российские государственные органы.

Строгие правила:
1. Опирайся только на официальные источники (.gov.ru, домены госорганов)
2. НЕ выдумывай данные — если сведений нет, оставляй поле пустым
3. Возвращай только актуальные, работающие ссылки
4. Ответ — только один JSON-объект, никакого текста до или после

Поля JSON-объекта:
- found — булево, нашлась ли информация
- address — полный физический адрес с индексом
- phone — телефон приёмной или горячей линии
- email — адрес для обращений
- working_hours — часы работы приёмной, например «Пн-Пт 9:00-18:00»
- portal_url — ссылка на портал подачи обращений
- portal_name — название портала
- submission_methods — массив доступных способов: Портал, Email, Личный приём, Почта России
- auth_required — требования к регистрации: Госуслуги, ЕСИА, простая регистрация или без регистрации
- documents_needed — массив документов, которые могут понадобиться
- processing_time — срок рассмотрения, например «30 дней»
- tips — практический совет по подаче, 1-2 предложения
- recommendation — краткая оценка эффективности органа, 1 предложение
- confidence — high, medium или low
- source — URL источника информации`

const verifyUserPrompt = `Найди ПОЛНУЮ информацию для подачи жалобы в {org_name}{topic}.

Мне нужны:
1. Физический адрес органа (с индексом)
2. Телефон приёмной/горячей линии
3. Email для обращений
4. Часы работы приёмной
5. Ссылка на портал для онлайн-подачи
6. Доступные способы подачи (портал, email, лично, почтой)
7. Нужна ли регистрация (Госуслуги, ЕСИА, своя регистрация)
8. Какие документы могут понадобиться
9. Срок рассмотрения обращения
10. Практический совет по подаче

Ищи только на официальных источниках. Если не уверен — оставляй поле пустым.

JSON:`
