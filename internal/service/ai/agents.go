package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/zhalobnik/backend/internal/model/dialog"
)

// QuizInput is the conversation context the question agent sees.
type QuizInput struct {
	Category     string
	CategoryName string
	UserType     string
	Pairs        []dialog.QAPair
}

// QuizReply is the parsed question-agent output. Ready means the agent
// believes enough facts are collected; the caller enforces its own floor
// and ceiling on top of it.
type QuizReply struct {
	Ready     bool     `json:"ready"`
	Question  string   `json:"question"`
	Options   []string `json:"options"`
	InputType string   `json:"input_type"`
}

// NextQuestion asks the model for the next fact-gathering question.
func (s *Service) NextQuestion(ctx context.Context, in QuizInput) (*QuizReply, error) {
	directive := "Собрано достаточно информации. Верни ready: true."
	if len(in.Pairs) < 8 {
		directive = fmt.Sprintf("Задано %d из 10 вопросов. Задай следующий ВАЖНЫЙ вопрос.", len(in.Pairs))
	}

	content, err := invoke(ctx, s.quiz, map[string]any{
		"category_name": valueOr(in.CategoryName, "Не указана"),
		"user_type":     userTypeLabel(in.UserType),
		"qa_count":      len(in.Pairs),
		"qa_context":    formatPairs(in.Pairs, "Диалог только начался."),
		"directive":     directive,
	})
	if err != nil {
		return nil, err
	}

	raw, err := ExtractJSON(content)
	if err != nil {
		return nil, fmt.Errorf("quiz reply: %w", err)
	}

	reply := &QuizReply{}
	if err := json.Unmarshal([]byte(raw), reply); err != nil {
		return nil, fmt.Errorf("quiz reply: %w", err)
	}

	log.Printf("[ai] quiz reply ready=%t question_len=%d options=%d", reply.Ready, len(reply.Question), len(reply.Options))
	return reply, nil
}

// DocumentInput carries everything the drafting agent needs.
type DocumentInput struct {
	CategoryName string
	Pairs        []dialog.QAPair
	User         dialog.UserData
	Company      dialog.CompanyData
}

// GenerateDocument produces the full grievance text. The header keeps the
// recipient placeholder so one draft can be addressed to several bodies.
func (s *Service) GenerateDocument(ctx context.Context, in DocumentInput) (string, error) {
	content, err := invoke(ctx, s.document, map[string]any{
		"category_name":   valueOr(in.CategoryName, "Общая жалоба"),
		"qa_context":      formatPairs(in.Pairs, "Детали не предоставлены"),
		"company_details": formatCompanyDetails(in.Company),
		"fio":             valueOr(in.User.FIO, "[ФИО заявителя]"),
		"address":         valueOr(in.User.Address, "[Адрес заявителя]"),
		"phone":           valueOr(in.User.Phone, "[Телефон]"),
		"email":           valueOr(in.User.Email, "[Email]"),
	})
	if err != nil {
		return "", err
	}

	text := strings.TrimSpace(content)
	log.Printf("[ai] generated document, length=%d", len(text))
	return text, nil
}

// RecipientInput carries the drafted document plus the evidence that drove
// it, so the recommendation can reason about jurisdiction.
type RecipientInput struct {
	CategoryName string
	Pairs        []dialog.QAPair
	Company      dialog.CompanyData
	DocumentText string
}

// Suggestion is one recommended destination as the model proposed it,
// before directory enrichment.
type Suggestion struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Level         string `json:"level"`
	Priority      string `json:"priority"`
	Reason        string `json:"reason"`
	Effectiveness string `json:"effectiveness"`
}

// RecommendRecipients asks the model for destination bodies across
// instance levels.
func (s *Service) RecommendRecipients(ctx context.Context, in RecipientInput) ([]Suggestion, error) {
	document := in.DocumentText
	if runes := []rune(document); len(runes) > 2000 {
		document = string(runes[:2000])
	}

	content, err := invoke(ctx, s.recipient, map[string]any{
		"category_name": in.CategoryName,
		"company_info":  formatCompanyInfo(in.Company),
		"qa_context":    formatPairs(in.Pairs, "Не указано"),
		"document":      valueOr(document, "Не сгенерирован"),
	})
	if err != nil {
		return nil, err
	}

	raw, err := ExtractJSON(content)
	if err != nil {
		return nil, fmt.Errorf("recipient reply: %w", err)
	}

	var reply struct {
		Recipients []Suggestion `json:"recipients"`
	}
	if err := json.Unmarshal([]byte(raw), &reply); err != nil {
		return nil, fmt.Errorf("recipient reply: %w", err)
	}
	if len(reply.Recipients) == 0 {
		return nil, fmt.Errorf("recipient reply: empty list")
	}

	log.Printf("[ai] recommended %d recipients", len(reply.Recipients))
	return reply.Recipients, nil
}

// formatPairs renders the QA log as a numbered transcript.
func formatPairs(pairs []dialog.QAPair, empty string) string {
	if len(pairs) == 0 {
		return empty
	}

	var b strings.Builder
	for i, qa := range pairs {
		fmt.Fprintf(&b, "%d. В: %s\n   О: %s\n", i+1, qa.Question, qa.Answer)
	}
	return b.String()
}

func formatCompanyDetails(c dialog.CompanyData) string {
	if c.Empty() {
		return ""
	}

	director := valueOr(c.Director, "Не указан")
	if c.DirectorPost != "" && c.Director != "" {
		director = c.DirectorPost + ": " + c.Director
	}

	return fmt.Sprintf(`
РЕКВИЗИТЫ ОРГАНИЗАЦИИ-ОТВЕТЧИКА (из базы данных):
Полное наименование: %s
ИНН: %s
ОГРН: %s
КПП: %s
Юридический адрес: %s
Руководитель: %s

ОБЯЗАТЕЛЬНО ВКЛЮЧИ ЭТИ РЕКВИЗИТЫ В ТЕКСТ ЖАЛОБЫ!
`,
		valueOr(c.Name, "Не указано"),
		valueOr(c.INN, "Не указан"),
		valueOr(c.OGRN, "Не указан"),
		valueOr(c.KPP, "Не указан"),
		valueOr(c.Address, "Не указан"),
		director,
	)
}

func formatCompanyInfo(c dialog.CompanyData) string {
	if c.Empty() {
		return ""
	}

	jurisdiction := "Не определено из адреса"
	if signals := c.JurisdictionSignals(); len(signals) > 0 {
		jurisdiction = strings.Join(signals, "\n")
	}

	return fmt.Sprintf(`
ОРГАНИЗАЦИЯ-ОТВЕТЧИК:
- Наименование: %s
- ИНН: %s
- Юридический адрес: %s

ПОДВЕДОМСТВЕННОСТЬ (по юридическому адресу компании):
%s
`,
		valueOr(c.Name, "Не указано"),
		valueOr(c.INN, "Не указан"),
		valueOr(c.Address, "Не указан"),
		jurisdiction,
	)
}

func userTypeLabel(userType string) string {
	if userType == "organization" {
		return "организация / ИП"
	}
	return "обычный человек"
}

func valueOr(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
