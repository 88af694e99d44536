package dialog

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	dialogModel "github.com/zhalobnik/backend/internal/model/dialog"
	"github.com/zhalobnik/backend/internal/model/recipient"
	"github.com/zhalobnik/backend/internal/service/ai"
	dialogService "github.com/zhalobnik/backend/internal/service/dialog"
	"github.com/zhalobnik/backend/internal/service/flow"
)

type stubQuestions struct{}

func (stubQuestions) NextQuestion(context.Context, ai.QuizInput) (*ai.QuizReply, error) {
	return &ai.QuizReply{Question: "Что произошло?"}, nil
}

type stubDrafter struct{}

func (stubDrafter) GenerateDocument(context.Context, ai.DocumentInput) (string, error) {
	return "В [название органа]\n\nЖАЛОБА", nil
}

type stubRecommender struct{}

func (stubRecommender) RecommendRecipients(context.Context, ai.RecipientInput) ([]ai.Suggestion, error) {
	return nil, nil
}

type stubVerifier struct{}

func (stubVerifier) Enabled() bool { return false }

func (stubVerifier) Verify(context.Context, string, string) (*recipient.ContactDetails, error) {
	return nil, nil
}

type stubSender struct{}

func (stubSender) Configured() bool { return false }

func (stubSender) SendDocument(string, string, string, string) error { return nil }

func setupRouter(t *testing.T) (*chi.Mux, *dialogService.Service) {
	t.Helper()

	sessions := dialogService.NewService(t.TempDir())
	registry := recipient.NewMemoryStore(
		recipient.SeedDirectory(),
		recipient.SeedRecommendations(),
		recipient.SeedCategories(),
	)
	machine := flow.NewMachine(stubQuestions{}, stubDrafter{}, stubRecommender{}, stubVerifier{}, stubSender{}, registry)

	r := chi.NewRouter()
	New(sessions, machine).RegisterRoutes(r)
	return r, sessions
}

func postJSON(t *testing.T, r http.Handler, path string, body map[string]any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func createSession(t *testing.T, r http.Handler) string {
	t.Helper()

	resp := postJSON(t, r, "/session", map[string]any{})
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}
	var body struct {
		SessionID string `json:"session_id"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.SessionID == "" {
		t.Fatal("expected a session id")
	}
	return body.SessionID
}

func TestCreateSession(t *testing.T) {
	r, _ := setupRouter(t)

	resp := postJSON(t, r, "/session", map[string]any{})
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}

	var body struct {
		SessionID string                `json:"session_id"`
		Step      string                `json:"step"`
		History   []dialogModel.Message `json:"history"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Step != "user_type" {
		t.Fatalf("expected user_type step, got %s", body.Step)
	}
	if len(body.History) != 1 {
		t.Fatalf("expected the welcome turn in history, got %d entries", len(body.History))
	}
}

func TestChatRequiresMessage(t *testing.T) {
	r, _ := setupRouter(t)
	sessionID := createSession(t, r)

	resp := postJSON(t, r, "/chat", map[string]any{"session_id": sessionID, "message": "   "})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestChatRequiresSession(t *testing.T) {
	r, _ := setupRouter(t)

	resp := postJSON(t, r, "/chat", map[string]any{"message": "привет"})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for a missing session id, got %d", resp.Code)
	}

	resp = postJSON(t, r, "/chat", map[string]any{"session_id": "nope", "message": "привет"})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for an unknown session, got %d", resp.Code)
	}
}

func TestChatInvalidBody(t *testing.T) {
	r, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader([]byte("not json")))
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestChatAdvancesFlow(t *testing.T) {
	r, _ := setupRouter(t)
	sessionID := createSession(t, r)

	resp := postJSON(t, r, "/chat", map[string]any{"session_id": sessionID, "message": "individual"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var body struct {
		Step    string               `json:"step"`
		Options []dialogModel.Choice `json:"options"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Step != "category" {
		t.Fatalf("expected category step, got %s", body.Step)
	}
	if len(body.Options) != 8 {
		t.Fatalf("expected 8 categories, got %d", len(body.Options))
	}
}

func TestStateEndpoint(t *testing.T) {
	r, _ := setupRouter(t)
	sessionID := createSession(t, r)

	req := httptest.NewRequest(http.MethodGet, "/state?session_id="+sessionID, nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/state", nil)
	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without a session id, got %d", resp.Code)
	}
}

func TestBackOnFreshSession(t *testing.T) {
	r, _ := setupRouter(t)
	sessionID := createSession(t, r)

	resp := postJSON(t, r, "/back", map[string]any{"session_id": sessionID})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var body struct {
		Success bool `json:"success"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Success {
		t.Fatal("a fresh session has nothing to go back to")
	}
}

func TestBackPopsExchange(t *testing.T) {
	r, _ := setupRouter(t)
	sessionID := createSession(t, r)
	postJSON(t, r, "/chat", map[string]any{"session_id": sessionID, "message": "individual"})

	resp := postJSON(t, r, "/back", map[string]any{"session_id": sessionID})

	var body struct {
		Success bool                  `json:"success"`
		History []dialogModel.Message `json:"history"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !body.Success {
		t.Fatal("expected back navigation to succeed")
	}
	if len(body.History) != 1 {
		t.Fatalf("expected only the welcome turn left, got %d entries", len(body.History))
	}
}

func TestRestart(t *testing.T) {
	r, _ := setupRouter(t)
	sessionID := createSession(t, r)
	postJSON(t, r, "/chat", map[string]any{"session_id": sessionID, "message": "individual"})
	postJSON(t, r, "/chat", map[string]any{"session_id": sessionID, "message": "zhkh"})

	resp := postJSON(t, r, "/restart", map[string]any{"session_id": sessionID})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var body struct {
		Success bool                  `json:"success"`
		Step    string                `json:"step"`
		History []dialogModel.Message `json:"history"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !body.Success || body.Step != "user_type" {
		t.Fatalf("expected a fresh conversation, got %+v", body)
	}
	if len(body.History) != 1 {
		t.Fatalf("expected only the welcome turn, got %d entries", len(body.History))
	}
}

func TestDraftRoundTripOverHTTP(t *testing.T) {
	r, _ := setupRouter(t)
	sessionID := createSession(t, r)
	postJSON(t, r, "/chat", map[string]any{"session_id": sessionID, "message": "individual"})

	resp := postJSON(t, r, "/draft", map[string]any{"session_id": sessionID})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var saved struct {
		Success bool   `json:"success"`
		DraftID string `json:"draft_id"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &saved); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !saved.Success || saved.DraftID == "" {
		t.Fatalf("unexpected save result %+v", saved)
	}

	req := httptest.NewRequest(http.MethodGet, "/draft/"+saved.DraftID, nil)
	loadResp := httptest.NewRecorder()
	r.ServeHTTP(loadResp, req)

	if loadResp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", loadResp.Code)
	}

	var loaded struct {
		SessionID string `json:"session_id"`
	}
	if err := json.Unmarshal(loadResp.Body.Bytes(), &loaded); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if loaded.SessionID != sessionID {
		t.Fatalf("draft lost the session identity: %s", loaded.SessionID)
	}
}

func TestLoadDraftNotFound(t *testing.T) {
	r, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/draft/nope", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestSendEndpoint(t *testing.T) {
	r, sessions := setupRouter(t)
	ctx := context.Background()

	state, err := sessions.Create(ctx)
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	state.Step = dialogModel.StepConfirmSend
	state.Data.CategoryName = "Управляющая компания / ЖКХ"
	state.Data.DocumentText = "В [название органа]\n\nЖАЛОБА"
	state.Data.SelectedRecipients = []recipient.Recipient{
		{ID: "prosecution", Name: "Прокуратура РФ", Email: "genproc@genproc.gov.ru"},
	}
	if err := sessions.Put(ctx, state); err != nil {
		t.Fatalf("put session: %v", err)
	}

	resp := postJSON(t, r, "/send", map[string]any{"session_id": state.ID})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var body struct {
		Step    string                `json:"step"`
		Results []flow.DeliveryRecord `json:"results"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Step != "complete" {
		t.Fatalf("expected the terminal step, got %s", body.Step)
	}
	if len(body.Results) != 1 {
		t.Fatalf("expected 1 manifest entry, got %d", len(body.Results))
	}
	if body.Results[0].Method != flow.MethodEmail {
		t.Fatalf("expected email delivery, got %s", body.Results[0].Method)
	}
}
