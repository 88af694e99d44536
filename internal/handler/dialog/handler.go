// Package dialog exposes the conversation wizard over HTTP.
package dialog

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	dialogModel "github.com/zhalobnik/backend/internal/model/dialog"
	dialogService "github.com/zhalobnik/backend/internal/service/dialog"
	"github.com/zhalobnik/backend/internal/service/flow"
	"github.com/zhalobnik/backend/pkg/utils"
)

// Handler serves the conversation endpoints.
type Handler struct {
	sessions *dialogService.Service
	machine  *flow.Machine
}

// New creates the conversation handler.
func New(sessions *dialogService.Service, machine *flow.Machine) *Handler {
	return &Handler{sessions: sessions, machine: machine}
}

// RegisterRoutes mounts the conversation routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/session", h.handleCreateSession)
	r.Get("/state", h.handleState)
	r.Post("/chat", h.handleChat)
	r.Post("/back", h.handleBack)
	r.Post("/restart", h.handleRestart)
	r.Post("/draft", h.handleSaveDraft)
	r.Get("/draft/{draftID}", h.handleLoadDraft)
	r.Post("/send", h.handleSend)
}

type turnResponse struct {
	SessionID    string                `json:"session_id"`
	Message      string                `json:"message"`
	Options      []dialogModel.Choice  `json:"options,omitempty"`
	InputMode    dialogModel.InputMode `json:"input_type"`
	Step         dialogModel.FlowStep  `json:"step"`
	DocumentText string                `json:"complaint_text,omitempty"`
	Results      []flow.DeliveryRecord `json:"results,omitempty"`
	CanGoBack    bool                  `json:"can_go_back"`
	History      []dialogModel.Message `json:"history,omitempty"`
}

func (h *Handler) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	state, err := h.sessions.Create(r.Context())
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to create session")
		return
	}

	resp := h.machine.Start(r.Context(), state)
	if err := h.sessions.Put(r.Context(), state); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to store session")
		return
	}

	utils.RespondJSON(w, http.StatusCreated, turnResponse{
		SessionID: state.ID,
		Message:   resp.Message,
		Options:   resp.Options,
		InputMode: resp.InputMode,
		Step:      resp.Step,
		CanGoBack: resp.CanGoBack,
		History:   state.History,
	})
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	state, ok := h.loadState(w, r, r.URL.Query().Get("session_id"))
	if !ok {
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"session_id": state.ID,
		"history":    state.History,
		"step":       state.Step,
		"data":       state.Data,
	})
}

func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		SessionID   string                   `json:"session_id"`
		Message     string                   `json:"message"`
		CompanyData *dialogModel.CompanyData `json:"company_data"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	message := strings.TrimSpace(payload.Message)
	if message == "" {
		utils.RespondError(w, http.StatusBadRequest, "message is required")
		return
	}

	state, ok := h.loadState(w, r, payload.SessionID)
	if !ok {
		return
	}

	resp := h.machine.HandleTurn(r.Context(), state, message, payload.CompanyData)

	if err := h.sessions.Put(r.Context(), state); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to store session")
		return
	}

	utils.RespondJSON(w, http.StatusOK, turnResponse{
		SessionID:    state.ID,
		Message:      resp.Message,
		Options:      resp.Options,
		InputMode:    resp.InputMode,
		Step:         resp.Step,
		DocumentText: resp.DocumentText,
		Results:      resp.Results,
		CanGoBack:    resp.CanGoBack,
	})
}

func (h *Handler) handleBack(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		SessionID string `json:"session_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	state, ok := h.loadState(w, r, payload.SessionID)
	if !ok {
		return
	}

	if !state.GoBack() {
		utils.RespondJSON(w, http.StatusOK, map[string]any{
			"success": false,
			"error":   "nothing to go back to",
		})
		return
	}

	if err := h.sessions.Put(r.Context(), state); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to store session")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"history": state.History,
		"step":    state.Step,
	})
}

func (h *Handler) handleRestart(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		SessionID string `json:"session_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	state, ok := h.loadState(w, r, payload.SessionID)
	if !ok {
		return
	}

	state.Restart()
	h.machine.Start(r.Context(), state)

	if err := h.sessions.Put(r.Context(), state); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to store session")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"history": state.History,
		"step":    state.Step,
	})
}

func (h *Handler) handleSaveDraft(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		SessionID string `json:"session_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	state, ok := h.loadState(w, r, payload.SessionID)
	if !ok {
		return
	}

	draftID, err := h.sessions.SaveDraft(r.Context(), state)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to save draft")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"draft_id": draftID,
		"url":      "/api/draft/" + draftID,
	})
}

func (h *Handler) handleLoadDraft(w http.ResponseWriter, r *http.Request) {
	draftID := chi.URLParam(r, "draftID")

	state, err := h.sessions.LoadDraft(r.Context(), draftID)
	if err != nil {
		if errors.Is(err, dialogService.ErrDraftNotFound) {
			utils.RespondError(w, http.StatusNotFound, "draft not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "failed to load draft")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"session_id": state.ID,
		"history":    state.History,
		"step":       state.Step,
		"data":       state.Data,
	})
}

// handleSend runs the sending step as a dedicated endpoint, mirroring a
// chat turn with the fixed confirmation command.
func (h *Handler) handleSend(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		SessionID string `json:"session_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	state, ok := h.loadState(w, r, payload.SessionID)
	if !ok {
		return
	}

	resp := h.machine.HandleTurn(r.Context(), state, "send", nil)

	if err := h.sessions.Put(r.Context(), state); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to store session")
		return
	}

	utils.RespondJSON(w, http.StatusOK, turnResponse{
		SessionID: state.ID,
		Message:   resp.Message,
		Options:   resp.Options,
		InputMode: resp.InputMode,
		Step:      resp.Step,
		Results:   resp.Results,
		CanGoBack: resp.CanGoBack,
	})
}

func (h *Handler) loadState(w http.ResponseWriter, r *http.Request, sessionID string) (*dialogModel.State, bool) {
	if sessionID == "" {
		utils.RespondError(w, http.StatusBadRequest, "session_id is required")
		return nil, false
	}

	state, err := h.sessions.Get(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, dialogService.ErrSessionNotFound) {
			utils.RespondError(w, http.StatusBadRequest, "session not found")
			return nil, false
		}
		utils.RespondError(w, http.StatusInternalServerError, "failed to load session")
		return nil, false
	}
	return state, true
}
