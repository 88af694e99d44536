// Package suggest serves the autocomplete endpoints backed by DaData.
package suggest

import (
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	suggestService "github.com/zhalobnik/backend/internal/service/suggest"
	"github.com/zhalobnik/backend/pkg/utils"
)

// Handler serves suggestion queries. Lookup failures degrade to empty
// lists: autocomplete is a convenience, never a blocker.
type Handler struct {
	client *suggestService.Client
}

// New creates the suggestion handler.
func New(client *suggestService.Client) *Handler {
	return &Handler{client: client}
}

// RegisterRoutes mounts the suggestion routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/suggest/company", h.handleCompany)
	r.Get("/suggest/address", h.handleAddress)
	r.Get("/suggest/fio", h.handleFIO)
}

func (h *Handler) handleCompany(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if len([]rune(query)) < 2 {
		respondSuggestions(w, []suggestService.Company{})
		return
	}

	// An all-digit query of tax-id length is an exact lookup.
	if isDigits(query) && len(query) >= 10 {
		company, err := h.client.FindCompanyByINN(r.Context(), query)
		if err != nil {
			log.Printf("[suggest] inn lookup failed: %v", err)
		}
		if company == nil {
			respondSuggestions(w, []suggestService.Company{})
			return
		}
		respondSuggestions(w, []suggestService.Company{*company})
		return
	}

	companies, err := h.client.SuggestCompany(r.Context(), query)
	if err != nil {
		log.Printf("[suggest] company lookup failed: %v", err)
	}
	if companies == nil {
		companies = []suggestService.Company{}
	}
	respondSuggestions(w, companies)
}

func (h *Handler) handleAddress(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if len([]rune(query)) < 3 {
		respondSuggestions(w, []suggestService.Address{})
		return
	}

	addresses, err := h.client.SuggestAddress(r.Context(), query)
	if err != nil {
		log.Printf("[suggest] address lookup failed: %v", err)
	}
	if addresses == nil {
		addresses = []suggestService.Address{}
	}
	respondSuggestions(w, addresses)
}

func (h *Handler) handleFIO(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if len([]rune(query)) < 2 {
		respondSuggestions(w, []suggestService.FIO{})
		return
	}

	names, err := h.client.SuggestFIO(r.Context(), query)
	if err != nil {
		log.Printf("[suggest] fio lookup failed: %v", err)
	}
	if names == nil {
		names = []suggestService.FIO{}
	}
	respondSuggestions(w, names)
}

func respondSuggestions(w http.ResponseWriter, suggestions any) {
	utils.RespondJSON(w, http.StatusOK, map[string]any{"suggestions": suggestions})
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
