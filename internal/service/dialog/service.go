// Package dialog manages conversation state storage and on-disk drafts.
package dialog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"github.com/zhalobnik/backend/internal/model/dialog"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrDraftNotFound   = errors.New("draft not found")
)

// Service keeps conversation state in memory and persists named drafts as
// JSON files. Callers receive deep copies: mutate freely, commit with Put.
type Service struct {
	mu        sync.RWMutex
	sessions  map[string]*dialog.State
	draftsDir string
}

// NewService bootstraps the in-memory session store.
func NewService(draftsDir string) *Service {
	return &Service{
		sessions:  make(map[string]*dialog.State),
		draftsDir: draftsDir,
	}
}

// Create provisions a fresh conversation at the welcome step.
func (s *Service) Create(_ context.Context) (*dialog.State, error) {
	state := dialog.NewState()

	s.mu.Lock()
	s.sessions[state.ID] = state
	s.mu.Unlock()

	return state.Clone(), nil
}

// Get returns an independent copy of the stored state.
func (s *Service) Get(_ context.Context, sessionID string) (*dialog.State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return state.Clone(), nil
}

// Put commits a turn's resulting state. The state must have been created
// through Create or loaded through LoadDraft.
func (s *Service) Put(_ context.Context, state *dialog.State) error {
	if state == nil || state.ID == "" {
		return ErrSessionNotFound
	}

	s.mu.Lock()
	s.sessions[state.ID] = state.Clone()
	s.mu.Unlock()

	return nil
}

// Delete drops a session. Missing sessions are not an error.
func (s *Service) Delete(_ context.Context, sessionID string) {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
}

// SaveDraft serializes the full state to a JSON file and returns the draft
// id. The serialized form round-trips through LoadDraft without loss.
func (s *Service) SaveDraft(_ context.Context, state *dialog.State) (string, error) {
	if state == nil {
		return "", ErrSessionNotFound
	}

	if err := os.MkdirAll(s.draftsDir, 0o755); err != nil {
		return "", fmt.Errorf("create drafts dir: %w", err)
	}

	draftID := uuid.NewString()
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode draft: %w", err)
	}

	if err := os.WriteFile(s.draftPath(draftID), data, 0o644); err != nil {
		return "", fmt.Errorf("write draft: %w", err)
	}
	return draftID, nil
}

// LoadDraft rehydrates a saved conversation and registers it as a live
// session again.
func (s *Service) LoadDraft(_ context.Context, draftID string) (*dialog.State, error) {
	data, err := os.ReadFile(s.draftPath(draftID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrDraftNotFound
		}
		return nil, fmt.Errorf("read draft: %w", err)
	}

	state := &dialog.State{}
	if err := json.Unmarshal(data, state); err != nil {
		return nil, fmt.Errorf("decode draft: %w", err)
	}
	if state.ID == "" {
		return nil, ErrDraftNotFound
	}
	// Drafts come from disk: a stale or hand-edited step must not leak an
	// unknown value into the flow machine.
	state.Step = dialog.ParseStep(string(state.Step))

	s.mu.Lock()
	s.sessions[state.ID] = state.Clone()
	s.mu.Unlock()

	return state.Clone(), nil
}

func (s *Service) draftPath(draftID string) string {
	// The draft id is always a generated UUID, never user input, but keep
	// the path inside the directory regardless.
	return filepath.Join(s.draftsDir, filepath.Base(draftID)+".json")
}
