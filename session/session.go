// File: labdesk/session/session.go
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"labdesk/models"
)

// Session represents the signed-in operator: the bearer token plus the
// profile fields the console needs for role gating and display.
type Session struct {
	Token         string    `json:"token"`
	Role          string    `json:"role"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// Store is the process-wide auth session context. It is created once at app
// start, explicitly initialized from disk, and injected into the API client
// by constructor; nothing reaches into it as a hidden global.
type Store struct {
	mu      sync.RWMutex
	path    string
	current *Session
}

// NewStore creates a store persisting to path. An empty path falls back to
// the user config directory.
func NewStore(path string) *Store {
	if path == "" {
		if dir, err := os.UserConfigDir(); err == nil {
			path = filepath.Join(dir, "labdesk", "session.json")
		} else {
			path = filepath.Join(".", ".labdesk-session.json")
		}
	}
	return &Store{path: path}
}

// Init loads the persisted session, if any. A missing file is not an error;
// the store simply starts signed out.
func (s *Store) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read session file: %w", err)
	}
	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return fmt.Errorf("failed to parse session file: %w", err)
	}
	if sess.Token != "" {
		s.current = &sess
	}
	return nil
}

// Current returns a copy of the active session, or nil when signed out.
func (s *Store) Current() *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	cp := *s.current
	return &cp
}

// Token implements the API client's token source.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return ""
	}
	return s.current.Token
}

// Set activates and persists a session.
func (s *Store) Set(sess Session) error {
	sess.LastUpdatedAt = time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &sess

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Clear signs out: drops the in-memory session and removes the persisted file.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}

// ProfileFromToken extracts display metadata (role, name, email) from a JWT
// without verifying the signature. The token is opaque credential material;
// these claims are used for display and role gating only, never for
// authorization, which the backend enforces.
func ProfileFromToken(token string) models.UserProfile {
	var profile models.UserProfile
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return profile
	}
	if v, ok := claims["role"].(string); ok {
		profile.Role = v
	}
	if v, ok := claims["name"].(string); ok {
		profile.Name = v
	}
	if v, ok := claims["email"].(string); ok {
		profile.Email = v
	}
	return profile
}
