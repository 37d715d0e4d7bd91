// Package session holds the client's authenticated state: the signed-in user,
// the single active workspace, and the auth cookies the API issued. It is an
// explicit, injected object serialized to disk at process boundaries, not an
// ambient singleton.
package session

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/tresahq/cashbook_cli/internal/core/domain"
)

// Cookie is the persisted form of an auth cookie.
type Cookie struct {
	Name     string    `toml:"name"`
	Value    string    `toml:"value"`
	Path     string    `toml:"path,omitempty"`
	Domain   string    `toml:"domain,omitempty"`
	Expires  time.Time `toml:"expires,omitempty"`
	Secure   bool      `toml:"secure,omitempty"`
	HTTPOnly bool      `toml:"http_only,omitempty"`
}

// Session is the serializable client session state.
type Session struct {
	User              *domain.User `toml:"user,omitempty"`
	ActiveWorkspaceID string       `toml:"active_workspace_id,omitempty"`
	TokenExpiry       time.Time    `toml:"token_expiry,omitempty"`
	Cookies           []Cookie     `toml:"cookies,omitempty"`
}

// Manager loads, mutates and persists the session file. Mutations write
// through to disk so an interrupted process never loses a login.
type Manager struct {
	path string

	mu      sync.Mutex
	current Session
}

// NewManager creates a manager for the session file at path. Call Load before
// first use.
func NewManager(path string) *Manager {
	return &Manager{path: path}
}

// Load reads the session file. A missing file is not an error; it leaves an
// empty (unauthenticated) session.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	var s Session
	if _, err := toml.DecodeFile(m.path, &s); err != nil {
		if os.IsNotExist(err) {
			m.current = Session{}
			return nil
		}
		return fmt.Errorf("failed to read session file %s: %w", m.path, err)
	}
	m.current = s
	return nil
}

// Current returns a copy of the session state.
func (m *Manager) Current() Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Authenticated reports whether a user is signed in.
func (m *Manager) Authenticated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current.User != nil
}

// SetUser records the signed-in user and persists.
func (m *Manager) SetUser(user domain.User, tokenExpiry time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current.User = &user
	m.current.TokenExpiry = tokenExpiry
	return m.saveLocked()
}

// SetActiveWorkspace records the active workspace id and persists. Exactly
// one workspace is active per session.
func (m *Manager) SetActiveWorkspace(workspaceID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current.ActiveWorkspaceID = workspaceID
	return m.saveLocked()
}

// ActiveWorkspace returns the active workspace id, which may be empty.
func (m *Manager) ActiveWorkspace() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current.ActiveWorkspaceID
}

// Cookies returns the saved auth cookies in http form.
func (m *Manager) Cookies() []*http.Cookie {
	m.mu.Lock()
	defer m.mu.Unlock()
	cookies := make([]*http.Cookie, 0, len(m.current.Cookies))
	for _, c := range m.current.Cookies {
		cookies = append(cookies, &http.Cookie{
			Name:     c.Name,
			Value:    c.Value,
			Path:     c.Path,
			Domain:   c.Domain,
			Expires:  c.Expires,
			Secure:   c.Secure,
			HttpOnly: c.HTTPOnly,
		})
	}
	return cookies
}

// SetCookies replaces or adds the given cookies and persists. Cookies with an
// empty value (server-side deletion) are dropped.
func (m *Manager) SetCookies(cookies []*http.Cookie) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	byName := make(map[string]Cookie, len(m.current.Cookies))
	order := make([]string, 0, len(m.current.Cookies))
	for _, c := range m.current.Cookies {
		byName[c.Name] = c
		order = append(order, c.Name)
	}
	for _, c := range cookies {
		if _, exists := byName[c.Name]; !exists {
			order = append(order, c.Name)
		}
		byName[c.Name] = Cookie{
			Name:     c.Name,
			Value:    c.Value,
			Path:     c.Path,
			Domain:   c.Domain,
			Expires:  c.Expires,
			Secure:   c.Secure,
			HTTPOnly: c.HttpOnly,
		}
	}
	merged := make([]Cookie, 0, len(order))
	for _, name := range order {
		if c := byName[name]; c.Value != "" {
			merged = append(merged, c)
		}
	}
	m.current.Cookies = merged
	return m.saveLocked()
}

// Clear wipes the session state and removes the file.
func (m *Manager) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = Session{}
	if err := os.Remove(m.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session file %s: %w", m.path, err)
	}
	return nil
}

func (m *Manager) saveLocked() error {
	if err := os.MkdirAll(filepath.Dir(m.path), 0o755); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}
	f, err := os.OpenFile(m.path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open session file %s: %w", m.path, err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(m.current); err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	return nil
}
