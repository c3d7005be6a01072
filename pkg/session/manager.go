// Package session owns the identity and bearer-token lifecycle: how a
// login becomes durable state, how that state is rehydrated on start, and
// how it is cleared. Only Login and Logout mutate it; everything else
// reads through Current and Token.
package session

import (
	"encoding/json"
	"errors"
	"strings"
	"sync"
)

// ErrNotLoggedIn is returned by guards on protected commands.
var ErrNotLoggedIn = errors.New("not logged in: run 'kharcha login' first")

// Identity is the signed-in user as the login response describes it.
type Identity struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Mobile string `json:"mobile"`
}

// FirstName is the display name the greeting uses.
func (i Identity) FirstName() string {
	fields := strings.Fields(i.Name)
	if len(fields) == 0 {
		return i.Name
	}
	return fields[0]
}

// State of the session: Anonymous or Authenticated.
type State int

const (
	Anonymous State = iota
	Authenticated
)

// sessionKey holds the whole session as one record, so logout is a
// single-key clear with no window where token and identity disagree.
const sessionKey = "session"

type record struct {
	Identity *Identity `json:"identity,omitempty"`
	Token    string    `json:"token,omitempty"`
}

// Manager is the session state machine. Construct one with NewManager
// and inject it; consumers must not reach around it to the Store.
type Manager struct {
	store Store

	mu       sync.RWMutex
	identity *Identity
	token    string
	subs     []chan State
}

// NewManager bootstraps from whatever the store holds: a record with both
// a token and a parsable identity becomes Authenticated, anything else
// becomes Anonymous and partial data is cleared.
func NewManager(store Store) *Manager {
	m := &Manager{store: store}
	m.bootstrap()
	return m
}

func (m *Manager) bootstrap() {
	raw, ok := m.store.Get(sessionKey)
	if !ok {
		return
	}
	var rec record
	if err := json.Unmarshal([]byte(raw), &rec); err != nil ||
		rec.Token == "" || rec.Identity == nil || rec.Identity.ID == "" {
		_ = m.store.Remove(sessionKey)
		return
	}
	m.identity = rec.Identity
	m.token = rec.Token
}

// Login persists the identity and token and enters Authenticated. The
// caller has already verified the authentication exchange succeeded.
// Calling Login while authenticated overwrites; last write wins.
func (m *Manager) Login(identity Identity, token string) error {
	if token == "" {
		return errors.New("session: token required")
	}
	if identity.ID == "" {
		return errors.New("session: identity required")
	}

	data, err := json.Marshal(record{Identity: &identity, Token: token})
	if err != nil {
		return err
	}
	if err := m.store.Set(sessionKey, string(data)); err != nil {
		return err
	}

	m.mu.Lock()
	m.identity = &identity
	m.token = token
	m.mu.Unlock()
	m.notify(Authenticated)
	return nil
}

// Logout clears the persisted session and enters Anonymous. Safe to call
// from any state; logging out twice ends in the same place as once.
func (m *Manager) Logout() error {
	err := m.store.Remove(sessionKey)

	m.mu.Lock()
	wasAuthenticated := m.identity != nil
	m.identity = nil
	m.token = ""
	m.mu.Unlock()

	if wasAuthenticated {
		m.notify(Anonymous)
	}
	return err
}

// Current returns the identity if authenticated.
func (m *Manager) Current() (Identity, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.identity == nil {
		return Identity{}, false
	}
	return *m.identity, true
}

// Token returns the bearer token if authenticated. It satisfies the API
// client's token source.
func (m *Manager) Token() (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.token == "" {
		return "", false
	}
	return m.token, true
}

// State reports the current session state.
func (m *Manager) State() State {
	if _, ok := m.Current(); ok {
		return Authenticated
	}
	return Anonymous
}

// Subscribe returns a channel that receives the new state after each
// transition. Slow readers miss intermediate states rather than blocking
// the writer.
func (m *Manager) Subscribe() <-chan State {
	ch := make(chan State, 1)
	m.mu.Lock()
	m.subs = append(m.subs, ch)
	m.mu.Unlock()
	return ch
}

func (m *Manager) notify(s State) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, ch := range m.subs {
		select {
		case ch <- s:
		default:
		}
	}
}
