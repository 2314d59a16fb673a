package auth

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"property-engine/internal/common"
	"property-engine/internal/models"
)

// AccountStore is the persistence surface the session manager depends on
type AccountStore interface {
	CreateAccount(ctx context.Context, profile *models.Profile, role models.Role) error
	GetProfileByEmail(ctx context.Context, email string) (*models.Profile, error)
	GetProfile(ctx context.Context, id string) (*models.Profile, error)
	GetRole(ctx context.Context, userID string) (models.Role, error)
}

// EventKind classifies session-state transitions
type EventKind string

const (
	EventSignedIn  EventKind = "signed-in"
	EventSignedOut EventKind = "signed-out"
)

// Event is a session-state transition delivered to subscribers
type Event struct {
	Kind   EventKind
	UserID string
}

// Session is the snapshot returned to a freshly signed-in caller
type Session struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
	User      *models.Profile `json:"user"`
	Role      models.Role     `json:"role,omitempty"`
}

// Identity is the resolved caller attached to each authenticated request
type Identity struct {
	UserID string
	Email  string
	Role   models.Role
}

// sessionState tracks role resolution for one user id.
// resolving guards against duplicate in-flight lookups; resolved marks
// the lookup as satisfied so it is never repeated for this id.
type sessionState struct {
	role      models.Role
	resolved  bool
	resolving bool
	done      chan struct{}
}

// SessionManager owns authentication state: sign-up, sign-in, sign-out,
// token resolution and the once-per-user role lookup. It also publishes
// session-state transitions to subscribers (the notification layer ties
// its feed lifecycle to these events).
type SessionManager struct {
	store  AccountStore
	tokens *TokenManager
	log    zerolog.Logger

	mu        sync.Mutex
	states    map[string]*sessionState
	listeners map[int]chan Event
	nextID    int
}

// NewSessionManager creates a new session manager
func NewSessionManager(store AccountStore, tokens *TokenManager, log zerolog.Logger) *SessionManager {
	return &SessionManager{
		store:     store,
		tokens:    tokens,
		log:       log.With().Str("component", "session").Logger(),
		states:    make(map[string]*sessionState),
		listeners: make(map[int]chan Event),
	}
}

// SignUp registers a new account with the requested role and display name
func (m *SessionManager) SignUp(ctx context.Context, email, password, fullName string, role models.Role) (*models.Profile, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, common.ErrInvalidInputError("email and password are required")
	}
	if !role.Valid() {
		return nil, common.ErrInvalidInputError("unknown role: " + string(role))
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, common.NewErrorWithCause(common.ErrInternal, "hash password", err)
	}

	profile := &models.Profile{
		Email:        email,
		PasswordHash: hash,
		FullName:     strings.TrimSpace(fullName),
	}
	if err := m.store.CreateAccount(ctx, profile, role); err != nil {
		return nil, err
	}

	m.log.Info().Str("user_id", profile.ID).Str("role", string(role)).Msg("account created")
	return profile, nil
}

// SignIn authenticates by email and password and returns a fresh session.
// Any cached role for the account is discarded first so the role is
// re-resolved for the new session.
func (m *SessionManager) SignIn(ctx context.Context, email, password string) (*Session, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	profile, err := m.store.GetProfileByEmail(ctx, email)
	if err != nil {
		if common.IsErrorCode(err, common.ErrNotFound) {
			return nil, common.ErrUnauthorizedError("Invalid login credentials")
		}
		return nil, err
	}
	if !CheckPasswordHash(password, profile.PasswordHash) {
		return nil, common.ErrUnauthorizedError("Invalid login credentials")
	}

	token, expiresAt, err := m.tokens.Generate(profile.ID, profile.Email)
	if err != nil {
		return nil, common.NewErrorWithCause(common.ErrInternal, "generate token", err)
	}

	// Reset role tracking before the new sign-in so the lookup runs
	// once for this session.
	m.mu.Lock()
	delete(m.states, profile.ID)
	m.mu.Unlock()

	m.emit(Event{Kind: EventSignedIn, UserID: profile.ID})

	role, _ := m.ResolveRole(ctx, profile.ID)

	return &Session{Token: token, ExpiresAt: expiresAt, User: profile, Role: role}, nil
}

// SignOut clears the cached role and last-resolved marker for the user
// and notifies subscribers so realtime feeds are torn down
func (m *SessionManager) SignOut(userID string) {
	m.mu.Lock()
	delete(m.states, userID)
	m.mu.Unlock()

	m.emit(Event{Kind: EventSignedOut, UserID: userID})
	m.log.Info().Str("user_id", userID).Msg("signed out")
}

// Resolve validates a session token and returns the caller identity
// with the cached (or freshly fetched) role attached
func (m *SessionManager) Resolve(ctx context.Context, token string) (*Identity, error) {
	claims, err := m.tokens.Parse(token)
	if err != nil {
		return nil, common.NewErrorWithCause(common.ErrInvalidToken, "invalid or expired token", err)
	}

	role, _ := m.ResolveRole(ctx, claims.UserID)
	return &Identity{UserID: claims.UserID, Email: claims.Email, Role: role}, nil
}

// ResolveRole fetches the application role for a user id at most once.
// Concurrent callers share a single in-flight lookup; once satisfied the
// lookup is never repeated for the same id until sign-out clears it.
// Fetch errors are logged and degrade to an empty role, which fails
// closed in navigation and feature gating.
func (m *SessionManager) ResolveRole(ctx context.Context, userID string) (models.Role, error) {
	m.mu.Lock()
	st, ok := m.states[userID]
	if !ok {
		st = &sessionState{}
		m.states[userID] = st
	}
	if st.resolved {
		role := st.role
		m.mu.Unlock()
		return role, nil
	}
	if st.resolving {
		done := st.done
		m.mu.Unlock()
		select {
		case <-done:
		case <-ctx.Done():
			return "", ctx.Err()
		}
		m.mu.Lock()
		role := st.role
		m.mu.Unlock()
		return role, nil
	}
	st.resolving = true
	st.done = make(chan struct{})
	m.mu.Unlock()

	role, err := m.store.GetRole(ctx, userID)

	m.mu.Lock()
	st.resolving = false
	close(st.done)
	if err != nil {
		m.mu.Unlock()
		m.log.Error().Err(err).Str("user_id", userID).Msg("role fetch failed")
		return "", nil
	}
	st.role = role
	st.resolved = true
	m.mu.Unlock()
	return role, nil
}

// Subscribe registers a listener for session-state transitions. The
// returned cancel function must be called to stop delivery.
func (m *SessionManager) Subscribe() (<-chan Event, func()) {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	ch := make(chan Event, 16)
	m.listeners[id] = ch
	m.mu.Unlock()

	cancel := func() {
		m.mu.Lock()
		if existing, ok := m.listeners[id]; ok {
			delete(m.listeners, id)
			close(existing)
		}
		m.mu.Unlock()
	}
	return ch, cancel
}

// emit delivers an event to all listeners without blocking the caller.
// A signed-in event for a user whose role is not yet resolved also
// schedules an asynchronous re-resolve on a fresh goroutine, never
// reentrantly.
func (m *SessionManager) emit(ev Event) {
	m.mu.Lock()
	needsResolve := false
	if ev.Kind == EventSignedIn {
		st, ok := m.states[ev.UserID]
		if !ok || !st.resolved {
			needsResolve = true
		}
	}
	for _, ch := range m.listeners {
		select {
		case ch <- ev:
		default:
		}
	}
	m.mu.Unlock()

	if needsResolve {
		go func() {
			_, _ = m.ResolveRole(context.Background(), ev.UserID)
		}()
	}
}
