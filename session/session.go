// Package session holds the customer-facing authenticated identity for the
// running gateway. It is constructed once in main and injected; there is one
// Session per process, mirroring one signed-in shopper per browser tab.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/asaskevich/EventBus"
	"go.uber.org/zap"

	"github.com/trendora/storefront-api/identity"
	"github.com/trendora/storefront-api/localstore"
	"github.com/trendora/storefront-api/models"
)

// TopicChanged is published on the event bus with the new *models.Session
// (nil after logout) on every identity change.
const TopicChanged = "session:changed"

const snapshotKey = "current"

// Syncer is the backend side of a login: the user registry call performed
// after every successful provider authentication.
type Syncer interface {
	SyncUser(ctx context.Context, name, email, firebaseUID string) error
}

type Store struct {
	provider *identity.Client
	backend  Syncer
	local    *localstore.Store
	bus      EventBus.Bus

	mu      sync.RWMutex
	current *models.Session

	ready     chan struct{}
	readyOnce sync.Once
	stop      chan struct{}
	stopOnce  sync.Once
}

// New restores any persisted session and starts the auth-state loop. The
// store is "ready" once the first auth-state resolution arrives; consumers
// should not render identity-dependent state before that, or anonymous
// state flashes.
func New(provider *identity.Client, backend Syncer, local *localstore.Store, bus EventBus.Bus) *Store {
	s := &Store{
		provider: provider,
		backend:  backend,
		local:    local,
		bus:      bus,
		ready:    make(chan struct{}),
		stop:     make(chan struct{}),
	}
	go s.run()
	return s
}

// Signup creates a new identity with the provider, then synchronizes it with
// the backend registry under the given display name.
func (s *Store) Signup(ctx context.Context, email, password, name string) (*models.Session, error) {
	account, err := s.provider.SignUp(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return s.establish(ctx, account, name)
}

// Login authenticates an existing identity with the provider and
// synchronizes it with the backend registry.
func (s *Store) Login(ctx context.Context, email, password string) (*models.Session, error) {
	account, err := s.provider.SignInWithPassword(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return s.establish(ctx, account, "")
}

// LoginWithGoogle completes the social flow with the Google ID token the
// provider popup produced, then synchronizes like any other login.
func (s *Store) LoginWithGoogle(ctx context.Context, googleIDToken string) (*models.Session, error) {
	account, err := s.provider.SignInWithGoogle(ctx, googleIDToken)
	if err != nil {
		return nil, err
	}
	return s.establish(ctx, account, "")
}

// establish commits the provider account as the current session and performs
// exactly one backend sync. A 403 from the sync means the account is blocked:
// the session is torn down immediately and the error surfaces to the caller.
// Any other sync failure is logged and swallowed; the provider login stands
// and the registry record may be transiently out of date.
func (s *Store) establish(ctx context.Context, account *identity.Account, name string) (*models.Session, error) {
	if name == "" {
		name = account.DisplayName
	}
	sess := &models.Session{
		UID:          account.UID,
		Name:         name,
		Email:        account.Email,
		IDToken:      account.IDToken,
		RefreshToken: account.RefreshToken,
	}
	s.setCurrent(sess)
	s.markReady()

	if err := s.backend.SyncUser(ctx, name, account.Email, account.UID); err != nil {
		if errors.Is(err, models.ErrAccountBlocked) {
			s.Logout()
			return nil, err
		}
		zap.L().Warn("user sync failed, continuing with provider session",
			zap.String("email", account.Email), zap.Error(err))
	}
	return sess, nil
}

// Logout terminates the provider session and clears the current identity.
func (s *Store) Logout() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
	if err := s.local.Delete(localstore.BucketSession, snapshotKey); err != nil {
		zap.L().Error("failed to clear session snapshot", zap.Error(err))
	}
	s.bus.Publish(TopicChanged, (*models.Session)(nil))
}

// Current returns a copy of the active session, or nil when anonymous.
func (s *Store) Current() *models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	copied := *s.current
	return &copied
}

// Ready reports whether the first auth-state resolution has happened.
func (s *Store) Ready() bool {
	select {
	case <-s.ready:
		return true
	default:
		return false
	}
}

// WaitReady blocks until the store is ready or the context ends.
func (s *Store) WaitReady(ctx context.Context) error {
	select {
	case <-s.ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops the auth-state loop.
func (s *Store) Close() {
	s.stopOnce.Do(func() { close(s.stop) })
}

// run is the auth-state listener: it resolves the persisted identity once at
// startup, then keeps the provider token fresh for as long as a session is
// active.
func (s *Store) run() {
	s.restore()
	ticker := time.NewTicker(45 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.refresh()
		}
	}
}

// restore reloads the persisted session snapshot verbatim and revalidates it
// against the provider. Whatever the outcome, the store becomes ready.
func (s *Store) restore() {
	defer s.markReady()

	raw, err := s.local.Get(localstore.BucketSession, snapshotKey)
	if err != nil || raw == nil {
		return
	}
	var sess models.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		zap.L().Warn("discarding unreadable session snapshot", zap.Error(err))
		_ = s.local.Delete(localstore.BucketSession, snapshotKey)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	account, err := s.provider.Refresh(ctx, sess.RefreshToken)
	if err != nil {
		if errors.Is(err, models.ErrAuthFailed) {
			// Provider session revoked since last run.
			_ = s.local.Delete(localstore.BucketSession, snapshotKey)
			return
		}
		// Network trouble: trust the snapshot, same as the original did.
		s.setCurrent(&sess)
		return
	}
	sess.IDToken = account.IDToken
	sess.RefreshToken = account.RefreshToken
	if sess.UID == "" {
		sess.UID = account.UID
	}
	s.setCurrent(&sess)
}

func (s *Store) refresh() {
	current := s.Current()
	if current == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	account, err := s.provider.Refresh(ctx, current.RefreshToken)
	if err != nil {
		if errors.Is(err, models.ErrAuthFailed) {
			zap.L().Info("provider session revoked, logging out",
				zap.String("email", current.Email))
			s.Logout()
		}
		return
	}
	current.IDToken = account.IDToken
	current.RefreshToken = account.RefreshToken
	s.setCurrent(current)
}

func (s *Store) setCurrent(sess *models.Session) {
	s.mu.Lock()
	s.current = sess
	s.mu.Unlock()

	raw, err := json.Marshal(sess)
	if err == nil {
		err = s.local.Put(localstore.BucketSession, snapshotKey, raw)
	}
	if err != nil {
		zap.L().Error("failed to persist session snapshot", zap.Error(err))
	}
	s.bus.Publish(TopicChanged, sess)
}

func (s *Store) markReady() {
	s.readyOnce.Do(func() { close(s.ready) })
}
