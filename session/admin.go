package session

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"github.com/trendora/storefront-api/localstore"
	"github.com/trendora/storefront-api/models"
)

const adminSnapshotKey = "current"

// AdminStore holds the management console credential: a username plus the
// opaque token the backend issued. It is distinct from the customer Session
// and restored verbatim at startup with no revalidation — an accepted
// staleness window; the middleware only drops tokens that are provably
// expired.
type AdminStore struct {
	local *localstore.Store

	mu      sync.RWMutex
	current *models.AdminSession
}

func NewAdmin(local *localstore.Store) *AdminStore {
	a := &AdminStore{local: local}
	raw, err := local.Get(localstore.BucketAdmin, adminSnapshotKey)
	if err == nil && raw != nil {
		var sess models.AdminSession
		if err := json.Unmarshal(raw, &sess); err == nil && sess.Token != "" {
			a.current = &sess
		}
	}
	return a
}

// Set stores a fresh console login.
func (a *AdminStore) Set(sess *models.AdminSession) {
	a.mu.Lock()
	a.current = sess
	a.mu.Unlock()

	raw, err := json.Marshal(sess)
	if err == nil {
		err = a.local.Put(localstore.BucketAdmin, adminSnapshotKey, raw)
	}
	if err != nil {
		zap.L().Error("failed to persist admin session", zap.Error(err))
	}
}

// Current returns a copy of the stored credential, or nil when logged out.
func (a *AdminStore) Current() *models.AdminSession {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.current == nil {
		return nil
	}
	copied := *a.current
	return &copied
}

// Clear logs the console out.
func (a *AdminStore) Clear() {
	a.mu.Lock()
	a.current = nil
	a.mu.Unlock()
	if err := a.local.Delete(localstore.BucketAdmin, adminSnapshotKey); err != nil {
		zap.L().Error("failed to clear admin session", zap.Error(err))
	}
}
