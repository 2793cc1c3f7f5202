// Package cart owns the shopping cart for the running gateway: an ordered
// collection of product snapshots keyed by product id, persisted verbatim to
// the local snapshot store after every mutation and reloaded at startup.
package cart

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/asaskevich/EventBus"
	"go.uber.org/zap"

	"github.com/trendora/storefront-api/localstore"
	"github.com/trendora/storefront-api/models"
)

// TopicChanged is published on the event bus with the full []models.CartEntry
// snapshot after every mutation.
const TopicChanged = "cart:changed"

const snapshotKey = "entries"

// SessionSource reports the active customer session; cart mutations are
// rejected while anonymous.
type SessionSource interface {
	Current() *models.Session
}

type Store struct {
	sessions SessionSource
	local    *localstore.Store
	bus      EventBus.Bus

	mu      sync.RWMutex
	entries []models.CartEntry
}

// New reloads any persisted cart snapshot. An unreadable snapshot starts the
// cart empty rather than failing startup.
func New(sessions SessionSource, local *localstore.Store, bus EventBus.Bus) *Store {
	s := &Store{sessions: sessions, local: local, bus: bus}
	raw, err := local.Get(localstore.BucketCart, snapshotKey)
	if err == nil && raw != nil {
		if err := json.Unmarshal(raw, &s.entries); err != nil {
			zap.L().Warn("discarding unreadable cart snapshot", zap.Error(err))
			s.entries = nil
		}
	}
	return s
}

// Add puts a product snapshot in the cart. Re-adding a product increments
// its quantity by one and keeps the originally selected size; the entry
// count never grows for a product already present.
func (s *Store) Add(product models.Product, selectedSize string) error {
	if s.sessions.Current() == nil {
		return models.ErrLoginRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.entries {
		if s.entries[i].Product.ID == product.ID {
			s.entries[i].Quantity++
			s.persistLocked()
			return nil
		}
	}
	s.entries = append(s.entries, models.CartEntry{
		Product:      product,
		Quantity:     1,
		SelectedSize: selectedSize,
		AddedAt:      time.Now(),
	})
	s.persistLocked()
	return nil
}

// Remove drops the entry for the given product id; absent ids are a no-op.
func (s *Store) Remove(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.entries[:0]
	removed := false
	for _, e := range s.entries {
		if e.Product.ID == productID {
			removed = true
			continue
		}
		kept = append(kept, e)
	}
	s.entries = kept
	if removed {
		s.persistLocked()
	}
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.entries) == 0 {
		return
	}
	s.entries = nil
	s.persistLocked()
}

// Entries returns a copy of the collection in insertion order.
func (s *Store) Entries() []models.CartEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.CartEntry(nil), s.entries...)
}

// Total is the cart grand total: Σ effective price × quantity. Zero on an
// empty cart, never negative.
func (s *Store) Total() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var total float64
	for _, e := range s.entries {
		total += e.LineTotal()
	}
	return total
}

// persistLocked serializes the full snapshot and announces the change.
// Callers hold s.mu.
func (s *Store) persistLocked() {
	raw, err := json.Marshal(s.entries)
	if err == nil {
		err = s.local.Put(localstore.BucketCart, snapshotKey, raw)
	}
	if err != nil {
		zap.L().Error("failed to persist cart snapshot", zap.Error(err))
	}
	s.bus.Publish(TopicChanged, append([]models.CartEntry(nil), s.entries...))
}
