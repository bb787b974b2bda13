// internal/application/session_store.go
package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/mahabubulhasibshawon/dexter-storefront.git/internal/domain"
	"github.com/mahabubulhasibshawon/dexter-storefront.git/internal/ports"
)

// Slot names double as storage keys.
type Slot string

const (
	SlotAuthToken     Slot = "customer_token"
	SlotCustomer      Slot = "customer"
	SlotSelectedStore Slot = "selected_store"
)

// SessionStore persists the session and the selected store in three independent slots.
// Writes are not transactional across slots.
type SessionStore struct {
	kv  ports.KeyValueStorePort
	log *logrus.Entry
}

func NewSessionStore(kv ports.KeyValueStorePort, log *logrus.Entry) *SessionStore {
	return &SessionStore{kv: kv, log: log.WithField("component", "session_store")}
}

func (s *SessionStore) Save(ctx context.Context, slot Slot, value []byte) error {
	if err := s.kv.Set(ctx, string(slot), value); err != nil {
		return fmt.Errorf("save %s: %w", slot, err)
	}
	return nil
}

// Load returns the slot's value and false when the slot is empty.
func (s *SessionStore) Load(ctx context.Context, slot Slot) ([]byte, bool, error) {
	b, err := s.kv.Get(ctx, string(slot))
	if errors.Is(err, domain.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load %s: %w", slot, err)
	}
	return b, true, nil
}

func (s *SessionStore) Clear(ctx context.Context, slot Slot) error {
	if err := s.kv.Delete(ctx, string(slot)); err != nil {
		return fmt.Errorf("clear %s: %w", slot, err)
	}
	return nil
}

// SaveSession writes the token before the customer; a crash in between leaves
// a half-written session that LoadSession discards.
func (s *SessionStore) SaveSession(ctx context.Context, sess domain.Session) error {
	customer, err := json.Marshal(sess.Customer)
	if err != nil {
		return fmt.Errorf("encode customer: %w", err)
	}
	if err := s.Save(ctx, SlotAuthToken, []byte(sess.Token)); err != nil {
		return err
	}
	return s.Save(ctx, SlotCustomer, customer)
}

// LoadSession returns nil when no complete session is stored. Partial or
// undecodable sessions are cleared; the latter also yields ErrCorruptSession.
func (s *SessionStore) LoadSession(ctx context.Context) (*domain.Session, error) {
	token, hasToken, err := s.Load(ctx, SlotAuthToken)
	if err != nil {
		return nil, err
	}
	raw, hasCustomer, err := s.Load(ctx, SlotCustomer)
	if err != nil {
		return nil, err
	}

	if !hasToken || len(token) == 0 || !hasCustomer {
		if hasToken || hasCustomer {
			s.log.Warn("discarding half-written session")
			if err := s.ClearSession(ctx); err != nil {
				return nil, err
			}
		}
		return nil, nil
	}

	var customer domain.Customer
	if err := json.Unmarshal(raw, &customer); err != nil {
		if clearErr := s.ClearSession(ctx); clearErr != nil {
			s.log.WithError(clearErr).Error("failed to clear corrupt session")
		}
		return nil, fmt.Errorf("%w: customer: %v", domain.ErrCorruptSession, err)
	}
	return &domain.Session{Token: string(token), Customer: customer}, nil
}

func (s *SessionStore) ClearSession(ctx context.Context) error {
	tokenErr := s.Clear(ctx, SlotAuthToken)
	customerErr := s.Clear(ctx, SlotCustomer)
	return errors.Join(tokenErr, customerErr)
}

func (s *SessionStore) SaveSelectedStore(ctx context.Context, store domain.Store) error {
	b, err := json.Marshal(store)
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}
	return s.Save(ctx, SlotSelectedStore, b)
}

// LoadSelectedStore returns nil when no store is saved.
func (s *SessionStore) LoadSelectedStore(ctx context.Context) (*domain.Store, error) {
	raw, ok, err := s.Load(ctx, SlotSelectedStore)
	if err != nil || !ok {
		return nil, err
	}
	var store domain.Store
	if err := json.Unmarshal(raw, &store); err != nil {
		if clearErr := s.ClearSelectedStore(ctx); clearErr != nil {
			s.log.WithError(clearErr).Error("failed to clear corrupt selected store")
		}
		return nil, fmt.Errorf("%w: selected store: %v", domain.ErrCorruptSession, err)
	}
	return &store, nil
}

func (s *SessionStore) ClearSelectedStore(ctx context.Context) error {
	return s.Clear(ctx, SlotSelectedStore)
}
