// internal/application/session_store_test.go
package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahabubulhasibshawon/dexter-storefront.git/internal/domain"
)

func TestSessionStore_SessionRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv, sessions := newSessionStore()
	customer := testCustomer(t)

	require.NoError(t, sessions.SaveSession(ctx, domain.Session{Token: "tok", Customer: customer}))

	raw, err := kv.Get(ctx, "customer_token")
	require.NoError(t, err)
	assert.Equal(t, "tok", string(raw))

	sess, err := sessions.LoadSession(ctx)
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, "tok", sess.Token)
	assert.Equal(t, customer.Email, sess.Customer.Email)

	require.NoError(t, sessions.ClearSession(ctx))
	sess, err = sessions.LoadSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestSessionStore_PartialSessionIsDiscarded(t *testing.T) {
	tests := []struct {
		name  string
		slots map[Slot]string
	}{
		{name: "token only", slots: map[Slot]string{SlotAuthToken: "tok"}},
		{name: "customer only", slots: map[Slot]string{SlotCustomer: `{"firstname":"Amina"}`}},
		{name: "empty token", slots: map[Slot]string{SlotAuthToken: "", SlotCustomer: `{"firstname":"Amina"}`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			kv, sessions := newSessionStore()
			for slot, v := range tt.slots {
				require.NoError(t, kv.Set(ctx, string(slot), []byte(v)))
			}

			sess, err := sessions.LoadSession(ctx)
			require.NoError(t, err)
			assert.Nil(t, sess)

			for _, slot := range []Slot{SlotAuthToken, SlotCustomer} {
				_, err := kv.Get(ctx, string(slot))
				assert.ErrorIs(t, err, domain.ErrNotFound, "slot %s should be cleared", slot)
			}
		})
	}
}

func TestSessionStore_SelectedStore(t *testing.T) {
	ctx := context.Background()
	kv, sessions := newSessionStore()

	store, err := sessions.LoadSelectedStore(ctx)
	require.NoError(t, err)
	assert.Nil(t, store)

	require.NoError(t, sessions.SaveSelectedStore(ctx, domain.Store{StoreID: 2, Name: "Weusifix Logistics"}))
	store, err = sessions.LoadSelectedStore(ctx)
	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, domain.NumericID(2), store.StoreID)

	require.NoError(t, kv.Set(ctx, string(SlotSelectedStore), []byte("[broken")))
	store, err = sessions.LoadSelectedStore(ctx)
	assert.ErrorIs(t, err, domain.ErrCorruptSession)
	assert.Nil(t, store)
	_, err = kv.Get(ctx, string(SlotSelectedStore))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
