package checkout

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-console/internal/httperr"
)

func TestRegistryOpenWithClose(t *testing.T) {
	r := NewRegistry()
	id := r.Open(NewWalkIn("Ana"))

	require.NoError(t, r.With(id, func(d *Draft) error {
		d.ToggleService(haircut)
		return nil
	}))

	var total string
	require.NoError(t, r.With(id, func(d *Draft) error {
		total = FormatAmount(d.Total())
		return nil
	}))
	assert.Equal(t, "40,00", total)

	require.NoError(t, r.Close(id))
	assert.Empty(t, r.drafts)

	err := r.With(id, func(*Draft) error { return nil })
	assert.ErrorIs(t, err, httperr.ErrBusiness("draft_not_found"))
	assert.ErrorIs(t, r.Close(uuid.New()), httperr.ErrBusiness("draft_not_found"))
}

func TestRegistrySubmitClosesOnSuccess(t *testing.T) {
	r := NewRegistry()
	uc := NewFinalize(&fakeRecorder{}, &fakeCloser{}, fixedClock())

	d := NewWalkIn("Ana")
	d.ToggleService(haircut)
	id := r.Open(d)

	res, err := r.Submit(context.Background(), id, uc)
	require.NoError(t, err)
	assert.NotNil(t, res.Transaction)
	assert.Empty(t, r.drafts)
}

func TestRegistrySubmitKeepsDraftOnFailure(t *testing.T) {
	r := NewRegistry()
	rec := &fakeRecorder{fail: true}
	uc := NewFinalize(rec, &fakeCloser{}, fixedClock())

	d := NewWalkIn("Ana")
	d.ToggleService(haircut)
	id := r.Open(d)

	_, err := r.Submit(context.Background(), id, uc)
	assert.ErrorIs(t, err, errRemote)
	assert.Len(t, r.drafts, 1)

	rec.fail = false
	_, err = r.Submit(context.Background(), id, uc)
	require.NoError(t, err)
	assert.Empty(t, r.drafts)
}

func TestRegistryOpenEvictsStaleDrafts(t *testing.T) {
	r := NewRegistry()
	now := time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return now }

	stale := r.Open(NewWalkIn("Ana"))

	now = now.Add(DraftTTL - time.Minute)
	fresh := r.Open(NewWalkIn("Bia"))
	assert.Len(t, r.drafts, 2)

	now = now.Add(2 * time.Minute)
	r.Open(NewWalkIn("Caio"))

	assert.Len(t, r.drafts, 2)
	err := r.With(stale, func(*Draft) error { return nil })
	assert.ErrorIs(t, err, httperr.ErrBusiness("draft_not_found"))
	assert.NoError(t, r.With(fresh, func(*Draft) error { return nil }))
}
