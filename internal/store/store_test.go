package store

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-console/internal/audit"
	domain "github.com/BruksfildServices01/barber-console/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-console/internal/httperr"
	"github.com/BruksfildServices01/barber-console/internal/models"
)

func names(items []models.Service) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Name)
	}
	return out
}

func TestServiceStoreKeepsNameOrder(t *testing.T) {
	ctx := context.Background()
	repo := &fakeServiceRepo{}
	s := NewServiceStore(repo, audit.Nop())

	for _, n := range []string{"Corte", "Barba", "Ácido", "Sobrancelha"} {
		_, err := s.Add(ctx, models.NewService{Name: n, Price: decimal.NewFromInt(10)})
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"Ácido", "Barba", "Corte", "Sobrancelha"}, names(s.List()))
}

func TestServiceStoreRejectsInvalidBeforeRemote(t *testing.T) {
	repo := &fakeServiceRepo{}
	s := NewServiceStore(repo, audit.Nop())

	_, err := s.Add(context.Background(), models.NewService{Name: "  ", Price: decimal.NewFromInt(10)})
	assert.ErrorIs(t, err, httperr.ErrBusiness("invalid_service"))

	_, err = s.Add(context.Background(), models.NewService{Name: "Corte", Price: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, httperr.ErrBusiness("invalid_service"))

	assert.Zero(t, repo.calls)
}

func TestServiceStoreFailedWritesLeaveListUnchanged(t *testing.T) {
	ctx := context.Background()
	repo := &fakeServiceRepo{rows: []models.Service{{ID: 1, Name: "Corte", Price: decimal.NewFromInt(45)}}}
	s := NewServiceStore(repo, audit.Nop())
	s.Load(ctx)
	before := s.List()

	repo.fail = true

	_, err := s.Add(ctx, models.NewService{Name: "Barba", Price: decimal.NewFromInt(30)})
	assert.ErrorIs(t, err, errRemote)

	_, err = s.Update(ctx, models.Service{ID: 1, Name: "Corte Premium", Price: decimal.NewFromInt(60)})
	assert.ErrorIs(t, err, errRemote)

	assert.ErrorIs(t, s.Delete(ctx, 1), errRemote)

	assert.Equal(t, before, s.List())
}

func TestServiceStoreUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := &fakeServiceRepo{rows: []models.Service{
		{ID: 1, Name: "Barba", Price: decimal.NewFromInt(30)},
		{ID: 2, Name: "Corte", Price: decimal.NewFromInt(45)},
	}}
	s := NewServiceStore(repo, audit.Nop())
	s.Load(ctx)

	updated, err := s.Update(ctx, models.Service{ID: 2, Name: "Corte", Price: decimal.NewFromInt(50)})
	require.NoError(t, err)
	assert.True(t, updated.Price.Equal(decimal.NewFromInt(50)))

	got, ok := s.Get(2)
	require.True(t, ok)
	assert.True(t, got.Price.Equal(decimal.NewFromInt(50)))

	require.NoError(t, s.Delete(ctx, 1))
	_, ok = s.Get(1)
	assert.False(t, ok)
	assert.Len(t, s.List(), 1)
}

func TestServiceStoreLoadFailureLeavesEmpty(t *testing.T) {
	s := NewServiceStore(&fakeServiceRepo{fail: true}, audit.Nop())
	s.Load(context.Background())
	assert.NotNil(t, s.List())
	assert.Empty(t, s.List())

	a := NewAppointmentStore(&fakeAppointmentRepo{fail: true}, audit.Nop())
	a.Load(context.Background())
	assert.NotNil(t, a.List())

	tx := NewTransactionStore(&fakeTransactionRepo{fail: true}, audit.Nop())
	tx.Load(context.Background())
	assert.NotNil(t, tx.List())
}

func TestServiceStoreListReturnsCopy(t *testing.T) {
	repo := &fakeServiceRepo{rows: []models.Service{{ID: 1, Name: "Corte"}}}
	s := NewServiceStore(repo, audit.Nop())
	s.Load(context.Background())

	list := s.List()
	list[0].Name = "changed"

	got, _ := s.Get(1)
	assert.Equal(t, "Corte", got.Name)
}

// ----------------------------------------
// appointments
// ----------------------------------------

func newAppointmentStore(t *testing.T) (*AppointmentStore, *fakeAppointmentRepo) {
	t.Helper()
	repo := &fakeAppointmentRepo{}
	return NewAppointmentStore(repo, audit.Nop()), repo
}

func TestAppointmentStoreAddStartsConfirmed(t *testing.T) {
	s, _ := newAppointmentStore(t)

	ap, err := s.Add(context.Background(), models.NewAppointment{
		Date: "2026-10-19", Time: "10:00", ClientName: " Ana ", Service: "Corte",
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusConfirmed), ap.Status)
	assert.Equal(t, "Ana", ap.ClientName)
	assert.Len(t, s.List(), 1)
}

func TestAppointmentStoreAddValidates(t *testing.T) {
	s, repo := newAppointmentStore(t)

	_, err := s.Add(context.Background(), models.NewAppointment{Date: "19/10/2026", Time: "10:00", ClientName: "Ana", Service: "Corte"})
	assert.ErrorIs(t, err, httperr.ErrBusiness("invalid_date"))

	_, err = s.Add(context.Background(), models.NewAppointment{Date: "2026-10-19", Time: "10:00", ClientName: "", Service: "Corte"})
	assert.ErrorIs(t, err, httperr.ErrBusiness("invalid_appointment"))

	assert.Zero(t, repo.calls)
}

func TestAppointmentStoreStatusMovesForwardOnly(t *testing.T) {
	ctx := context.Background()
	s, repo := newAppointmentStore(t)

	ap, err := s.Add(ctx, models.NewAppointment{Date: "2026-10-19", Time: "10:00", ClientName: "Ana", Service: "Corte"})
	require.NoError(t, err)

	got, err := s.SetStatus(ctx, ap.ID, domain.StatusArrived)
	require.NoError(t, err)
	assert.Equal(t, "Chegou", got.Status)

	_, err = s.SetStatus(ctx, ap.ID, domain.StatusAttended)
	require.NoError(t, err)

	calls := repo.calls
	_, err = s.SetStatus(ctx, ap.ID, domain.StatusConfirmed)
	assert.ErrorIs(t, err, httperr.ErrBusiness("invalid_status_transition"))
	assert.Equal(t, calls, repo.calls)

	_, err = s.SetStatus(ctx, 99, domain.StatusArrived)
	assert.ErrorIs(t, err, httperr.ErrBusiness("appointment_not_found"))
}

func TestAppointmentStoreUpdateWritesWholeRecord(t *testing.T) {
	ctx := context.Background()
	s, _ := newAppointmentStore(t)

	ap, err := s.Add(ctx, models.NewAppointment{Date: "2026-10-19", Time: "10:00", ClientName: "Ana", Service: "Corte"})
	require.NoError(t, err)

	edited := *ap
	edited.Time = "11:00"
	edited.Service = "Corte + Barba"

	got, err := s.Update(ctx, edited)
	require.NoError(t, err)
	assert.Equal(t, "11:00", got.Time)

	stored, _ := s.Get(ap.ID)
	assert.Equal(t, "Corte + Barba", stored.Service)
}

func TestAppointmentStoreFailedStatusChangeKeepsStatus(t *testing.T) {
	ctx := context.Background()
	s, repo := newAppointmentStore(t)

	ap, err := s.Add(ctx, models.NewAppointment{Date: "2026-10-19", Time: "10:00", ClientName: "Ana", Service: "Corte"})
	require.NoError(t, err)

	repo.fail = true
	_, err = s.SetStatus(ctx, ap.ID, domain.StatusArrived)
	assert.ErrorIs(t, err, errRemote)

	stored, _ := s.Get(ap.ID)
	assert.Equal(t, "Confirmado", stored.Status)
}

// ----------------------------------------
// transactions
// ----------------------------------------

func TestTransactionStorePrependsNewest(t *testing.T) {
	ctx := context.Background()
	repo := &fakeTransactionRepo{}
	s := NewTransactionStore(repo, audit.Nop())

	_, err := s.Add(ctx, models.NewTransaction{ClientName: "Ana", Value: decimal.NewFromInt(45)})
	require.NoError(t, err)
	_, err = s.Add(ctx, models.NewTransaction{ClientName: "Bia", Value: decimal.NewFromInt(30)})
	require.NoError(t, err)

	list := s.List()
	require.Len(t, list, 2)
	assert.Equal(t, "Bia", list[0].ClientName)
	assert.Equal(t, "Ana", list[1].ClientName)
}

func TestTransactionStoreFailedAddLeavesListUnchanged(t *testing.T) {
	repo := &fakeTransactionRepo{fail: true}
	s := NewTransactionStore(repo, audit.Nop())

	_, err := s.Add(context.Background(), models.NewTransaction{ClientName: "Ana"})
	assert.ErrorIs(t, err, errRemote)
	assert.Empty(t, s.List())
}

func TestTransactionStoreUpdateReplacesEntry(t *testing.T) {
	ctx := context.Background()
	repo := &fakeTransactionRepo{}
	s := NewTransactionStore(repo, audit.Nop())

	tx, err := s.Add(ctx, models.NewTransaction{ClientName: "Ana", Value: decimal.NewFromInt(45)})
	require.NoError(t, err)

	edited := *tx
	edited.Value = decimal.NewFromInt(40)
	_, err = s.Update(ctx, edited)
	require.NoError(t, err)

	assert.True(t, s.List()[0].Value.Equal(decimal.NewFromInt(40)))
}
