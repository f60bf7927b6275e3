package service_test

import (
	"context"
	"strconv"
	"testing"
	"time"

	"voice-sales-backend/internal/database/models"
	"voice-sales-backend/internal/repository"
	"voice-sales-backend/internal/testutils"

	"github.com/stretchr/testify/require"
)

// fixture bundles a fresh SQLite-backed store with the test factories
type fixture struct {
	ctx       context.Context
	store     *repository.Store
	factories *testutils.FactorySet
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return &fixture{
		ctx:       context.Background(),
		store:     repository.NewStore(testutils.NewSQLiteDB(t)),
		factories: testutils.NewFactorySet(),
	}
}

func (f *fixture) lead(t *testing.T, lead *models.Lead) *models.Lead {
	t.Helper()
	require.NoError(t, f.store.Leads.Create(f.ctx, lead))
	return lead
}

func (f *fixture) playbook(t *testing.T, industry string) *models.Playbook {
	t.Helper()
	playbook := f.factories.Playbook.WithIndustry(industry)
	require.NoError(t, f.store.Playbooks.Create(f.ctx, playbook))
	return playbook
}

// liveCall stores an in-progress call for lead with the given session id
func (f *fixture) liveCall(t *testing.T, leadID uint, sessionID string) *models.Call {
	t.Helper()
	call := f.factories.Call.WithSession(leadID, models.CallStatusInProgress, sessionID)
	started := time.Now().UTC().Add(-90 * time.Second)
	call.StartedAt = &started
	require.NoError(t, f.store.Calls.Create(f.ctx, call))
	return call
}

// completedCall stores a completed call with an outcome
func (f *fixture) completedCall(t *testing.T, leadID uint, outcome models.CallOutcome) *models.Call {
	t.Helper()
	call := f.factories.Call.WithStatus(leadID, models.CallStatusCompleted)
	completed := time.Now().UTC()
	call.CompletedAt = &completed
	call.Outcome = &outcome
	require.NoError(t, f.store.Calls.Create(f.ctx, call))
	return call
}

func (f *fixture) reloadLead(t *testing.T, id uint) *models.Lead {
	t.Helper()
	lead, err := f.store.Leads.GetByID(f.ctx, id)
	require.NoError(t, err)
	return lead
}

func (f *fixture) reloadCall(t *testing.T, id uint) *models.Call {
	t.Helper()
	call, err := f.store.Calls.GetByID(f.ctx, id)
	require.NoError(t, err)
	return call
}

func itoa(n uint) string {
	return strconv.FormatUint(uint64(n), 10)
}
