package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anma.link/models"
)

func TestApproveRemembranceOnlyTouchesApprovedFlag(t *testing.T) {
	memorialRepo := newFakeMemorialRepo()
	svc := NewContributionService(&fakeContributionRepo{}, memorialRepo)
	ctx := context.Background()

	remembrance := &models.Remembrance{MemorialID: 1, Message: "mesaj", IsPublic: false, Approved: false}
	require.NoError(t, memorialRepo.CreateRemembrance(ctx, remembrance))

	approved, err := svc.ApproveRemembrance(ctx, remembrance.ID)
	require.NoError(t, err)
	assert.True(t, approved.Approved)
	// isPublic gönderenin seçimidir; onay bunu değiştirmez.
	assert.False(t, approved.IsPublic)
}

func TestApproveRemembranceNotFound(t *testing.T) {
	svc := NewContributionService(&fakeContributionRepo{}, newFakeMemorialRepo())

	_, err := svc.ApproveRemembrance(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrModRemembranceNotFound)
}

func TestContributionStatusTransitions(t *testing.T) {
	contributionRepo := &fakeContributionRepo{}
	svc := NewContributionService(contributionRepo, newFakeMemorialRepo())
	ctx := context.Background()

	first := &models.Contribution{PersonID: 1, Type: models.ContributionRemembrance}
	second := &models.Contribution{PersonID: 1, Type: models.ContributionOffering}
	require.NoError(t, contributionRepo.Create(ctx, first))
	require.NoError(t, contributionRepo.Create(ctx, second))

	approved, err := svc.ApproveContribution(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ContributionStatusApproved, approved.Status)

	rejected, err := svc.RejectContribution(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ContributionStatusRejected, rejected.Status)

	_, err = svc.ApproveContribution(ctx, 9999)
	assert.ErrorIs(t, err, ErrContributionNotFound)
}

func TestListSubmissionsReturnsPendingWork(t *testing.T) {
	contributionRepo := &fakeContributionRepo{}
	memorialRepo := newFakeMemorialRepo()
	svc := NewContributionService(contributionRepo, memorialRepo)
	ctx := context.Background()

	pending := &models.Contribution{PersonID: 1, Type: models.ContributionPersonCreate}
	require.NoError(t, contributionRepo.Create(ctx, pending))
	_, err := svc.ApproveContribution(ctx, pending.ID)
	require.NoError(t, err)

	waiting := &models.Contribution{PersonID: 2, Type: models.ContributionRemembrance}
	require.NoError(t, contributionRepo.Create(ctx, waiting))

	unapproved := &models.Remembrance{MemorialID: 1, Message: "bekliyor"}
	require.NoError(t, memorialRepo.CreateRemembrance(ctx, unapproved))
	approvedOne := &models.Remembrance{MemorialID: 1, Message: "onaylı", Approved: true}
	require.NoError(t, memorialRepo.CreateRemembrance(ctx, approvedOne))

	queue, err := svc.ListSubmissions(ctx)
	require.NoError(t, err)

	if assert.Len(t, queue.Contributions, 1) {
		assert.Equal(t, waiting.ID, queue.Contributions[0].ID)
	}
	if assert.Len(t, queue.Remembrances, 1) {
		assert.Equal(t, unapproved.ID, queue.Remembrances[0].ID)
	}
}
