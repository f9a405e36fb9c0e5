package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anma.link/models"
	"anma.link/repositories"
)

// fakeMemorialRepo bellek içi IMemorialRepository uygulamasıdır. Yalnızca
// testlerin dokunduğu yollar gerçekçi davranır.
type fakeMemorialRepo struct {
	memorials    map[uint]*models.Memorial // personID -> memorial
	remembrances []models.Remembrance
	offerings    []models.VirtualOffering
	nextID       uint
}

func newFakeMemorialRepo() *fakeMemorialRepo {
	return &fakeMemorialRepo{memorials: make(map[uint]*models.Memorial), nextID: 1}
}

func (f *fakeMemorialRepo) GetOrCreateByPersonID(_ context.Context, personID uint) (*models.Memorial, error) {
	if m, ok := f.memorials[personID]; ok {
		return m, nil
	}
	m := &models.Memorial{PersonID: personID}
	m.ID = f.nextID
	f.nextID++
	f.memorials[personID] = m
	return m, nil
}

func (f *fakeMemorialRepo) FindByPersonID(_ context.Context, personID uint) (*models.Memorial, error) {
	if m, ok := f.memorials[personID]; ok {
		return m, nil
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeMemorialRepo) CreateRemembrance(_ context.Context, remembrance *models.Remembrance) error {
	remembrance.ID = uint(len(f.remembrances) + 1)
	f.remembrances = append(f.remembrances, *remembrance)
	return nil
}

func (f *fakeMemorialRepo) FindRemembranceByID(_ context.Context, id uint) (*models.Remembrance, error) {
	for i := range f.remembrances {
		if f.remembrances[i].ID == id {
			return &f.remembrances[i], nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeMemorialRepo) UpdateRemembrance(_ context.Context, remembrance *models.Remembrance) error {
	for i := range f.remembrances {
		if f.remembrances[i].ID == remembrance.ID {
			f.remembrances[i] = *remembrance
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (f *fakeMemorialRepo) FindPublicRemembrances(_ context.Context, personID uint) ([]models.Remembrance, error) {
	memorial, ok := f.memorials[personID]
	if !ok {
		return []models.Remembrance{}, nil
	}
	result := []models.Remembrance{}
	for _, r := range f.remembrances {
		if r.MemorialID == memorial.ID && r.Approved && r.IsPublic {
			result = append(result, r)
		}
	}
	return result, nil
}

func (f *fakeMemorialRepo) FindUnapprovedRemembrances(_ context.Context, limit int) ([]models.Remembrance, error) {
	result := []models.Remembrance{}
	for _, r := range f.remembrances {
		if !r.Approved && len(result) < limit {
			result = append(result, r)
		}
	}
	return result, nil
}

func (f *fakeMemorialRepo) CreateOffering(_ context.Context, offering *models.VirtualOffering) error {
	offering.ID = uint(len(f.offerings) + 1)
	f.offerings = append(f.offerings, *offering)
	return nil
}

func (f *fakeMemorialRepo) CountOfferings(_ context.Context, memorialID uint) (int64, error) {
	var n int64
	for _, o := range f.offerings {
		if o.MemorialID == memorialID {
			n++
		}
	}
	return n, nil
}

func (f *fakeMemorialRepo) CountOfferingsByType(_ context.Context, memorialID uint) (map[models.OfferingType]int64, error) {
	counts := make(map[models.OfferingType]int64)
	for _, o := range f.offerings {
		if o.MemorialID == memorialID {
			counts[o.OfferingType]++
		}
	}
	return counts, nil
}

func (f *fakeMemorialRepo) FindRecentOfferings(_ context.Context, memorialID uint, limit int) ([]models.VirtualOffering, error) {
	result := []models.VirtualOffering{}
	for i := len(f.offerings) - 1; i >= 0 && len(result) < limit; i-- {
		if f.offerings[i].MemorialID == memorialID {
			result = append(result, f.offerings[i])
		}
	}
	return result, nil
}

var _ repositories.IMemorialRepository = (*fakeMemorialRepo)(nil)

// fakeReminderRepo bellek içi IReminderRepository uygulamasıdır.
type fakeReminderRepo struct {
	reminders map[uint]*models.MemorialReminder
	nextID    uint
}

func newFakeReminderRepo() *fakeReminderRepo {
	return &fakeReminderRepo{reminders: make(map[uint]*models.MemorialReminder), nextID: 1}
}

func (f *fakeReminderRepo) Create(_ context.Context, reminder *models.MemorialReminder) error {
	reminder.ID = f.nextID
	f.nextID++
	f.reminders[reminder.ID] = reminder
	return nil
}

func (f *fakeReminderRepo) FindByID(_ context.Context, id uint) (*models.MemorialReminder, error) {
	if r, ok := f.reminders[id]; ok {
		return r, nil
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeReminderRepo) FindActiveForUser(_ context.Context, userID, personID uint) ([]models.MemorialReminder, error) {
	result := []models.MemorialReminder{}
	for _, r := range f.reminders {
		if r.UserID == userID && r.Active {
			result = append(result, *r)
		}
	}
	return result, nil
}

func (f *fakeReminderRepo) Deactivate(_ context.Context, id uint) error {
	r, ok := f.reminders[id]
	if !ok {
		return repositories.ErrNotFound
	}
	r.Active = false
	return nil
}

var _ repositories.IReminderRepository = (*fakeReminderRepo)(nil)

// fakeContributionRepo bellek içi IContributionRepository uygulamasıdır.
type fakeContributionRepo struct {
	contributions []models.Contribution
}

func (f *fakeContributionRepo) Create(_ context.Context, contribution *models.Contribution) error {
	contribution.ID = uint(len(f.contributions) + 1)
	if contribution.Status == "" {
		contribution.Status = models.ContributionStatusPending
	}
	f.contributions = append(f.contributions, *contribution)
	return nil
}

func (f *fakeContributionRepo) FindByID(_ context.Context, id uint) (*models.Contribution, error) {
	for i := range f.contributions {
		if f.contributions[i].ID == id {
			return &f.contributions[i], nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeContributionRepo) FindPending(_ context.Context, limit int) ([]models.Contribution, error) {
	result := []models.Contribution{}
	for _, c := range f.contributions {
		if c.Status == models.ContributionStatusPending && len(result) < limit {
			result = append(result, c)
		}
	}
	return result, nil
}

func (f *fakeContributionRepo) UpdateStatus(_ context.Context, id uint, status models.ContributionStatus) (*models.Contribution, error) {
	for i := range f.contributions {
		if f.contributions[i].ID == id {
			f.contributions[i].Status = status
			return &f.contributions[i], nil
		}
	}
	return nil, repositories.ErrNotFound
}

var _ repositories.IContributionRepository = (*fakeContributionRepo)(nil)

func newTestMemorialService(memorialRepo *fakeMemorialRepo, reminderRepo *fakeReminderRepo) IMemorialService {
	return NewMemorialService(memorialRepo, reminderRepo, &fakeContributionRepo{}, nil)
}

func TestSubmitRemembranceCreatesPendingContribution(t *testing.T) {
	memorialRepo := newFakeMemorialRepo()
	contributionRepo := &fakeContributionRepo{}
	svc := NewMemorialService(memorialRepo, newFakeReminderRepo(), contributionRepo, nil)
	ctx := context.Background()

	remembrance, err := svc.SubmitRemembrance(ctx, 5, RemembranceInput{
		Message:    "Forever remembered.",
		AuthorName: "Family",
		IsPublic:   true,
	})
	require.NoError(t, err)

	// Onay verilene kadar herkese açık listede görünmez.
	assert.False(t, remembrance.Approved)
	public, err := memorialRepo.FindPublicRemembrances(ctx, 5)
	require.NoError(t, err)
	assert.Empty(t, public)

	// Her gönderim tam olarak bir PENDING katkı kaydı açar.
	require.Len(t, contributionRepo.contributions, 1)
	contribution := contributionRepo.contributions[0]
	assert.Equal(t, models.ContributionRemembrance, contribution.Type)
	assert.Equal(t, models.ContributionStatusPending, contribution.Status)
	assert.Equal(t, uint(5), contribution.PersonID)
	assert.Equal(t, "Forever remembered.", contribution.Data["message"])

	_, err = svc.SubmitRemembrance(ctx, 5, RemembranceInput{Message: "İkinci anı", IsPublic: true})
	require.NoError(t, err)
	assert.Len(t, contributionRepo.contributions, 2)
}

func TestSubmitRemembranceValidationCreatesNothing(t *testing.T) {
	memorialRepo := newFakeMemorialRepo()
	contributionRepo := &fakeContributionRepo{}
	svc := NewMemorialService(memorialRepo, newFakeReminderRepo(), contributionRepo, nil)

	_, err := svc.SubmitRemembrance(context.Background(), 5, RemembranceInput{Message: ""})
	assert.ErrorIs(t, err, ErrRemembranceMessageRequired)
	assert.Empty(t, contributionRepo.contributions)
	assert.Empty(t, memorialRepo.remembrances)
}

func TestSubmitOfferingCreatesContributionAndIsVisible(t *testing.T) {
	memorialRepo := newFakeMemorialRepo()
	contributionRepo := &fakeContributionRepo{}
	svc := NewMemorialService(memorialRepo, newFakeReminderRepo(), contributionRepo, nil)
	ctx := context.Background()

	offering, err := svc.SubmitOffering(ctx, 5, OfferingInput{
		OfferingType: models.OfferingTypeCandle,
		Message:      "A light in our hearts",
	})
	require.NoError(t, err)
	require.NotZero(t, offering.ID)

	// Sunular moderasyon kapısından geçmez; özet hemen yansıtır.
	summary, err := svc.OfferingSummaryForPerson(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(1), summary.TotalCount)
	assert.Equal(t, int64(1), summary.Counts[models.OfferingTypeCandle])

	require.Len(t, contributionRepo.contributions, 1)
	contribution := contributionRepo.contributions[0]
	assert.Equal(t, models.ContributionOffering, contribution.Type)
	assert.Equal(t, models.ContributionStatusPending, contribution.Status)
	assert.Equal(t, string(models.OfferingTypeCandle), contribution.Data["offeringType"])
}

func TestOfferingSummaryForPersonWithoutMemorial(t *testing.T) {
	svc := newTestMemorialService(newFakeMemorialRepo(), newFakeReminderRepo())

	summary, err := svc.OfferingSummaryForPerson(context.Background(), 99)
	require.NoError(t, err)
	assert.Zero(t, summary.TotalCount)
	assert.NotNil(t, summary.Counts)
	assert.NotNil(t, summary.Recent)
	assert.Empty(t, summary.Recent)
}

func TestCreateReminderValidation(t *testing.T) {
	svc := newTestMemorialService(newFakeMemorialRepo(), newFakeReminderRepo())
	ctx := context.Background()
	date := time.Date(2025, time.June, 4, 0, 0, 0, 0, time.UTC)

	_, err := svc.CreateReminder(ctx, 1, 1, ReminderInput{Title: "", Date: date})
	assert.ErrorIs(t, err, ErrReminderTitleRequired)

	_, err = svc.CreateReminder(ctx, 1, 1, ReminderInput{Title: "Anma günü"})
	assert.ErrorIs(t, err, ErrReminderDateRequired)

	_, err = svc.CreateReminder(ctx, 1, 1, ReminderInput{Title: "Anma günü", Date: date, Frequency: "WEEKLY"})
	assert.ErrorIs(t, err, ErrReminderFrequencyInvalid)
}

func TestCreateReminderDefaultsToOnce(t *testing.T) {
	svc := newTestMemorialService(newFakeMemorialRepo(), newFakeReminderRepo())
	date := time.Date(2025, time.June, 4, 0, 0, 0, 0, time.UTC)

	reminder, err := svc.CreateReminder(context.Background(), 7, 1, ReminderInput{Title: "Anma günü", Date: date})
	require.NoError(t, err)
	assert.Equal(t, models.ReminderFrequencyOnce, reminder.Frequency)
	assert.True(t, reminder.Active)
	assert.Equal(t, uint(7), reminder.UserID)
}

func TestDeleteReminderOwnership(t *testing.T) {
	memorialRepo := newFakeMemorialRepo()
	reminderRepo := newFakeReminderRepo()
	svc := newTestMemorialService(memorialRepo, reminderRepo)
	ctx := context.Background()
	date := time.Date(2025, time.June, 4, 0, 0, 0, 0, time.UTC)

	reminder, err := svc.CreateReminder(ctx, 7, 1, ReminderInput{Title: "Anma günü", Date: date})
	require.NoError(t, err)

	// Başka kullanıcı silemez; varlık bilgisi de sızmaz (aynı hata).
	err = svc.DeleteReminder(ctx, 8, reminder.ID)
	assert.ErrorIs(t, err, ErrReminderNotFound)

	unknownErr := svc.DeleteReminder(ctx, 8, 9999)
	assert.Equal(t, err, unknownErr)

	// Sahip silebilir; hatırlatıcı pasifleşir.
	require.NoError(t, svc.DeleteReminder(ctx, 7, reminder.ID))
	stored, err := reminderRepo.FindByID(ctx, reminder.ID)
	require.NoError(t, err)
	assert.False(t, stored.Active)
}

func TestListRemindersOnlyActive(t *testing.T) {
	svc := newTestMemorialService(newFakeMemorialRepo(), newFakeReminderRepo())
	ctx := context.Background()
	date := time.Date(2025, time.June, 4, 0, 0, 0, 0, time.UTC)

	first, err := svc.CreateReminder(ctx, 7, 1, ReminderInput{Title: "İlk", Date: date})
	require.NoError(t, err)
	_, err = svc.CreateReminder(ctx, 7, 1, ReminderInput{Title: "İkinci", Date: date})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteReminder(ctx, 7, first.ID))

	reminders, err := svc.ListReminders(ctx, 7, 1)
	require.NoError(t, err)
	if assert.Len(t, reminders, 1) {
		assert.Equal(t, "İkinci", reminders[0].Title)
	}
}
