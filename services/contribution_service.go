package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"anma.link/configs/configslog"
	"anma.link/models"
	"anma.link/repositories"
)

// ContributionServiceError moderasyon servis hataları.
type ContributionServiceError string

func (e ContributionServiceError) Error() string { return string(e) }

const (
	ErrContributionNotFound   ContributionServiceError = "katkı kaydı bulunamadı"
	ErrModRemembranceNotFound ContributionServiceError = "anı kaydı bulunamadı"
)

// submissionQueueLimit moderasyon kuyruğu listelerinin sabit üst sınırı.
const submissionQueueLimit = 50

// SubmissionQueue yönetici kuyruğudur: bekleyen katkılar ve onaysız anılar
// birbirinden bağımsız, en yeni 50'şer kayıtla sınırlı iki listedir.
type SubmissionQueue struct {
	Contributions []models.Contribution `json:"contributions"`
	Remembrances  []models.Remembrance  `json:"remembrances"`
}

// IContributionService moderasyon iş akışı için arayüz.
// Katkı kaydı bir denetim biletidir, yayın kapısı değildir: onay/ret yalnızca
// katkının status alanını değiştirir, altta yatan Person/Remembrance satırını
// geri almaz veya yeniden uygulamaz. Anıların görünürlüğünü katkı durumu değil,
// Remembrance üzerindeki approved bayrağı belirler.
type IContributionService interface {
	ListSubmissions(ctx context.Context) (*SubmissionQueue, error)
	// ApproveRemembrance yalnızca approved bayrağını kaldırır; isPublic
	// gönderenin kontrolündedir ve dokunulmaz.
	ApproveRemembrance(ctx context.Context, id uint) (*models.Remembrance, error)
	ApproveContribution(ctx context.Context, id uint) (*models.Contribution, error)
	RejectContribution(ctx context.Context, id uint) (*models.Contribution, error)
}

// ContributionService IContributionService arayüzünü uygular.
type ContributionService struct {
	contributionRepo repositories.IContributionRepository
	memorialRepo     repositories.IMemorialRepository
}

// NewContributionService yeni bir ContributionService örneği oluşturur.
func NewContributionService(
	contributionRepo repositories.IContributionRepository,
	memorialRepo repositories.IMemorialRepository,
) IContributionService {
	return &ContributionService{
		contributionRepo: contributionRepo,
		memorialRepo:     memorialRepo,
	}
}

func (s *ContributionService) ListSubmissions(ctx context.Context) (*SubmissionQueue, error) {
	contributions, err := s.contributionRepo.FindPending(ctx, submissionQueueLimit)
	if err != nil {
		return nil, err
	}
	remembrances, err := s.memorialRepo.FindUnapprovedRemembrances(ctx, submissionQueueLimit)
	if err != nil {
		return nil, err
	}
	return &SubmissionQueue{Contributions: contributions, Remembrances: remembrances}, nil
}

func (s *ContributionService) ApproveRemembrance(ctx context.Context, id uint) (*models.Remembrance, error) {
	remembrance, err := s.memorialRepo.FindRemembranceByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrModRemembranceNotFound
		}
		return nil, err
	}

	remembrance.Approved = true
	if err := s.memorialRepo.UpdateRemembrance(ctx, remembrance); err != nil {
		configslog.Log.Error("ApproveRemembrance: DB hatası", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	configslog.SLog.Infof("Anı onaylandı: ID %d", id)
	return remembrance, nil
}

func (s *ContributionService) ApproveContribution(ctx context.Context, id uint) (*models.Contribution, error) {
	return s.setContributionStatus(ctx, id, models.ContributionStatusApproved)
}

func (s *ContributionService) RejectContribution(ctx context.Context, id uint) (*models.Contribution, error) {
	return s.setContributionStatus(ctx, id, models.ContributionStatusRejected)
}

func (s *ContributionService) setContributionStatus(ctx context.Context, id uint, status models.ContributionStatus) (*models.Contribution, error) {
	contribution, err := s.contributionRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrContributionNotFound
		}
		configslog.Log.Error("setContributionStatus: DB hatası",
			zap.Uint("id", id), zap.String("status", string(status)), zap.Error(err))
		return nil, err
	}
	configslog.SLog.Infof("Katkı kaydı güncellendi: ID %d -> %s", id, status)
	return contribution, nil
}

var _ IContributionService = (*ContributionService)(nil)
