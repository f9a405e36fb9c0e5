package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"anma.link/configs/configslog"
	"anma.link/models"
	"anma.link/repositories"
)

// PhotoServiceError fotoğraf servis hataları.
type PhotoServiceError string

func (e PhotoServiceError) Error() string { return string(e) }

const (
	ErrPhotoNotFound       PhotoServiceError = "fotoğraf bulunamadı"
	ErrPhotoFileRequired   PhotoServiceError = "fotoğraf dosyası zorunludur"
	ErrPhotoTypeNotAllowed PhotoServiceError = "yalnızca JPG, PNG veya WebP görselleri kabul edilir"
	ErrPhotoTooLarge       PhotoServiceError = "fotoğraf en fazla 5MB olabilir"
	ErrPhotoCaptionTooLong PhotoServiceError = "açıklama en fazla 200 karakter olabilir"
	ErrPhotoSaveFailed     PhotoServiceError = "fotoğraf kaydedilemedi"
)

// maxPhotoSize yüklenebilecek en büyük dosya boyutu (5MB).
const maxPhotoSize = 5 * 1024 * 1024

// maxCaptionLength sunucu tarafında uygulanan açıklama sınırı. İstemci daha
// uzununu yazmaya izin verse de burada reddedilir.
const maxCaptionLength = 200

// İzin verilen içerik türleri ve uzantılar. İstemci ön filtrelemesine
// güvenilmez; sunucu her ikisini de yeniden doğrular.
var allowedPhotoMimeTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/webp": {},
}

var allowedPhotoExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".webp": {},
}

// PhotoUploadInput fotoğraf yükleme girdisidir.
type PhotoUploadInput struct {
	File      *multipart.FileHeader
	Caption   string
	IsPrimary bool
}

// IPhotoService fotoğraf işlemleri için arayüz.
type IPhotoService interface {
	Upload(ctx context.Context, personID uint, input PhotoUploadInput) (*models.Photo, error)
	ListByPerson(ctx context.Context, personID uint) ([]models.Photo, error)
	// SetPrimary hedef fotoğrafı primary yapar; kişinin diğer tüm fotoğraflarının
	// bayrağı aynı atomik işlemde temizlenir.
	SetPrimary(ctx context.Context, photoID uint) (*models.Photo, error)
}

// PhotoService IPhotoService arayüzünü uygular.
type PhotoService struct {
	photoRepo repositories.IPhotoRepository
	uploadDir string
}

// NewPhotoService yeni bir PhotoService örneği oluşturur ve yükleme dizinini hazırlar.
func NewPhotoService(photoRepo repositories.IPhotoRepository, uploadDir string) IPhotoService {
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		configslog.Log.Error("Yükleme dizini oluşturulamadı", zap.String("dir", uploadDir), zap.Error(err))
	}
	return &PhotoService{photoRepo: photoRepo, uploadDir: uploadDir}
}

// ValidatePhotoUpload dosya adını, içerik türünü ve boyutu izin listesine göre doğrular.
func ValidatePhotoUpload(filename, contentType string, size int64) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := allowedPhotoExtensions[ext]; !ok {
		return ErrPhotoTypeNotAllowed
	}
	if _, ok := allowedPhotoMimeTypes[contentType]; !ok {
		return ErrPhotoTypeNotAllowed
	}
	if size > maxPhotoSize {
		return ErrPhotoTooLarge
	}
	return nil
}

// GenerateUploadFilename istemci dosya adına güvenmeden çakışmaya dayanıklı bir
// ad üretir: unix-nano zaman damgası + rastgele UUID soneki + orijinal uzantı.
func GenerateUploadFilename(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return fmt.Sprintf("%d-%s%s", time.Now().UnixNano(), uuid.NewString(), ext)
}

func (s *PhotoService) Upload(ctx context.Context, personID uint, input PhotoUploadInput) (*models.Photo, error) {
	if input.File == nil {
		return nil, ErrPhotoFileRequired
	}

	contentType := input.File.Header.Get("Content-Type")
	if err := ValidatePhotoUpload(input.File.Filename, contentType, input.File.Size); err != nil {
		return nil, err
	}

	caption := strings.TrimSpace(input.Caption)
	if len(caption) > maxCaptionLength {
		return nil, ErrPhotoCaptionTooLong
	}

	filename := GenerateUploadFilename(input.File.Filename)
	if err := s.saveFile(input.File, filename); err != nil {
		configslog.Log.Error("Fotoğraf diske yazılamadı",
			zap.Uint("personID", personID), zap.String("filename", filename), zap.Error(err))
		return nil, ErrPhotoSaveFailed
	}

	url := "/uploads/" + filename
	photo := &models.Photo{
		PersonID:     personID,
		URL:          url,
		ThumbnailURL: url,
		Caption:      caption,
		IsPrimary:    input.IsPrimary,
	}
	if err := s.photoRepo.Create(ctx, photo); err != nil {
		configslog.Log.Error("Fotoğraf kaydı oluşturulamadı", zap.Uint("personID", personID), zap.Error(err))
		return nil, err
	}

	configslog.SLog.Infof("Fotoğraf yüklendi: %s (kişi %d)", filename, personID)
	return photo, nil
}

func (s *PhotoService) saveFile(file *multipart.FileHeader, filename string) error {
	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.uploadDir, filename))
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	return err
}

func (s *PhotoService) ListByPerson(ctx context.Context, personID uint) ([]models.Photo, error) {
	return s.photoRepo.FindByPersonID(ctx, personID)
}

func (s *PhotoService) SetPrimary(ctx context.Context, photoID uint) (*models.Photo, error) {
	photo, err := s.photoRepo.FindByID(ctx, photoID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrPhotoNotFound
		}
		return nil, err
	}

	if err := s.photoRepo.SetPrimary(ctx, photo); err != nil {
		configslog.Log.Error("SetPrimary: transaction başarısız", zap.Uint("photoID", photoID), zap.Error(err))
		return nil, err
	}

	updated, err := s.photoRepo.FindByID(ctx, photoID)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

var _ IPhotoService = (*PhotoService)(nil)
