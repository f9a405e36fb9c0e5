package services

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"anma.link/configs/configslog"
	"anma.link/models"
	"anma.link/repositories"
)

// AuthServiceError kimlik servisi hataları.
type AuthServiceError string

func (e AuthServiceError) Error() string { return string(e) }

const (
	ErrEmailInUse AuthServiceError = "e-posta adresi zaten kayıtlı"
	// ErrInvalidCredentials hem bilinmeyen e-posta hem de yanlış şifre için
	// aynı hatadır; kullanıcı listesi çıkarımına (enumeration) izin verilmez.
	ErrInvalidCredentials AuthServiceError = "e-posta veya şifre hatalı"
	ErrAuthInvalidInput   AuthServiceError = "geçersiz kimlik bilgisi girdisi"
	ErrPasswordHashing    AuthServiceError = "şifre hash'lenemedi"
)

// bcryptCost kayıt sırasında kullanılan maliyet faktörü.
const bcryptCost = 12

// AuthResult başarılı kayıt/giriş sonucunda dönen kullanıcı + token çiftidir.
type AuthResult struct {
	User  *models.User
	Token string
}

// IAuthService kayıt ve giriş işlemleri için arayüz.
type IAuthService interface {
	Register(ctx context.Context, email, password string) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
}

// AuthService IAuthService arayüzünü uygular.
type AuthService struct {
	userRepo repositories.IUserRepository
	tokens   ITokenService
}

// NewAuthService yeni bir AuthService örneği oluşturur.
func NewAuthService(userRepo repositories.IUserRepository, tokens ITokenService) IAuthService {
	return &AuthService{userRepo: userRepo, tokens: tokens}
}

// Register yeni kullanıcı kaydı yapar ve oturum token'ı üretir.
func (s *AuthService) Register(ctx context.Context, email, password string) (*AuthResult, error) {
	email = normalizeEmail(email)
	if email == "" || len(password) < 8 {
		return nil, ErrAuthInvalidInput
	}

	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailInUse
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		configslog.Log.Error("Register: şifre hash'lenemedi", zap.Error(err))
		return nil, ErrPasswordHashing
	}

	user := &models.User{Email: email, PasswordHash: string(hash)}
	if err := s.userRepo.Create(ctx, user); err != nil {
		configslog.Log.Error("Register: kullanıcı oluşturulamadı", zap.String("email", email), zap.Error(err))
		return nil, err
	}

	token, err := s.tokens.Generate(user.ID, user.Email)
	if err != nil {
		configslog.Log.Error("Register: token üretilemedi", zap.Uint("userID", user.ID), zap.Error(err))
		return nil, err
	}

	configslog.SLog.Infof("Yeni kullanıcı kaydedildi: %s (ID %d)", user.Email, user.ID)
	return &AuthResult{User: user, Token: token}, nil
}

// Login kimlik bilgilerini doğrular ve oturum token'ı üretir.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID, user.Email)
	if err != nil {
		configslog.Log.Error("Login: token üretilemedi", zap.Uint("userID", user.ID), zap.Error(err))
		return nil, err
	}

	return &AuthResult{User: user, Token: token}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

var _ IAuthService = (*AuthService)(nil)
