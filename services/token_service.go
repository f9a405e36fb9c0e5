package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenInvalid = errors.New("geçersiz token")
	ErrTokenExpired = errors.New("token süresi dolmuş")
)

// TokenClaims imzalı oturum token'ının içeriğidir.
type TokenClaims struct {
	UserID uint   `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// ITokenService durumsuz imzalı oturum token'larını üretir ve doğrular.
type ITokenService interface {
	Generate(userID uint, email string) (string, error)
	Verify(tokenString string) (*TokenClaims, error)
}

// TokenService ITokenService arayüzünü HS256 JWT ile uygular.
type TokenService struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewTokenService yeni bir TokenService örneği oluşturur. Token ömrü 24 saattir.
func NewTokenService(secret string) ITokenService {
	return &TokenService{
		secret: []byte(secret),
		issuer: "anma.link",
		ttl:    24 * time.Hour,
	}
}

func (s *TokenService) Generate(userID uint, email string) (string, error) {
	now := time.Now()
	claims := TokenClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.issuer,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *TokenService) Verify(tokenString string) (*TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

var _ ITokenService = (*TokenService)(nil)
