package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound tüm repository'lerin gorm.ErrRecordNotFound yerine dışarıya verdiği hatadır.
// Servisler GORM detayına bağımlı olmadan errors.Is ile kontrol eder.
var ErrNotFound = errors.New("kayıt bulunamadı")

// txContextKey transaction'ın context üzerinden repository'lere taşınması için anahtar.
type txContextKey struct{}

// ContextWithTx verilen transaction'ı context'e koyar. Servislerdeki db.Transaction
// blokları, aynı işlemin tüm repository çağrılarında kullanılmasını bununla sağlar.
func ContextWithTx(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, txContextKey{}, tx)
}

// dbFromContext context'te transaction varsa onu, yoksa verilen bağlantıyı döndürür.
func dbFromContext(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txContextKey{}).(*gorm.DB); ok && tx != nil {
		return tx
	}
	return db.WithContext(ctx)
}

// IBaseRepository basit CRUD işlemleri için generik arayüz.
type IBaseRepository[T any] interface {
	Create(ctx context.Context, entity *T) error
	FindByID(ctx context.Context, id uint) (*T, error)
	Update(ctx context.Context, entity *T) error
	Delete(ctx context.Context, entity *T) error
}

// BaseRepository IBaseRepository'nin GORM implementasyonu.
type BaseRepository[T any] struct {
	db *gorm.DB
}

// NewBaseRepository yeni bir generik repository örneği oluşturur.
func NewBaseRepository[T any](db *gorm.DB) *BaseRepository[T] {
	return &BaseRepository[T]{db: db}
}

func (r *BaseRepository[T]) Create(ctx context.Context, entity *T) error {
	return dbFromContext(ctx, r.db).Create(entity).Error
}

func (r *BaseRepository[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	if id == 0 {
		return nil, ErrNotFound
	}
	var entity T
	err := dbFromContext(ctx, r.db).First(&entity, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &entity, nil
}

func (r *BaseRepository[T]) Update(ctx context.Context, entity *T) error {
	return dbFromContext(ctx, r.db).Save(entity).Error
}

func (r *BaseRepository[T]) Delete(ctx context.Context, entity *T) error {
	return dbFromContext(ctx, r.db).Delete(entity).Error
}
