package models

import (
	"time"

	"gorm.io/gorm"
)

// BaseModel tüm tabloların paylaştığı ortak alanlar.
// DeletedAt soft-delete içindir; GORM sorguları silinmiş kayıtları otomatik hariç tutar.
type BaseModel struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
