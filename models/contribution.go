package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// ContributionType katkı kaydının hangi gönderimden doğduğunu etiketler.
type ContributionType string

const (
	ContributionPersonCreate ContributionType = "PERSON_CREATE"
	ContributionPersonUpdate ContributionType = "PERSON_UPDATE"
	ContributionRemembrance  ContributionType = "REMEMBRANCE"
	ContributionOffering     ContributionType = "OFFERING"
)

// ContributionStatus moderasyon durumunu tanımlar.
type ContributionStatus string

const (
	ContributionStatusPending  ContributionStatus = "PENDING"
	ContributionStatusApproved ContributionStatus = "APPROVED"
	ContributionStatusRejected ContributionStatus = "REJECTED"
)

// JSONMap jsonb sütununda serbest biçimli payload saklamak için kullanılır.
type JSONMap map[string]interface{}

// Value GORM'un jsonb sütununa yazabilmesi için driver.Valuer implementasyonu.
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan jsonb sütunundan okunan değeri map'e çevirir.
func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = JSONMap{}
		return nil
	}
	var b []byte
	switch v := value.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("jsonb sütunu için beklenmeyen tip: %T", value)
	}
	if len(b) == 0 {
		*m = JSONMap{}
		return nil
	}
	return json.Unmarshal(b, m)
}

// GormDataType GORM'a sütun tipini bildirir.
func (JSONMap) GormDataType() string { return "jsonb" }

var _ driver.Valuer = JSONMap(nil)

// Contribution herkese açık bir gönderimi veya düzenlemeyi yansıtan denetim/moderasyon
// zarfıdır. Asıl yazma işlemiyle BİRLİKTE oluşturulur, onun yerine değil: altta yatan
// Remembrance/Person satırı zaten commit edilmiştir, Contribution paralel bir inceleme
// biletidir. Onay/ret yalnızca status alanını değiştirir; altta yatan yazmayı geri almaz.
type Contribution struct {
	BaseModel
	UserID   *uint              `gorm:"index" json:"userId,omitempty"`
	PersonID uint               `gorm:"not null;index" json:"personId"`
	Type     ContributionType   `gorm:"type:varchar(20);not null;index" json:"type"`
	Data     JSONMap            `gorm:"type:jsonb" json:"data"`
	Status   ContributionStatus `gorm:"type:varchar(20);not null;default:'PENDING';index" json:"status"`
}
