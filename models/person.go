package models

import "time"

// Person anılan kişinin kimlik kaydıdır.
// Ad ve soyad boş olamaz; doğum/ölüm tarihleri ve konum bağlantıları opsiyoneldir.
type Person struct {
	BaseModel
	FirstName    string     `gorm:"type:varchar(100);not null;index" json:"firstName"`
	LastName     string     `gorm:"type:varchar(100);not null;index" json:"lastName"`
	DateOfBirth  *time.Time `gorm:"type:timestamptz" json:"dateOfBirth,omitempty"`
	DateOfDeath  *time.Time `gorm:"type:timestamptz;index" json:"dateOfDeath,omitempty"`
	CauseOfDeath string     `gorm:"type:varchar(255)" json:"causeOfDeath,omitempty"`

	PlaceOfBirthID *uint `gorm:"index" json:"placeOfBirthId,omitempty"`
	PlaceOfDeathID *uint `gorm:"index" json:"placeOfDeathId,omitempty"`
	CemeteryID     *uint `gorm:"index" json:"cemeteryId,omitempty"`

	PlaceOfBirth *Location `gorm:"foreignKey:PlaceOfBirthID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"placeOfBirth,omitempty"`
	PlaceOfDeath *Location `gorm:"foreignKey:PlaceOfDeathID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"placeOfDeath,omitempty"`
	Cemetery     *Cemetery `gorm:"foreignKey:CemeteryID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"cemetery,omitempty"`

	Photos []Photo `gorm:"foreignKey:PersonID" json:"photos,omitempty"`
}
