package models

// Photo bir kişiye ait fotoğrafı temsil eder.
// Kişi başına en fazla bir fotoğraf is_primary=true olabilir; bu değişmez,
// primary atama işleminin tek transaction'da (önce hepsini temizle, sonra birini
// işaretle) çalışmasıyla korunur.
type Photo struct {
	BaseModel
	PersonID     uint   `gorm:"not null;index" json:"personId"`
	URL          string `gorm:"type:varchar(500);not null" json:"url"`
	ThumbnailURL string `gorm:"type:varchar(500)" json:"thumbnailUrl,omitempty"`
	Caption      string `gorm:"type:varchar(200)" json:"caption,omitempty"`
	IsPrimary    bool   `gorm:"default:false;index" json:"isPrimary"`
}
