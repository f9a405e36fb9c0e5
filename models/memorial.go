package models

import "time"

// Memorial bir kişinin herkese açık anma sayfasının karşılığıdır.
// Kişi başına en fazla bir memorial olabilir (person_id üzerinde unique index).
// İlk anı/sunu/hatırlatıcı gönderiminde tembel olarak oluşturulur.
type Memorial struct {
	BaseModel
	PersonID uint   `gorm:"uniqueIndex;not null" json:"personId"`
	Person   Person `gorm:"foreignKey:PersonID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Remembrances []Remembrance      `gorm:"foreignKey:MemorialID" json:"-"`
	Offerings    []VirtualOffering  `gorm:"foreignKey:MemorialID" json:"-"`
	Reminders    []MemorialReminder `gorm:"foreignKey:MemorialID" json:"-"`
}

// Remembrance bir memorial'a bırakılan serbest metinli anı mesajıdır.
// Yayınlanmadan önce moderasyon gerektirir: approved && is_public olmadan listelenmez.
type Remembrance struct {
	BaseModel
	MemorialID uint   `gorm:"not null;index" json:"memorialId"`
	Message    string `gorm:"type:text;not null" json:"message"`
	AuthorName string `gorm:"type:varchar(100)" json:"authorName,omitempty"`
	Approved   bool   `gorm:"default:false;index" json:"approved"`
	IsPublic   bool   `gorm:"default:true" json:"isPublic"`
}

// OfferingType sembolik sunu türlerini tanımlar.
type OfferingType string

const (
	OfferingTypeCandle  OfferingType = "CANDLE"
	OfferingTypeFlower  OfferingType = "FLOWER"
	OfferingTypeIncense OfferingType = "INCENSE"
	OfferingTypePrayer  OfferingType = "PRAYER"
)

// ValidOfferingType verilen değerin tanımlı bir sunu türü olup olmadığını söyler.
func ValidOfferingType(t OfferingType) bool {
	switch t {
	case OfferingTypeCandle, OfferingTypeFlower, OfferingTypeIncense, OfferingTypePrayer:
		return true
	}
	return false
}

// VirtualOffering bir memorial'a bırakılan tipli sembolik sunudur (mum, çiçek vb.).
// Anılardan farklı olarak moderasyon kapısı yoktur; gönderildiği anda görünürdür.
type VirtualOffering struct {
	BaseModel
	MemorialID   uint         `gorm:"not null;index" json:"memorialId"`
	OfferingType OfferingType `gorm:"type:varchar(20);not null;index" json:"offeringType"`
	Message      string       `gorm:"type:varchar(500)" json:"message,omitempty"`
	AuthorName   string       `gorm:"type:varchar(100)" json:"authorName,omitempty"`
}

// ReminderFrequency hatırlatıcı tekrarlama sıklığını tanımlar.
type ReminderFrequency string

const (
	ReminderFrequencyOnce    ReminderFrequency = "ONCE"
	ReminderFrequencyYearly  ReminderFrequency = "YEARLY"
	ReminderFrequencyMonthly ReminderFrequency = "MONTHLY"
)

// ValidReminderFrequency verilen değerin tanımlı bir sıklık olup olmadığını söyler.
func ValidReminderFrequency(f ReminderFrequency) bool {
	switch f {
	case ReminderFrequencyOnce, ReminderFrequencyYearly, ReminderFrequencyMonthly:
		return true
	}
	return false
}

// MemorialReminder bir kullanıcının kendisi için kurduğu anma hatırlatıcısıdır.
// Yalnızca oluşturan kullanıcıya aittir; silme işlemi soft-delete'tir (active=false).
type MemorialReminder struct {
	BaseModel
	MemorialID uint              `gorm:"not null;index" json:"memorialId"`
	UserID     uint              `gorm:"not null;index" json:"userId"`
	Title      string            `gorm:"type:varchar(200);not null" json:"title"`
	Date       time.Time         `gorm:"type:timestamptz;not null" json:"date"`
	Frequency  ReminderFrequency `gorm:"type:varchar(20);not null;default:'ONCE'" json:"frequency"`
	Active     bool              `gorm:"default:true;index" json:"active"`
}
