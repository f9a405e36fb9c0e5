package models

// User kayıtlı bir kullanıcıyı temsil eder.
// Yönetici rolü kayıtta tutulmaz; yapılandırmadaki e-posta listesinden türetilir.
type User struct {
	BaseModel
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`
}
