package seeders

import (
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"anma.link/configs/configslog"
	"anma.link/models"
)

// Demo kullanıcı kimlik bilgileri. Yalnızca yerel geliştirme içindir.
const (
	demoUserEmail    = "demo@vhm.org"
	demoUserPassword = "DemoPass123"
)

// SeedDemoUser demo kullanıcıyı yoksa oluşturur. Tekrar çalıştırmak güvenlidir.
func SeedDemoUser(db *gorm.DB) error {
	var existing models.User
	result := db.Where("email = ?", demoUserEmail).First(&existing)
	if result.Error == nil {
		configslog.SLog.Infof("Demo kullanıcı '%s' zaten mevcut, oluşturma atlanıyor.", demoUserEmail)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		configslog.Log.Error("Demo kullanıcı kontrol edilirken veritabanı hatası", zap.Error(result.Error))
		return result.Error
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoUserPassword), 12)
	if err != nil {
		configslog.Log.Error("Demo kullanıcı şifresi hashlenemedi", zap.Error(err))
		return err
	}

	user := models.User{Email: demoUserEmail, PasswordHash: string(hash)}
	if err := db.Create(&user).Error; err != nil {
		configslog.Log.Error("Demo kullanıcı oluşturulamadı", zap.Error(err))
		return err
	}

	configslog.SLog.Infof("Demo kullanıcı '%s' başarıyla oluşturuldu (ID: %d).", demoUserEmail, user.ID)
	return nil
}
