package database

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"anma.link/configs/configslog"
	"anma.link/database/migrations"
	"anma.link/database/seeders"
)

func Initialize(db *gorm.DB, migrate bool, seed bool) {
	if !migrate && !seed {
		configslog.SLog.Info("Migrate veya seed bayrağı belirtilmedi, işlem yapılmayacak.")
		return
	}

	tx := db.Begin()
	if tx.Error != nil {
		configslog.Log.Fatal("Veritabanı transaction başlatılamadı", zap.Error(tx.Error))
		return
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			configslog.Log.Fatal("Veritabanı başlatma işlemi başarısız oldu (panic)", zap.Any("panic_info", r))
		} else if err := tx.Error; err != nil && err != gorm.ErrInvalidTransaction {
			configslog.SLog.Warn("Başlatma sırasında hata oluştuğu için işlem geri alınıyor.", zap.Error(err))
			rbErr := tx.Rollback().Error
			if rbErr != nil && rbErr != gorm.ErrInvalidTransaction {
				configslog.Log.Error("Rollback sırasında ek hata oluştu", zap.Error(rbErr))
			}
		}
	}()

	configslog.SLog.Info("Veritabanı başlatma işlemi başlıyor...")

	if migrate {
		configslog.SLog.Info("Migrasyonlar çalıştırılıyor...")
		if err := RunMigrationsInOrder(tx); err != nil {
			configslog.Log.Error("Migrasyon başarısız oldu", zap.Error(err))
			return
		}
		configslog.SLog.Info("Migrasyonlar tamamlandı.")
	} else {
		configslog.SLog.Info("Migrate bayrağı belirtilmedi, migrasyon adımı atlanıyor.")
	}

	if seed {
		configslog.SLog.Info("Seeder'lar çalıştırılıyor...")
		if err := CheckAndRunSeeders(tx); err != nil {
			configslog.Log.Error("Seeding başarısız oldu", zap.Error(err))
			return
		}
		configslog.SLog.Info("Seeder'lar tamamlandı.")
	} else {
		configslog.SLog.Info("Seed bayrağı belirtilmedi, seeder adımı atlanıyor.")
	}

	configslog.SLog.Info("İşlem commit ediliyor...")
	if err := tx.Commit().Error; err != nil {
		tx.Error = err
		configslog.Log.Error("Commit başarısız oldu", zap.Error(err))
		return
	}

	configslog.SLog.Info("Veritabanı başlatma işlemi başarıyla tamamlandı")
}

// RunMigrationsInOrder tabloları bağımlılık sırasına göre migrate eder:
// önce referans verileri (users, locations), sonra persons ve kişiye bağlı tablolar.
func RunMigrationsInOrder(db *gorm.DB) error {
	configslog.SLog.Info("Migrasyonlar sırayla çalıştırılıyor...")

	configslog.SLog.Info(" -> User migrasyonları çalıştırılıyor...")
	if err := migrations.MigrateUsersTable(db); err != nil {
		configslog.Log.Error("Users tablosu migrasyonu başarısız oldu", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> User migrasyonları tamamlandı.")

	configslog.SLog.Info(" -> Location migrasyonları çalıştırılıyor...")
	if err := migrations.MigrateLocationsTables(db); err != nil {
		configslog.Log.Error("Locations tabloları migrasyonu başarısız oldu", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> Location migrasyonları tamamlandı.")

	configslog.SLog.Info(" -> Person migrasyonları çalıştırılıyor...")
	if err := migrations.MigratePersonsTable(db); err != nil {
		configslog.Log.Error("Persons tablosu migrasyonu başarısız oldu", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> Person migrasyonları tamamlandı.")

	configslog.SLog.Info(" -> Memorial migrasyonları çalıştırılıyor...")
	if err := migrations.MigrateMemorialsTables(db); err != nil {
		configslog.Log.Error("Memorial tabloları migrasyonu başarısız oldu", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> Memorial migrasyonları tamamlandı.")

	configslog.SLog.Info(" -> Photo migrasyonları çalıştırılıyor...")
	if err := migrations.MigratePhotosTable(db); err != nil {
		configslog.Log.Error("Photos tablosu migrasyonu başarısız oldu", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> Photo migrasyonları tamamlandı.")

	configslog.SLog.Info(" -> Family relationship migrasyonları çalıştırılıyor...")
	if err := migrations.MigrateFamilyRelationshipsTable(db); err != nil {
		configslog.Log.Error("Family relationships tablosu migrasyonu başarısız oldu", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> Family relationship migrasyonları tamamlandı.")

	configslog.SLog.Info(" -> Contribution migrasyonları çalıştırılıyor...")
	if err := migrations.MigrateContributionsTable(db); err != nil {
		configslog.Log.Error("Contributions tablosu migrasyonu başarısız oldu", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> Contribution migrasyonları tamamlandı.")

	configslog.SLog.Info("Tüm migrasyonlar başarıyla çalıştırıldı.")
	return nil
}

func CheckAndRunSeeders(db *gorm.DB) error {
	configslog.SLog.Info("Demo kullanıcı kontrol ediliyor/oluşturuluyor...")
	if err := seeders.SeedDemoUser(db); err != nil {
		configslog.Log.Error("Demo kullanıcı seed işlemi başarısız", zap.Error(err))
		return err
	}

	configslog.SLog.Info(" -> Location seeder çalıştırılıyor...")
	if err := seeders.SeedLocations(db); err != nil {
		configslog.Log.Error("Locations tablosu seed edilemedi", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> Location seeder tamamlandı.")

	configslog.SLog.Info(" -> Person seeder çalıştırılıyor...")
	if err := seeders.SeedSamplePersons(db); err != nil {
		configslog.Log.Error("Persons tablosu seed edilemedi", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> Person seeder tamamlandı.")

	configslog.SLog.Info("Tüm seeder'lar başarıyla kontrol edildi/çalıştırıldı.")
	return nil
}
