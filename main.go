package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"anma.link/configs"
	"anma.link/configs/configsdatabase"
	"anma.link/configs/configslog"
	handlers "anma.link/handlers/api"
	"anma.link/repositories"
	"anma.link/routes"
	"anma.link/services"
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()

	cfg := configs.LoadConfig()

	configsdatabase.InitDB(cfg.DatabaseURL)
	defer configsdatabase.CloseDB()
	db := configsdatabase.GetDB()

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	personRepo := repositories.NewPersonRepository(db)
	locationRepo := repositories.NewLocationRepository(db)
	memorialRepo := repositories.NewMemorialRepository(db)
	reminderRepo := repositories.NewReminderRepository(db)
	photoRepo := repositories.NewPhotoRepository(db)
	familyRepo := repositories.NewFamilyRepository(db)
	contributionRepo := repositories.NewContributionRepository(db)

	// Services
	tokenService := services.NewTokenService(cfg.JWTSecret)
	authService := services.NewAuthService(userRepo, tokenService)
	personService := services.NewPersonService(personRepo, contributionRepo, db)
	searchService := services.NewSearchService(personRepo)
	memorialService := services.NewMemorialService(memorialRepo, reminderRepo, contributionRepo, db)
	contributionService := services.NewContributionService(contributionRepo, memorialRepo)
	photoService := services.NewPhotoService(photoRepo, cfg.UploadDir)
	familyService := services.NewFamilyService(familyRepo)
	locationService := services.NewLocationService(locationRepo)

	app := fiber.New(fiber.Config{
		AppName:   "anma.link",
		BodyLimit: 10 * 1024 * 1024,
	})

	routes.SetupRoutes(app, routes.Deps{
		Config:   cfg,
		Tokens:   tokenService,
		Auth:     handlers.NewAuthHandler(authService),
		Person:   handlers.NewPersonHandler(personService),
		Search:   handlers.NewSearchHandler(searchService),
		Memorial: handlers.NewMemorialHandler(memorialService, personService),
		Admin:    handlers.NewAdminHandler(contributionService),
		Photo:    handlers.NewPhotoHandler(photoService, personService),
		Family:   handlers.NewFamilyHandler(familyService, personService),
		Location: handlers.NewLocationHandler(locationService),
	})

	// Graceful shutdown: SIGINT/SIGTERM geldiğinde açık istekler tamamlanır.
	shutdownDone := make(chan struct{})
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		configslog.SLog.Info("Kapatma sinyali alındı, sunucu durduruluyor...")
		if err := app.Shutdown(); err != nil {
			configslog.Log.Error("Sunucu kapatılırken hata oluştu", zap.Error(err))
		}
		close(shutdownDone)
	}()

	addr := ":" + cfg.Port
	configslog.SLog.Infof("Sunucu %s adresinde dinlemeye başlıyor...", addr)
	if err := app.Listen(addr); err != nil {
		configslog.Log.Fatal("Sunucu başlatılamadı", zap.Error(err))
	}

	<-shutdownDone
	configslog.SLog.Info("Sunucu düzgün şekilde kapatıldı.")
}
