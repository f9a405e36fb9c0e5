package configs

import (
	"os"
	"strings"

	"github.com/joho/godotenv"

	"anma.link/configs/configslog"
)

// Config uygulamanın çalışması için gereken tüm ortam ayarlarını tutar.
// Başlangıçta bir kez yüklenir ve bağımlılık olarak servislere/middleware'lere geçilir;
// kullanım noktalarında os.Getenv çağrısı yapılmaz.
type Config struct {
	DatabaseURL string
	JWTSecret   string
	Port        string
	UploadDir   string

	// AdminEmails yönetici yetkisine sahip e-posta adreslerinin kümesidir.
	// ADMIN_EMAILS ortam değişkeninden (virgülle ayrılmış) bir kez parse edilir.
	AdminEmails map[string]struct{}
}

// LoadConfig .env dosyasını (varsa) ve ortam değişkenlerini okuyarak Config üretir.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		configslog.SLog.Info(".env dosyası bulunamadı, ortam değişkenleri kullanılacak.")
	}

	cfg := &Config{
		DatabaseURL: getEnv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=anma port=5432 sslmode=disable"),
		JWTSecret:   getEnv("JWT_SECRET", "change-me"),
		Port:        getEnv("PORT", "8000"),
		UploadDir:   getEnv("UPLOAD_DIR", "uploads"),
		AdminEmails: parseAdminEmails(os.Getenv("ADMIN_EMAILS")),
	}

	if cfg.JWTSecret == "change-me" {
		configslog.SLog.Warn("JWT_SECRET tanımlı değil, varsayılan geliştirme anahtarı kullanılıyor!")
	}

	return cfg
}

// IsAdminEmail verilen e-postanın yönetici listesinde olup olmadığını söyler.
func (c *Config) IsAdminEmail(email string) bool {
	_, ok := c.AdminEmails[strings.ToLower(strings.TrimSpace(email))]
	return ok
}

func parseAdminEmails(raw string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, part := range strings.Split(raw, ",") {
		email := strings.ToLower(strings.TrimSpace(part))
		if email != "" {
			set[email] = struct{}{}
		}
	}
	return set
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
