package configs

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

var (
	JWTSecret string

	// Alamat fallback bila profil desa belum dikonfigurasi.
	// Diisi dari ENV deployment, bukan hard-code nama daerah.
	VillageFallbackProvince string
	VillageFallbackRegency  string
	VillageFallbackDistrict string
	VillageFallbackVillage  string

	// Kebijakan: boleh tidak satu penduduk tercatat di dua kartu keluarga sekaligus.
	AllowMultiCardResident bool
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET belum diset!")
	} else {
		log.Println("✅ JWT_SECRET berhasil dimuat.")
	}

	VillageFallbackProvince = GetEnv("VILLAGE_FALLBACK_PROVINCE")
	VillageFallbackRegency = GetEnv("VILLAGE_FALLBACK_REGENCY")
	VillageFallbackDistrict = GetEnv("VILLAGE_FALLBACK_DISTRICT")
	VillageFallbackVillage = GetEnv("VILLAGE_FALLBACK_VILLAGE")
	if VillageFallbackVillage == "" {
		log.Println("⚠️ VILLAGE_FALLBACK_* belum diset; alamat default desa wajib dikonfigurasi lewat profil desa")
	}

	AllowMultiCardResident = parseBool(GetEnv("HOUSEHOLD_ALLOW_MULTI_CARD"))
	log.Printf("ℹ️ HOUSEHOLD_ALLOW_MULTI_CARD=%v", AllowMultiCardResident)
}

func GetEnv(key string) string {
	return os.Getenv(key)
}

func GetEnvOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "y", "on":
		return true
	}
	return false
}
