// file: internals/route/details/registry_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	kkRoute "desaku_backend/internals/features/households/family_cards/route"
	templateRoute "desaku_backend/internals/features/letters/letter_templates/route"
	pendudukRoute "desaku_backend/internals/features/residents/penduduk/route"
	settingsRoute "desaku_backend/internals/features/settings/village_profile/route"
	authMiddleware "desaku_backend/internals/middlewares/auth"
	rateLimiter "desaku_backend/internals/middlewares"
)

func RegistryRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api",
		rateLimiter.GlobalRateLimiter(),
	)

	// 🔐 operator desa: seluruh operasi tulis
	adminGroup := api.Group("/a",
		authMiddleware.AuthMiddleware(),
		rateLimiter.WriteRateLimiter(),
	)
	pendudukRoute.PendudukAdminRoutes(adminGroup, db)
	kkRoute.KartuKeluargaAdminRoutes(adminGroup, db)
	templateRoute.TemplateSuratAdminRoutes(adminGroup, db)
	settingsRoute.SettingsAdminRoutes(adminGroup, db)

	// 🔓 baca: pencarian penduduk, detail KK, template default
	userGroup := api.Group("/u")
	pendudukRoute.PendudukUserRoutes(userGroup, db)
	kkRoute.KartuKeluargaUserRoutes(userGroup, db)
	templateRoute.TemplateSuratUserRoutes(userGroup, db)
}
