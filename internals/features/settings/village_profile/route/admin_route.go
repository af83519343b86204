// file: internals/features/settings/village_profile/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	settingsctl "desaku_backend/internals/features/settings/village_profile/controller"
)

func SettingsAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := settingsctl.NewVillageProfileController(db)

	grp := admin.Group("/settings")
	{
		grp.Get("/alamat-desa", ctrl.GetAddress)
		grp.Put("/alamat-desa", ctrl.PutAddress)
		grp.Get("/profil-desa", ctrl.GetProfile)
		grp.Put("/profil-desa", ctrl.PutProfile)
	}
}
