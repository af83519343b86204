// file: internals/features/households/family_cards/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	kkctl "desaku_backend/internals/features/households/family_cards/controller"
)

// KartuKeluargaAdminRoutes: komposisi rumah tangga utk operator desa.
func KartuKeluargaAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := kkctl.NewKartuKeluargaController(db)

	grp := admin.Group("/kartu-keluarga")
	{
		grp.Post("/", ctrl.Create)
		grp.Get("/:id", ctrl.GetByID)
		grp.Put("/:id", ctrl.Update)
		grp.Delete("/:id", ctrl.Delete)

		// resume endpoints (idempoten) utk partial failure
		grp.Post("/:id/kepala", ctrl.AttachKepala)
		grp.Post("/:id/anggota", ctrl.AttachAnggota)
		grp.Delete("/:id/anggota/:penduduk_id", ctrl.RemoveAnggota)
	}
}

// KartuKeluargaUserRoutes: baca kartu utk pengisian form surat.
func KartuKeluargaUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := kkctl.NewKartuKeluargaController(db)

	grp := user.Group("/kartu-keluarga")
	{
		grp.Get("/:id", ctrl.GetByID)
	}
}
