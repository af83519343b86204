// file: internals/features/residents/penduduk/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	pendudukctl "desaku_backend/internals/features/residents/penduduk/controller"
)

// PendudukAdminRoutes: CRUD penduduk untuk operator desa.
func PendudukAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := pendudukctl.NewPendudukController(db)

	grp := admin.Group("/penduduk")
	{
		grp.Get("/list", ctrl.List)
		grp.Get("/:id", ctrl.GetByID)
		grp.Post("/", ctrl.Create)
		grp.Put("/:id", ctrl.Update)
		grp.Delete("/:id", ctrl.Delete)
	}
}

// PendudukUserRoutes: pencarian readonly (mis. pengisian form surat).
func PendudukUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := pendudukctl.NewPendudukController(db)

	grp := user.Group("/penduduk")
	{
		grp.Get("/list", ctrl.List)
		grp.Get("/:id", ctrl.GetByID)
	}
}
