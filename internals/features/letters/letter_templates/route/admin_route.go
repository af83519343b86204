// file: internals/features/letters/letter_templates/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	templatectl "desaku_backend/internals/features/letters/letter_templates/controller"
)

func TemplateSuratAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := templatectl.NewTemplateSuratController(db)

	grp := admin.Group("/template-surat")
	{
		grp.Get("/list", ctrl.List)
		grp.Post("/", ctrl.Create)
		grp.Put("/:id", ctrl.Update)
		grp.Post("/:id/default", ctrl.SetDefault)
		grp.Delete("/:id", ctrl.Delete)
	}
}

// TemplateSuratUserRoutes: baca template (default per jenis) utk render surat.
func TemplateSuratUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := templatectl.NewTemplateSuratController(db)

	grp := user.Group("/template-surat")
	{
		grp.Get("/list", ctrl.List)
		grp.Get("/default/:jenis", ctrl.GetDefault)
	}
}
