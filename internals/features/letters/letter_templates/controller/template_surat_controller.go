// file: internals/features/letters/letter_templates/controller/template_surat_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"desaku_backend/internals/features/letters/letter_templates/dto"
	"desaku_backend/internals/features/letters/letter_templates/repository"
	"desaku_backend/internals/features/letters/letter_templates/service"
	helper "desaku_backend/internals/helpers"
	"desaku_backend/internals/helpers/singledefault"
)

type TemplateSuratController struct {
	Service  *service.Service
	Validate *validator.Validate
}

func NewTemplateSuratController(db *gorm.DB) *TemplateSuratController {
	return &TemplateSuratController{
		Service:  service.New(db),
		Validate: validator.New(),
	}
}

// GET /template-surat/list?jenis=
func (ctrl *TemplateSuratController) List(c *fiber.Ctx) error {
	rows, err := ctrl.Service.List(c.UserContext(), c.Query("jenis"))
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil template surat")
	}
	return helper.Success(c, "OK", rows)
}

// GET /template-surat/default/:jenis — template aktif utk render surat
func (ctrl *TemplateSuratController) GetDefault(c *fiber.Ctx) error {
	t, err := ctrl.Service.GetDefault(c.UserContext(), c.Params("jenis"))
	if errors.Is(err, repository.ErrTemplateNotFound) {
		return helper.Error(c, fiber.StatusNotFound, "Belum ada template default utk jenis ini")
	}
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil template default")
	}
	return helper.Success(c, "OK", t)
}

// POST /template-surat
func (ctrl *TemplateSuratController) Create(c *fiber.Ctx) error {
	var in dto.TemplateSuratCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(in); err != nil {
		return helper.ValidationError(c, err)
	}

	t, err := ctrl.Service.Create(c.UserContext(), in)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan template surat")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Template surat tersimpan", t)
}

// PUT /template-surat/:id
func (ctrl *TemplateSuratController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var in dto.TemplateSuratUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(in); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := ctrl.Service.Update(c.UserContext(), id, in); err != nil {
		if errors.Is(err, repository.ErrTemplateNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Template surat tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui template surat")
	}
	return helper.Success(c, "Template surat diperbarui", fiber.Map{"template_surat_id": id})
}

// POST /template-surat/:id/default — jadikan default jenisnya
func (ctrl *TemplateSuratController) SetDefault(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	if err := ctrl.Service.SetDefault(c.UserContext(), id); err != nil {
		switch {
		case errors.Is(err, repository.ErrTemplateNotFound):
			return helper.Error(c, fiber.StatusNotFound, "Template surat tidak ditemukan")
		case errors.Is(err, singledefault.ErrNotInGroup):
			return helper.Error(c, fiber.StatusConflict, "Template bukan anggota jenis tersebut")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengganti template default")
	}
	return helper.Success(c, "Template dijadikan default", fiber.Map{"template_surat_id": id})
}

// DELETE /template-surat/:id
func (ctrl *TemplateSuratController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	if err := ctrl.Service.Delete(c.UserContext(), id); err != nil {
		switch {
		case errors.Is(err, repository.ErrTemplateNotFound):
			return helper.Error(c, fiber.StatusNotFound, "Template surat tidak ditemukan")
		case errors.Is(err, singledefault.ErrCannotDeleteDefault):
			return helper.Error(c, fiber.StatusConflict,
				"Template masih menjadi default; promosikan template lain dulu")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus template surat")
	}
	return helper.Success(c, "Template surat dihapus", fiber.Map{"template_surat_id": id})
}
