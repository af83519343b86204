// file: internals/features/residents/penduduk/controller/penduduk_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"desaku_backend/internals/features/residents/penduduk/dto"
	"desaku_backend/internals/features/residents/penduduk/model"
	"desaku_backend/internals/features/residents/penduduk/service"
	helper "desaku_backend/internals/helpers"
)

type PendudukController struct {
	DB       *gorm.DB
	Service  *service.Service
	Validate *validator.Validate
}

func NewPendudukController(db *gorm.DB) *PendudukController {
	return &PendudukController{
		DB:       db,
		Service:  service.New(db),
		Validate: validator.New(),
	}
}

// GET /penduduk/list?q=&page=&per_page=
func (ctrl *PendudukController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)
	q := c.Query("q")

	rows, total, err := ctrl.Service.Search(c.UserContext(), q, paging.Limit, paging.Offset)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data penduduk")
	}

	out := make([]dto.PendudukLiteResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ToLite(r))
	}
	return helper.SuccessWithPagination(c, "OK", out,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage, len(out)))
}

// GET /penduduk/:id
func (ctrl *PendudukController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	p, err := ctrl.Service.GetByID(c.UserContext(), id)
	if errors.Is(err, service.ErrPendudukNotFound) {
		return helper.Error(c, fiber.StatusNotFound, "Penduduk tidak ditemukan")
	}
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data penduduk")
	}
	return helper.Success(c, "OK", p)
}

// POST /penduduk
func (ctrl *PendudukController) Create(c *fiber.Ctx) error {
	var in dto.PendudukCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(in); err != nil {
		return helper.ValidationError(c, err)
	}

	p := in.ToModel()
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.Error(c, fiber.StatusConflict, "NIK sudah terdaftar")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan penduduk")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Penduduk tersimpan", p)
}

// PUT /penduduk/:id
func (ctrl *PendudukController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var in dto.PendudukUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(in); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := in.ApplyUpdates()
	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	res := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.PendudukModel{}).
		Where("penduduk_id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui penduduk")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Penduduk tidak ditemukan")
	}
	return helper.Success(c, "Penduduk diperbarui", fiber.Map{"penduduk_id": id})
}

// DELETE /penduduk/:id — soft delete; anggota keluarga ter-cascade oleh FK.
func (ctrl *PendudukController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.WithContext(c.UserContext()).
		Where("penduduk_id = ?", id).
		Delete(&model.PendudukModel{})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus penduduk")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Penduduk tidak ditemukan")
	}
	return helper.Success(c, "Penduduk dihapus", fiber.Map{"penduduk_id": id})
}
