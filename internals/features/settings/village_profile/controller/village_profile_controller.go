// file: internals/features/settings/village_profile/controller/village_profile_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"desaku_backend/internals/features/settings/village_profile/dto"
	"desaku_backend/internals/features/settings/village_profile/service"
	helper "desaku_backend/internals/helpers"
)

type VillageProfileController struct {
	Service *service.Service
}

func NewVillageProfileController(db *gorm.DB) *VillageProfileController {
	return &VillageProfileController{Service: service.New(db)}
}

// GET /settings/alamat-desa
func (ctrl *VillageProfileController) GetAddress(c *fiber.Ctx) error {
	out, err := ctrl.Service.GetVillageAddress(c.UserContext())
	if errors.Is(err, service.ErrSettingNotFound) {
		return helper.Error(c, fiber.StatusNotFound, "Alamat desa belum dikonfigurasi")
	}
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membaca alamat desa")
	}
	return helper.Success(c, "OK", out)
}

// PUT /settings/alamat-desa
func (ctrl *VillageProfileController) PutAddress(c *fiber.Ctx) error {
	var in dto.VillageAddressDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Service.UpsertVillageAddress(c.UserContext(), in); err != nil {
		if _, ok := err.(validator.ValidationErrors); ok {
			return helper.ValidationError(c, err)
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan alamat desa")
	}
	return helper.Success(c, "Alamat desa tersimpan", in)
}

// GET /settings/profil-desa
func (ctrl *VillageProfileController) GetProfile(c *fiber.Ctx) error {
	out, err := ctrl.Service.GetVillageProfile(c.UserContext())
	if errors.Is(err, service.ErrSettingNotFound) {
		return helper.Error(c, fiber.StatusNotFound, "Profil desa belum dikonfigurasi")
	}
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membaca profil desa")
	}
	return helper.Success(c, "OK", out)
}

// PUT /settings/profil-desa
func (ctrl *VillageProfileController) PutProfile(c *fiber.Ctx) error {
	var in dto.VillageProfileDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Service.UpsertVillageProfile(c.UserContext(), in); err != nil {
		if _, ok := err.(validator.ValidationErrors); ok {
			return helper.ValidationError(c, err)
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan profil desa")
	}
	return helper.Success(c, "Profil desa tersimpan", in)
}
