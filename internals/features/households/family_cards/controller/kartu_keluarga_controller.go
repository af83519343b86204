// file: internals/features/households/family_cards/controller/kartu_keluarga_controller.go
package controller

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"desaku_backend/internals/configs"
	"desaku_backend/internals/constants"
	"desaku_backend/internals/features/households/family_cards/dto"
	"desaku_backend/internals/features/households/family_cards/repository"
	"desaku_backend/internals/features/households/family_cards/service"
	pendudukservice "desaku_backend/internals/features/residents/penduduk/service"
	settingsservice "desaku_backend/internals/features/settings/village_profile/service"
	helper "desaku_backend/internals/helpers"
)

type KartuKeluargaController struct {
	DB        *gorm.DB
	Household *service.HouseholdService
	Cards     service.CardStore
	Members   service.MembershipStore
	Validate  *validator.Validate
}

func NewKartuKeluargaController(db *gorm.DB) *KartuKeluargaController {
	cards := repository.NewGormCardStore(db)
	members := repository.NewGormMembershipStore(db)
	household := service.NewHouseholdService(
		cards,
		members,
		pendudukservice.New(db),
		villageAddressAdapter{settings: settingsservice.New(db)},
		configs.AllowMultiCardResident,
	)
	return &KartuKeluargaController{
		DB:        db,
		Household: household,
		Cards:     cards,
		Members:   members,
		Validate:  validator.New(),
	}
}

// villageAddressAdapter menjembatani setting alamat desa ke tipe Address
// milik orkestrator rumah tangga.
type villageAddressAdapter struct {
	settings *settingsservice.Service
}

func (a villageAddressAdapter) DefaultAddress(ctx context.Context) (service.Address, error) {
	va, err := a.settings.GetVillageAddress(ctx)
	if errors.Is(err, settingsservice.ErrSettingNotFound) {
		return service.Address{}, service.ErrVillageAddressNotConfigured
	}
	if err != nil {
		return service.Address{}, err
	}
	return service.Address{
		Provinsi:  va.Provinsi,
		Kabupaten: va.Kabupaten,
		Kecamatan: va.Kecamatan,
		Desa:      va.Desa,
	}, nil
}

// POST /kartu-keluarga
func (ctrl *KartuKeluargaController) Create(c *fiber.Ctx) error {
	var in dto.KartuKeluargaCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(in); err != nil {
		return helper.ValidationError(c, err)
	}

	cardID, err := ctrl.Household.CreateHousehold(c.UserContext(), in.ToInput())
	if err != nil {
		return householdError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Kartu keluarga tersimpan",
		fiber.Map{"kartu_keluarga_id": cardID})
}

// PUT /kartu-keluarga/:id
func (ctrl *KartuKeluargaController) Update(c *fiber.Ctx) error {
	cardID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var in dto.KartuKeluargaUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(in); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := ctrl.Household.UpdateHousehold(c.UserContext(), cardID, in.ToInput()); err != nil {
		return householdError(c, err)
	}
	return helper.Success(c, "Kartu keluarga diperbarui", fiber.Map{"kartu_keluarga_id": cardID})
}

// GET /kartu-keluarga/:id — kartu + seluruh anggota
func (ctrl *KartuKeluargaController) GetByID(c *fiber.Ctx) error {
	cardID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	card, err := ctrl.Cards.GetByID(c.UserContext(), cardID)
	if errors.Is(err, service.ErrStoreNotFound) {
		return helper.Error(c, fiber.StatusNotFound, "Kartu keluarga tidak ditemukan")
	}
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil kartu keluarga")
	}
	members, err := ctrl.Members.ListByCard(c.UserContext(), cardID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil anggota keluarga")
	}
	return helper.Success(c, "OK", dto.ToResponse(*card, members))
}

// POST /kartu-keluarga/:id/kepala — resume attach kepala (idempoten)
func (ctrl *KartuKeluargaController) AttachKepala(c *fiber.Ctx) error {
	cardID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var in dto.AttachKepalaDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(in); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := ctrl.Household.AttachHead(c.UserContext(), cardID, in.PendudukID); err != nil {
		return householdError(c, err)
	}
	return helper.Success(c, "Kepala keluarga terpasang", fiber.Map{
		"kartu_keluarga_id": cardID,
		"penduduk_id":       in.PendudukID,
	})
}

// POST /kartu-keluarga/:id/anggota — resume attach anggota (idempoten)
func (ctrl *KartuKeluargaController) AttachAnggota(c *fiber.Ctx) error {
	cardID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var in dto.AttachAnggotaDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(in); err != nil {
		return helper.ValidationError(c, err)
	}

	err = ctrl.Household.AttachMember(c.UserContext(), cardID, service.MemberSpec{
		ResidentID: in.PendudukID,
		Relation:   constants.RelationSHDK(in.Hubungan),
	})
	if err != nil {
		return householdError(c, err)
	}
	return helper.Success(c, "Anggota terpasang", fiber.Map{
		"kartu_keluarga_id": cardID,
		"penduduk_id":       in.PendudukID,
	})
}

// DELETE /kartu-keluarga/:id/anggota/:penduduk_id
func (ctrl *KartuKeluargaController) RemoveAnggota(c *fiber.Ctx) error {
	cardID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	residentID, err := uuid.Parse(c.Params("penduduk_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID penduduk tidak valid")
	}

	if err := ctrl.Household.RemoveMember(c.UserContext(), cardID, residentID); err != nil {
		if errors.Is(err, service.ErrStoreNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Anggota tidak ditemukan pada kartu ini")
		}
		return householdError(c, err)
	}
	return helper.Success(c, "Anggota dilepas", fiber.Map{
		"kartu_keluarga_id": cardID,
		"penduduk_id":       residentID,
	})
}

// DELETE /kartu-keluarga/:id — hapus kartu; anggota ikut terhapus.
func (ctrl *KartuKeluargaController) Delete(c *fiber.Ctx) error {
	cardID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	if err := ctrl.Cards.Delete(c.UserContext(), cardID); err != nil {
		if errors.Is(err, service.ErrStoreNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Kartu keluarga tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus kartu keluarga")
	}
	return helper.Success(c, "Kartu keluarga dihapus", fiber.Map{"kartu_keluarga_id": cardID})
}

// householdError memetakan taksonomi error service ke HTTP. Prinsipnya:
// precondition = "belum terjadi apa-apa, perbaiki input"; partial failure =
// "sebagian tersimpan, ini cara melanjutkannya".
func householdError(c *fiber.Ctx, err error) error {
	var (
		dup     *service.DuplicateMemberError
		inCard  *service.ResidentAlreadyInCardError
		orphan  *service.OrphanedCardError
		partial *service.PartialMembershipError
		step    *service.StepError
	)

	switch {
	// --- precondition: tidak ada tulisan
	case errors.Is(err, service.ErrMissingHead):
		return helper.Error(c, fiber.StatusBadRequest, "Kepala keluarga belum dipilih")
	case errors.As(err, &dup):
		return helper.ErrorWithDetails(c, fiber.StatusBadRequest,
			"Penduduk muncul ganda dalam daftar anggota",
			fiber.Map{"penduduk_id": dup.ResidentID})
	case errors.Is(err, service.ErrHeadViaMemberRole):
		return helper.Error(c, fiber.StatusBadRequest,
			"Peran kepala_keluarga dipilih lewat field kepala, bukan daftar anggota")

	// --- invariant
	case errors.As(err, &inCard):
		return helper.ErrorWithDetails(c, fiber.StatusConflict,
			"Penduduk sudah terdaftar pada kartu keluarga lain",
			fiber.Map{"penduduk_id": inCard.ResidentID})
	case errors.Is(err, service.ErrDemoteHead):
		return helper.Error(c, fiber.StatusConflict,
			"Ganti kepala keluarga lewat endpoint kepala")
	case errors.Is(err, service.ErrRemoveHead):
		return helper.Error(c, fiber.StatusConflict,
			"Kepala keluarga harus digantikan sebelum dilepas")
	case errors.Is(err, service.ErrCardNotFound):
		return helper.Error(c, fiber.StatusNotFound, "Kartu keluarga tidak ditemukan")

	// --- partial failure: sebagian sudah durable, beri jalan resume
	case errors.As(err, &orphan):
		return helper.ErrorWithDetails(c, fiber.StatusInternalServerError,
			"Kartu tersimpan tetapi kepala keluarga gagal dipasang; ulangi pemasangan kepala",
			fiber.Map{
				"kartu_keluarga_id": orphan.CardID,
				"resume":            "POST /kartu-keluarga/" + orphan.CardID.String() + "/kepala",
			})
	case errors.As(err, &partial):
		return helper.ErrorWithDetails(c, fiber.StatusMultiStatus,
			"Kartu dan kepala tersimpan; sebagian anggota gagal, ulangi per anggota",
			fiber.Map{
				"kartu_keluarga_id":  partial.CardID,
				"failed_penduduk_id": partial.FailedResidentIDs(),
				"resume":             "POST /kartu-keluarga/" + partial.CardID.String() + "/anggota",
			})

	// --- storage pass-through dgn langkah yang gagal
	case errors.As(err, &step):
		return helper.ErrorWithDetails(c, fiber.StatusInternalServerError,
			"Operasi gagal pada langkah "+step.Step,
			fiber.Map{"step": step.Step, "detail": step.Err.Error()})
	}

	return helper.Error(c, fiber.StatusInternalServerError, err.Error())
}
