// file: internals/features/settings/village_profile/service/village_profile_service.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"desaku_backend/internals/constants"
	"desaku_backend/internals/features/settings/village_profile/dto"
	"desaku_backend/internals/features/settings/village_profile/model"
)

var ErrSettingNotFound = errors.New("setting belum dikonfigurasi")

type Service struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB) *Service {
	return &Service{DB: db, Validate: validator.New()}
}

// get membaca satu setting by key.
func (s *Service) get(ctx context.Context, key string, out interface{}) error {
	var row model.DesaSettingModel
	err := s.DB.WithContext(ctx).
		Where("desa_setting_key = ?", key).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrSettingNotFound
	}
	if err != nil {
		return err
	}
	// payload sudah tervalidasi saat tulis; decode langsung
	if err := json.Unmarshal(row.DesaSettingValue, out); err != nil {
		return fmt.Errorf("payload setting %s korup: %w", key, err)
	}
	return nil
}

// upsert memvalidasi payload lalu menulis (decode-on-write).
func (s *Service) upsert(ctx context.Context, key string, payload interface{}) error {
	if err := s.Validate.Struct(payload); err != nil {
		return err
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	row := model.DesaSettingModel{
		DesaSettingKey:   key,
		DesaSettingValue: datatypes.JSON(raw),
	}
	return s.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "desa_setting_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"desa_setting_value", "desa_setting_updated_at"}),
		}).
		Create(&row).Error
}

// --- village_address ---------------------------------------------------------

func (s *Service) GetVillageAddress(ctx context.Context) (dto.VillageAddressDTO, error) {
	var out dto.VillageAddressDTO
	err := s.get(ctx, constants.SettingKeyVillageAddress, &out)
	return out, err
}

func (s *Service) UpsertVillageAddress(ctx context.Context, in dto.VillageAddressDTO) error {
	return s.upsert(ctx, constants.SettingKeyVillageAddress, in)
}

// --- village_profile ---------------------------------------------------------

func (s *Service) GetVillageProfile(ctx context.Context) (dto.VillageProfileDTO, error) {
	var out dto.VillageProfileDTO
	err := s.get(ctx, constants.SettingKeyVillageProfile, &out)
	return out, err
}

func (s *Service) UpsertVillageProfile(ctx context.Context, in dto.VillageProfileDTO) error {
	return s.upsert(ctx, constants.SettingKeyVillageProfile, in)
}
