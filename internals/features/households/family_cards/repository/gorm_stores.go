// file: internals/features/households/family_cards/repository/gorm_stores.go
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"desaku_backend/internals/constants"
	"desaku_backend/internals/features/households/family_cards/model"
	"desaku_backend/internals/features/households/family_cards/service"
)

// GormCardStore mengimplementasi service.CardStore di atas gorm.
type GormCardStore struct {
	DB *gorm.DB
}

func NewGormCardStore(db *gorm.DB) *GormCardStore { return &GormCardStore{DB: db} }

func (s *GormCardStore) Insert(ctx context.Context, card *model.KartuKeluargaModel) error {
	err := s.DB.WithContext(ctx).Create(card).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return service.ErrStoreConflict
	}
	return err
}

func (s *GormCardStore) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	res := s.DB.WithContext(ctx).
		Model(&model.KartuKeluargaModel{}).
		Where("kartu_keluarga_id = ?", id).
		Updates(updates)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return service.ErrStoreConflict
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return service.ErrStoreNotFound
	}
	return nil
}

func (s *GormCardStore) GetByID(ctx context.Context, id uuid.UUID) (*model.KartuKeluargaModel, error) {
	var card model.KartuKeluargaModel
	err := s.DB.WithContext(ctx).
		Where("kartu_keluarga_id = ?", id).
		Take(&card).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, service.ErrStoreNotFound
	}
	if err != nil {
		return nil, err
	}
	return &card, nil
}

// Delete: soft delete kartu + hard delete anggotanya (cascade kepemilikan).
func (s *GormCardStore) Delete(ctx context.Context, id uuid.UUID) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("anggota_keluarga_kartu_id = ?", id).
			Delete(&model.AnggotaKeluargaModel{}).Error; err != nil {
			return err
		}
		res := tx.Where("kartu_keluarga_id = ?", id).Delete(&model.KartuKeluargaModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return service.ErrStoreNotFound
		}
		return nil
	})
}

// GormMembershipStore mengimplementasi service.MembershipStore di atas gorm.
type GormMembershipStore struct {
	DB *gorm.DB
}

func NewGormMembershipStore(db *gorm.DB) *GormMembershipStore { return &GormMembershipStore{DB: db} }

func (s *GormMembershipStore) Insert(ctx context.Context, m *model.AnggotaKeluargaModel) error {
	err := s.DB.WithContext(ctx).Create(m).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return service.ErrStoreConflict
	}
	return err
}

func (s *GormMembershipStore) UpdateRole(ctx context.Context, memberID uuid.UUID, role constants.RelationSHDK) error {
	res := s.DB.WithContext(ctx).
		Model(&model.AnggotaKeluargaModel{}).
		Where("anggota_keluarga_id = ?", memberID).
		Update("anggota_keluarga_hubungan", role)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return service.ErrStoreNotFound
	}
	return nil
}

func (s *GormMembershipStore) Delete(ctx context.Context, memberID uuid.UUID) error {
	res := s.DB.WithContext(ctx).
		Where("anggota_keluarga_id = ?", memberID).
		Delete(&model.AnggotaKeluargaModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return service.ErrStoreNotFound
	}
	return nil
}

func (s *GormMembershipStore) ListByCard(ctx context.Context, cardID uuid.UUID) ([]model.AnggotaKeluargaModel, error) {
	var rows []model.AnggotaKeluargaModel
	err := s.DB.WithContext(ctx).
		Where("anggota_keluarga_kartu_id = ?", cardID).
		Order("anggota_keluarga_created_at ASC").
		Find(&rows).Error
	return rows, err
}

func (s *GormMembershipStore) FindByCardAndResident(ctx context.Context, cardID, residentID uuid.UUID) (*model.AnggotaKeluargaModel, error) {
	var m model.AnggotaKeluargaModel
	err := s.DB.WithContext(ctx).
		Where("anggota_keluarga_kartu_id = ? AND anggota_keluarga_penduduk_id = ?", cardID, residentID).
		Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, service.ErrStoreNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *GormMembershipStore) CountCardsForResident(ctx context.Context, residentID uuid.UUID, excludeCardID uuid.UUID) (int64, error) {
	var n int64
	tx := s.DB.WithContext(ctx).
		Model(&model.AnggotaKeluargaModel{}).
		Where("anggota_keluarga_penduduk_id = ?", residentID)
	if excludeCardID != uuid.Nil {
		tx = tx.Where("anggota_keluarga_kartu_id <> ?", excludeCardID)
	}
	err := tx.Count(&n).Error
	return n, err
}
