// file: internals/features/letters/letter_templates/repository/gorm_template_store.go
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"desaku_backend/internals/features/letters/letter_templates/model"
	"desaku_backend/internals/helpers/singledefault"
)

var ErrTemplateNotFound = errors.New("template surat tidak ditemukan")

// GormTemplateStore mengimplementasi singledefault.Store[uuid.UUID] +
// singledefault.Transactor[uuid.UUID] di atas tabel template_surat,
// plus CRUD biasa utk service-nya.
type GormTemplateStore struct {
	DB *gorm.DB
}

func NewGormTemplateStore(db *gorm.DB) *GormTemplateStore { return &GormTemplateStore{DB: db} }

// --- singledefault.Store -----------------------------------------------------

func (s *GormTemplateStore) ClearDefault(ctx context.Context, groupKey string) error {
	return s.DB.WithContext(ctx).
		Model(&model.TemplateSuratModel{}).
		Where("template_surat_jenis = ? AND template_surat_is_default = TRUE", groupKey).
		Update("template_surat_is_default", false).Error
}

func (s *GormTemplateStore) MarkDefault(ctx context.Context, groupKey string, id uuid.UUID) error {
	res := s.DB.WithContext(ctx).
		Model(&model.TemplateSuratModel{}).
		Where("template_surat_id = ? AND template_surat_jenis = ?", id, groupKey).
		Update("template_surat_is_default", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return singledefault.ErrNotInGroup
	}
	return nil
}

func (s *GormTemplateStore) IsDefault(ctx context.Context, id uuid.UUID) (bool, error) {
	var t model.TemplateSuratModel
	err := s.DB.WithContext(ctx).
		Select("template_surat_is_default").
		Where("template_surat_id = ?", id).
		Take(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, ErrTemplateNotFound
	}
	if err != nil {
		return false, err
	}
	return t.TemplateSuratIsDefault, nil
}

func (s *GormTemplateStore) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.DB.WithContext(ctx).
		Where("template_surat_id = ?", id).
		Delete(&model.TemplateSuratModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrTemplateNotFound
	}
	return nil
}

// InTransaction menjadikan clear-then-set satu tulisan logis di DB.
func (s *GormTemplateStore) InTransaction(ctx context.Context, fn func(singledefault.Store[uuid.UUID]) error) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormTemplateStore{DB: tx})
	})
}

// --- CRUD --------------------------------------------------------------------

func (s *GormTemplateStore) Insert(ctx context.Context, t *model.TemplateSuratModel) error {
	return s.DB.WithContext(ctx).Create(t).Error
}

func (s *GormTemplateStore) UpdateFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	res := s.DB.WithContext(ctx).
		Model(&model.TemplateSuratModel{}).
		Where("template_surat_id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrTemplateNotFound
	}
	return nil
}

func (s *GormTemplateStore) GetByID(ctx context.Context, id uuid.UUID) (*model.TemplateSuratModel, error) {
	var t model.TemplateSuratModel
	err := s.DB.WithContext(ctx).
		Where("template_surat_id = ?", id).
		Take(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTemplateNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *GormTemplateStore) ListByJenis(ctx context.Context, jenis string) ([]model.TemplateSuratModel, error) {
	var rows []model.TemplateSuratModel
	tx := s.DB.WithContext(ctx).Model(&model.TemplateSuratModel{})
	if jenis != "" {
		tx = tx.Where("template_surat_jenis = ?", jenis)
	}
	err := tx.Order("template_surat_is_default DESC, template_surat_created_at DESC").
		Find(&rows).Error
	return rows, err
}

// GetDefaultByJenis: template aktif utk satu jenis surat (dipakai render form).
func (s *GormTemplateStore) GetDefaultByJenis(ctx context.Context, jenis string) (*model.TemplateSuratModel, error) {
	var t model.TemplateSuratModel
	err := s.DB.WithContext(ctx).
		Where("template_surat_jenis = ? AND template_surat_is_default = TRUE", jenis).
		Take(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTemplateNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}
