// file: internals/features/residents/penduduk/service/penduduk_service.go
package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"desaku_backend/internals/features/residents/penduduk/model"
)

var ErrPendudukNotFound = errors.New("penduduk tidak ditemukan")

// Service = direktori penduduk: cari by NIK / potongan nama, ambil by id.
type Service struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Service { return &Service{DB: db} }

// Search mencari penduduk dgn query bebas: 16 digit dianggap NIK exact,
// selain itu ILIKE potongan nama.
func (s *Service) Search(ctx context.Context, query string, limit, offset int) ([]model.PendudukModel, int64, error) {
	q := strings.TrimSpace(query)
	tx := s.DB.WithContext(ctx).Model(&model.PendudukModel{})

	if q != "" {
		if len(q) == 16 && isDigits(q) {
			tx = tx.Where("penduduk_nik = ?", q)
		} else {
			tx = tx.Where("penduduk_nama ILIKE ?", "%"+q+"%")
		}
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []model.PendudukModel
	if err := tx.Order("penduduk_nama ASC").Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*model.PendudukModel, error) {
	var p model.PendudukModel
	err := s.DB.WithContext(ctx).
		Where("penduduk_id = ?", id).
		Take(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPendudukNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Service) GetByNIK(ctx context.Context, nik string) (*model.PendudukModel, error) {
	var p model.PendudukModel
	err := s.DB.WithContext(ctx).
		Where("penduduk_nik = ?", strings.TrimSpace(nik)).
		Take(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPendudukNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
