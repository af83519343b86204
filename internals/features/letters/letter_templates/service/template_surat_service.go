// file: internals/features/letters/letter_templates/service/template_surat_service.go
package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"desaku_backend/internals/features/letters/letter_templates/dto"
	"desaku_backend/internals/features/letters/letter_templates/model"
	"desaku_backend/internals/features/letters/letter_templates/repository"
	"desaku_backend/internals/helpers/singledefault"
)

// Service: template surat dgn invariant satu-default-per-jenis.
// Perpindahan default selalu lewat enforcer; tidak ada jalur yang menulis
// template_surat_is_default langsung.
type Service struct {
	Store    *repository.GormTemplateStore
	Enforcer *singledefault.Enforcer[uuid.UUID]
}

func New(db *gorm.DB) *Service {
	store := repository.NewGormTemplateStore(db)
	return &Service{
		Store:    store,
		Enforcer: singledefault.New[uuid.UUID](store),
	}
}

func (s *Service) Create(ctx context.Context, in dto.TemplateSuratCreateDTO) (*model.TemplateSuratModel, error) {
	t := in.ToModel()
	if err := s.Store.Insert(ctx, &t); err != nil {
		return nil, err
	}
	if in.TemplateSuratIsDefault {
		if err := s.Enforcer.SetDefault(ctx, t.TemplateSuratJenis, t.TemplateSuratID); err != nil {
			return nil, err
		}
		t.TemplateSuratIsDefault = true
	}
	return &t, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, in dto.TemplateSuratUpdateDTO) error {
	t, err := s.Store.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if updates := in.ApplyUpdates(); len(updates) > 0 {
		if err := s.Store.UpdateFields(ctx, id, updates); err != nil {
			return err
		}
	}

	// is_default=true → switch via enforcer; is_default=false diabaikan:
	// default dicabut dgn mempromosikan template lain, bukan dimatikan sendiri
	if in.TemplateSuratIsDefault != nil && *in.TemplateSuratIsDefault {
		return s.Enforcer.SetDefault(ctx, t.TemplateSuratJenis, id)
	}
	return nil
}

func (s *Service) SetDefault(ctx context.Context, id uuid.UUID) error {
	t, err := s.Store.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return s.Enforcer.SetDefault(ctx, t.TemplateSuratJenis, id)
}

// Delete menolak template yang masih default (ErrCannotDeleteDefault).
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	t, err := s.Store.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return s.Enforcer.Remove(ctx, t.TemplateSuratJenis, id)
}

func (s *Service) List(ctx context.Context, jenis string) ([]model.TemplateSuratModel, error) {
	return s.Store.ListByJenis(ctx, jenis)
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*model.TemplateSuratModel, error) {
	return s.Store.GetByID(ctx, id)
}

func (s *Service) GetDefault(ctx context.Context, jenis string) (*model.TemplateSuratModel, error) {
	return s.Store.GetDefaultByJenis(ctx, jenis)
}
