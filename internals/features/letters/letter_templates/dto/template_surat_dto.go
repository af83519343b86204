// file: internals/features/letters/letter_templates/dto/template_surat_dto.go
package dto

import (
	"github.com/lib/pq"

	"desaku_backend/internals/features/letters/letter_templates/model"
)

////////////////////////////////////////////////////////////////////////////////
// TEMPLATE SURAT — DTO
////////////////////////////////////////////////////////////////////////////////

// Create
type TemplateSuratCreateDTO struct {
	TemplateSuratJenis  string   `json:"template_surat_jenis" validate:"required,max=60"`
	TemplateSuratNama   string   `json:"template_surat_nama" validate:"required,max=120"`
	TemplateSuratKonten string   `json:"template_surat_konten" validate:"required"`
	TemplateSuratFields []string `json:"template_surat_fields" validate:"omitempty,dive,max=40"`

	// true → langsung dijadikan default jenisnya (mencabut default lama)
	TemplateSuratIsDefault bool `json:"template_surat_is_default"`
}

// Update (partial)
type TemplateSuratUpdateDTO struct {
	TemplateSuratNama   *string   `json:"template_surat_nama,omitempty" validate:"omitempty,max=120"`
	TemplateSuratKonten *string   `json:"template_surat_konten,omitempty"`
	TemplateSuratFields *[]string `json:"template_surat_fields,omitempty" validate:"omitempty,dive,max=40"`

	TemplateSuratIsDefault *bool `json:"template_surat_is_default,omitempty"`
}

func (in TemplateSuratCreateDTO) ToModel() model.TemplateSuratModel {
	return model.TemplateSuratModel{
		TemplateSuratJenis:  in.TemplateSuratJenis,
		TemplateSuratNama:   in.TemplateSuratNama,
		TemplateSuratKonten: in.TemplateSuratKonten,
		TemplateSuratFields: pq.StringArray(in.TemplateSuratFields),
		// is_default dipasang lewat enforcer, bukan langsung di insert
	}
}

func (in TemplateSuratUpdateDTO) ApplyUpdates() map[string]interface{} {
	updates := map[string]interface{}{}
	if in.TemplateSuratNama != nil {
		updates["template_surat_nama"] = *in.TemplateSuratNama
	}
	if in.TemplateSuratKonten != nil {
		updates["template_surat_konten"] = *in.TemplateSuratKonten
	}
	if in.TemplateSuratFields != nil {
		updates["template_surat_fields"] = pq.StringArray(*in.TemplateSuratFields)
	}
	return updates
}
