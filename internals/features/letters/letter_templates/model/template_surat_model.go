// file: internals/features/letters/letter_templates/model/template_surat_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// --- MODEL template_surat ----------------------------------------------------
// Satu template per baris; per jenis surat maksimal satu yang default
// (dijaga oleh helpers/singledefault, bukan oleh hand-written SQL per entitas).
type TemplateSuratModel struct {
	// PK
	TemplateSuratID uuid.UUID `json:"template_surat_id" gorm:"column:template_surat_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// Group key: jenis surat (mis. surat_keterangan_kelahiran)
	TemplateSuratJenis string `json:"template_surat_jenis" gorm:"column:template_surat_jenis;type:varchar(60);not null;index:idx_template_surat_jenis"`

	TemplateSuratNama   string `json:"template_surat_nama" gorm:"column:template_surat_nama;type:varchar(120);not null"`
	TemplateSuratKonten string `json:"template_surat_konten" gorm:"column:template_surat_konten;type:text;not null"`

	// Placeholder yang dirender form (mis. {nama}, {nik})
	TemplateSuratFields pq.StringArray `json:"template_surat_fields" gorm:"column:template_surat_fields;type:text[]"`

	// Default per jenis
	TemplateSuratIsDefault bool `json:"template_surat_is_default" gorm:"column:template_surat_is_default;type:boolean;not null;default:false;index:idx_template_surat_is_default"`

	// Timestamps
	TemplateSuratCreatedAt time.Time      `json:"template_surat_created_at" gorm:"column:template_surat_created_at;type:timestamptz;not null;autoCreateTime"`
	TemplateSuratUpdatedAt time.Time      `json:"template_surat_updated_at" gorm:"column:template_surat_updated_at;type:timestamptz;not null;autoUpdateTime"`
	TemplateSuratDeletedAt gorm.DeletedAt `json:"template_surat_deleted_at,omitempty" gorm:"column:template_surat_deleted_at;type:timestamptz;index"`
}

func (TemplateSuratModel) TableName() string { return "template_surat" }
