// file: internals/features/residents/penduduk/model/penduduk_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// --- MODEL penduduk ----------------------------------------------------------
type PendudukModel struct {
	// PK
	PendudukID uuid.UUID `json:"penduduk_id" gorm:"column:penduduk_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// Identitas (NIK = natural key yang dipakai banyak surat turunan)
	PendudukNIK  string `json:"penduduk_nik" gorm:"column:penduduk_nik;type:varchar(16);not null;uniqueIndex:uq_penduduk_nik"`
	PendudukNama string `json:"penduduk_nama" gorm:"column:penduduk_nama;type:varchar(120);not null;index:idx_penduduk_nama"`

	// Kelahiran
	PendudukTempatLahir  string     `json:"penduduk_tempat_lahir" gorm:"column:penduduk_tempat_lahir;type:varchar(80)"`
	PendudukTanggalLahir *time.Time `json:"penduduk_tanggal_lahir,omitempty" gorm:"column:penduduk_tanggal_lahir;type:date"`

	// Kategori domisili (dalam_desa | luar_desa | luar_desa_domisili)
	PendudukKategori string `json:"penduduk_kategori" gorm:"column:penduduk_kategori;type:varchar(30);not null;default:'dalam_desa'"`

	// Alamat
	PendudukProvinsi  string `json:"penduduk_provinsi" gorm:"column:penduduk_provinsi;type:varchar(60)"`
	PendudukKabupaten string `json:"penduduk_kabupaten" gorm:"column:penduduk_kabupaten;type:varchar(60)"`
	PendudukKecamatan string `json:"penduduk_kecamatan" gorm:"column:penduduk_kecamatan;type:varchar(60)"`
	PendudukDesa      string `json:"penduduk_desa" gorm:"column:penduduk_desa;type:varchar(60)"`
	PendudukDusun     string `json:"penduduk_dusun" gorm:"column:penduduk_dusun;type:varchar(60)"`
	PendudukRW        string `json:"penduduk_rw" gorm:"column:penduduk_rw;type:varchar(3)"`
	PendudukRT        string `json:"penduduk_rt" gorm:"column:penduduk_rt;type:varchar(3)"`

	// Flag sosial
	PendudukPenerimaBansos bool `json:"penduduk_penerima_bansos" gorm:"column:penduduk_penerima_bansos;type:boolean;not null;default:false"`
	PendudukDisabilitas    bool `json:"penduduk_disabilitas" gorm:"column:penduduk_disabilitas;type:boolean;not null;default:false"`

	// Timestamps
	PendudukCreatedAt time.Time      `json:"penduduk_created_at" gorm:"column:penduduk_created_at;type:timestamptz;not null;autoCreateTime"`
	PendudukUpdatedAt time.Time      `json:"penduduk_updated_at" gorm:"column:penduduk_updated_at;type:timestamptz;not null;autoUpdateTime"`
	PendudukDeletedAt gorm.DeletedAt `json:"penduduk_deleted_at,omitempty" gorm:"column:penduduk_deleted_at;type:timestamptz;index"`
}

func (PendudukModel) TableName() string { return "penduduk" }
