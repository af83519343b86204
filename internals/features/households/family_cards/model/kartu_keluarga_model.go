// file: internals/features/households/family_cards/model/kartu_keluarga_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"desaku_backend/internals/constants"
)

// --- MODEL kartu_keluarga ----------------------------------------------------
type KartuKeluargaModel struct {
	// PK
	KartuKeluargaID uuid.UUID `json:"kartu_keluarga_id" gorm:"column:kartu_keluarga_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// Nomor KK
	KartuKeluargaNomor string `json:"kartu_keluarga_nomor" gorm:"column:kartu_keluarga_nomor;type:varchar(16);not null;uniqueIndex:uq_kartu_keluarga_nomor"`

	// Kategori domisili; menentukan pewarisan alamat dari profil desa
	KartuKeluargaKategori constants.ResidencyCategory `json:"kartu_keluarga_kategori" gorm:"column:kartu_keluarga_kategori;type:varchar(30);not null;default:'dalam_desa'"`

	// Alamat (diwarisi dari profil desa utk kategori dalam_desa)
	KartuKeluargaProvinsi  string `json:"kartu_keluarga_provinsi" gorm:"column:kartu_keluarga_provinsi;type:varchar(60)"`
	KartuKeluargaKabupaten string `json:"kartu_keluarga_kabupaten" gorm:"column:kartu_keluarga_kabupaten;type:varchar(60)"`
	KartuKeluargaKecamatan string `json:"kartu_keluarga_kecamatan" gorm:"column:kartu_keluarga_kecamatan;type:varchar(60)"`
	KartuKeluargaDesa      string `json:"kartu_keluarga_desa" gorm:"column:kartu_keluarga_desa;type:varchar(60)"`
	KartuKeluargaDusun     string `json:"kartu_keluarga_dusun" gorm:"column:kartu_keluarga_dusun;type:varchar(60)"`
	KartuKeluargaRW        string `json:"kartu_keluarga_rw" gorm:"column:kartu_keluarga_rw;type:varchar(3)"`
	KartuKeluargaRT        string `json:"kartu_keluarga_rt" gorm:"column:kartu_keluarga_rt;type:varchar(3)"`

	// Relasi (diisi saat Preload)
	KartuKeluargaAnggota []AnggotaKeluargaModel `json:"kartu_keluarga_anggota,omitempty" gorm:"foreignKey:AnggotaKeluargaKartuID;references:KartuKeluargaID"`

	// Timestamps
	KartuKeluargaCreatedAt time.Time      `json:"kartu_keluarga_created_at" gorm:"column:kartu_keluarga_created_at;type:timestamptz;not null;autoCreateTime"`
	KartuKeluargaUpdatedAt time.Time      `json:"kartu_keluarga_updated_at" gorm:"column:kartu_keluarga_updated_at;type:timestamptz;not null;autoUpdateTime"`
	KartuKeluargaDeletedAt gorm.DeletedAt `json:"kartu_keluarga_deleted_at,omitempty" gorm:"column:kartu_keluarga_deleted_at;type:timestamptz;index"`
}

func (KartuKeluargaModel) TableName() string { return "kartu_keluarga" }

// --- MODEL anggota_keluarga --------------------------------------------------
// Join record penduduk ↔ kartu keluarga dgn peran SHDK.
// Unique (kartu_id, penduduk_id) menjadi sandaran idempotensi attach-ulang.
type AnggotaKeluargaModel struct {
	// PK
	AnggotaKeluargaID uuid.UUID `json:"anggota_keluarga_id" gorm:"column:anggota_keluarga_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// FK (cascade bersama kartu)
	AnggotaKeluargaKartuID    uuid.UUID `json:"anggota_keluarga_kartu_id" gorm:"column:anggota_keluarga_kartu_id;type:uuid;not null;uniqueIndex:uq_anggota_kartu_penduduk,priority:1;index:idx_anggota_kartu"`
	AnggotaKeluargaPendudukID uuid.UUID `json:"anggota_keluarga_penduduk_id" gorm:"column:anggota_keluarga_penduduk_id;type:uuid;not null;uniqueIndex:uq_anggota_kartu_penduduk,priority:2;index:idx_anggota_penduduk"`

	// SHDK
	AnggotaKeluargaHubungan constants.RelationSHDK `json:"anggota_keluarga_hubungan" gorm:"column:anggota_keluarga_hubungan;type:varchar(30);not null"`

	// Timestamps
	AnggotaKeluargaCreatedAt time.Time `json:"anggota_keluarga_created_at" gorm:"column:anggota_keluarga_created_at;type:timestamptz;not null;autoCreateTime"`
	AnggotaKeluargaUpdatedAt time.Time `json:"anggota_keluarga_updated_at" gorm:"column:anggota_keluarga_updated_at;type:timestamptz;not null;autoUpdateTime"`
}

func (AnggotaKeluargaModel) TableName() string { return "anggota_keluarga" }
