// file: internals/features/residents/penduduk/dto/penduduk_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"desaku_backend/internals/features/residents/penduduk/model"
)

////////////////////////////////////////////////////////////////////////////////
// PENDUDUK — DTO
////////////////////////////////////////////////////////////////////////////////

// Create
type PendudukCreateDTO struct {
	PendudukNIK  string `json:"penduduk_nik" validate:"required,len=16,numeric"`
	PendudukNama string `json:"penduduk_nama" validate:"required,max=120"`

	PendudukTempatLahir  string     `json:"penduduk_tempat_lahir" validate:"omitempty,max=80"`
	PendudukTanggalLahir *time.Time `json:"penduduk_tanggal_lahir,omitempty"`

	PendudukKategori string `json:"penduduk_kategori" validate:"required,oneof=dalam_desa luar_desa luar_desa_domisili"`

	PendudukProvinsi  string `json:"penduduk_provinsi" validate:"omitempty,max=60"`
	PendudukKabupaten string `json:"penduduk_kabupaten" validate:"omitempty,max=60"`
	PendudukKecamatan string `json:"penduduk_kecamatan" validate:"omitempty,max=60"`
	PendudukDesa      string `json:"penduduk_desa" validate:"omitempty,max=60"`
	PendudukDusun     string `json:"penduduk_dusun" validate:"omitempty,max=60"`
	PendudukRW        string `json:"penduduk_rw" validate:"omitempty,max=3"`
	PendudukRT        string `json:"penduduk_rt" validate:"omitempty,max=3"`

	PendudukPenerimaBansos bool `json:"penduduk_penerima_bansos"`
	PendudukDisabilitas    bool `json:"penduduk_disabilitas"`
}

// Update (partial)
type PendudukUpdateDTO struct {
	PendudukNama *string `json:"penduduk_nama,omitempty" validate:"omitempty,max=120"`

	PendudukTempatLahir  *string    `json:"penduduk_tempat_lahir,omitempty" validate:"omitempty,max=80"`
	PendudukTanggalLahir *time.Time `json:"penduduk_tanggal_lahir,omitempty"`

	PendudukKategori *string `json:"penduduk_kategori,omitempty" validate:"omitempty,oneof=dalam_desa luar_desa luar_desa_domisili"`

	PendudukProvinsi  *string `json:"penduduk_provinsi,omitempty" validate:"omitempty,max=60"`
	PendudukKabupaten *string `json:"penduduk_kabupaten,omitempty" validate:"omitempty,max=60"`
	PendudukKecamatan *string `json:"penduduk_kecamatan,omitempty" validate:"omitempty,max=60"`
	PendudukDesa      *string `json:"penduduk_desa,omitempty" validate:"omitempty,max=60"`
	PendudukDusun     *string `json:"penduduk_dusun,omitempty" validate:"omitempty,max=60"`
	PendudukRW        *string `json:"penduduk_rw,omitempty" validate:"omitempty,max=3"`
	PendudukRT        *string `json:"penduduk_rt,omitempty" validate:"omitempty,max=3"`

	PendudukPenerimaBansos *bool `json:"penduduk_penerima_bansos,omitempty"`
	PendudukDisabilitas    *bool `json:"penduduk_disabilitas,omitempty"`
}

// Response ringkas untuk hasil pencarian / pilihan anggota
type PendudukLiteResponse struct {
	PendudukID    uuid.UUID `json:"penduduk_id"`
	PendudukNIK   string    `json:"penduduk_nik"`
	PendudukNama  string    `json:"penduduk_nama"`
	PendudukDusun string    `json:"penduduk_dusun"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPER
////////////////////////////////////////////////////////////////////////////////

func (in PendudukCreateDTO) ToModel() model.PendudukModel {
	return model.PendudukModel{
		PendudukNIK:            in.PendudukNIK,
		PendudukNama:           in.PendudukNama,
		PendudukTempatLahir:    in.PendudukTempatLahir,
		PendudukTanggalLahir:   in.PendudukTanggalLahir,
		PendudukKategori:       in.PendudukKategori,
		PendudukProvinsi:       in.PendudukProvinsi,
		PendudukKabupaten:      in.PendudukKabupaten,
		PendudukKecamatan:      in.PendudukKecamatan,
		PendudukDesa:           in.PendudukDesa,
		PendudukDusun:          in.PendudukDusun,
		PendudukRW:             in.PendudukRW,
		PendudukRT:             in.PendudukRT,
		PendudukPenerimaBansos: in.PendudukPenerimaBansos,
		PendudukDisabilitas:    in.PendudukDisabilitas,
	}
}

// ApplyUpdates menghasilkan map kolom → nilai untuk partial update.
func (in PendudukUpdateDTO) ApplyUpdates() map[string]interface{} {
	updates := map[string]interface{}{}
	if in.PendudukNama != nil {
		updates["penduduk_nama"] = *in.PendudukNama
	}
	if in.PendudukTempatLahir != nil {
		updates["penduduk_tempat_lahir"] = *in.PendudukTempatLahir
	}
	if in.PendudukTanggalLahir != nil {
		updates["penduduk_tanggal_lahir"] = *in.PendudukTanggalLahir
	}
	if in.PendudukKategori != nil {
		updates["penduduk_kategori"] = *in.PendudukKategori
	}
	if in.PendudukProvinsi != nil {
		updates["penduduk_provinsi"] = *in.PendudukProvinsi
	}
	if in.PendudukKabupaten != nil {
		updates["penduduk_kabupaten"] = *in.PendudukKabupaten
	}
	if in.PendudukKecamatan != nil {
		updates["penduduk_kecamatan"] = *in.PendudukKecamatan
	}
	if in.PendudukDesa != nil {
		updates["penduduk_desa"] = *in.PendudukDesa
	}
	if in.PendudukDusun != nil {
		updates["penduduk_dusun"] = *in.PendudukDusun
	}
	if in.PendudukRW != nil {
		updates["penduduk_rw"] = *in.PendudukRW
	}
	if in.PendudukRT != nil {
		updates["penduduk_rt"] = *in.PendudukRT
	}
	if in.PendudukPenerimaBansos != nil {
		updates["penduduk_penerima_bansos"] = *in.PendudukPenerimaBansos
	}
	if in.PendudukDisabilitas != nil {
		updates["penduduk_disabilitas"] = *in.PendudukDisabilitas
	}
	return updates
}

func ToLite(m model.PendudukModel) PendudukLiteResponse {
	return PendudukLiteResponse{
		PendudukID:    m.PendudukID,
		PendudukNIK:   m.PendudukNIK,
		PendudukNama:  m.PendudukNama,
		PendudukDusun: m.PendudukDusun,
	}
}
