// file: internals/features/households/family_cards/dto/kartu_keluarga_dto.go
package dto

import (
	"github.com/google/uuid"

	"desaku_backend/internals/constants"
	"desaku_backend/internals/features/households/family_cards/model"
	"desaku_backend/internals/features/households/family_cards/service"
)

////////////////////////////////////////////////////////////////////////////////
// KARTU KELUARGA — DTO
////////////////////////////////////////////////////////////////////////////////

type AnggotaDTO struct {
	PendudukID uuid.UUID `json:"penduduk_id" validate:"required"`
	// kepala_keluarga sengaja tidak ada di oneof: kepala dipilih lewat field
	// kepala_penduduk_id, bukan daftar anggota
	Hubungan string `json:"hubungan" validate:"required,oneof=pasangan anak orang_tua mertua cucu pembantu lainnya"`
}

type AlamatDTO struct {
	Provinsi  string `json:"provinsi" validate:"omitempty,max=60"`
	Kabupaten string `json:"kabupaten" validate:"omitempty,max=60"`
	Kecamatan string `json:"kecamatan" validate:"omitempty,max=60"`
	Desa      string `json:"desa" validate:"omitempty,max=60"`
	Dusun     string `json:"dusun" validate:"omitempty,max=60"`
	RW        string `json:"rw" validate:"omitempty,max=3"`
	RT        string `json:"rt" validate:"omitempty,max=3"`
}

// Create
type KartuKeluargaCreateDTO struct {
	KartuKeluargaNomor    string       `json:"kartu_keluarga_nomor" validate:"required,len=16,numeric"`
	KartuKeluargaKategori string       `json:"kartu_keluarga_kategori" validate:"required,oneof=dalam_desa luar_desa luar_desa_domisili"`
	Alamat                AlamatDTO    `json:"alamat"`
	KepalaPendudukID      uuid.UUID    `json:"kepala_penduduk_id"` // kosong → MissingHead dari service
	Anggota               []AnggotaDTO `json:"anggota" validate:"dive"`
}

// Update
type KartuKeluargaUpdateDTO struct {
	KartuKeluargaNomor    string       `json:"kartu_keluarga_nomor" validate:"omitempty,len=16,numeric"`
	KartuKeluargaKategori string       `json:"kartu_keluarga_kategori" validate:"required,oneof=dalam_desa luar_desa luar_desa_domisili"`
	Alamat                AlamatDTO    `json:"alamat"`
	KepalaPendudukID      *uuid.UUID   `json:"kepala_penduduk_id,omitempty"` // nil = kepala tetap
	Anggota               []AnggotaDTO `json:"anggota" validate:"dive"`
}

// Attach ulang (resume setelah partial failure)
type AttachAnggotaDTO struct {
	PendudukID uuid.UUID `json:"penduduk_id" validate:"required"`
	Hubungan   string    `json:"hubungan" validate:"required,oneof=pasangan anak orang_tua mertua cucu pembantu lainnya"`
}

type AttachKepalaDTO struct {
	PendudukID uuid.UUID `json:"penduduk_id" validate:"required"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPER
////////////////////////////////////////////////////////////////////////////////

func (in AlamatDTO) ToAddress() service.Address {
	return service.Address{
		Provinsi:  in.Provinsi,
		Kabupaten: in.Kabupaten,
		Kecamatan: in.Kecamatan,
		Desa:      in.Desa,
		Dusun:     in.Dusun,
		RW:        in.RW,
		RT:        in.RT,
	}
}

func toMemberSpecs(in []AnggotaDTO) []service.MemberSpec {
	out := make([]service.MemberSpec, 0, len(in))
	for _, a := range in {
		out = append(out, service.MemberSpec{
			ResidentID: a.PendudukID,
			Relation:   constants.RelationSHDK(a.Hubungan),
		})
	}
	return out
}

func (in KartuKeluargaCreateDTO) ToInput() service.CreateHouseholdInput {
	return service.CreateHouseholdInput{
		Card: service.CardFields{
			Nomor:    in.KartuKeluargaNomor,
			Kategori: constants.ResidencyCategory(in.KartuKeluargaKategori),
			Alamat:   in.Alamat.ToAddress(),
		},
		HeadResidentID: in.KepalaPendudukID,
		Members:        toMemberSpecs(in.Anggota),
	}
}

func (in KartuKeluargaUpdateDTO) ToInput() service.UpdateHouseholdInput {
	return service.UpdateHouseholdInput{
		Card: service.CardFields{
			Nomor:    in.KartuKeluargaNomor,
			Kategori: constants.ResidencyCategory(in.KartuKeluargaKategori),
			Alamat:   in.Alamat.ToAddress(),
		},
		HeadResidentID: in.KepalaPendudukID,
		Members:        toMemberSpecs(in.Anggota),
	}
}

////////////////////////////////////////////////////////////////////////////////
// RESPONSE
////////////////////////////////////////////////////////////////////////////////

type AnggotaResponse struct {
	AnggotaKeluargaID uuid.UUID `json:"anggota_keluarga_id"`
	PendudukID        uuid.UUID `json:"penduduk_id"`
	Hubungan          string    `json:"hubungan"`
}

type KartuKeluargaResponse struct {
	KartuKeluargaID       uuid.UUID         `json:"kartu_keluarga_id"`
	KartuKeluargaNomor    string            `json:"kartu_keluarga_nomor"`
	KartuKeluargaKategori string            `json:"kartu_keluarga_kategori"`
	Alamat                AlamatDTO         `json:"alamat"`
	Anggota               []AnggotaResponse `json:"anggota"`
}

func ToResponse(card model.KartuKeluargaModel, members []model.AnggotaKeluargaModel) KartuKeluargaResponse {
	anggota := make([]AnggotaResponse, 0, len(members))
	for _, m := range members {
		anggota = append(anggota, AnggotaResponse{
			AnggotaKeluargaID: m.AnggotaKeluargaID,
			PendudukID:        m.AnggotaKeluargaPendudukID,
			Hubungan:          string(m.AnggotaKeluargaHubungan),
		})
	}
	return KartuKeluargaResponse{
		KartuKeluargaID:       card.KartuKeluargaID,
		KartuKeluargaNomor:    card.KartuKeluargaNomor,
		KartuKeluargaKategori: string(card.KartuKeluargaKategori),
		Alamat: AlamatDTO{
			Provinsi:  card.KartuKeluargaProvinsi,
			Kabupaten: card.KartuKeluargaKabupaten,
			Kecamatan: card.KartuKeluargaKecamatan,
			Desa:      card.KartuKeluargaDesa,
			Dusun:     card.KartuKeluargaDusun,
			RW:        card.KartuKeluargaRW,
			RT:        card.KartuKeluargaRT,
		},
		Anggota: anggota,
	}
}
