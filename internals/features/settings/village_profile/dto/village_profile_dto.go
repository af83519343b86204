// file: internals/features/settings/village_profile/dto/village_profile_dto.go
package dto

// VillageAddressDTO: skema payload setting village_address.
// Divalidasi saat tulis; baca tinggal decode ke struct ini.
type VillageAddressDTO struct {
	Provinsi  string `json:"provinsi" validate:"required,max=60"`
	Kabupaten string `json:"kabupaten" validate:"required,max=60"`
	Kecamatan string `json:"kecamatan" validate:"required,max=60"`
	Desa      string `json:"desa" validate:"required,max=60"`
}

// VillageProfileDTO: identitas desa utk kop surat dsb.
type VillageProfileDTO struct {
	NamaDesa   string `json:"nama_desa" validate:"required,max=80"`
	KodeDesa   string `json:"kode_desa" validate:"omitempty,max=20"`
	KepalaDesa string `json:"kepala_desa" validate:"omitempty,max=120"`
}
