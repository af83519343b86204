// file: internals/features/households/family_cards/service/address_resolver.go
package service

import (
	"desaku_backend/internals/configs"
	"desaku_backend/internals/constants"
)

// Address adalah nilai alamat polos yang dipakai resolver; tidak terikat gorm.
type Address struct {
	Provinsi  string `json:"provinsi"`
	Kabupaten string `json:"kabupaten"`
	Kecamatan string `json:"kecamatan"`
	Desa      string `json:"desa"`
	Dusun     string `json:"dusun"`
	RW        string `json:"rw"`
	RT        string `json:"rt"`
}

// ResolveAddress memutuskan alamat kartu keluarga dari kategori domisili.
//
// dalam_desa: provinsi/kabupaten/kecamatan/desa dipaksa dari profil desa,
// apapun input pemohon; dusun/RW/RT tetap dari pemohon (detail domisili
// berbeda antar rumah tangga di dalam desa sekalipun).
//
// luar_desa & luar_desa_domisili: seluruh alamat dari input pemohon.
//
// Fungsi murni, tanpa error: profil desa yang kosong sudah diganti fallback
// deployment oleh pemanggil (lihat FallbackVillageAddress).
func ResolveAddress(kategori constants.ResidencyCategory, supplied, villageDefault Address) Address {
	if !kategori.InheritsVillageAddress() {
		return supplied
	}
	return Address{
		Provinsi:  villageDefault.Provinsi,
		Kabupaten: villageDefault.Kabupaten,
		Kecamatan: villageDefault.Kecamatan,
		Desa:      villageDefault.Desa,
		Dusun:     supplied.Dusun,
		RW:        supplied.RW,
		RT:        supplied.RT,
	}
}

// FallbackVillageAddress: placeholder dari ENV deployment bila profil desa
// belum dikonfigurasi. Bukan nama daerah yang di-hard-code di source.
func FallbackVillageAddress() Address {
	return Address{
		Provinsi:  configs.VillageFallbackProvince,
		Kabupaten: configs.VillageFallbackRegency,
		Kecamatan: configs.VillageFallbackDistrict,
		Desa:      configs.VillageFallbackVillage,
	}
}
