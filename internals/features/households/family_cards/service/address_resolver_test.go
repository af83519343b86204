package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"desaku_backend/internals/constants"
)

var villageAddr = Address{
	Provinsi:  "Prov A",
	Kabupaten: "Kab B",
	Kecamatan: "Kec C",
	Desa:      "Desa D",
}

// dalam_desa: provinsi..desa selalu dari profil desa, apapun input pemohon.
func TestResolveAddressInVillageForcesVillageFields(t *testing.T) {
	supplied := Address{
		Provinsi:  "Prov Lain",
		Kabupaten: "Kab Lain",
		Kecamatan: "Kec Lain",
		Desa:      "Desa Lain",
		Dusun:     "Dusun Hilir",
		RW:        "04",
		RT:        "02",
	}

	got := ResolveAddress(constants.KategoriDalamDesa, supplied, villageAddr)

	assert.Equal(t, villageAddr.Provinsi, got.Provinsi)
	assert.Equal(t, villageAddr.Kabupaten, got.Kabupaten)
	assert.Equal(t, villageAddr.Kecamatan, got.Kecamatan)
	assert.Equal(t, villageAddr.Desa, got.Desa)
	// detail domisili tetap dari pemohon
	assert.Equal(t, "Dusun Hilir", got.Dusun)
	assert.Equal(t, "04", got.RW)
	assert.Equal(t, "02", got.RT)
}

// kategori luar desa (dua-duanya): seluruh alamat dari input, tanpa override.
func TestResolveAddressOutOfVillagePassthrough(t *testing.T) {
	supplied := Address{
		Provinsi: "Prov X", Kabupaten: "Kab Y", Kecamatan: "Kec Z",
		Desa: "Desa W", Dusun: "Dusun Timur", RW: "01", RT: "05",
	}

	for _, kategori := range []constants.ResidencyCategory{
		constants.KategoriLuarDesa,
		constants.KategoriLuarDesaDomisili,
	} {
		got := ResolveAddress(kategori, supplied, villageAddr)
		assert.Equal(t, supplied, got, "kategori %s", kategori)
	}
}

// determinisme: input pemohon apa pun, hasil utk dalam_desa selalu sama di
// empat field yang diwarisi.
func TestResolveAddressInVillageDeterministic(t *testing.T) {
	inputs := []Address{
		{},
		{Provinsi: "Apa Saja"},
		{Provinsi: "A", Kabupaten: "B", Kecamatan: "C", Desa: "D", Dusun: "X"},
	}
	for _, supplied := range inputs {
		got := ResolveAddress(constants.KategoriDalamDesa, supplied, villageAddr)
		assert.Equal(t, villageAddr.Provinsi, got.Provinsi)
		assert.Equal(t, villageAddr.Kabupaten, got.Kabupaten)
		assert.Equal(t, villageAddr.Kecamatan, got.Kecamatan)
		assert.Equal(t, villageAddr.Desa, got.Desa)
	}
}
