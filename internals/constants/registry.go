package constants

// --- ENUM status hubungan dalam keluarga (SHDK) ------------------------------
type RelationSHDK string

const (
	SHDKKepalaKeluarga RelationSHDK = "kepala_keluarga"
	SHDKPasangan       RelationSHDK = "pasangan" // suami/istri
	SHDKAnak           RelationSHDK = "anak"
	SHDKOrangTua       RelationSHDK = "orang_tua"
	SHDKMertua         RelationSHDK = "mertua"
	SHDKCucu           RelationSHDK = "cucu"
	SHDKPembantu       RelationSHDK = "pembantu"
	SHDKLainnya        RelationSHDK = "lainnya"
)

func (r RelationSHDK) Valid() bool {
	switch r {
	case SHDKKepalaKeluarga, SHDKPasangan, SHDKAnak, SHDKOrangTua,
		SHDKMertua, SHDKCucu, SHDKPembantu, SHDKLainnya:
		return true
	}
	return false
}

// --- ENUM kategori domisili kartu keluarga -----------------------------------
type ResidencyCategory string

const (
	KategoriDalamDesa        ResidencyCategory = "dalam_desa"
	KategoriLuarDesa         ResidencyCategory = "luar_desa"
	KategoriLuarDesaDomisili ResidencyCategory = "luar_desa_domisili" // KK luar desa, berdomisili di desa
)

func (k ResidencyCategory) Valid() bool {
	switch k {
	case KategoriDalamDesa, KategoriLuarDesa, KategoriLuarDesaDomisili:
		return true
	}
	return false
}

// InheritsVillageAddress: hanya kategori dalam_desa yang mewarisi
// provinsi/kabupaten/kecamatan/desa dari profil desa.
func (k ResidencyCategory) InheritsVillageAddress() bool {
	return k == KategoriDalamDesa
}

// --- Kunci setting -----------------------------------------------------------
const (
	SettingKeyVillageAddress = "village_address" // alamat default desa (JSON)
	SettingKeyVillageProfile = "village_profile" // identitas desa (nama, kode, kepala desa)
)
