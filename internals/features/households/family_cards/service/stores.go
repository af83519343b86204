// file: internals/features/households/family_cards/service/stores.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"desaku_backend/internals/constants"
	"desaku_backend/internals/features/households/family_cards/model"
	pendudukmodel "desaku_backend/internals/features/residents/penduduk/model"
)

// Sentinel yang wajib dikembalikan store; orkestrator tidak mengenal gorm.
var (
	ErrStoreNotFound = errors.New("record tidak ditemukan")
	ErrStoreConflict = errors.New("record sudah ada") // unique violation
)

// CardStore: persistensi kartu keluarga. Setiap panggilan adalah unit tulis
// independen (tidak ada transaksi lintas aggregate).
type CardStore interface {
	Insert(ctx context.Context, card *model.KartuKeluargaModel) error
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.KartuKeluargaModel, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// MembershipStore: persistensi anggota keluarga.
type MembershipStore interface {
	Insert(ctx context.Context, m *model.AnggotaKeluargaModel) error
	UpdateRole(ctx context.Context, memberID uuid.UUID, role constants.RelationSHDK) error
	Delete(ctx context.Context, memberID uuid.UUID) error
	ListByCard(ctx context.Context, cardID uuid.UUID) ([]model.AnggotaKeluargaModel, error)
	FindByCardAndResident(ctx context.Context, cardID, residentID uuid.UUID) (*model.AnggotaKeluargaModel, error)
	// CountCardsForResident menghitung kartu lain yang masih memuat penduduk;
	// dipakai kebijakan satu-penduduk-satu-KK.
	CountCardsForResident(ctx context.Context, residentID uuid.UUID, excludeCardID uuid.UUID) (int64, error)
}

// ResidentReader: akses baca direktori penduduk.
type ResidentReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*pendudukmodel.PendudukModel, error)
}

// VillageAddressProvider memasok alamat default desa dari setting.
// ErrVillageAddressNotConfigured bila setting belum ada → pemanggil fallback.
var ErrVillageAddressNotConfigured = errors.New("alamat desa belum dikonfigurasi")

type VillageAddressProvider interface {
	DefaultAddress(ctx context.Context) (Address, error)
}
