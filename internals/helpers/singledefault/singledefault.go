// Package singledefault menjaga invariant "maksimal satu record default per
// grup": set default baru otomatis mencabut default lama dalam grup yang sama,
// dan record yang masih menjadi default tidak boleh dihapus.
//
// Dipakai untuk template surat (satu template default per jenis surat); bentuk
// invariannya sama dengan "satu kepala keluarga per kartu keluarga".
package singledefault

import (
	"context"
	"errors"
	"sync"
)

var (
	// ErrCannotDeleteDefault: record default harus digantikan dulu sebelum dihapus.
	ErrCannotDeleteDefault = errors.New("record masih menjadi default grupnya")

	// ErrNotInGroup dikembalikan store bila record tidak ada di grup tersebut.
	ErrNotInGroup = errors.New("record tidak ditemukan dalam grup")
)

// Store adalah penyimpanan record ber-flag default, dipartisi oleh groupKey.
type Store[ID comparable] interface {
	// ClearDefault mencabut flag default dari seluruh record dalam grup.
	ClearDefault(ctx context.Context, groupKey string) error
	// MarkDefault memasang flag default pada satu record dalam grup.
	// Wajib mengembalikan ErrNotInGroup bila record bukan anggota grup.
	MarkDefault(ctx context.Context, groupKey string, id ID) error
	// IsDefault melaporkan apakah record sedang menjadi default.
	IsDefault(ctx context.Context, id ID) (bool, error)
	// Delete menghapus record.
	Delete(ctx context.Context, id ID) error
}

// Transactor diimplementasikan store yang bisa mengelompokkan tulisan
// clear-then-set ke dalam satu transaksi (mis. gorm DB.Transaction).
// Store in-memory untuk pengujian tidak perlu mengimplementasikannya.
type Transactor[ID comparable] interface {
	InTransaction(ctx context.Context, fn func(Store[ID]) error) error
}

// Enforcer menserialisasi perpindahan default per groupKey. Tanpa serialisasi,
// dua SetDefault paralel pada grup yang sama bisa sama-sama lolos dan
// meninggalkan dua record default.
type Enforcer[ID comparable] struct {
	store Store[ID]

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func New[ID comparable](store Store[ID]) *Enforcer[ID] {
	return &Enforcer[ID]{
		store: store,
		locks: make(map[string]*sync.Mutex),
	}
}

func (e *Enforcer[ID]) groupLock(groupKey string) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()
	l, ok := e.locks[groupKey]
	if !ok {
		l = &sync.Mutex{}
		e.locks[groupKey] = l
	}
	return l
}

// SetDefault menjadikan record `id` default grup: cabut default lama, pasang
// yang baru, dalam satu tulisan logis. Idempoten untuk record yang sudah
// menjadi default.
func (e *Enforcer[ID]) SetDefault(ctx context.Context, groupKey string, id ID) error {
	l := e.groupLock(groupKey)
	l.Lock()
	defer l.Unlock()

	switchFn := func(s Store[ID]) error {
		if err := s.ClearDefault(ctx, groupKey); err != nil {
			return err
		}
		return s.MarkDefault(ctx, groupKey, id)
	}

	if tx, ok := e.store.(Transactor[ID]); ok {
		return tx.InTransaction(ctx, switchFn)
	}
	return switchFn(e.store)
}

// Remove menghapus record dengan guard: record yang masih default ditolak
// (ErrCannotDeleteDefault) sampai ada penggantinya.
func (e *Enforcer[ID]) Remove(ctx context.Context, groupKey string, id ID) error {
	l := e.groupLock(groupKey)
	l.Lock()
	defer l.Unlock()

	isDefault, err := e.store.IsDefault(ctx, id)
	if err != nil {
		return err
	}
	if isDefault {
		return ErrCannotDeleteDefault
	}
	return e.store.Delete(ctx, id)
}
