// file: internals/features/households/family_cards/service/errors.go
package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// --- Precondition (belum ada tulisan apa pun) --------------------------------
var (
	ErrMissingHead       = errors.New("kepala keluarga belum dipilih")
	ErrHeadViaMemberRole = errors.New("peran kepala_keluarga tidak boleh lewat daftar anggota")
	ErrCardNotFound      = errors.New("kartu keluarga tidak ditemukan")
)

// DuplicateMemberError: satu penduduk muncul dua kali dalam daftar anggota
// yang diminta. Ditolak sebelum diff dihitung.
type DuplicateMemberError struct {
	ResidentID uuid.UUID
}

func (e *DuplicateMemberError) Error() string {
	return fmt.Sprintf("penduduk %s muncul lebih dari sekali dalam daftar anggota", e.ResidentID)
}

// --- Invariant ----------------------------------------------------------------
// ResidentAlreadyInCardError: kebijakan satu-penduduk-satu-KK aktif dan
// penduduk sudah tercatat di kartu lain.
type ResidentAlreadyInCardError struct {
	ResidentID uuid.UUID
}

func (e *ResidentAlreadyInCardError) Error() string {
	return fmt.Sprintf("penduduk %s sudah terdaftar pada kartu keluarga lain", e.ResidentID)
}

// --- Partial failure (sebagian tulisan sudah durable) -------------------------

// OrphanedCardError: kartu sudah tersimpan tetapi kepala keluarga gagal
// dilekatkan; kartu ada dengan nol anggota. Pemanggil harus retry
// attach-kepala memakai CardID ini, bukan membuat kartu baru.
type OrphanedCardError struct {
	CardID uuid.UUID
	Err    error
}

func (e *OrphanedCardError) Error() string {
	return fmt.Sprintf("kartu %s tersimpan tanpa kepala keluarga: %v", e.CardID, e.Err)
}

func (e *OrphanedCardError) Unwrap() error { return e.Err }

// MemberFailure mencatat satu anggota yang gagal ditulis.
type MemberFailure struct {
	ResidentID uuid.UUID
	Err        error
}

// PartialMembershipError: kartu + kepala valid, sebagian anggota gagal.
// Pemanggil bisa retry attach per anggota yang gagal saja.
type PartialMembershipError struct {
	CardID uuid.UUID
	Failed []MemberFailure
}

func (e *PartialMembershipError) Error() string {
	return fmt.Sprintf("kartu %s: %d anggota gagal disimpan", e.CardID, len(e.Failed))
}

// FailedResidentIDs memudahkan controller menyusun payload retry.
func (e *PartialMembershipError) FailedResidentIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(e.Failed))
	for _, f := range e.Failed {
		ids = append(ids, f.ResidentID)
	}
	return ids
}

// --- Storage pass-through -----------------------------------------------------

// StepError membungkus error storage dengan langkah yang gagal, tidak pernah
// menelan error aslinya.
type StepError struct {
	Step string // "persist_card", "attach_head", "attach_member", ...
	Err  error
}

func (e *StepError) Error() string { return fmt.Sprintf("%s: %v", e.Step, e.Err) }
func (e *StepError) Unwrap() error { return e.Err }
