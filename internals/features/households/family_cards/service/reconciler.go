// file: internals/features/households/family_cards/service/reconciler.go
package service

import (
	"github.com/google/uuid"

	"desaku_backend/internals/constants"
)

// MemberSpec: satu entri daftar anggota yang diinginkan.
type MemberSpec struct {
	ResidentID uuid.UUID
	Relation   constants.RelationSHDK
}

// MemberDiff: hasil rekonsiliasi daftar anggota saat ini vs yang diinginkan.
// Tidak ada operasi remove di jalur ini; lepas-anggota adalah operasi terpisah.
type MemberDiff struct {
	ToCreate  []MemberSpec
	ToUpdate  []MemberSpec // penduduk sudah anggota, perannya berubah
	Unchanged []MemberSpec
}

// DiffMembers menghitung diff anggota. Aturan:
//   - penduduk yang muncul dua kali di desired → *DuplicateMemberError
//   - peran kepala_keluarga tidak boleh lewat jalur ini (dipasang eksklusif
//     oleh orkestrator rumah tangga agar kepala selalu tepat satu)
//   - anggota lama yang tidak disebut desired dibiarkan, tidak dihapus
func DiffMembers(current map[uuid.UUID]constants.RelationSHDK, desired []MemberSpec) (MemberDiff, error) {
	seen := make(map[uuid.UUID]struct{}, len(desired))
	var diff MemberDiff

	for _, d := range desired {
		if d.Relation == constants.SHDKKepalaKeluarga {
			return MemberDiff{}, ErrHeadViaMemberRole
		}
		if _, dup := seen[d.ResidentID]; dup {
			return MemberDiff{}, &DuplicateMemberError{ResidentID: d.ResidentID}
		}
		seen[d.ResidentID] = struct{}{}

		existing, isMember := current[d.ResidentID]
		switch {
		case !isMember:
			diff.ToCreate = append(diff.ToCreate, d)
		case existing != d.Relation:
			diff.ToUpdate = append(diff.ToUpdate, d)
		default:
			diff.Unchanged = append(diff.Unchanged, d)
		}
	}
	return diff, nil
}
