package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"desaku_backend/internals/constants"
)

// current {A: pasangan, B: anak}, desired [{A pasangan}, {C anak}] →
// toCreate=[C], toUpdate=[], B tidak disentuh.
func TestDiffMembersCreateOnly(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	current := map[uuid.UUID]constants.RelationSHDK{
		a: constants.SHDKPasangan,
		b: constants.SHDKAnak,
	}
	desired := []MemberSpec{
		{ResidentID: a, Relation: constants.SHDKPasangan},
		{ResidentID: c, Relation: constants.SHDKAnak},
	}

	diff, err := DiffMembers(current, desired)
	require.NoError(t, err)

	require.Len(t, diff.ToCreate, 1)
	assert.Equal(t, c, diff.ToCreate[0].ResidentID)
	assert.Empty(t, diff.ToUpdate)
	require.Len(t, diff.Unchanged, 1)
	assert.Equal(t, a, diff.Unchanged[0].ResidentID)
	// b tidak muncul di manapun: jalur ini tidak menghapus anggota
}

func TestDiffMembersRoleChange(t *testing.T) {
	a := uuid.New()
	current := map[uuid.UUID]constants.RelationSHDK{a: constants.SHDKAnak}
	desired := []MemberSpec{{ResidentID: a, Relation: constants.SHDKCucu}}

	diff, err := DiffMembers(current, desired)
	require.NoError(t, err)
	require.Len(t, diff.ToUpdate, 1)
	assert.Equal(t, constants.SHDKCucu, diff.ToUpdate[0].Relation)
	assert.Empty(t, diff.ToCreate)
}

func TestDiffMembersDuplicateRejected(t *testing.T) {
	a := uuid.New()
	desired := []MemberSpec{
		{ResidentID: a, Relation: constants.SHDKAnak},
		{ResidentID: a, Relation: constants.SHDKPasangan},
	}

	_, err := DiffMembers(nil, desired)
	var dup *DuplicateMemberError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, a, dup.ResidentID)
}

func TestDiffMembersHeadRoleRejected(t *testing.T) {
	desired := []MemberSpec{{ResidentID: uuid.New(), Relation: constants.SHDKKepalaKeluarga}}

	_, err := DiffMembers(nil, desired)
	require.ErrorIs(t, err, ErrHeadViaMemberRole)
}

func TestDiffMembersEmptyDesired(t *testing.T) {
	diff, err := DiffMembers(map[uuid.UUID]constants.RelationSHDK{
		uuid.New(): constants.SHDKAnak,
	}, nil)
	require.NoError(t, err)
	assert.Empty(t, diff.ToCreate)
	assert.Empty(t, diff.ToUpdate)
	assert.Empty(t, diff.Unchanged)
}
