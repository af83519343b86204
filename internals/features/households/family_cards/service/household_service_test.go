package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"desaku_backend/internals/constants"
	"desaku_backend/internals/features/households/family_cards/model"
	pendudukmodel "desaku_backend/internals/features/residents/penduduk/model"
)

// --- in-memory stores dgn injeksi kegagalan ----------------------------------

type memCards struct {
	mu         sync.Mutex
	cards      map[uuid.UUID]*model.KartuKeluargaModel
	failInsert error
}

func newMemCards() *memCards {
	return &memCards{cards: map[uuid.UUID]*model.KartuKeluargaModel{}}
}

func (s *memCards) Insert(_ context.Context, card *model.KartuKeluargaModel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failInsert != nil {
		return s.failInsert
	}
	card.KartuKeluargaID = uuid.New()
	cp := *card
	s.cards[card.KartuKeluargaID] = &cp
	return nil
}

func (s *memCards) Update(_ context.Context, id uuid.UUID, updates map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	card, ok := s.cards[id]
	if !ok {
		return ErrStoreNotFound
	}
	for col, v := range updates {
		switch col {
		case "kartu_keluarga_nomor":
			card.KartuKeluargaNomor = v.(string)
		case "kartu_keluarga_kategori":
			card.KartuKeluargaKategori = v.(constants.ResidencyCategory)
		case "kartu_keluarga_provinsi":
			card.KartuKeluargaProvinsi = v.(string)
		case "kartu_keluarga_kabupaten":
			card.KartuKeluargaKabupaten = v.(string)
		case "kartu_keluarga_kecamatan":
			card.KartuKeluargaKecamatan = v.(string)
		case "kartu_keluarga_desa":
			card.KartuKeluargaDesa = v.(string)
		case "kartu_keluarga_dusun":
			card.KartuKeluargaDusun = v.(string)
		case "kartu_keluarga_rw":
			card.KartuKeluargaRW = v.(string)
		case "kartu_keluarga_rt":
			card.KartuKeluargaRT = v.(string)
		}
	}
	return nil
}

func (s *memCards) GetByID(_ context.Context, id uuid.UUID) (*model.KartuKeluargaModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	card, ok := s.cards[id]
	if !ok {
		return nil, ErrStoreNotFound
	}
	cp := *card
	return &cp, nil
}

func (s *memCards) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.cards[id]; !ok {
		return ErrStoreNotFound
	}
	delete(s.cards, id)
	return nil
}

type memMembers struct {
	mu      sync.Mutex
	rows    map[uuid.UUID]*model.AnggotaKeluargaModel
	failFor map[uuid.UUID]error // penduduk_id → error saat Insert
}

func newMemMembers() *memMembers {
	return &memMembers{
		rows:    map[uuid.UUID]*model.AnggotaKeluargaModel{},
		failFor: map[uuid.UUID]error{},
	}
}

func (s *memMembers) Insert(_ context.Context, m *model.AnggotaKeluargaModel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failFor[m.AnggotaKeluargaPendudukID]; err != nil {
		return err
	}
	for _, row := range s.rows {
		if row.AnggotaKeluargaKartuID == m.AnggotaKeluargaKartuID &&
			row.AnggotaKeluargaPendudukID == m.AnggotaKeluargaPendudukID {
			return ErrStoreConflict
		}
	}
	m.AnggotaKeluargaID = uuid.New()
	cp := *m
	s.rows[m.AnggotaKeluargaID] = &cp
	return nil
}

func (s *memMembers) UpdateRole(_ context.Context, memberID uuid.UUID, role constants.RelationSHDK) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.rows[memberID]
	if !ok {
		return ErrStoreNotFound
	}
	row.AnggotaKeluargaHubungan = role
	return nil
}

func (s *memMembers) Delete(_ context.Context, memberID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[memberID]; !ok {
		return ErrStoreNotFound
	}
	delete(s.rows, memberID)
	return nil
}

func (s *memMembers) ListByCard(_ context.Context, cardID uuid.UUID) ([]model.AnggotaKeluargaModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.AnggotaKeluargaModel
	for _, row := range s.rows {
		if row.AnggotaKeluargaKartuID == cardID {
			out = append(out, *row)
		}
	}
	return out, nil
}

func (s *memMembers) FindByCardAndResident(_ context.Context, cardID, residentID uuid.UUID) (*model.AnggotaKeluargaModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, row := range s.rows {
		if row.AnggotaKeluargaKartuID == cardID && row.AnggotaKeluargaPendudukID == residentID {
			cp := *row
			return &cp, nil
		}
	}
	return nil, ErrStoreNotFound
}

func (s *memMembers) CountCardsForResident(_ context.Context, residentID uuid.UUID, excludeCardID uuid.UUID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for _, row := range s.rows {
		if row.AnggotaKeluargaPendudukID == residentID && row.AnggotaKeluargaKartuID != excludeCardID {
			n++
		}
	}
	return n, nil
}

type memResidents struct {
	mu    sync.Mutex
	known map[uuid.UUID]struct{}
}

func newMemResidents() *memResidents { return &memResidents{known: map[uuid.UUID]struct{}{}} }

func (s *memResidents) add() uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.New()
	s.known[id] = struct{}{}
	return id
}

func (s *memResidents) GetByID(_ context.Context, id uuid.UUID) (*pendudukmodel.PendudukModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.known[id]; !ok {
		return nil, ErrStoreNotFound
	}
	return &pendudukmodel.PendudukModel{PendudukID: id}, nil
}

type staticVillage struct {
	addr Address
	err  error
}

func (v staticVillage) DefaultAddress(context.Context) (Address, error) { return v.addr, v.err }

// --- suite -------------------------------------------------------------------

type HouseholdSuite struct {
	suite.Suite
	ctx       context.Context
	cards     *memCards
	members   *memMembers
	residents *memResidents
	svc       *HouseholdService
}

func TestHouseholdSuite(t *testing.T) {
	suite.Run(t, new(HouseholdSuite))
}

func (s *HouseholdSuite) SetupTest() {
	s.ctx = context.Background()
	s.cards = newMemCards()
	s.members = newMemMembers()
	s.residents = newMemResidents()
	s.svc = NewHouseholdService(s.cards, s.members, s.residents, staticVillage{
		addr: Address{Provinsi: "Prov A", Kabupaten: "Kab B", Kecamatan: "Kec C", Desa: "Desa D"},
	}, false)
}

func (s *HouseholdSuite) createInput(head uuid.UUID, members ...MemberSpec) CreateHouseholdInput {
	return CreateHouseholdInput{
		Card: CardFields{
			Nomor:    "3204012345678901",
			Kategori: constants.KategoriDalamDesa,
			Alamat:   Address{Dusun: "Dusun Hilir", RW: "04", RT: "02"},
		},
		HeadResidentID: head,
		Members:        members,
	}
}

func (s *HouseholdSuite) headsOf(cardID uuid.UUID) []uuid.UUID {
	rows, err := s.members.ListByCard(s.ctx, cardID)
	s.Require().NoError(err)
	var heads []uuid.UUID
	for _, m := range rows {
		if m.AnggotaKeluargaHubungan == constants.SHDKKepalaKeluarga {
			heads = append(heads, m.AnggotaKeluargaPendudukID)
		}
	}
	return heads
}

func (s *HouseholdSuite) roleOf(cardID, residentID uuid.UUID) constants.RelationSHDK {
	m, err := s.members.FindByCardAndResident(s.ctx, cardID, residentID)
	s.Require().NoError(err)
	return m.AnggotaKeluargaHubungan
}

// TestCreateSuccess: kartu + kepala + anggota, alamat mewarisi profil desa.
func (s *HouseholdSuite) TestCreateSuccess() {
	head := s.residents.add()
	spouse := s.residents.add()

	cardID, err := s.svc.CreateHousehold(s.ctx,
		s.createInput(head, MemberSpec{ResidentID: spouse, Relation: constants.SHDKPasangan}))
	s.Require().NoError(err)

	card, err := s.cards.GetByID(s.ctx, cardID)
	s.Require().NoError(err)
	// dalam_desa: provinsi..desa dipaksa dari profil desa, dusun/RT/RW dari input
	s.Equal("Prov A", card.KartuKeluargaProvinsi)
	s.Equal("Kab B", card.KartuKeluargaKabupaten)
	s.Equal("Kec C", card.KartuKeluargaKecamatan)
	s.Equal("Desa D", card.KartuKeluargaDesa)
	s.Equal("Dusun Hilir", card.KartuKeluargaDusun)
	s.Equal("02", card.KartuKeluargaRT)

	rows, err := s.members.ListByCard(s.ctx, cardID)
	s.Require().NoError(err)
	s.Len(rows, 2)
	s.Equal([]uuid.UUID{head}, s.headsOf(cardID))
	s.Equal(constants.SHDKPasangan, s.roleOf(cardID, spouse))
}

// TestMissingHead: precondition, tidak ada tulisan apa pun.
func (s *HouseholdSuite) TestMissingHead() {
	_, err := s.svc.CreateHousehold(s.ctx, s.createInput(uuid.Nil))
	s.Require().ErrorIs(err, ErrMissingHead)
	s.Empty(s.cards.cards)
}

// TestDuplicateMemberRejected: penduduk ganda di daftar → ditolak sebelum diff.
func (s *HouseholdSuite) TestDuplicateMemberRejected() {
	head := s.residents.add()
	child := s.residents.add()

	_, err := s.svc.CreateHousehold(s.ctx, s.createInput(head,
		MemberSpec{ResidentID: child, Relation: constants.SHDKAnak},
		MemberSpec{ResidentID: child, Relation: constants.SHDKCucu},
	))
	var dup *DuplicateMemberError
	s.Require().ErrorAs(err, &dup)
	s.Equal(child, dup.ResidentID)
	s.Empty(s.cards.cards)
}

// TestHeadNotViaMemberList: peran kepala lewat daftar anggota ditolak.
func (s *HouseholdSuite) TestHeadNotViaMemberList() {
	head := s.residents.add()
	other := s.residents.add()

	_, err := s.svc.CreateHousehold(s.ctx, s.createInput(head,
		MemberSpec{ResidentID: other, Relation: constants.SHDKKepalaKeluarga}))
	s.Require().ErrorIs(err, ErrHeadViaMemberRole)
	s.Empty(s.cards.cards)
}

// TestOrphanedCardRecovery: kartu tersimpan, kepala gagal → OrphanedCardError;
// retry AttachHead idempoten dan meninggalkan tepat satu kepala.
func (s *HouseholdSuite) TestOrphanedCardRecovery() {
	head := s.residents.add()
	s.members.failFor[head] = errors.New("koneksi putus")

	_, err := s.svc.CreateHousehold(s.ctx, s.createInput(head))
	var orphan *OrphanedCardError
	s.Require().ErrorAs(err, &orphan)
	s.NotEqual(uuid.Nil, orphan.CardID)

	// kartu ada, nol anggota
	_, err = s.cards.GetByID(s.ctx, orphan.CardID)
	s.Require().NoError(err)
	rows, _ := s.members.ListByCard(s.ctx, orphan.CardID)
	s.Empty(rows)

	// pulih: retry attach-kepala dua kali → tetap satu kepala
	delete(s.members.failFor, head)
	s.Require().NoError(s.svc.AttachHead(s.ctx, orphan.CardID, head))
	s.Require().NoError(s.svc.AttachHead(s.ctx, orphan.CardID, head))
	s.Equal([]uuid.UUID{head}, s.headsOf(orphan.CardID))
}

// TestPartialMembershipFailure: satu anggota gagal tidak memblokir yang lain;
// retry per anggota menyelesaikan tanpa duplikat.
func (s *HouseholdSuite) TestPartialMembershipFailure() {
	head := s.residents.add()
	spouse := s.residents.add()
	child := s.residents.add()
	s.members.failFor[child] = errors.New("timeout")

	cardID, err := s.svc.CreateHousehold(s.ctx, s.createInput(head,
		MemberSpec{ResidentID: spouse, Relation: constants.SHDKPasangan},
		MemberSpec{ResidentID: child, Relation: constants.SHDKAnak},
	))
	var partial *PartialMembershipError
	s.Require().ErrorAs(err, &partial)
	s.Equal(cardID, partial.CardID)
	s.Equal([]uuid.UUID{child}, partial.FailedResidentIDs())

	// kartu + kepala + pasangan tetap valid
	s.Equal([]uuid.UUID{head}, s.headsOf(cardID))
	s.Equal(constants.SHDKPasangan, s.roleOf(cardID, spouse))

	// resume per anggota, dipanggil dua kali → tetap satu baris
	delete(s.members.failFor, child)
	spec := MemberSpec{ResidentID: child, Relation: constants.SHDKAnak}
	s.Require().NoError(s.svc.AttachMember(s.ctx, cardID, spec))
	s.Require().NoError(s.svc.AttachMember(s.ctx, cardID, spec))
	rows, _ := s.members.ListByCard(s.ctx, cardID)
	s.Len(rows, 3)
}

// TestCardPersistFailed: gagal di langkah pertama → error langkah, tanpa sisa.
func (s *HouseholdSuite) TestCardPersistFailed() {
	head := s.residents.add()
	s.cards.failInsert = errors.New("disk penuh")

	_, err := s.svc.CreateHousehold(s.ctx, s.createInput(head))
	var step *StepError
	s.Require().ErrorAs(err, &step)
	s.Equal("persist_card", step.Step)
	s.Empty(s.cards.cards)
}

// TestMultiCardPolicy: default satu-penduduk-satu-KK; bisa dilonggarkan.
func (s *HouseholdSuite) TestMultiCardPolicy() {
	head := s.residents.add()
	_, err := s.svc.CreateHousehold(s.ctx, s.createInput(head))
	s.Require().NoError(err)

	in := s.createInput(head)
	in.Card.Nomor = "3204019999999999"
	_, err = s.svc.CreateHousehold(s.ctx, in)
	var already *ResidentAlreadyInCardError
	s.Require().ErrorAs(err, &already)
	s.Equal(head, already.ResidentID)

	// kebijakan dilonggarkan → boleh
	s.svc.AllowMultiCard = true
	_, err = s.svc.CreateHousehold(s.ctx, in)
	s.Require().NoError(err)
}

// TestUpdateHeadSwap: ganti kepala; kepala lama turun ke peran yang diminta,
// kepala tetap tepat satu.
func (s *HouseholdSuite) TestUpdateHeadSwap() {
	r1 := s.residents.add()
	r2 := s.residents.add()

	cardID, err := s.svc.CreateHousehold(s.ctx,
		s.createInput(r1, MemberSpec{ResidentID: r2, Relation: constants.SHDKPasangan}))
	s.Require().NoError(err)

	newHead := r2
	err = s.svc.UpdateHousehold(s.ctx, cardID, UpdateHouseholdInput{
		Card: CardFields{
			Kategori: constants.KategoriDalamDesa,
			Alamat:   Address{Dusun: "Dusun Hilir", RW: "04", RT: "02"},
		},
		HeadResidentID: &newHead,
		Members:        []MemberSpec{{ResidentID: r1, Relation: constants.SHDKOrangTua}},
	})
	s.Require().NoError(err)

	s.Equal([]uuid.UUID{r2}, s.headsOf(cardID))
	s.Equal(constants.SHDKOrangTua, s.roleOf(cardID, r1))
	rows, _ := s.members.ListByCard(s.ctx, cardID)
	s.Len(rows, 2)
}

// TestUpdateCategorySwitch: pindah kategori luar_desa → alamat sepenuhnya dari
// input, profil desa tidak dipakai.
func (s *HouseholdSuite) TestUpdateCategorySwitch() {
	head := s.residents.add()
	cardID, err := s.svc.CreateHousehold(s.ctx, s.createInput(head))
	s.Require().NoError(err)

	err = s.svc.UpdateHousehold(s.ctx, cardID, UpdateHouseholdInput{
		Card: CardFields{
			Kategori: constants.KategoriLuarDesa,
			Alamat: Address{
				Provinsi: "Prov X", Kabupaten: "Kab Y", Kecamatan: "Kec Z",
				Desa: "Desa W", Dusun: "Dusun Timur", RW: "01", RT: "05",
			},
		},
	})
	s.Require().NoError(err)

	card, _ := s.cards.GetByID(s.ctx, cardID)
	s.Equal(constants.KategoriLuarDesa, card.KartuKeluargaKategori)
	s.Equal("Prov X", card.KartuKeluargaProvinsi)
	s.Equal("Desa W", card.KartuKeluargaDesa)
}

// TestUpdateHeadlessCardRequiresHead: kartu yatim (kepala gagal saat create)
// tidak boleh di-update tanpa kepala; uuid.Nil tidak boleh pernah jadi kepala.
func (s *HouseholdSuite) TestUpdateHeadlessCardRequiresHead() {
	head := s.residents.add()
	s.members.failFor[head] = errors.New("koneksi putus")

	_, err := s.svc.CreateHousehold(s.ctx, s.createInput(head))
	var orphan *OrphanedCardError
	s.Require().ErrorAs(err, &orphan)

	// edit alamat tanpa menyebut kepala → ditolak sebelum tulisan apa pun
	err = s.svc.UpdateHousehold(s.ctx, orphan.CardID, UpdateHouseholdInput{
		Card: CardFields{
			Kategori: constants.KategoriDalamDesa,
			Alamat:   Address{Dusun: "Dusun Hulu"},
		},
	})
	s.Require().ErrorIs(err, ErrMissingHead)
	rows, _ := s.members.ListByCard(s.ctx, orphan.CardID)
	s.Empty(rows)

	// pulih lewat jalur resume, lalu update yang sama berhasil
	delete(s.members.failFor, head)
	s.Require().NoError(s.svc.AttachHead(s.ctx, orphan.CardID, head))
	s.Require().NoError(s.svc.UpdateHousehold(s.ctx, orphan.CardID, UpdateHouseholdInput{
		Card: CardFields{
			Kategori: constants.KategoriDalamDesa,
			Alamat:   Address{Dusun: "Dusun Hulu"},
		},
	}))
	s.Equal([]uuid.UUID{head}, s.headsOf(orphan.CardID))
}

// TestUpdateUnknownHeadRejected: calon kepala harus ada di direktori penduduk;
// kepala lama tidak tersentuh bila calon tidak dikenal.
func (s *HouseholdSuite) TestUpdateUnknownHeadRejected() {
	head := s.residents.add()
	cardID, err := s.svc.CreateHousehold(s.ctx, s.createInput(head))
	s.Require().NoError(err)

	ghost := uuid.New() // tidak pernah didaftarkan
	err = s.svc.UpdateHousehold(s.ctx, cardID, UpdateHouseholdInput{
		Card: CardFields{
			Kategori: constants.KategoriDalamDesa,
			Alamat:   Address{Dusun: "Dusun Hilir", RW: "04", RT: "02"},
		},
		HeadResidentID: &ghost,
	})
	var step *StepError
	s.Require().ErrorAs(err, &step)
	s.Equal("resolve_head", step.Step)
	s.Equal([]uuid.UUID{head}, s.headsOf(cardID))
}

// TestHeadSwapFailureKeepsOldHead: pemasangan kepala baru gagal → kepala lama
// tidak diturunkan, kartu tidak pernah tanpa kepala.
func (s *HouseholdSuite) TestHeadSwapFailureKeepsOldHead() {
	r1 := s.residents.add()
	r2 := s.residents.add()
	cardID, err := s.svc.CreateHousehold(s.ctx, s.createInput(r1))
	s.Require().NoError(err)

	s.members.failFor[r2] = errors.New("timeout")
	s.Require().Error(s.svc.AttachHead(s.ctx, cardID, r2))
	s.Equal([]uuid.UUID{r1}, s.headsOf(cardID))

	delete(s.members.failFor, r2)
	s.Require().NoError(s.svc.AttachHead(s.ctx, cardID, r2))
	s.Equal([]uuid.UUID{r2}, s.headsOf(cardID))
}

// TestUpdateNotFound
func (s *HouseholdSuite) TestUpdateNotFound() {
	err := s.svc.UpdateHousehold(s.ctx, uuid.New(), UpdateHouseholdInput{
		Card: CardFields{Kategori: constants.KategoriDalamDesa},
	})
	s.Require().ErrorIs(err, ErrCardNotFound)
}

// TestRemoveHeadGuard: kepala tidak bisa dilepas sebelum digantikan.
func (s *HouseholdSuite) TestRemoveHeadGuard() {
	head := s.residents.add()
	spouse := s.residents.add()
	cardID, err := s.svc.CreateHousehold(s.ctx,
		s.createInput(head, MemberSpec{ResidentID: spouse, Relation: constants.SHDKPasangan}))
	s.Require().NoError(err)

	s.Require().ErrorIs(s.svc.RemoveMember(s.ctx, cardID, head), ErrRemoveHead)

	// anggota biasa boleh dilepas
	s.Require().NoError(s.svc.RemoveMember(s.ctx, cardID, spouse))
	rows, _ := s.members.ListByCard(s.ctx, cardID)
	s.Len(rows, 1)
}
