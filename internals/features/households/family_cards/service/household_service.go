// file: internals/features/households/family_cards/service/household_service.go
package service

import (
	"context"
	"errors"
	"log"
	"sort"
	"sync"

	"github.com/google/uuid"

	"desaku_backend/internals/constants"
	"desaku_backend/internals/features/households/family_cards/model"
)

var (
	// ErrDemoteHead: menurunkan peran kepala lewat jalur anggota biasa dilarang;
	// pakai ganti-kepala (AttachHead) supaya kartu tidak pernah tanpa kepala.
	ErrDemoteHead = errors.New("kepala keluarga tidak boleh diubah lewat daftar anggota")
	// ErrRemoveHead: kepala harus digantikan dulu sebelum dilepas dari kartu.
	ErrRemoveHead = errors.New("kepala keluarga tidak boleh dihapus sebelum ada penggantinya")
)

// CardFields: isian kartu dari pemohon sebelum alamat diresolve.
type CardFields struct {
	Nomor    string
	Kategori constants.ResidencyCategory
	Alamat   Address
}

type CreateHouseholdInput struct {
	Card           CardFields
	HeadResidentID uuid.UUID
	Members        []MemberSpec
}

type UpdateHouseholdInput struct {
	Card           CardFields
	HeadResidentID *uuid.UUID // nil = kepala tidak diganti
	Members        []MemberSpec
}

// HouseholdService mengorkestrasi kartu + kepala + anggota sebagai satu
// operasi logis di atas tulisan-tulisan independen (tidak ada transaksi
// lintas aggregate). Tiap langkah durable sendiri; kegagalan dilaporkan
// cukup detail supaya pemanggil bisa melanjutkan, bukan mengulang dari nol.
type HouseholdService struct {
	Cards     CardStore
	Members   MembershipStore
	Residents ResidentReader
	Village   VillageAddressProvider

	// Kebijakan satu-penduduk-satu-KK (HOUSEHOLD_ALLOW_MULTI_CARD).
	AllowMultiCard bool
}

func NewHouseholdService(cards CardStore, members MembershipStore, residents ResidentReader, village VillageAddressProvider, allowMultiCard bool) *HouseholdService {
	return &HouseholdService{
		Cards:          cards,
		Members:        members,
		Residents:      residents,
		Village:        village,
		AllowMultiCard: allowMultiCard,
	}
}

// villageDefault membaca alamat desa dari setting; best-effort, jatuh ke
// fallback deployment bila belum dikonfigurasi atau setting tak terbaca.
func (s *HouseholdService) villageDefault(ctx context.Context) Address {
	addr, err := s.Village.DefaultAddress(ctx)
	if err != nil {
		if !errors.Is(err, ErrVillageAddressNotConfigured) {
			log.Printf("[WARNING] gagal baca alamat desa, pakai fallback: %v", err)
		}
		return FallbackVillageAddress()
	}
	return addr
}

// CreateHousehold: buat kartu + kepala + anggota.
//
// Urutan wajib: kartu → kepala → anggota (baris anggota mereferensikan id
// kartu). Antar sesama anggota tidak ada urutan; mereka komutatif dan
// ditulis fan-out.
func (s *HouseholdService) CreateHousehold(ctx context.Context, in CreateHouseholdInput) (uuid.UUID, error) {
	// 1) Precondition: kepala wajib dipilih sebelum tulisan apa pun.
	if in.HeadResidentID == uuid.Nil {
		return uuid.Nil, ErrMissingHead
	}
	if _, err := s.Residents.GetByID(ctx, in.HeadResidentID); err != nil {
		return uuid.Nil, &StepError{Step: "resolve_head", Err: err}
	}

	// 2) Precondition: daftar anggota bersih (tanpa duplikat, tanpa peran
	//    kepala, kepala tidak boleh ikut terdaftar sebagai anggota biasa).
	diff, err := s.cleanDesired(in.HeadResidentID, in.Members, nil)
	if err != nil {
		return uuid.Nil, err
	}

	// 3) Kebijakan satu-penduduk-satu-KK sebelum menulis.
	if err := s.checkMultiCardPolicy(ctx, uuid.Nil, in.HeadResidentID, diff.ToCreate); err != nil {
		return uuid.Nil, err
	}

	// 4) Resolve alamat dari kategori.
	resolved := ResolveAddress(in.Card.Kategori, in.Card.Alamat, s.villageDefault(ctx))

	// 5) Tulisan durable pertama: kartu.
	card := model.KartuKeluargaModel{
		KartuKeluargaNomor:     in.Card.Nomor,
		KartuKeluargaKategori:  in.Card.Kategori,
		KartuKeluargaProvinsi:  resolved.Provinsi,
		KartuKeluargaKabupaten: resolved.Kabupaten,
		KartuKeluargaKecamatan: resolved.Kecamatan,
		KartuKeluargaDesa:      resolved.Desa,
		KartuKeluargaDusun:     resolved.Dusun,
		KartuKeluargaRW:        resolved.RW,
		KartuKeluargaRT:        resolved.RT,
	}
	if err := s.Cards.Insert(ctx, &card); err != nil {
		return uuid.Nil, &StepError{Step: "persist_card", Err: err}
	}
	cardID := card.KartuKeluargaID

	// 6) Kepala keluarga. Gagal di sini = kartu yatim (nol anggota);
	//    pemanggil retry AttachHead dengan cardID yang sama.
	if err := s.AttachHead(ctx, cardID, in.HeadResidentID); err != nil {
		return cardID, &OrphanedCardError{CardID: cardID, Err: err}
	}

	// 7) Anggota, fan-out independen; satu gagal tidak memblokir yang lain.
	if perr := s.applyMemberWrites(ctx, cardID, diff); perr != nil {
		return cardID, perr
	}
	return cardID, nil
}

// UpdateHousehold: edit kartu + ganti kepala (opsional) + rekonsiliasi anggota,
// dengan disiplin pelaporan kegagalan yang sama dengan create.
func (s *HouseholdService) UpdateHousehold(ctx context.Context, cardID uuid.UUID, in UpdateHouseholdInput) error {
	card, err := s.Cards.GetByID(ctx, cardID)
	if err != nil {
		if errors.Is(err, ErrStoreNotFound) {
			return ErrCardNotFound
		}
		return &StepError{Step: "load_card", Err: err}
	}

	current, err := s.Members.ListByCard(ctx, cardID)
	if err != nil {
		return &StepError{Step: "load_members", Err: err}
	}
	currentRoles := make(map[uuid.UUID]constants.RelationSHDK, len(current))
	var currentHeadID uuid.UUID
	for _, m := range current {
		currentRoles[m.AnggotaKeluargaPendudukID] = m.AnggotaKeluargaHubungan
		if m.AnggotaKeluargaHubungan == constants.SHDKKepalaKeluarga {
			currentHeadID = m.AnggotaKeluargaPendudukID
		}
	}

	// Kepala efektif wajib non-nil; kartu yatim (hasil OrphanedCardError yang
	// belum dipulihkan) tidak boleh lolos lewat jalur update tanpa kepala.
	headID := currentHeadID
	if in.HeadResidentID != nil {
		headID = *in.HeadResidentID
	}
	if headID == uuid.Nil {
		return ErrMissingHead
	}
	if headID != currentHeadID {
		if _, err := s.Residents.GetByID(ctx, headID); err != nil {
			return &StepError{Step: "resolve_head", Err: err}
		}
	}

	// Kepala (lama yang dipertahankan maupun calon baru) tidak boleh muncul di
	// daftar anggota biasa; rekonsiliasi tidak pernah menyentuh peran kepala.
	diff, err := s.cleanDesired(headID, in.Members, currentRoles)
	if err != nil {
		return err
	}
	if err := s.checkMultiCardPolicy(ctx, cardID, headID, diff.ToCreate); err != nil {
		return err
	}

	// Alamat diresolve ulang; kategori bisa berubah dalam_desa ↔ luar_desa.
	resolved := ResolveAddress(in.Card.Kategori, in.Card.Alamat, s.villageDefault(ctx))
	updates := map[string]interface{}{
		"kartu_keluarga_kategori":  in.Card.Kategori,
		"kartu_keluarga_provinsi":  resolved.Provinsi,
		"kartu_keluarga_kabupaten": resolved.Kabupaten,
		"kartu_keluarga_kecamatan": resolved.Kecamatan,
		"kartu_keluarga_desa":      resolved.Desa,
		"kartu_keluarga_dusun":     resolved.Dusun,
		"kartu_keluarga_rw":        resolved.RW,
		"kartu_keluarga_rt":        resolved.RT,
	}
	if in.Card.Nomor != "" && in.Card.Nomor != card.KartuKeluargaNomor {
		updates["kartu_keluarga_nomor"] = in.Card.Nomor
	}
	if err := s.Cards.Update(ctx, cardID, updates); err != nil {
		return &StepError{Step: "update_card", Err: err}
	}

	// Ganti kepala: pasang yang baru, turunkan yang lama. Identik = no-op.
	if headID != currentHeadID {
		if err := s.AttachHead(ctx, cardID, headID); err != nil {
			return &StepError{Step: "attach_head", Err: err}
		}
	}

	if perr := s.applyMemberWrites(ctx, cardID, diff); perr != nil {
		return perr
	}
	return nil
}

// AttachHead memasang residentID sebagai kepala keluarga kartu. Idempoten:
// dipanggil ulang setelah OrphanedCardError tidak menghasilkan kepala kedua.
// Bila kartu sudah punya kepala lain, kepala lama diturunkan ke "lainnya"
// setelah kepala baru terpasang, sehingga akhir operasi kepala tepat satu.
func (s *HouseholdService) AttachHead(ctx context.Context, cardID, residentID uuid.UUID) error {
	members, err := s.Members.ListByCard(ctx, cardID)
	if err != nil {
		return err
	}

	var existing, oldHead *model.AnggotaKeluargaModel
	for i := range members {
		m := &members[i]
		if m.AnggotaKeluargaPendudukID == residentID {
			existing = m
			continue
		}
		if m.AnggotaKeluargaHubungan == constants.SHDKKepalaKeluarga {
			oldHead = m
		}
	}

	// Kepala baru diamankan dulu; kepala lama baru diturunkan sesudahnya.
	// Gagal di tengah tidak pernah meninggalkan kartu tanpa kepala.
	switch {
	case existing != nil && existing.AnggotaKeluargaHubungan == constants.SHDKKepalaKeluarga:
		// sudah kepala; retry adalah no-op
	case existing != nil:
		if err := s.Members.UpdateRole(ctx, existing.AnggotaKeluargaID, constants.SHDKKepalaKeluarga); err != nil {
			return err
		}
	default:
		err = s.Members.Insert(ctx, &model.AnggotaKeluargaModel{
			AnggotaKeluargaKartuID:    cardID,
			AnggotaKeluargaPendudukID: residentID,
			AnggotaKeluargaHubungan:   constants.SHDKKepalaKeluarga,
		})
		if errors.Is(err, ErrStoreConflict) {
			// balapan dgn retry lain: baris sudah ada, pastikan perannya kepala
			m, ferr := s.Members.FindByCardAndResident(ctx, cardID, residentID)
			if ferr != nil {
				return ferr
			}
			if m.AnggotaKeluargaHubungan != constants.SHDKKepalaKeluarga {
				if err := s.Members.UpdateRole(ctx, m.AnggotaKeluargaID, constants.SHDKKepalaKeluarga); err != nil {
					return err
				}
			}
		} else if err != nil {
			return err
		}
	}

	if oldHead != nil {
		// peran baru kepala lama (kalau ada) dipasang oleh rekonsiliasi
		// anggota sesudah ini
		if err := s.Members.UpdateRole(ctx, oldHead.AnggotaKeluargaID, constants.SHDKLainnya); err != nil {
			return &StepError{Step: "demote_old_head", Err: err}
		}
	}
	return nil
}

// AttachMember memasang/menyesuaikan satu anggota biasa. Idempoten: entri yang
// sudah ada dengan peran sama adalah no-op, bukan error duplikat ke pengguna.
func (s *HouseholdService) AttachMember(ctx context.Context, cardID uuid.UUID, spec MemberSpec) error {
	if spec.Relation == constants.SHDKKepalaKeluarga {
		return ErrHeadViaMemberRole
	}
	if !spec.Relation.Valid() {
		return &StepError{Step: "attach_member", Err: errors.New("peran SHDK tidak dikenal: " + string(spec.Relation))}
	}

	existing, err := s.Members.FindByCardAndResident(ctx, cardID, spec.ResidentID)
	if err != nil && !errors.Is(err, ErrStoreNotFound) {
		return err
	}
	if existing != nil {
		if existing.AnggotaKeluargaHubungan == spec.Relation {
			return nil // no-op (invariant: tidak ada anggota ganda)
		}
		if existing.AnggotaKeluargaHubungan == constants.SHDKKepalaKeluarga {
			return ErrDemoteHead
		}
		return s.Members.UpdateRole(ctx, existing.AnggotaKeluargaID, spec.Relation)
	}

	err = s.Members.Insert(ctx, &model.AnggotaKeluargaModel{
		AnggotaKeluargaKartuID:    cardID,
		AnggotaKeluargaPendudukID: spec.ResidentID,
		AnggotaKeluargaHubungan:   spec.Relation,
	})
	if errors.Is(err, ErrStoreConflict) {
		// sudah ditulis oleh percobaan sebelumnya
		m, ferr := s.Members.FindByCardAndResident(ctx, cardID, spec.ResidentID)
		if ferr != nil {
			return ferr
		}
		if m.AnggotaKeluargaHubungan == spec.Relation {
			return nil
		}
		return s.Members.UpdateRole(ctx, m.AnggotaKeluargaID, spec.Relation)
	}
	return err
}

// RemoveMember melepas satu anggota biasa dari kartu. Kepala ditolak sampai
// digantikan (bentuk invariannya sama dgn larangan hapus template default).
func (s *HouseholdService) RemoveMember(ctx context.Context, cardID, residentID uuid.UUID) error {
	m, err := s.Members.FindByCardAndResident(ctx, cardID, residentID)
	if err != nil {
		if errors.Is(err, ErrStoreNotFound) {
			return ErrStoreNotFound
		}
		return err
	}
	if m.AnggotaKeluargaHubungan == constants.SHDKKepalaKeluarga {
		return ErrRemoveHead
	}
	return s.Members.Delete(ctx, m.AnggotaKeluargaID)
}

// --- internal ----------------------------------------------------------------

// cleanDesired memvalidasi daftar anggota dan menghitung diff terhadap kondisi
// sekarang (nil utk create). Kepala dikeluarkan dari jalur generik.
func (s *HouseholdService) cleanDesired(headID uuid.UUID, desired []MemberSpec, current map[uuid.UUID]constants.RelationSHDK) (MemberDiff, error) {
	for _, d := range desired {
		if d.ResidentID == headID {
			return MemberDiff{}, &DuplicateMemberError{ResidentID: headID}
		}
		if !d.Relation.Valid() {
			return MemberDiff{}, &StepError{Step: "validate_members", Err: errors.New("peran SHDK tidak dikenal: " + string(d.Relation))}
		}
	}
	// kepala lama tidak ikut direkonsiliasi
	filtered := current
	if current != nil {
		filtered = make(map[uuid.UUID]constants.RelationSHDK, len(current))
		for id, role := range current {
			if role == constants.SHDKKepalaKeluarga {
				continue
			}
			filtered[id] = role
		}
	}
	return DiffMembers(filtered, desired)
}

func (s *HouseholdService) checkMultiCardPolicy(ctx context.Context, cardID, headID uuid.UUID, toCreate []MemberSpec) error {
	if s.AllowMultiCard {
		return nil
	}
	check := func(residentID uuid.UUID) error {
		n, err := s.Members.CountCardsForResident(ctx, residentID, cardID)
		if err != nil {
			return &StepError{Step: "check_policy", Err: err}
		}
		if n > 0 {
			return &ResidentAlreadyInCardError{ResidentID: residentID}
		}
		return nil
	}
	if err := check(headID); err != nil {
		return err
	}
	for _, spec := range toCreate {
		if err := check(spec.ResidentID); err != nil {
			return err
		}
	}
	return nil
}

// applyMemberWrites menulis ToCreate+ToUpdate secara fan-out dan mengumpulkan
// kegagalan per anggota. Kartu dan kepala tetap valid apa pun hasilnya.
func (s *HouseholdService) applyMemberWrites(ctx context.Context, cardID uuid.UUID, diff MemberDiff) *PartialMembershipError {
	specs := make([]MemberSpec, 0, len(diff.ToCreate)+len(diff.ToUpdate))
	specs = append(specs, diff.ToCreate...)
	specs = append(specs, diff.ToUpdate...)
	if len(specs) == 0 {
		return nil
	}

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		failed []MemberFailure
	)
	for _, spec := range specs {
		spec := spec
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.AttachMember(ctx, cardID, spec); err != nil {
				mu.Lock()
				failed = append(failed, MemberFailure{ResidentID: spec.ResidentID, Err: err})
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if len(failed) == 0 {
		return nil
	}
	sort.Slice(failed, func(i, j int) bool {
		return failed[i].ResidentID.String() < failed[j].ResidentID.String()
	})
	return &PartialMembershipError{CardID: cardID, Failed: failed}
}
