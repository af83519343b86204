package singledefault

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"
)

// --- in-memory store ---------------------------------------------------------

type memRecord struct {
	group     string
	isDefault bool
}

type memStore struct {
	mu   sync.Mutex
	rows map[string]*memRecord
}

func newMemStore() *memStore { return &memStore{rows: map[string]*memRecord{}} }

func (s *memStore) add(id, group string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows[id] = &memRecord{group: group}
}

func (s *memStore) defaultsIn(group string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []string
	for id, r := range s.rows {
		if r.group == group && r.isDefault {
			out = append(out, id)
		}
	}
	return out
}

func (s *memStore) ClearDefault(_ context.Context, groupKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.rows {
		if r.group == groupKey {
			r.isDefault = false
		}
	}
	return nil
}

func (s *memStore) MarkDefault(_ context.Context, groupKey string, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rows[id]
	if !ok || r.group != groupKey {
		return ErrNotInGroup
	}
	r.isDefault = true
	return nil
}

func (s *memStore) IsDefault(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rows[id]
	if !ok {
		return false, fmt.Errorf("record %s tidak ada", id)
	}
	return r.isDefault, nil
}

func (s *memStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[id]; !ok {
		return fmt.Errorf("record %s tidak ada", id)
	}
	delete(s.rows, id)
	return nil
}

// --- suite -------------------------------------------------------------------

type EnforcerSuite struct {
	suite.Suite
	ctx      context.Context
	store    *memStore
	enforcer *Enforcer[string]
}

func TestEnforcerSuite(t *testing.T) {
	suite.Run(t, new(EnforcerSuite))
}

func (s *EnforcerSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = newMemStore()
	s.enforcer = New[string](s.store)
}

// Skenario pergantian default: T1 default, SetDefault(T2) → T1 dicabut,
// T2 terpasang; hapus T1 boleh, hapus T2 ditolak.
func (s *EnforcerSuite) TestSwitchDefault() {
	const group = "surat_keterangan_kelahiran"
	s.store.add("T1", group)
	s.store.add("T2", group)

	s.Require().NoError(s.enforcer.SetDefault(s.ctx, group, "T1"))
	s.Equal([]string{"T1"}, s.store.defaultsIn(group))

	s.Require().NoError(s.enforcer.SetDefault(s.ctx, group, "T2"))
	s.Equal([]string{"T2"}, s.store.defaultsIn(group))

	s.Require().NoError(s.enforcer.Remove(s.ctx, group, "T1"))
	s.Require().ErrorIs(s.enforcer.Remove(s.ctx, group, "T2"), ErrCannotDeleteDefault)
}

// Idempoten: set default yang sama dua kali tetap satu default.
func (s *EnforcerSuite) TestSetDefaultIdempotent() {
	const group = "surat_domisili"
	s.store.add("T1", group)

	s.Require().NoError(s.enforcer.SetDefault(s.ctx, group, "T1"))
	s.Require().NoError(s.enforcer.SetDefault(s.ctx, group, "T1"))
	s.Equal([]string{"T1"}, s.store.defaultsIn(group))
}

// Grup saling bebas: default grup lain tidak tersentuh.
func (s *EnforcerSuite) TestGroupsIndependent() {
	s.store.add("A1", "grup_a")
	s.store.add("B1", "grup_b")

	s.Require().NoError(s.enforcer.SetDefault(s.ctx, "grup_a", "A1"))
	s.Require().NoError(s.enforcer.SetDefault(s.ctx, "grup_b", "B1"))

	s.Equal([]string{"A1"}, s.store.defaultsIn("grup_a"))
	s.Equal([]string{"B1"}, s.store.defaultsIn("grup_b"))
}

// Record di luar grup ditolak.
func (s *EnforcerSuite) TestMarkOutsideGroup() {
	s.store.add("A1", "grup_a")
	s.store.add("B1", "grup_b")

	err := s.enforcer.SetDefault(s.ctx, "grup_a", "B1")
	s.Require().ErrorIs(err, ErrNotInGroup)
}

// Konkuren pada grup yang sama: akhirnya tepat satu default.
func (s *EnforcerSuite) TestConcurrentSetDefault() {
	const group = "surat_usaha"
	ids := []string{"T1", "T2", "T3", "T4"}
	for _, id := range ids {
		s.store.add(id, group)
	}

	var wg sync.WaitGroup
	for i := 0; i < 40; i++ {
		id := ids[i%len(ids)]
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.enforcer.SetDefault(s.ctx, group, id)
		}()
	}
	wg.Wait()

	s.Len(s.store.defaultsIn(group), 1)
}
