package catalog

import (
	"testing"

	"nova-packaging/internal/models"
	"nova-packaging/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestManager(t *testing.T) (*Manager, store.Store) {
	t.Helper()
	st, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return NewManager(st, zap.NewNop()), st
}

func strPtr(s string) *string            { return &s }
func pricePtr(p float64) *float64        { return &p }
func iconPtr(i models.Icon) *models.Icon { return &i }

func TestNewManager_SeedsDefaultsOnFirstRun(t *testing.T) {
	m, st := newTestManager(t)

	products := m.List()
	require.Len(t, products, 3)
	assert.Equal(t, "Biodegradable Boxes", products[0].Name)

	// defaults are persisted immediately
	var stored []models.Product
	require.NoError(t, st.Load(store.KeyProducts, &stored))
	assert.Equal(t, products, stored)
}

func TestNewManager_ReloadsPersistedCatalog(t *testing.T) {
	st, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)

	m := NewManager(st, zap.NewNop())
	added, err := m.Add(models.Product{Name: "Hemp Twine", Description: "Strong natural twine.", Price: 4.99})
	require.NoError(t, err)

	// fresh manager over the same store sees the same catalog
	m2 := NewManager(st, zap.NewNop())
	got := m2.List()
	require.Len(t, got, 4)
	assert.Equal(t, added, got[3])
}

func TestAdd_AssignsUniqueIDsAndAppends(t *testing.T) {
	m, _ := newTestManager(t)

	seen := map[string]bool{}
	for _, p := range m.List() {
		seen[p.ID] = true
	}
	for i := 0; i < 20; i++ {
		p, err := m.Add(models.Product{Name: "Kraft Tape", Description: "Paper tape.", Price: 2.50})
		require.NoError(t, err)
		assert.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true
	}

	got := m.List()
	assert.Equal(t, "Kraft Tape", got[len(got)-1].Name)
}

func TestAdd_Validation(t *testing.T) {
	m, _ := newTestManager(t)

	_, err := m.Add(models.Product{Name: "  ", Description: "x", Price: 1})
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = m.Add(models.Product{Name: "x", Description: "", Price: 1})
	assert.ErrorIs(t, err, ErrEmptyDescription)

	_, err = m.Add(models.Product{Name: "x", Description: "y", Price: -0.01})
	assert.ErrorIs(t, err, ErrNegativePrice)
}

func TestAdd_UnknownIconFallsBackToBox(t *testing.T) {
	m, _ := newTestManager(t)

	p, err := m.Add(models.Product{Name: "x", Description: "y", Price: 1, Icon: models.Icon("sparkles")})
	require.NoError(t, err)
	assert.Equal(t, models.IconBox, p.Icon)
}

func TestUpdate_MergesPartialFields(t *testing.T) {
	m, _ := newTestManager(t)
	p, err := m.Add(models.Product{Name: "Box", Description: "Plain box.", Price: 9.99, Category: "Boxes"})
	require.NoError(t, err)

	err = m.Update(p.ID, models.ProductPatch{
		Price: pricePtr(12.50),
		Icon:  iconPtr(models.IconLeaf),
	})
	require.NoError(t, err)

	got, ok := m.Get(p.ID)
	require.True(t, ok)
	assert.Equal(t, 12.50, got.Price)
	assert.Equal(t, models.IconLeaf, got.Icon)
	// untouched fields survive
	assert.Equal(t, "Box", got.Name)
	assert.Equal(t, "Boxes", got.Category)
}

func TestUpdate_AbsentIDIsNoOp(t *testing.T) {
	m, _ := newTestManager(t)
	before := m.List()

	require.NoError(t, m.Update("no-such-id", models.ProductPatch{Name: strPtr("ghost")}))
	assert.Equal(t, before, m.List())
}

func TestUpdate_RejectsBadPatch(t *testing.T) {
	m, _ := newTestManager(t)
	p, err := m.Add(models.Product{Name: "Box", Description: "d", Price: 1})
	require.NoError(t, err)

	assert.ErrorIs(t, m.Update(p.ID, models.ProductPatch{Price: pricePtr(-1)}), ErrNegativePrice)
	assert.ErrorIs(t, m.Update(p.ID, models.ProductPatch{Name: strPtr(" ")}), ErrEmptyName)
}

func TestDelete_IsIdempotent(t *testing.T) {
	m, _ := newTestManager(t)
	p, err := m.Add(models.Product{Name: "Box", Description: "d", Price: 1})
	require.NoError(t, err)

	m.Delete(p.ID)
	after := m.List()
	m.Delete(p.ID)

	assert.Equal(t, after, m.List())
	_, ok := m.Get(p.ID)
	assert.False(t, ok)
}

func TestCRUDSequence_ListReflectsHistory(t *testing.T) {
	m, _ := newTestManager(t)
	for _, p := range m.List() {
		m.Delete(p.ID)
	}

	a, err := m.Add(models.Product{Name: "A", Description: "d", Price: 1})
	require.NoError(t, err)
	b, err := m.Add(models.Product{Name: "B", Description: "d", Price: 2})
	require.NoError(t, err)
	c, err := m.Add(models.Product{Name: "C", Description: "d", Price: 3})
	require.NoError(t, err)

	m.Delete(b.ID)
	require.NoError(t, m.Update(c.ID, models.ProductPatch{Name: strPtr("C2")}))

	got := m.List()
	require.Len(t, got, 2)
	assert.Equal(t, a.ID, got[0].ID)
	assert.Equal(t, c.ID, got[1].ID)
	assert.Equal(t, "C2", got[1].Name)
}
