package listview

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPersonStore() *Store[person] {
	return NewStore(func(p person) string { return p.ID })
}

func TestStore_AppendServerRecord(t *testing.T) {
	store := newPersonStore()

	// The server-confirmed record, not the client payload, lands in state.
	store.Append(person{ID: "42", Name: "Asha", Dept: "HR"})

	records := store.Snapshot()
	require.Len(t, records, 1)
	assert.Equal(t, person{ID: "42", Name: "Asha", Dept: "HR"}, records[0])
}

func TestStore_ReplaceByID(t *testing.T) {
	store := newPersonStore()
	store.Replace([]person{
		{ID: "1", Name: "Asha", Dept: "HR"},
		{ID: "2", Name: "Ravi", Dept: "IT"},
	})

	ok := store.ReplaceByID(person{ID: "2", Name: "Ravi K", Dept: "Finance"})

	assert.True(t, ok)
	assert.Equal(t, []person{
		{ID: "1", Name: "Asha", Dept: "HR"},
		{ID: "2", Name: "Ravi K", Dept: "Finance"},
	}, store.Snapshot())
}

func TestStore_ReplaceByID_NoMatch(t *testing.T) {
	store := newPersonStore()
	before := []person{{ID: "1", Name: "Asha", Dept: "HR"}}
	store.Replace(before)

	ok := store.ReplaceByID(person{ID: "99", Name: "Ghost"})

	assert.False(t, ok)
	assert.Equal(t, before, store.Snapshot())
}

func TestStore_RemoveByID(t *testing.T) {
	store := newPersonStore()
	store.Replace([]person{
		{ID: "1", Name: "Asha", Dept: "HR"},
		{ID: "2", Name: "Ravi", Dept: "IT"},
	})

	assert.True(t, store.RemoveByID("1"))
	assert.Equal(t, []person{{ID: "2", Name: "Ravi", Dept: "IT"}}, store.Snapshot())
	assert.False(t, store.RemoveByID("1"))
}

func TestStore_SnapshotIsCopy(t *testing.T) {
	store := newPersonStore()
	store.Replace([]person{{ID: "1", Name: "Asha", Dept: "HR"}})

	snap := store.Snapshot()
	snap[0].Name = "mutated"

	assert.Equal(t, "Asha", store.Snapshot()[0].Name)
}

func TestStore_ConcurrentAccess(t *testing.T) {
	store := newPersonStore()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			store.Append(person{ID: "x"})
		}()
		go func() {
			defer wg.Done()
			_ = store.Snapshot()
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, store.Len())
}

func TestCollection_LoadSuccess(t *testing.T) {
	c := NewCollection(func(p person) string { return p.ID })

	err := c.Load(context.Background(), func(context.Context) ([]person, error) {
		return []person{{ID: "1", Name: "Asha"}}, nil
	})

	require.NoError(t, err)
	assert.True(t, c.Loaded())
	assert.Equal(t, State{}, c.State())
	assert.Len(t, c.Records(), 1)
}

func TestCollection_LoadFailureKeepsStaleRecords(t *testing.T) {
	c := NewCollection(func(p person) string { return p.ID })
	require.NoError(t, c.Load(context.Background(), func(context.Context) ([]person, error) {
		return []person{{ID: "1", Name: "Asha"}}, nil
	}))

	err := c.Load(context.Background(), func(context.Context) ([]person, error) {
		return nil, errors.New("upstream unavailable")
	})

	require.Error(t, err)
	assert.Equal(t, "upstream unavailable", c.State().Error)
	// Stale-but-present beats blanking on a transient failure.
	assert.Len(t, c.Records(), 1)
}

func TestCollection_LoadClearsPriorError(t *testing.T) {
	c := NewCollection(func(p person) string { return p.ID })
	_ = c.Load(context.Background(), func(context.Context) ([]person, error) {
		return nil, errors.New("boom")
	})

	require.NoError(t, c.Load(context.Background(), func(context.Context) ([]person, error) {
		return nil, nil
	}))

	assert.Equal(t, State{}, c.State())
}
