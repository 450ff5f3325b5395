package store

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/flowstate/service/dao"
)

type record struct {
	ID   string
	Name string
}

func newRecordStore() *MemoryStore[string, record] {
	return NewMemoryStore[string, record](func(r *record) string { return r.ID })
}

func TestMemoryStore_SaveLoad(t *testing.T) {
	store := newRecordStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &record{ID: "r1", Name: "first"}))

	loaded, err := store.Load(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, "first", loaded.Name)

	require.NoError(t, store.Save(ctx, &record{ID: "r1", Name: "updated"}))
	loaded, err = store.Load(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, "updated", loaded.Name)
}

func TestMemoryStore_SaveNil(t *testing.T) {
	store := newRecordStore()
	err := store.Save(context.Background(), nil)
	assert.ErrorIs(t, err, dao.ErrNilEntity)
}

func TestMemoryStore_LoadMissing(t *testing.T) {
	store := newRecordStore()
	_, err := store.Load(context.Background(), "ghost")
	assert.ErrorIs(t, err, dao.ErrNotFound)
}

func TestMemoryStore_Exists(t *testing.T) {
	store := newRecordStore()
	ctx := context.Background()
	assert.False(t, store.Exists(ctx, "r1"))
	require.NoError(t, store.Save(ctx, &record{ID: "r1"}))
	assert.True(t, store.Exists(ctx, "r1"))
}

func TestMemoryStore_Delete(t *testing.T) {
	store := newRecordStore()
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, &record{ID: "r1"}))
	require.NoError(t, store.Delete(ctx, "r1"))
	assert.False(t, store.Exists(ctx, "r1"))
	assert.ErrorIs(t, store.Delete(ctx, "r1"), dao.ErrNotFound)
}

func TestMemoryStore_List(t *testing.T) {
	store := newRecordStore()
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		require.NoError(t, store.Save(ctx, &record{ID: fmt.Sprintf("r%d", i)}))
	}
	all, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestMemoryStore_Concurrent(t *testing.T) {
	store := newRecordStore()
	ctx := context.Background()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = store.Save(ctx, &record{ID: fmt.Sprintf("r%d", i)})
			_, _ = store.Load(ctx, fmt.Sprintf("r%d", i))
		}(i)
	}
	wg.Wait()
	all, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 50)
}
