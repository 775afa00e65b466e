package users

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreCreate_AssignsFreshID(t *testing.T) {
	s := NewMemoryStore(DefaultSeed())

	u, err := s.Create("Ana")
	require.NoError(t, err)
	assert.Equal(t, 4, u.ID)
	assert.Equal(t, "Ana", u.Nombre)

	list := s.List()
	require.Len(t, list, 4)
	assert.Equal(t, u, list[3])
}

func TestMemoryStoreCreate_RejectsShortName(t *testing.T) {
	s := NewMemoryStore(nil)

	_, err := s.Create("Al")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Empty(t, s.List())
}

func TestMemoryStore_IDsNotReusedAfterDelete(t *testing.T) {
	s := NewMemoryStore(DefaultSeed())

	_, err := s.Delete(1)
	require.NoError(t, err)

	u, err := s.Create("Lucia")
	require.NoError(t, err)
	assert.Equal(t, 4, u.ID, "count+1 would have collided with id 3")

	seen := map[int]bool{}
	for _, u := range s.List() {
		assert.False(t, seen[u.ID], "duplicate id %d", u.ID)
		seen[u.ID] = true
	}
}

func TestMemoryStoreFindByID(t *testing.T) {
	s := NewMemoryStore(DefaultSeed())

	u, err := s.FindByID(2)
	require.NoError(t, err)
	assert.Equal(t, "Pablo", u.Nombre)

	_, err = s.FindByID(999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreUpdate(t *testing.T) {
	s := NewMemoryStore(DefaultSeed())

	u, err := s.Update(2, "Paula")
	require.NoError(t, err)
	assert.Equal(t, User{ID: 2, Nombre: "Paula"}, u)

	_, err = s.Update(2, "Lu")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	got, _ := s.FindByID(2)
	assert.Equal(t, "Paula", got.Nombre, "failed update must not mutate")

	_, err = s.Update(999, "Lu")
	assert.ErrorIs(t, err, ErrNotFound, "missing id is reported before validation")
}

func TestMemoryStoreDelete(t *testing.T) {
	s := NewMemoryStore(DefaultSeed())

	u, err := s.Delete(1)
	require.NoError(t, err)
	assert.Equal(t, User{ID: 1, Nombre: "Grover"}, u)
	assert.Equal(t, []User{{ID: 2, Nombre: "Pablo"}, {ID: 3, Nombre: "Ana"}}, s.List())

	_, err = s.Delete(1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreList_ReturnsCopy(t *testing.T) {
	s := NewMemoryStore(DefaultSeed())

	list := s.List()
	list[0].Nombre = "changed"

	u, err := s.FindByID(1)
	require.NoError(t, err)
	assert.Equal(t, "Grover", u.Nombre)
}

func TestMemoryStore_ConcurrentCreate(t *testing.T) {
	s := NewMemoryStore(nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Create("Usuario")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	list := s.List()
	require.Len(t, list, 50)
	seen := map[int]bool{}
	for _, u := range list {
		seen[u.ID] = true
	}
	assert.Len(t, seen, 50)
}
