package draft

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// All tests run against the in-memory fallback; the Redis path shares the
// same serialization.

func TestSaveLoadClear(t *testing.T) {
	s := NewStore(nil, time.Minute)
	ctx := context.Background()

	v := url.Values{"nombre": {"Mad Cool"}, "ticketTypeName": {"General", "VIP"}}
	require.NoError(t, s.Save(ctx, "eventDraft:ana@eventzone.com", v))

	got, ok, err := s.Load(ctx, "eventDraft:ana@eventzone.com")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, v, got)

	require.NoError(t, s.Clear(ctx, "eventDraft:ana@eventzone.com"))
	_, ok, err = s.Load(ctx, "eventDraft:ana@eventzone.com")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLoadInexistente(t *testing.T) {
	s := NewStore(nil, time.Minute)
	_, ok, err := s.Load(context.Background(), "eventDraft:nadie")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestExpira(t *testing.T) {
	s := NewStore(nil, time.Millisecond)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "k", url.Values{"a": {"1"}}))
	time.Sleep(5 * time.Millisecond)

	_, ok, err := s.Load(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestJSONSnapshot(t *testing.T) {
	type perfil struct {
		Nombre string `json:"nombre"`
		Ciudad string `json:"ciudad"`
	}
	s := NewStore(nil, time.Minute)
	ctx := context.Background()

	require.NoError(t, s.SaveJSON(ctx, "perfilSnapshot:ana", perfil{Nombre: "Ana", Ciudad: "Sevilla"}))

	var got perfil
	ok, err := s.LoadJSON(ctx, "perfilSnapshot:ana", &got)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Sevilla", got.Ciudad)

	// Saving again replaces the previous snapshot.
	require.NoError(t, s.SaveJSON(ctx, "perfilSnapshot:ana", perfil{Nombre: "Ana", Ciudad: "Huelva"}))
	_, err = s.LoadJSON(ctx, "perfilSnapshot:ana", &got)
	require.NoError(t, err)
	assert.Equal(t, "Huelva", got.Ciudad)
}
