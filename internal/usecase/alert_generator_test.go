package usecase

import (
	"testing"
	"time"

	"mecanica_oficina/internal/clock"

	"github.com/stretchr/testify/require"
)

func TestAlertGenerator_Raise(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	ids := []string{"a-1", "a-2"}
	g := NewAlertGenerator(clock.NewFixed(now), func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	})

	first := g.Raise("ENG-001", "low", "RO-1", "install")
	second := g.Raise("ENG-002", "low", "RO-2", "install")

	require.Equal(t, "a-1", first.ID)
	require.Equal(t, now, first.Timestamp)

	log := g.Alerts()
	require.Equal(t, []string{second.ID, first.ID}, []string{log[0].ID, log[1].ID})

	log[0].Message = "changed"
	require.Equal(t, "low", g.Alerts()[0].Message)
}

func TestAlertGenerator_DefaultsToUUIDs(t *testing.T) {
	g := NewAlertGenerator(nil, nil)
	a := g.Raise("P", "m", "", "")
	b := g.Raise("P", "m", "", "")
	require.NotEmpty(t, a.ID)
	require.NotEqual(t, a.ID, b.ID)
	require.False(t, a.Timestamp.IsZero())
}
