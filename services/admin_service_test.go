package services_test

import (
	"testing"

	"relay-desk/errors"
	"relay-desk/services"

	"github.com/stretchr/testify/require"
)

func Test_Stats_Averages_Over_Active_Users(t *testing.T) {
	req := require.New(t)
	registry := newTestRegistry(t)
	svc := services.NewAdminService(registry)

	counts := map[int64]int{1: 2, 2: 0, 3: 4}
	for _, id := range []int64{1, 2, 3} {
		_, _, err := registry.UpsertUser(id, "", "")
		req.NoError(err)
		for range counts[id] {
			_, err := registry.AppendMessage(id, "msg", false)
			req.NoError(err)
		}
	}

	stats := svc.Stats()
	req.Equal(3, stats.TotalUsers)
	req.Equal(6, stats.TotalMessages)
	req.InDelta(2.0, stats.AverageMessages, 1e-9)
}

func Test_Stats_Empty_Registry(t *testing.T) {
	req := require.New(t)
	svc := services.NewAdminService(newTestRegistry(t))

	stats := svc.Stats()
	req.Equal(0, stats.TotalUsers)
	req.Equal(0, stats.TotalMessages)
	req.Zero(stats.AverageMessages)
}

func Test_Block_And_Unblock(t *testing.T) {
	req := require.New(t)
	registry := newTestRegistry(t)
	svc := services.NewAdminService(registry)

	_, _, err := registry.UpsertUser(42, "Alice", "alice")
	req.NoError(err)

	req.NoError(svc.Block(42))
	req.Empty(svc.ListActiveUsers())

	req.NoError(svc.Unblock(42))
	req.Len(svc.ListActiveUsers(), 1)

	req.ErrorIs(svc.Block(99), errors.ErrUserNotFound)
	req.ErrorIs(svc.Unblock(99), errors.ErrUserNotFound)
}
