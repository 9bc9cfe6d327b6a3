package services_test

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"relay-desk/mocks"
	"relay-desk/services"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_Broadcast_Tolerates_Partial_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	req := require.New(t)

	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	registry := newTestRegistry(t)
	transport := mocks.NewMockTransport(ctrl)
	svc := services.NewBroadcastService(registry, transport, log)

	for _, id := range []int64{1, 2, 3, 4, 5} {
		_, _, err := registry.UpsertUser(id, fmt.Sprintf("user-%d", id), "")
		req.NoError(err)
	}

	// Every recipient must see exactly one attempt, failures included.
	failing := map[int64]bool{2: true, 4: true}
	for _, id := range []int64{1, 2, 3, 4, 5} {
		var result error
		if failing[id] {
			result = fmt.Errorf("recipient unreachable")
		}
		transport.EXPECT().
			Deliver(gomock.Any(), id, "📢 Announcement:\n\nmaintenance tonight").
			Return(result).
			Times(1)
	}

	report := svc.Broadcast(context.Background(), "maintenance tonight")
	req.Equal(3, report.Delivered)
	req.Equal(2, report.Failed)
}

func Test_Broadcast_Skips_Blocked_Users(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	req := require.New(t)

	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	registry := newTestRegistry(t)
	transport := mocks.NewMockTransport(ctrl)
	svc := services.NewBroadcastService(registry, transport, log)

	for _, id := range []int64{1, 2, 3} {
		_, _, err := registry.UpsertUser(id, "", "")
		req.NoError(err)
	}
	req.NoError(registry.SetActive(2, false))

	transport.EXPECT().Deliver(gomock.Any(), int64(1), gomock.Any()).Return(nil).Times(1)
	transport.EXPECT().Deliver(gomock.Any(), int64(3), gomock.Any()).Return(nil).Times(1)

	report := svc.Broadcast(context.Background(), "hello")
	req.Equal(2, report.Delivered)
	req.Equal(0, report.Failed)
}

func Test_Broadcast_Does_Not_Touch_Ledgers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	req := require.New(t)

	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	registry := newTestRegistry(t)
	transport := mocks.NewMockTransport(ctrl)
	svc := services.NewBroadcastService(registry, transport, log)

	_, _, err := registry.UpsertUser(42, "Alice", "alice")
	req.NoError(err)
	transport.EXPECT().Deliver(gomock.Any(), int64(42), gomock.Any()).Return(nil).Times(1)

	svc.Broadcast(context.Background(), "announcement")

	user, err := registry.GetUser(42)
	req.NoError(err)
	req.Empty(user.Messages)
}
