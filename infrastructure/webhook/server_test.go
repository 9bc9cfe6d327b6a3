package webhook

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"relay-desk/contract"
	"relay-desk/mocks"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func postEvent(s *Server, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/v1/events", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func Test_PostEvent_Forwards_The_Normalized_Event(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	req := require.New(t)

	handler := mocks.NewMockEventHandler(ctrl)
	server := NewServer(logs.GetLoggerFromLevel(slog.LevelDebug), handler)

	handler.EXPECT().
		HandleEvent(gomock.Any(), contract.InboundEvent{
			SenderID:    42,
			DisplayName: "Alice",
			Handle:      "alice",
			Text:        "hello",
		}).
		Return(nil).
		Times(1)

	rec := postEvent(server, `{"sender_id":42,"display_name":"Alice","handle":"alice","text":"hello"}`)
	req.Equal(http.StatusOK, rec.Code)
}

func Test_PostEvent_Rejects_Invalid_JSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	req := require.New(t)

	handler := mocks.NewMockEventHandler(ctrl)
	server := NewServer(logs.GetLoggerFromLevel(slog.LevelDebug), handler)

	rec := postEvent(server, `{not json`)
	req.Equal(http.StatusBadRequest, rec.Code)
}

func Test_PostEvent_Rejects_Missing_Sender(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	req := require.New(t)

	handler := mocks.NewMockEventHandler(ctrl)
	server := NewServer(logs.GetLoggerFromLevel(slog.LevelDebug), handler)

	rec := postEvent(server, `{"text":"hello"}`)
	req.Equal(http.StatusBadRequest, rec.Code)
}

func Test_PostEvent_Reports_Handler_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	req := require.New(t)

	handler := mocks.NewMockEventHandler(ctrl)
	server := NewServer(logs.GetLoggerFromLevel(slog.LevelDebug), handler)

	handler.EXPECT().
		HandleEvent(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("handler down")).
		Times(1)

	rec := postEvent(server, `{"sender_id":42,"text":"hello"}`)
	req.Equal(http.StatusBadGateway, rec.Code)
}

func Test_Health(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	req := require.New(t)

	server := NewServer(logs.GetLoggerFromLevel(slog.LevelDebug), mocks.NewMockEventHandler(ctrl))

	httpReq := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	server.echo.ServeHTTP(rec, httpReq)
	req.Equal(http.StatusOK, rec.Code)
}
