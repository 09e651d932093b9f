package handler_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KasumiMercury/primind-pill-timer/internal/app"
	"github.com/KasumiMercury/primind-pill-timer/internal/domain"
	"github.com/KasumiMercury/primind-pill-timer/internal/infra/handler"
)

func setupCooldownRouter(t *testing.T) (*gin.Engine, *app.MockCountdownUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	useCase := app.NewMockCountdownUseCase(gomock.NewController(t))
	h := handler.NewCooldownHandler(useCase)

	router := gin.New()
	h.RegisterRoutes(router.Group("/api/v1"))

	return router, useCase
}

func TestSetCooldownHandlerSuccess(t *testing.T) {
	tests := []struct {
		name    string
		seconds int64
	}{
		{
			name:    "positive target",
			seconds: 300,
		},
		{
			name:    "zero clears the countdown",
			seconds: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, useCase := setupCooldownRouter(t)

			useCase.EXPECT().SetTarget(gomock.Any(), app.SetTargetInput{Seconds: tt.seconds}).Return(nil)

			rec := doJSON(router, http.MethodPut, "/api/v1/cooldown", map[string]any{"seconds": tt.seconds})

			assert.Equal(t, http.StatusOK, rec.Code)

			var response handler.MessageResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.Equal(t, "Cooldown updated!", response.Message)
		})
	}
}

func TestSetCooldownHandlerError(t *testing.T) {
	tests := []struct {
		name           string
		body           any
		setupMock      func(m *app.MockCountdownUseCase)
		expectedStatus int
		expectedError  string
		expectedField  string
	}{
		{
			name:           "missing seconds",
			body:           map[string]any{},
			setupMock:      func(*app.MockCountdownUseCase) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "validation_error",
		},
		{
			name: "negative seconds",
			body: map[string]any{"seconds": -5},
			setupMock: func(m *app.MockCountdownUseCase) {
				m.EXPECT().SetTarget(gomock.Any(), app.SetTargetInput{Seconds: -5}).
					Return(app.NewValidationErrorFrom("seconds", domain.ErrInvalidDuration))
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "validation_error",
			expectedField:  "seconds",
		},
		{
			name: "store write fails",
			body: map[string]any{"seconds": 10},
			setupMock: func(m *app.MockCountdownUseCase) {
				m.EXPECT().SetTarget(gomock.Any(), gomock.Any()).
					Return(fmt.Errorf("%w: connection reset", app.ErrStoreWriteFailed))
			},
			expectedStatus: http.StatusBadGateway,
			expectedError:  "store_write_failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, useCase := setupCooldownRouter(t)
			tt.setupMock(useCase)

			rec := doJSON(router, http.MethodPut, "/api/v1/cooldown", tt.body)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			var response handler.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.Equal(t, tt.expectedError, response.Error)
			assert.Equal(t, tt.expectedField, response.Field)
		})
	}
}

func TestGetCountdownHandlerSuccess(t *testing.T) {
	router, useCase := setupCooldownRouter(t)

	useCase.EXPECT().Snapshot().Return(app.CountdownOutput{RemainingSeconds: 2, State: "counting"})

	rec := doJSON(router, http.MethodGet, "/api/v1/cooldown", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response handler.CountdownResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, int64(2), response.RemainingSeconds)
	assert.Equal(t, "counting", response.State)
}

func TestStreamCountdownHandlerSuccess(t *testing.T) {
	router, useCase := setupCooldownRouter(t)
	unsubscribed := make(chan struct{})

	useCase.EXPECT().Subscribe(gomock.Any()).Return(func() { close(unsubscribed) })
	useCase.EXPECT().Snapshot().Return(app.CountdownOutput{RemainingSeconds: 5, State: "counting"})

	srv := newTestServer(router)
	defer srv.Close()

	event, data := readFirstSSE(t, srv.URL+"/api/v1/cooldown/stream")

	assert.Equal(t, "countdown", event)

	var response handler.CountdownResponse
	require.NoError(t, json.Unmarshal([]byte(data), &response))
	assert.Equal(t, int64(5), response.RemainingSeconds)

	waitClosed(t, unsubscribed)
}
