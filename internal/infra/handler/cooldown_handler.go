package handler

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-pill-timer/internal/app"
)

type CooldownHandler struct {
	useCase app.CountdownUseCase
}

func NewCooldownHandler(useCase app.CountdownUseCase) *CooldownHandler {
	return &CooldownHandler{
		useCase: useCase,
	}
}

func (h *CooldownHandler) SetCooldown(c *gin.Context) {
	ctx := c.Request.Context()

	var req SetCooldownRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)

		return
	}

	if err := h.useCase.SetTarget(ctx, app.SetTargetInput{Seconds: *req.Seconds}); err != nil {
		handleError(c, err)

		return
	}

	slog.InfoContext(ctx, "cooldown updated",
		"seconds", *req.Seconds,
	)
	c.JSON(http.StatusOK, MessageResponse{Message: MessageCooldownUpdated})
}

func (h *CooldownHandler) GetCountdown(c *gin.Context) {
	c.JSON(http.StatusOK, FromCountdown(h.useCase.Snapshot()))
}

// StreamCountdown sends the current value as an SSE "countdown" message, then
// every value the tracker emits.
func (h *CooldownHandler) StreamCountdown(c *gin.Context) {
	ctx := c.Request.Context()
	updates := make(chan CountdownResponse, 1)

	push := func(output app.CountdownOutput) {
		select {
		case <-updates:
		default:
		}
		updates <- FromCountdown(output)
	}

	unsubscribe := h.useCase.Subscribe(push)
	defer unsubscribe()

	c.SSEvent("countdown", FromCountdown(h.useCase.Snapshot()))

	c.Stream(func(io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case resp := <-updates:
			c.SSEvent("countdown", resp)

			return true
		}
	})
}

func (h *CooldownHandler) RegisterRoutes(router *gin.RouterGroup) {
	cooldown := router.Group("/cooldown")
	{
		cooldown.PUT("", h.SetCooldown)
		cooldown.GET("", h.GetCountdown)
		cooldown.GET("/stream", h.StreamCountdown)
	}
}
