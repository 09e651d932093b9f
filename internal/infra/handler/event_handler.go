package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-pill-timer/internal/app"
)

type EventHandler struct {
	useCase app.EventUseCase
}

func NewEventHandler(useCase app.EventUseCase) *EventHandler {
	return &EventHandler{
		useCase: useCase,
	}
}

func (h *EventHandler) AddEvent(c *gin.Context) {
	ctx := c.Request.Context()

	var req AddEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)

		return
	}

	output, err := h.useCase.AddEvent(ctx, app.AddEventInput{
		Timestamp: req.Timestamp,
		Message:   req.Message,
	})
	if err != nil && !app.IsNotificationError(err) {
		handleError(c, err)

		return
	}

	resp := AddEventResponse{
		Event:   FromEvent(output),
		Message: MessageEventAdded,
	}

	switch {
	case errors.Is(err, app.ErrNotificationDenied):
		resp.Warning = WarningNotificationDenied
	case errors.Is(err, app.ErrNotificationScheduleFailed):
		resp.Warning = WarningNotificationScheduleFailed
	}

	slog.InfoContext(ctx, "event created",
		"event_id", output.ID,
		"warning", resp.Warning,
	)
	c.JSON(http.StatusCreated, resp)
}

func (h *EventHandler) ListEvents(c *gin.Context) {
	output, err := h.useCase.ListEvents(c.Request.Context())
	if err != nil {
		handleError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromEvents(output))
}

// StreamEvents sends the whole collection as an SSE "events" message on
// connect and after every change. A slow client only sees the latest one.
func (h *EventHandler) StreamEvents(c *gin.Context) {
	ctx := c.Request.Context()
	updates := make(chan EventsResponse, 1)

	unsubscribe, err := h.useCase.SubscribeEvents(ctx, func(output app.EventsOutput) {
		select {
		case <-updates:
		default:
		}
		updates <- FromEvents(output)
	})
	if err != nil {
		handleError(c, err)

		return
	}
	defer unsubscribe()

	c.Stream(func(io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case resp := <-updates:
			c.SSEvent("events", resp)

			return true
		}
	})
}

func (h *EventHandler) RemoveEvent(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	if err := h.useCase.RemoveEvent(ctx, app.RemoveEventInput{ID: id}); err != nil {
		handleError(c, err)

		return
	}

	slog.InfoContext(ctx, "event removed",
		"event_id", id,
	)
	c.JSON(http.StatusOK, MessageResponse{Message: MessageEventRemoved})
}

func (h *EventHandler) RegisterRoutes(router *gin.RouterGroup) {
	events := router.Group("/events")
	{
		events.POST("", h.AddEvent)
		events.GET("", h.ListEvents)
		events.GET("/stream", h.StreamEvents)
		events.DELETE("/:id", h.RemoveEvent)
	}
}
