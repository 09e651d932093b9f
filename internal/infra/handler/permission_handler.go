package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-pill-timer/internal/app"
)

type PermissionHandler struct {
	useCase app.PermissionUseCase
}

func NewPermissionHandler(useCase app.PermissionUseCase) *PermissionHandler {
	return &PermissionHandler{
		useCase: useCase,
	}
}

func (h *PermissionHandler) GetPermission(c *gin.Context) {
	output, err := h.useCase.GetPermission(c.Request.Context())
	if err != nil {
		handleError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromPermission(output))
}

func (h *PermissionHandler) RequestPermission(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.useCase.RequestPermission(ctx)
	if err != nil {
		handleError(c, err)

		return
	}

	slog.InfoContext(ctx, "notification permission requested",
		"status", output.Status,
	)
	c.JSON(http.StatusOK, FromPermission(output))
}

func (h *PermissionHandler) RegisterRoutes(router *gin.RouterGroup) {
	notifications := router.Group("/notifications")
	{
		notifications.GET("/permission", h.GetPermission)
		notifications.POST("/permission", h.RequestPermission)
	}
}
