package controllers

import (
	"net/http"

	gorilla "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/pkg/apperrors"
	"gearguard/pkg/service"
	"gearguard/pkg/utils"
	"gearguard/pkg/websocket"
)

type WebSocketController struct {
	hub        *websocket.Hub
	jwtService service.JWTService
	upgrader   gorilla.Upgrader
	logger     *zap.Logger
}

func NewWebSocketController(hub *websocket.Hub, jwtService service.JWTService, logger *zap.Logger) *WebSocketController {
	return &WebSocketController{
		hub:        hub,
		jwtService: jwtService,
		logger:     logger,
		upgrader: gorilla.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Origin is enforced by the CORS middleware in front of us.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Serve upgrades the connection. Browsers cannot set an Authorization header
// on the WebSocket handshake, so the access token arrives as a query param.
func (c *WebSocketController) Serve(ctx echo.Context) error {
	token := ctx.QueryParam("token")
	if token == "" {
		return utils.ErrorResponse(ctx, apperrors.ErrEmptyAuthHeader, c.logger)
	}
	claims, err := c.jwtService.ValidateToken(token)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if claims.IsRefreshToken {
		return utils.ErrorResponse(ctx, apperrors.ErrTokenIsNotAccess, c.logger)
	}

	conn, err := c.upgrader.Upgrade(ctx.Response(), ctx.Request(), nil)
	if err != nil {
		c.logger.Warn("websocket upgrade failed", zap.Error(err))
		return err
	}

	client := websocket.NewClient(c.hub, conn, claims.UserID)
	c.hub.Register <- client
	go client.WritePump()
	go client.ReadPump()
	return nil
}
