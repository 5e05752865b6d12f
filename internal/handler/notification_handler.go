package handler

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/golang-jwt/jwt/v5"

	"cash-trader-be/internal/constant"
	"cash-trader-be/internal/pkg/logger"
	"cash-trader-be/internal/pkg/serverutils"
	internalWS "cash-trader-be/internal/websocket"
	"cash-trader-be/pkg/events"
	pktNats "cash-trader-be/pkg/nats"
)

// NotificationHandler upgrades station displays to websocket and attaches
// them to the hub. State snapshots and print results arrive over this
// connection.
type NotificationHandler struct {
	hub       *internalWS.Hub
	publisher *pktNats.Publisher
	logger    logger.ILogger
}

func NewNotificationHandler(hub *internalWS.Hub, pub *pktNats.Publisher, log logger.ILogger) *NotificationHandler {
	return &NotificationHandler{
		hub:       hub,
		publisher: pub,
		logger:    log,
	}
}

func (h *NotificationHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/ws", h.ServeWs)
	r.Post("/ws/test-publish", serverutils.JwtMiddleware, h.TestPublish)
}

// TestPublish pushes a synthetic event through the full bus, for checking
// a station's wiring end to end without touching a printer.
func (h *NotificationHandler) TestPublish(c *fiber.Ctx) error {
	if h.publisher == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "event bus unavailable")
	}

	station := c.Query("station")
	if station == "" {
		station = c.Get(constant.StationHeader)
	}
	if station == "" {
		station = constant.DefaultStation
	}

	evt := events.NewBaseEvent(constant.EventReceiptPrinted, map[string]interface{}{
		"receipt_id": "test",
		"station":    station,
		"pane":       "left",
	})
	if err := h.publisher.Publish(c.Context(), evt); err != nil {
		return err
	}

	return c.JSON(serverutils.SuccessResponse[any]("Test event published", nil))
}

// ServeWs handles websocket requests from a display.
func (h *NotificationHandler) ServeWs(c *fiber.Ctx) error {
	// Browsers cannot set custom headers on websocket handshakes, so the
	// token rides on a query parameter.
	tokenStr := c.Query("token")
	if tokenStr == "" {
		authHeader := c.Get("Authorization")
		if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
			tokenStr = authHeader[7:]
		}
	}

	if tokenStr == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing token (Query 'token' or Header 'Authorization')"})
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.ErrUnauthorized
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})

	if err != nil || !token.Valid {
		h.logger.Warn("NotificationHandler", "Invalid token in WS handshake", map[string]interface{}{"error": err})
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	station := c.Query("station")
	if station == "" {
		station = c.Get(constant.StationHeader)
	}
	if station == "" {
		station = constant.DefaultStation
	}

	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(func(conn *websocket.Conn) {
			h.logger.Info("NotificationHandler", "Starting WebSocket session", map[string]interface{}{"station": station})
			internalWS.ServeWs(h.hub, conn, station)
			h.logger.Info("NotificationHandler", "WebSocket session ended", map[string]interface{}{"station": station})
		})(c)
	}
	return fiber.ErrUpgradeRequired
}
