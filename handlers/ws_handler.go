package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/heliomart/solarstore-go/models"
	"github.com/heliomart/solarstore-go/response"
	"github.com/heliomart/solarstore-go/services"
	"github.com/heliomart/solarstore-go/utils"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type orderStatusEvent struct {
	OrderNumber string             `json:"order_number"`
	Status      models.OrderStatus `json:"status"`
	CanCancel   bool               `json:"can_cancel"`
}

type OrderStreamHandler struct {
	service *services.OrderService
}

func NewOrderStreamHandler(service *services.OrderService) *OrderStreamHandler {
	return &OrderStreamHandler{service: service}
}

// Stream pushes order status changes for the authenticated user until the
// client disconnects.
func (h *OrderStreamHandler) Stream(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "websocket upgrade failed: " + err.Error()})
		return
	}
	defer conn.Close()

	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	lastStatus := make(map[uint]models.OrderStatus)
	ctx := c.Request.Context()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			views, err := h.service.ListOrders(uid, "")
			if err != nil {
				continue
			}
			for _, view := range views {
				prev, seen := lastStatus[view.Order.OID]
				if seen && prev == view.Order.Status {
					continue
				}
				lastStatus[view.Order.OID] = view.Order.Status

				payload, err := json.Marshal(orderStatusEvent{
					OrderNumber: view.Order.OrderNumber,
					Status:      view.Order.Status,
					CanCancel:   view.CanCancel,
				})
				if err != nil {
					continue
				}
				if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
					return
				}
			}
		}
	}
}
