package ordercontroller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/cornerstore-api/controllers/respond"
	"github.com/junaidrashid-git/cornerstore-api/dto"
	"github.com/junaidrashid-git/cornerstore-api/repository"
)

// -------- Request Structs --------

// PlaceOrderRequest is the create body. Any nested product objects a client
// sends on a line are ignored; only productId and quantity are read.
type PlaceOrderRequest struct {
	CashierID  uint               `json:"cashierId" binding:"required"`
	PaidOnDate *time.Time         `json:"paidOnDate"`
	OrderLines []OrderLineRequest `json:"orderLines" binding:"dive"`
}

type OrderLineRequest struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

// -------- Helpers --------

// Layouts accepted by ?orderDate=, tried in order. Values without a zone are
// read as UTC.
var orderDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseOrderDate(raw string) (time.Time, error) {
	for _, layout := range orderDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid orderDate %q", raw)
}

func (r PlaceOrderRequest) toNewOrder() repository.NewOrder {
	in := repository.NewOrder{
		CashierID:  r.CashierID,
		PaidOnDate: r.PaidOnDate,
	}
	for _, line := range r.OrderLines {
		in.Lines = append(in.Lines, repository.NewOrderLine{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}
	return in
}

// -------- Handlers --------

// POST /orders
func PlaceOrderHandler(store *repository.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respond.BadRequest(c, "Invalid input: "+err.Error())
			return
		}

		order, err := store.CreateOrder(c.Request.Context(), req.toNewOrder())
		if err != nil {
			respond.StoreError(c, err)
			return
		}

		respond.Created(c, fmt.Sprintf("/orders/%d", order.ID), dto.ToOrderView(*order, dto.OrderDetail))
	}
}

// GET /orders?orderDate=
func GetAllOrdersHandler(store *repository.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var paidOn *time.Time
		if raw := c.Query("orderDate"); raw != "" {
			t, err := parseOrderDate(raw)
			if err != nil {
				respond.BadRequest(c, err.Error())
				return
			}
			paidOn = &t
		}

		orders, err := store.ListOrders(c.Request.Context(), paidOn)
		if err != nil {
			respond.StoreError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.ToOrderViews(orders, dto.OrderSummary))
	}
}

// GET /orders/:id
func GetOrderByIDHandler(store *repository.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := respond.ID(c, "id")
		if !ok {
			return
		}

		order, err := store.FindOrder(c.Request.Context(), id)
		if err != nil {
			respond.StoreError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.ToOrderView(*order, dto.OrderDetail))
	}
}

// DELETE /orders/:id
func DeleteOrderHandler(store *repository.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := respond.ID(c, "id")
		if !ok {
			return
		}

		if err := store.DeleteOrder(c.Request.Context(), id); err != nil {
			respond.StoreError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
