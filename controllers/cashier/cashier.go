package cashiercontroller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/cornerstore-api/controllers/respond"
	"github.com/junaidrashid-git/cornerstore-api/dto"
	"github.com/junaidrashid-git/cornerstore-api/models"
	"github.com/junaidrashid-git/cornerstore-api/repository"
)

type CashierInput struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
}

// POST /cashiers
func CreateCashier(store *repository.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CashierInput
		if err := c.ShouldBindJSON(&input); err != nil {
			respond.BadRequest(c, "Invalid input: "+err.Error())
			return
		}

		cashier := models.Cashier{FirstName: input.FirstName, LastName: input.LastName}
		if err := store.CreateCashier(c.Request.Context(), &cashier); err != nil {
			respond.StoreError(c, err)
			return
		}

		respond.Created(c, fmt.Sprintf("/cashiers/%d", cashier.ID), dto.ToCashierView(cashier, nil))
	}
}

// GET /cashiers/:id
func GetCashier(store *repository.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := respond.ID(c, "id")
		if !ok {
			return
		}

		cashier, err := store.FindCashier(c.Request.Context(), id)
		if err != nil {
			respond.StoreError(c, err)
			return
		}

		orders := cashier.Orders
		if orders == nil {
			orders = []models.Order{}
		}
		c.JSON(http.StatusOK, dto.ToCashierView(*cashier, orders))
	}
}
