package routes

import (
	"github.com/gin-gonic/gin"
	ordercontroller "github.com/junaidrashid-git/cornerstore-api/controllers/order"
	"github.com/junaidrashid-git/cornerstore-api/repository"
)

func SetupOrderRoutes(r *gin.Engine, store *repository.Store) {
	orders := r.Group("/orders")
	{
		// Create a new order with its lines
		orders.POST("", ordercontroller.PlaceOrderHandler(store))

		// List orders, optionally by paid-on date
		orders.GET("", ordercontroller.GetAllOrdersHandler(store))

		orders.GET("/:id", ordercontroller.GetOrderByIDHandler(store))

		// Delete an order and its lines
		orders.DELETE("/:id", ordercontroller.DeleteOrderHandler(store))
	}
}
