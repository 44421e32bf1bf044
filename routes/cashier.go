package routes

import (
	"github.com/gin-gonic/gin"
	cashiercontroller "github.com/junaidrashid-git/cornerstore-api/controllers/cashier"
	"github.com/junaidrashid-git/cornerstore-api/repository"
)

func SetupCashierRoutes(r *gin.Engine, store *repository.Store) {
	cashiers := r.Group("/cashiers")
	{
		cashiers.POST("", cashiercontroller.CreateCashier(store))
		cashiers.GET("/:id", cashiercontroller.GetCashier(store))
	}
}
