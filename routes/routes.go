package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/cornerstore-api/repository"
)

// SetupRoutes is the single entry-point that wires up every resource group.
func SetupRoutes(r *gin.Engine, store *repository.Store) {
	SetupCashierRoutes(r, store)
	SetupProductRoutes(r, store)
	SetupOrderRoutes(r, store)
}
