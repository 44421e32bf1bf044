package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/cornerstore-api/controllers/respond"
	"github.com/junaidrashid-git/cornerstore-api/dto"
	"github.com/junaidrashid-git/cornerstore-api/repository"
)

// GetProducts lists products with their category. ?search= matches product
// or category names, case-insensitively.
func GetProducts(store *repository.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := store.ListProducts(c.Request.Context(), c.Query("search"))
		if err != nil {
			respond.StoreError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.ToProductViews(products))
	}
}
