package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/cornerstore-api/controllers/respond"
	"github.com/junaidrashid-git/cornerstore-api/dto"
	"github.com/junaidrashid-git/cornerstore-api/repository"
)

// GetProductByID returns a single product with its category.
// URL param: /products/:id
func GetProductByID(store *repository.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := respond.ID(c, "id")
		if !ok {
			return
		}

		product, err := store.FindProduct(c.Request.Context(), id)
		if err != nil {
			respond.StoreError(c, err)
			return
		}

		c.JSON(http.StatusOK, dto.ToProductView(*product))
	}
}
