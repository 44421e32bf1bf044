package productcontroller

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/cornerstore-api/controllers/respond"
	"github.com/junaidrashid-git/cornerstore-api/dto"
	"github.com/junaidrashid-git/cornerstore-api/repository"
)

// CreateProduct inserts a product under an existing category.
func CreateProduct(store *repository.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			respond.BadRequest(c, "Invalid input: "+err.Error())
			return
		}

		product := input.toModel()
		if err := store.CreateProduct(c.Request.Context(), &product); err != nil {
			respond.StoreError(c, err)
			return
		}

		respond.Created(c, fmt.Sprintf("/products/%d", product.ID), dto.ToProductView(product))
	}
}
