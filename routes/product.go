package routes

import (
	"github.com/gin-gonic/gin"
	productcontroller "github.com/junaidrashid-git/cornerstore-api/controllers/product"
	"github.com/junaidrashid-git/cornerstore-api/repository"
)

func SetupProductRoutes(r *gin.Engine, store *repository.Store) {
	products := r.Group("/products")
	{
		products.GET("", productcontroller.GetProducts(store)) // GET /products?search=
		products.GET("/export", productcontroller.ExportProductsToExcel(store))
		products.GET("/:id", productcontroller.GetProductByID(store))
		products.POST("", productcontroller.CreateProduct(store))
		products.PUT("/:id", productcontroller.UpdateProduct(store)) // full replace
	}

	r.GET("/categories", productcontroller.GetAllCategories(store))
}
