package shops

import (
	"net/http"

	"github.com/buurtmarkt/backend/internal/fault"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the shops REST surface onto the router. Shop CRUD
// answers with plain-text confirmations; the product-link endpoints answer
// with JSON, matching the surfaces of the two services they bridge.
func RegisterRoutes(r *gin.Engine, svc *Service) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, "The shops microservice is running")
	})

	r.POST("/shops", func(c *gin.Context) {
		var req CreateShopRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.String(http.StatusBadRequest, "Missing required fields")
			return
		}
		if _, err := svc.Create(c.Request.Context(), req); err != nil {
			fault.Text(c, err)
			return
		}
		c.String(http.StatusCreated, "Shop created successfully")
	})

	r.GET("/shops", func(c *gin.Context) {
		c.JSON(http.StatusOK, svc.List())
	})

	r.GET("/shops/:id", func(c *gin.Context) {
		shop, err := svc.Get(c.Param("id"))
		if err != nil {
			fault.Text(c, err)
			return
		}
		c.JSON(http.StatusOK, shop)
	})

	r.PUT("/shops/:id", func(c *gin.Context) {
		id := c.Param("id")
		var req UpdateShopRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.String(http.StatusBadRequest, "Invalid request body")
			return
		}
		if err := svc.Update(c.Request.Context(), id, req); err != nil {
			fault.Text(c, err)
			return
		}
		c.String(http.StatusOK, "Shop with ID: %s updated successfully", id)
	})

	r.DELETE("/shops/:id", func(c *gin.Context) {
		id := c.Param("id")
		if err := svc.Delete(id); err != nil {
			fault.Text(c, err)
			return
		}
		c.String(http.StatusOK, "Shop deleted with id: %s", id)
	})

	r.GET("/shops/:id/products", func(c *gin.Context) {
		list, err := svc.ShopProducts(c.Request.Context(), c.Param("id"))
		if err != nil {
			fault.JSON(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	})

	r.POST("/shops/:id/products/:productId", func(c *gin.Context) {
		shopID := c.Param("id")
		productID := c.Param("productId")
		shop, err := svc.LinkProduct(c.Request.Context(), shopID, productID)
		if err != nil {
			fault.JSON(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message": "Product with ID: " + productID + " linked to Shop with ID: " + shopID + ".",
			"shop":    shop,
		})
	})

	r.DELETE("/shops/:id/products/:productId", func(c *gin.Context) {
		shopID := c.Param("id")
		productID := c.Param("productId")
		shop, err := svc.UnlinkProduct(shopID, productID)
		if err != nil {
			fault.JSON(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message": "Product with ID: " + productID + " unlinked from Shop with ID: " + shopID + ".",
			"shop":    shop,
		})
	})
}
