package products

import (
	"net/http"

	"github.com/buurtmarkt/backend/internal/fault"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the products REST surface onto the router. Responses
// are JSON envelopes.
func RegisterRoutes(r *gin.Engine, svc *Service) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, "The products microservice is running")
	})

	r.POST("/products", func(c *gin.Context) {
		var req CreateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: 'name', 'inSeason', 'carbonDioxide'."})
			return
		}
		p, err := svc.Create(req)
		if err != nil {
			fault.JSON(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"message": "Product created successfully.",
			"product": p,
		})
	})

	r.GET("/products", func(c *gin.Context) {
		c.JSON(http.StatusOK, svc.List())
	})

	r.GET("/products/:param", func(c *gin.Context) {
		p, err := svc.Get(c.Param("param"))
		if err != nil {
			fault.JSON(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	})

	r.PUT("/products/:param", func(c *gin.Context) {
		param := c.Param("param")
		var req UpdateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		p, err := svc.Update(param, req)
		if err != nil {
			fault.JSON(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message": "Product with ID: " + param + " updated successfully.",
			"product": p,
		})
	})

	r.DELETE("/products/:param", func(c *gin.Context) {
		param := c.Param("param")
		p, err := svc.Delete(param)
		if err != nil {
			fault.JSON(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message": "Product with identifier: " + param + " deleted successfully.",
			"product": p,
		})
	})
}
