package markets

import (
	"net/http"

	"github.com/buurtmarkt/backend/internal/fault"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the markets REST surface onto the router.
func RegisterRoutes(r *gin.Engine, svc *Service) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, "The markets microservice is running")
	})

	r.POST("/markets", func(c *gin.Context) {
		var req CreateMarketRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.String(http.StatusBadRequest, "Missing required fields")
			return
		}
		m, err := svc.Create(req)
		if err != nil {
			fault.Text(c, err)
			return
		}
		c.String(http.StatusCreated, "Market created with name: %s", m.Name)
	})

	r.GET("/markets", func(c *gin.Context) {
		c.JSON(http.StatusOK, svc.List())
	})

	r.GET("/market/:id", func(c *gin.Context) {
		m, err := svc.Get(c.Param("id"))
		if err != nil {
			fault.Text(c, err)
			return
		}
		c.JSON(http.StatusOK, m)
	})

	r.PUT("/market/:id", func(c *gin.Context) {
		id := c.Param("id")
		var req UpdateMarketRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.String(http.StatusBadRequest, "Invalid request body")
			return
		}
		if err := svc.Update(id, req); err != nil {
			fault.Text(c, err)
			return
		}
		c.String(http.StatusOK, "Market updated with id: %s", id)
	})

	r.DELETE("/market/:id", func(c *gin.Context) {
		id := c.Param("id")
		if err := svc.Delete(id); err != nil {
			fault.Text(c, err)
			return
		}
		c.String(http.StatusOK, "Market deleted with id: %s", id)
	})
}
