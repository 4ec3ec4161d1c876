package recipes

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/buurtmarkt/backend/internal/fault"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the recipe aggregator onto the router. The service
// fronts the upstream recipe API and joins its data with the products
// service; it keeps no local document.
func RegisterRoutes(r *gin.Engine, client *Client, products ProductsClient) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, "hi")
	})

	r.GET("/recipes", func(c *gin.Context) {
		number := 10
		if v := c.Query("number"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				number = n
			}
		}
		body, err := client.Search(c.Request.Context(), c.Query("query"), number)
		if err != nil {
			fault.JSON(c, err)
			return
		}
		c.Data(http.StatusOK, "application/json", body)
	})

	r.GET("/recipes/:id", func(c *gin.Context) {
		body, err := client.Information(c.Request.Context(), c.Param("id"))
		if err != nil {
			fault.JSON(c, err)
			return
		}
		c.Data(http.StatusOK, "application/json", body)
	})

	r.GET("/recipes/:id/ingredients", func(c *gin.Context) {
		body, err := client.Ingredients(c.Request.Context(), c.Param("id"))
		if err != nil {
			fault.JSON(c, err)
			return
		}
		c.Data(http.StatusOK, "application/json", body)
	})

	r.GET("/recipes/:id/instructions", func(c *gin.Context) {
		body, err := client.Instructions(c.Request.Context(), c.Param("id"))
		if err != nil {
			fault.JSON(c, err)
			return
		}
		c.Data(http.StatusOK, "application/json", body)
	})

	r.GET("/recipes/:id/products", func(c *gin.Context) {
		ctx := c.Request.Context()
		body, err := client.Ingredients(ctx, c.Param("id"))
		if err != nil {
			fault.JSON(c, err)
			return
		}
		var payload ingredientsPayload
		if err := json.Unmarshal(body, &payload); err != nil {
			fault.JSON(c, fault.Upstream("Something went wrong while fetching the recipe ingredients.", err))
			return
		}
		list, err := products.List(ctx)
		if err != nil {
			fault.JSON(c, err)
			return
		}
		c.JSON(http.StatusOK, matchProducts(payload, list))
	})
}
