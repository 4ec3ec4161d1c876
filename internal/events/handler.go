package events

import (
	"net/http"
	"strconv"

	"github.com/buurtmarkt/backend/internal/fault"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the events REST surface onto the router. Events,
// comments and replies follow the same create/read/update/delete shape; the
// responses are plain-text confirmations.
func RegisterRoutes(r *gin.Engine, svc *Service) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, "The events microservice is running")
	})

	r.POST("/events", func(c *gin.Context) {
		var req CreateEventRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.String(http.StatusBadRequest, "Missing required fields")
			return
		}
		ev, err := svc.Create(req)
		if err != nil {
			fault.Text(c, err)
			return
		}
		c.String(http.StatusCreated, "Event created with name: %s", ev.Name)
	})

	r.GET("/events", func(c *gin.Context) {
		c.JSON(http.StatusOK, svc.List())
	})

	r.GET("/event/:id", func(c *gin.Context) {
		ev, err := svc.Get(c.Param("id"))
		if err != nil {
			fault.Text(c, err)
			return
		}
		c.JSON(http.StatusOK, ev)
	})

	r.PUT("/event/:id", func(c *gin.Context) {
		id := c.Param("id")
		var req UpdateEventRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.String(http.StatusBadRequest, "Invalid request body")
			return
		}
		if err := svc.Update(id, req); err != nil {
			fault.Text(c, err)
			return
		}
		c.String(http.StatusOK, "Event updated with id: %s", id)
	})

	r.DELETE("/event/:id", func(c *gin.Context) {
		id := c.Param("id")
		if err := svc.Delete(id); err != nil {
			fault.Text(c, err)
			return
		}
		c.String(http.StatusOK, "Event deleted with id: %s", id)
	})

	registerCommentRoutes(r, svc)
	registerApplyRoutes(r, svc)
}

func registerCommentRoutes(r *gin.Engine, svc *Service) {
	r.POST("/event/:id/comments", func(c *gin.Context) {
		var req CommentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.String(http.StatusBadRequest, "Missing required fields")
			return
		}
		cm, err := svc.AddComment(c.Param("id"), req)
		if err != nil {
			fault.Text(c, err)
			return
		}
		c.String(http.StatusCreated, "Comment created by user: %s", cm.Username)
	})

	r.GET("/event/:id/comments", func(c *gin.Context) {
		comments, err := svc.Comments(c.Param("id"))
		if err != nil {
			fault.Text(c, err)
			return
		}
		c.JSON(http.StatusOK, comments)
	})

	r.PUT("/event/:id/comments/:commentId", func(c *gin.Context) {
		var req CommentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.String(http.StatusBadRequest, "Missing required fields for editing the comment")
			return
		}
		if err := svc.EditComment(c.Param("id"), c.Param("commentId"), req); err != nil {
			fault.Text(c, err)
			return
		}
		c.String(http.StatusOK, "Comment edited by user: %s", req.Username)
	})

	r.DELETE("/event/:id/comments/:commentId", func(c *gin.Context) {
		if err := svc.DeleteComment(c.Param("id"), c.Param("commentId")); err != nil {
			fault.Text(c, err)
			return
		}
		c.String(http.StatusOK, "Comment deleted")
	})

	r.POST("/event/:id/comments/:commentId/replies", func(c *gin.Context) {
		var req CommentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.String(http.StatusBadRequest, "Missing required fields")
			return
		}
		commentID, err := svc.AddReply(c.Param("id"), c.Param("commentId"), req)
		if err != nil {
			fault.Text(c, err)
			return
		}
		c.String(http.StatusCreated, "Reply on comment %d created by user: %s", commentID, req.Username)
	})

	r.GET("/event/:id/comments/:commentId/replies", func(c *gin.Context) {
		replies, err := svc.Replies(c.Param("id"), c.Param("commentId"))
		if err != nil {
			fault.Text(c, err)
			return
		}
		c.JSON(http.StatusOK, replies)
	})

	r.PUT("/event/:id/comments/:commentId/replies/:replyId", func(c *gin.Context) {
		var req CommentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.String(http.StatusBadRequest, "Missing required fields for editing the reply")
			return
		}
		if err := svc.EditReply(c.Param("id"), c.Param("commentId"), c.Param("replyId"), req); err != nil {
			fault.Text(c, err)
			return
		}
		c.String(http.StatusOK, "Reply edited by user: %s", req.Username)
	})

	r.DELETE("/event/:id/comments/:commentId/replies/:replyId", func(c *gin.Context) {
		if err := svc.DeleteReply(c.Param("id"), c.Param("commentId"), c.Param("replyId")); err != nil {
			fault.Text(c, err)
			return
		}
		c.String(http.StatusOK, "Reply deleted")
	})
}

func registerApplyRoutes(r *gin.Engine, svc *Service) {
	type applyRequest struct {
		User *int `json:"user"`
	}

	r.GET("/event/:id/applied/:user", func(c *gin.Context) {
		user, err := strconv.Atoi(c.Param("user"))
		if err != nil {
			c.String(http.StatusBadRequest, "Missing required fields")
			return
		}
		applied, aerr := svc.IsApplied(c.Param("id"), user)
		if aerr != nil {
			fault.Text(c, aerr)
			return
		}
		c.JSON(http.StatusOK, applied)
	})

	r.POST("/event/:id/apply", func(c *gin.Context) {
		var req applyRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.User == nil {
			c.String(http.StatusBadRequest, "Missing required fields")
			return
		}
		id := c.Param("id")
		if err := svc.Apply(id, *req.User); err != nil {
			fault.Text(c, err)
			return
		}
		c.String(http.StatusOK, "User %d applied for event with id: %s", *req.User, id)
	})

	r.POST("/event/:id/deapply", func(c *gin.Context) {
		var req applyRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.User == nil {
			c.String(http.StatusBadRequest, "Missing required fields")
			return
		}
		id := c.Param("id")
		if err := svc.DeApply(id, *req.User); err != nil {
			fault.Text(c, err)
			return
		}
		c.String(http.StatusOK, "User %d de-applied for event with id: %s", *req.User, id)
	})
}
