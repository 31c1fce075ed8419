package task

import (
	"net/http"
	"time"

	"tasknest/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func FinishTaskController(router *gin.Engine, db *gorm.DB) {
	routes := router.Group("/tasks", middleware.AccessTokenMiddleware())
	{
		routes.PATCH("/:id/complete", func(c *gin.Context) {
			setCompleted(c, db, true)
		})
		routes.PATCH("/:id/incomplete", func(c *gin.Context) {
			setCompleted(c, db, false)
		})
	}
}

// setCompleted flips the completion axis. Both directions are idempotent and
// unconditional: re-completing just refreshes the timestamp.
func setCompleted(c *gin.Context, db *gorm.DB, done bool) {
	task, ok := fetchOwnedTask(c, db)
	if !ok {
		return
	}

	if done {
		now := time.Now()
		task.CompletedAt = &now
	} else {
		task.CompletedAt = nil
	}

	if err := db.Save(task).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update task"})
		return
	}

	c.JSON(http.StatusOK, task)
}
