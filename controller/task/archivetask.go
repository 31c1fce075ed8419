package task

import (
	"net/http"
	"time"

	"tasknest/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func ArchiveTaskController(router *gin.Engine, db *gorm.DB) {
	routes := router.Group("/tasks", middleware.AccessTokenMiddleware())
	{
		routes.PATCH("/:id/archive", func(c *gin.Context) {
			setArchived(c, db, true)
		})
		routes.PATCH("/:id/restore", func(c *gin.Context) {
			setArchived(c, db, false)
		})
	}
}

func setArchived(c *gin.Context, db *gorm.DB, archived bool) {
	task, ok := fetchOwnedTask(c, db)
	if !ok {
		return
	}

	if archived {
		now := time.Now()
		task.ArchivedAt = &now
	} else {
		task.ArchivedAt = nil
	}

	if err := db.Save(task).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update task"})
		return
	}

	c.JSON(http.StatusOK, task)
}
