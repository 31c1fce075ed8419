package task

import (
	"net/http"

	"tasknest/middleware"
	"tasknest/model"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func DeleteTaskController(router *gin.Engine, db *gorm.DB) {
	router.DELETE("/tasks/:id", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		DeleteTask(c, db)
	})
}

// DeleteTask removes the task permanently, cascading to its attachments and
// tag links. No soft delete.
func DeleteTask(c *gin.Context, db *gorm.DB) {
	if _, exists := c.Get("userId"); !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	task, ok := fetchOwnedTask(c, db)
	if !ok {
		return
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", task.TaskID).Delete(&model.Attachment{}).Error; err != nil {
			return err
		}
		if err := tx.Model(task).Association("Tags").Clear(); err != nil {
			return err
		}
		return tx.Delete(task).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete task"})
		return
	}

	c.Status(http.StatusNoContent)
}
