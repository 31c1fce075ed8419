package task

import (
	"log/slog"
	"net/http"

	"tasknest/middleware"
	"tasknest/model"
	"tasknest/services"
	"tasknest/storage"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func CreateTaskController(router *gin.Engine, db *gorm.DB, store storage.Store) {
	router.POST("/tasks", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		CreateTask(c, db, store)
	})
}

func CreateTask(c *gin.Context, db *gorm.DB, store storage.Store) {
	userId := c.MustGet("userId").(uint)

	req, files, ok := bindTaskRequest(c)
	if !ok {
		return
	}

	due, priority, errs := validateTaskFields(req)
	if len(errs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, errs)
		return
	}

	// Count and insert share one transaction so the per-user order sequence
	// stays monotonic.
	var newTask model.Task
	err := db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Task{}).Where("user_id = ?", userId).Count(&count).Error; err != nil {
			return err
		}
		newTask = model.Task{
			Title:       req.Title,
			Description: req.Description,
			DueDate:     due,
			Priority:    priority,
			Order:       int(count) + 1,
			UserID:      userId,
		}
		return tx.Create(&newTask).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create task"})
		return
	}

	for _, file := range files {
		path, err := store.Save(c.Request.Context(), file, "attachments")
		if err != nil {
			slog.Warn("invalid file upload attempt", "file", file.Filename, "error", err.Error())
			continue
		}
		attachment := model.Attachment{TaskID: newTask.TaskID, Path: path}
		if err := db.Create(&attachment).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to save attachment"})
			return
		}
	}

	if req.Tags != nil {
		tags, err := services.ResolveTags(db, *req.Tags)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to resolve tags"})
			return
		}
		if err := services.SyncTags(db, &newTask, tags); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to sync tags"})
			return
		}
	}

	c.JSON(http.StatusCreated, newTask)
}
