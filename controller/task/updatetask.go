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

func UpdateTaskController(router *gin.Engine, db *gorm.DB, store storage.Store) {
	router.PUT("/tasks/:id", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		AdjustTask(c, db, store)
	})
}

func AdjustTask(c *gin.Context, db *gorm.DB, store storage.Store) {
	task, ok := fetchOwnedTask(c, db)
	if !ok {
		return
	}

	req, files, ok := bindTaskRequest(c)
	if !ok {
		return
	}

	due, priority, errs := validateTaskFields(req)
	if len(errs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, errs)
		return
	}

	// Explicit setters only. Owner, order and the two status timestamps are
	// never writable through update.
	task.Title = req.Title
	task.Description = req.Description
	if due != nil {
		task.DueDate = due
	}
	if priority != nil {
		task.Priority = priority
	}

	if err := db.Save(task).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update task"})
		return
	}

	// Invalid files are skipped, not fatal: one bad upload must not sink the
	// whole request or the files beside it.
	for _, file := range files {
		if reason := attachmentInvalidReason(file); reason != "" {
			slog.Warn("invalid file upload attempt", "file", file.Filename, "reason", reason)
			continue
		}
		path, err := store.Save(c.Request.Context(), file, "attachments")
		if err != nil {
			slog.Warn("invalid file upload attempt", "file", file.Filename, "error", err.Error())
			continue
		}
		attachment := model.Attachment{TaskID: task.TaskID, Path: path}
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
		if err := services.SyncTags(db, task, tags); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to sync tags"})
			return
		}
	}

	var updated model.Task
	if err := db.Preload("Tags").Preload("Attachments").Where("id = ?", task.TaskID).First(&updated).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch task"})
		return
	}

	attachments := make([]gin.H, 0, len(updated.Attachments))
	for _, a := range updated.Attachments {
		attachments = append(attachments, gin.H{"id": a.AttachmentID, "url": store.URL(a.Path)})
	}

	c.JSON(http.StatusOK, gin.H{"task": updated, "attachments": attachments})
}
