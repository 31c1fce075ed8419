package task

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"tasknest/dto"
	"tasknest/model"
	"tasknest/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	maxAttachmentBytes = 20 << 20 // 20MB
	dateLayout         = "2006-01-02"
)

var allowedAttachmentExts = map[string]bool{
	".svg":  true,
	".png":  true,
	".jpg":  true,
	".mp4":  true,
	".csv":  true,
	".txt":  true,
	".doc":  true,
	".docx": true,
}

// bindTaskRequest accepts either a JSON body or a multipart form and returns
// the normalized request plus any uploaded files. A single file and an array
// of files both arrive through the multipart form's "attachments" key.
func bindTaskRequest(c *gin.Context) (*dto.TaskRequest, []*multipart.FileHeader, bool) {
	var req dto.TaskRequest

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		if err := c.ShouldBind(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input"})
			return nil, nil, false
		}
		var files []*multipart.FileHeader
		if form, err := c.MultipartForm(); err == nil && form != nil {
			files = form.File["attachments"]
			if len(files) == 0 {
				files = form.File["attachments[]"]
			}
		}
		return &req, files, true
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input"})
		return nil, nil, false
	}
	return &req, nil, true
}

// validateTaskFields checks the writable task fields and returns the parsed
// due date and priority along with a field->messages map of failures.
func validateTaskFields(req *dto.TaskRequest) (*time.Time, *string, map[string][]string) {
	errs := make(map[string][]string)

	if req.Title == "" {
		errs["title"] = append(errs["title"], "The title field is required.")
	} else if len(req.Title) > 255 {
		errs["title"] = append(errs["title"], "The title may not be greater than 255 characters.")
	}

	if req.Description == "" {
		errs["description"] = append(errs["description"], "The description field is required.")
	}

	var due *time.Time
	if req.DueDate != "" {
		parsed, err := time.ParseInLocation(dateLayout, req.DueDate, time.Local)
		if err != nil {
			errs["due_date"] = append(errs["due_date"], "The due date is not a valid date.")
		} else {
			now := time.Now()
			today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
			if parsed.Before(today) {
				errs["due_date"] = append(errs["due_date"], "The due date must be a date after or equal to today.")
			} else {
				due = &parsed
			}
		}
	}

	var priority *string
	if req.Priority != "" {
		if !model.ValidPriority(req.Priority) {
			errs["priority"] = append(errs["priority"], "The selected priority is invalid.")
		} else {
			p := req.Priority
			priority = &p
		}
	}

	return due, priority, errs
}

// attachmentInvalidReason reports why an uploaded file is rejected, or ""
// when it passes the extension allow-list and size cap.
func attachmentInvalidReason(file *multipart.FileHeader) string {
	if file.Size > maxAttachmentBytes {
		return fmt.Sprintf("file exceeds %d bytes", int64(maxAttachmentBytes))
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedAttachmentExts[ext] {
		return fmt.Sprintf("file type %q is not allowed", ext)
	}
	return ""
}

// fetchOwnedTask loads the task from the :id route parameter and enforces
// the existence-then-ownership order: 404 when the task does not exist, 401
// when it belongs to another user. On failure the response has already been
// written.
func fetchOwnedTask(c *gin.Context, db *gorm.DB) (*model.Task, bool) {
	userId := c.MustGet("userId").(uint)

	task, err := services.GetTaskData(db, c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Task not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch task"})
		}
		return nil, false
	}

	if task.UserID != userId {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return nil, false
	}

	return task, true
}
