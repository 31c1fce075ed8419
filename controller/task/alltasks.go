package task

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"tasknest/dto"
	"tasknest/middleware"
	"tasknest/model"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const pageSize = 10

var validSortFields = map[string]bool{
	"title":        true,
	"description":  true,
	"due_date":     true,
	"created_at":   true,
	"completed_at": true,
	"priority":     true,
}

func AllTaskController(router *gin.Engine, db *gorm.DB) {
	router.GET("/tasks", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		ListTasks(c, db)
	})
}

// ListTasks is the filtered, sorted, paginated view over the requesting
// user's tasks, with tags eagerly loaded.
func ListTasks(c *gin.Context, db *gorm.DB) {
	userId := c.MustGet("userId").(uint)

	var req dto.ListTasksRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input"})
		return
	}

	sortField := req.SortField
	if sortField == "" {
		sortField = "created_at"
	}
	if !validSortFields[sortField] {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Invalid sort field"})
		return
	}

	sortOrder := strings.ToLower(req.SortOrder)
	if sortOrder == "" {
		sortOrder = "desc"
	}
	if sortOrder != "asc" && sortOrder != "desc" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Invalid sort order"})
		return
	}

	page := req.Page
	if page < 1 {
		page = 1
	}

	countQuery, errs := applyTaskFilters(db.Model(&model.Task{}).Where("user_id = ?", userId), &req)
	if len(errs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, errs)
		return
	}

	var total int64
	if err := countQuery.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch tasks"})
		return
	}

	listQuery, _ := applyTaskFilters(db.Model(&model.Task{}).Where("user_id = ?", userId), &req)
	tasks := make([]model.Task, 0, pageSize)
	err := listQuery.
		Preload("Tags").
		Order(sortField + " " + sortOrder).
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&tasks).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch tasks"})
		return
	}

	lastPage := int((total + pageSize - 1) / pageSize)
	if lastPage == 0 {
		lastPage = 1
	}

	c.JSON(http.StatusOK, gin.H{
		"data":         tasks,
		"total":        total,
		"per_page":     pageSize,
		"current_page": page,
		"last_page":    lastPage,
	})
}

// applyTaskFilters ANDs the optional filters onto the query. Each date range
// applies only when both bounds are non-empty; an unparseable bound is a
// validation failure, not a silent no-op.
func applyTaskFilters(q *gorm.DB, req *dto.ListTasksRequest) (*gorm.DB, map[string][]string) {
	errs := make(map[string][]string)

	q = applyDateRange(q, "completed_at", "completed_from", req.CompletedFrom, "completed_to", req.CompletedTo, errs)

	if req.Priority != "" {
		q = q.Where("priority = ?", req.Priority)
	}

	q = applyDateRange(q, "due_date", "due_from", req.DueFrom, "due_to", req.DueTo, errs)
	q = applyDateRange(q, "archived_at", "archived_from", req.ArchivedFrom, "archived_to", req.ArchivedTo, errs)

	if req.Search != "" {
		pattern := "%" + strings.ToLower(req.Search) + "%"
		q = q.Where("(LOWER(title) LIKE ? OR LOWER(description) LIKE ?)", pattern, pattern)
	}

	return q, errs
}

func applyDateRange(q *gorm.DB, column, fromKey, fromVal, toKey, toVal string, errs map[string][]string) *gorm.DB {
	if fromVal == "" || toVal == "" {
		return q
	}

	from, err := parseRangeBound(fromVal, false)
	if err != nil {
		errs[fromKey] = append(errs[fromKey], fmt.Sprintf("The %s is not a valid date.", strings.ReplaceAll(fromKey, "_", " ")))
	}
	to, err := parseRangeBound(toVal, true)
	if err != nil {
		errs[toKey] = append(errs[toKey], fmt.Sprintf("The %s is not a valid date.", strings.ReplaceAll(toKey, "_", " ")))
	}
	if len(errs) > 0 {
		return q
	}

	return q.Where(column+" BETWEEN ? AND ?", from, to)
}

// parseRangeBound accepts a bare date, a datetime, or RFC3339. A bare date
// used as the upper bound expands to the end of that day so the range stays
// inclusive.
func parseRangeBound(value string, end bool) (time.Time, error) {
	if t, err := time.ParseInLocation(dateLayout, value, time.Local); err == nil {
		if end {
			return t.Add(24*time.Hour - time.Nanosecond), nil
		}
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02 15:04:05", value, time.Local); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}
