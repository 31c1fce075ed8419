package tag

import (
	"errors"
	"net/http"

	"tasknest/dto"
	"tasknest/middleware"
	"tasknest/model"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func TagController(router *gin.Engine, db *gorm.DB) {
	routes := router.Group("/tags", middleware.AccessTokenMiddleware())
	{
		routes.GET("", func(c *gin.Context) {
			ListTags(c, db)
		})
		routes.POST("", func(c *gin.Context) {
			CreateTag(c, db)
		})
	}
}

func ListTags(c *gin.Context, db *gorm.DB) {
	tags := make([]model.Tag, 0)
	if err := db.Find(&tags).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch tags"})
		return
	}
	c.JSON(http.StatusOK, tags)
}

func CreateTag(c *gin.Context, db *gorm.DB) {
	var req dto.CreateTagRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input"})
		return
	}

	errs := make(map[string][]string)
	if req.Name == "" {
		errs["name"] = append(errs["name"], "The name field is required.")
	} else if len(req.Name) > 255 {
		errs["name"] = append(errs["name"], "The name may not be greater than 255 characters.")
	} else {
		var existing model.Tag
		err := db.Where("name = ?", req.Name).First(&existing).Error
		if err == nil {
			errs["name"] = append(errs["name"], "The name has already been taken.")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to check tag"})
			return
		}
	}
	if len(errs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, errs)
		return
	}

	tag := model.Tag{Name: req.Name}
	if err := db.Create(&tag).Error; err != nil {
		// Unique index may still reject a concurrent duplicate.
		c.JSON(http.StatusUnprocessableEntity, gin.H{"name": []string{"The name has already been taken."}})
		return
	}

	c.JSON(http.StatusCreated, tag)
}
