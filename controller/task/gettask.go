package task

import (
	"net/http"

	"tasknest/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func TaskController(router *gin.Engine, db *gorm.DB) {
	router.GET("/tasks/:id", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		GetTask(c, db)
	})
}

func GetTask(c *gin.Context, db *gorm.DB) {
	task, ok := fetchOwnedTask(c, db)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, task)
}
