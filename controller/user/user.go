package user

import (
	"net/http"

	"tasknest/middleware"
	"tasknest/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func UserController(router *gin.Engine, db *gorm.DB) {
	router.GET("/user", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		GetUser(c, db)
	})
}

func GetUser(c *gin.Context, db *gorm.DB) {
	userId := c.MustGet("userId").(uint)

	user, err := services.GetUserdata(db, userId)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	c.JSON(http.StatusOK, user)
}
