package connection

import (
	"context"
	"log"
	"os"

	"tasknest/controller/tag"
	"tasknest/controller/task"
	"tasknest/controller/user"
	"tasknest/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func StartServer() {
	router := gin.Default()

	DB, err := DBConnection()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	store, err := storage.FromEnv(context.Background())
	if err != nil {
		log.Fatalf("Failed to initialize attachment storage: %v", err)
	}

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Api is running!"})
	})

	router.Use(cors.Default())

	task.TaskController(router, DB)
	task.AllTaskController(router, DB)
	task.CreateTaskController(router, DB, store)
	task.UpdateTaskController(router, DB, store)
	task.DeleteTaskController(router, DB)
	task.FinishTaskController(router, DB)
	task.ArchiveTaskController(router, DB)

	tag.TagController(router, DB)

	user.UserController(router, DB)

	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}
	router.Run(addr)
}
