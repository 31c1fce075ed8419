package task

import (
	"bytes"
	"mime/multipart"
	"testing"

	"tasknest/model"
	"tasknest/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	sqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	// A pooled second connection would see an empty in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Task{}, &model.Tag{}, &model.Attachment{}))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) model.User {
	t.Helper()
	user := model.User{Name: "Test User", Email: email}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedTask(t *testing.T, db *gorm.DB, userID uint, title string) model.Task {
	t.Helper()
	task := model.Task{Title: title, Description: "seeded", Order: 1, UserID: userID}
	require.NoError(t, db.Create(&task).Error)
	return task
}

// authAs stands in for the JWT middleware in tests.
func authAs(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userId", userID)
		c.Next()
	}
}

func newTestStore(t *testing.T) storage.Store {
	t.Helper()
	store, err := storage.NewLocalStore(t.TempDir(), "/storage")
	require.NoError(t, err)
	return store
}

func newTestRouter(t *testing.T, db *gorm.DB, store storage.Store, userID uint) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(authAs(userID))

	r.GET("/tasks", func(c *gin.Context) { ListTasks(c, db) })
	r.GET("/tasks/:id", func(c *gin.Context) { GetTask(c, db) })
	r.POST("/tasks", func(c *gin.Context) { CreateTask(c, db, store) })
	r.PUT("/tasks/:id", func(c *gin.Context) { AdjustTask(c, db, store) })
	r.DELETE("/tasks/:id", func(c *gin.Context) { DeleteTask(c, db) })
	r.PATCH("/tasks/:id/complete", func(c *gin.Context) { setCompleted(c, db, true) })
	r.PATCH("/tasks/:id/incomplete", func(c *gin.Context) { setCompleted(c, db, false) })
	r.PATCH("/tasks/:id/archive", func(c *gin.Context) { setArchived(c, db, true) })
	r.PATCH("/tasks/:id/restore", func(c *gin.Context) { setArchived(c, db, false) })

	return r
}

// newTestRouterNoAuth exposes the delete route with no user in the context,
// for exercising the explicit session check.
func newTestRouterNoAuth(t *testing.T, db *gorm.DB) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.DELETE("/tasks/:id", func(c *gin.Context) { DeleteTask(c, db) })
	return r
}

type namedFile struct {
	name    string
	content []byte
}

func multipartBody(t *testing.T, fields map[string]string, files []namedFile) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for _, f := range files {
		fw, err := w.CreateFormFile("attachments", f.name)
		require.NoError(t, err)
		_, err = fw.Write(f.content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf, w.FormDataContentType()
}
