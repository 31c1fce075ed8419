package user

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"tasknest/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
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

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.User{}))
	return db
}

func newTestRouter(db *gorm.DB, userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/user", func(c *gin.Context) {
		c.Set("userId", userID)
		GetUser(c, db)
	})
	return r
}

func TestGetUser_ReturnsCurrentUser(t *testing.T) {
	db := setupTestDB(t)
	user := model.User{Name: "Jamie", Email: "jamie@example.com"}
	require.NoError(t, db.Create(&user).Error)

	r := newTestRouter(db, user.UserID)
	req := httptest.NewRequest(http.MethodGet, "/user", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var got model.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, user.UserID, got.UserID)
	assert.Equal(t, "jamie@example.com", got.Email)
}

func TestGetUser_UnknownUser(t *testing.T) {
	db := setupTestDB(t)

	r := newTestRouter(db, 999)
	req := httptest.NewRequest(http.MethodGet, "/user", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
