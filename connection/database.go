package connection

import (
	"fmt"
	"os"

	"tasknest/model"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// DBConnection opens the MySQL connection described by the environment and
// migrates the schema. DB_DSN takes precedence; otherwise the DSN is built
// from DB_USER / DB_PASSWORD / DB_HOST / DB_PORT / DB_NAME.
func DBConnection() (*gorm.DB, error) {
	_ = godotenv.Load()

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		user := envDefault("DB_USER", "root")
		pass := os.Getenv("DB_PASSWORD")
		host := envDefault("DB_HOST", "localhost")
		port := envDefault("DB_PORT", "3306")
		name := envDefault("DB_NAME", "tasknest")
		dsn = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local", user, pass, host, port, name)
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&model.User{}, &model.Task{}, &model.Tag{}, &model.Attachment{}); err != nil {
		return nil, err
	}

	return db, nil
}

func envDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
