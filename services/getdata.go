package services

import (
	"tasknest/model"

	"gorm.io/gorm"
)

func GetUserdata(db *gorm.DB, userID uint) (*model.User, error) {
	var user model.User
	if err := db.Where("id = ?", userID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func GetTaskData(db *gorm.DB, taskID string) (*model.Task, error) {
	var task model.Task
	if err := db.Where("id = ?", taskID).First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}
