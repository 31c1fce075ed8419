package model

import (
	"time"
)

type Attachment struct {
	AttachmentID uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	TaskID       uint      `gorm:"column:task_id;not null;index" json:"task_id"`
	Path         string    `gorm:"column:path;type:varchar(255);not null" json:"path"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	// Relations
	Task Task `gorm:"foreignKey:TaskID;references:TaskID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE" json:"-"`
}

func (Attachment) TableName() string {
	return "attachments"
}
