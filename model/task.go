package model

import (
	"time"
)

// Priority values accepted for a task.
var Priorities = []string{"Urgent", "High", "Normal", "Low"}

func ValidPriority(p string) bool {
	for _, v := range Priorities {
		if v == p {
			return true
		}
	}
	return false
}

type Task struct {
	TaskID      uint       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title       string     `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Description string     `gorm:"column:description;type:text;not null" json:"description"`
	DueDate     *time.Time `gorm:"column:due_date" json:"due_date"`
	Priority    *string    `gorm:"column:priority;type:varchar(10)" json:"priority"`
	Order       int        `gorm:"column:order;not null" json:"order"`
	UserID      uint       `gorm:"column:user_id;not null;index" json:"user_id"`
	CompletedAt *time.Time `gorm:"column:completed_at" json:"completed_at"`
	ArchivedAt  *time.Time `gorm:"column:archived_at" json:"archived_at"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	// Relations
	User        User         `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE" json:"-"`
	Tags        []Tag        `gorm:"many2many:task_tag;joinForeignKey:TaskID;joinReferences:TagID" json:"tags"`
	Attachments []Attachment `gorm:"foreignKey:TaskID;references:TaskID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE" json:"attachments,omitempty"`
}

func (Task) TableName() string {
	return "tasks"
}
