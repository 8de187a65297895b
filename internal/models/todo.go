package models

import "time"

// Todo is a task with an optional due date.
type Todo struct {
	Base
	Title       string     `gorm:"not null" json:"title"`
	Description string     `json:"description"`
	Completed   bool       `gorm:"not null;default:false" json:"completed"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `gorm:"index" json:"dueDate"`
}
