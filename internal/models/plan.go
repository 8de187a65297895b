package models

// Plan is a calendar block. Date is the YYYY-MM-DD day it belongs to and is
// matched exactly when listing; StartTime and EndTime are HH:MM clock times.
type Plan struct {
	Base
	Date      string `gorm:"not null;index" json:"date"`
	StartTime string `gorm:"not null" json:"startTime"`
	EndTime   string `json:"endTime"`
	Title     string `gorm:"not null" json:"title"`
	Type      string `json:"type"`
	Notes     string `json:"notes"`
}
