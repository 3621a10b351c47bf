package models

import "time"

type Attendance struct {
	ID     uint      `gorm:"primaryKey" json:"id"`
	UserID uint      `gorm:"index;not null" json:"user_id"`
	User   User      `json:"user"`
	Date   time.Time `gorm:"index;not null" json:"date"`
	Status string    `gorm:"size:16;not null" json:"status"`
	Note   *string   `gorm:"type:text" json:"note,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
