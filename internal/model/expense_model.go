package model

import "time"

type Expense struct {
	ID          int64     `gorm:"column:id" json:"id"`
	UserID      int64     `gorm:"column:user_id" json:"user_id"`
	JobID       *int64    `gorm:"column:job_id" json:"job_id,omitempty"`
	Amount      float64   `gorm:"column:amount" json:"amount"`
	Category    string    `gorm:"column:category" json:"category"`
	Description string    `gorm:"column:description" json:"description"`
	SpentAt     time.Time `gorm:"column:spent_at" json:"spent_at"`
	CreatedAt   int64     `gorm:"column:created_at" json:"-"`
}
