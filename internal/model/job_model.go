package model

type Job struct {
	ID        int64  `gorm:"column:id" json:"id"`
	UserID    int64  `gorm:"column:user_id" json:"user_id"`
	Name      string `gorm:"column:name" json:"name"`
	Status    string `gorm:"column:status" json:"status"`
	CreatedAt int64  `gorm:"column:created_at" json:"-"`
}
