package entity

import "time"

// Message is the durable per-member notification record. It outlives any
// websocket connection; the live push is only a nudge for online clients.
type Message struct {
	ID        int64     `gorm:"primaryKey"`
	MemberID  int       `gorm:"column:member_id;not null;index"`
	Title     string    `gorm:"not null"`
	Content   string    `gorm:"not null"`
	IsRead    bool      `gorm:"column:is_read;not null;default:false"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Message) TableName() string {
	return "messages"
}
