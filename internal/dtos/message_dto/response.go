package message_dto

import "time"

type MessageItem struct {
	ID        int64     `json:"id"`
	MemberID  int       `json:"member_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

type ListMessagesResponse struct {
	Messages []MessageItem `json:"messages"`
}
