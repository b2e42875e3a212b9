package model

import "time"

// MessageEntity is one entry of the append-only conversation log, partitioned
// by chat id. Messages are never edited or deleted.
type MessageEntity struct {
	ID           string    `db:"id" json:"id"`
	ChatID       string    `db:"chat_id" json:"chatId"`
	SenderID     string    `db:"sender_id" json:"senderId"`
	SenderName   string    `db:"sender_name" json:"senderName"`
	ReceiverID   string    `db:"receiver_id" json:"receiverId"`
	ReceiverName string    `db:"receiver_name" json:"receiverName"`
	Content      string    `db:"content" json:"content"`
	Type         string    `db:"type" json:"type"`
	IsAI         bool      `db:"is_ai" json:"isAI"`
	Timestamp    time.Time `db:"timestamp" json:"timestamp"`
	Read         bool      `db:"read" json:"read"`
}

// SendMessageRequest appends a message to a conversation
type SendMessageRequest struct {
	ChatID       string `json:"chatId" validate:"required"`
	SenderID     string `json:"senderId" validate:"required"`
	Content      string `json:"content" validate:"required"`
	SenderName   string `json:"senderName"`
	ReceiverID   string `json:"receiverId"`
	ReceiverName string `json:"receiverName"`
	Type         string `json:"type"`
	IsAI         bool   `json:"isAI"`
}
