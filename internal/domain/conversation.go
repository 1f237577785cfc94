package domain

import (
	"time"

	"gorm.io/gorm"
)

// Conversation is the single 1:1 message thread between two users.
// User1ID always holds the lower user ID so the unique index maps any
// unordered pair to exactly one row.
type Conversation struct {
	ID            uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	User1ID       uint      `gorm:"column:user1_id;uniqueIndex:idx_conversation_pair" json:"user1Id"`
	User2ID       uint      `gorm:"column:user2_id;uniqueIndex:idx_conversation_pair" json:"user2Id"`
	LastMessageAt time.Time `gorm:"column:last_message_at;index" json:"lastMessageAt"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (Conversation) TableName() string { return "conversations" }

// BeforeCreate enforces the canonical ordering and seeds lastMessageAt
func (cv *Conversation) BeforeCreate(tx *gorm.DB) error {
	cv.User1ID, cv.User2ID = CanonicalPair(cv.User1ID, cv.User2ID)
	if cv.LastMessageAt.IsZero() {
		cv.LastMessageAt = time.Now()
	}
	return nil
}

// OtherUserID returns the participant that is not userID
func (cv *Conversation) OtherUserID(userID uint) uint {
	if cv.User1ID == userID {
		return cv.User2ID
	}
	return cv.User1ID
}

// HasParticipant reports whether userID is one of the two participants
func (cv *Conversation) HasParticipant(userID uint) bool {
	return cv.User1ID == userID || cv.User2ID == userID
}

// Message belongs to exactly one conversation. Immutable once created
// except for the read flag, which only ever goes false -> true.
type Message struct {
	ID             uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ConversationID uint      `gorm:"column:conversation_id;index" json:"conversationId"`
	SenderID       uint      `gorm:"column:sender_id;index" json:"senderId"`
	ReceiverID     uint      `gorm:"column:receiver_id;index:idx_messages_receiver_read" json:"receiverId"`
	Content        string    `gorm:"column:content;type:text" json:"content"`
	IsRead         bool      `gorm:"column:is_read;default:false;index:idx_messages_receiver_read" json:"isRead"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (Message) TableName() string { return "messages" }

// SendMessageRequest is the body of POST /messages/conversations/:id/messages
type SendMessageRequest struct {
	ReceiverID uint   `json:"receiverId" binding:"required"`
	Content    string `json:"content" binding:"required"`
}

// MessageResponse is a message with its sender's summary
type MessageResponse struct {
	ID             uint         `json:"id"`
	ConversationID uint         `json:"conversationId"`
	Sender         *UserSummary `json:"sender"`
	ReceiverID     uint         `json:"receiverId"`
	Content        string       `json:"content"`
	IsRead         bool         `json:"isRead"`
	CreatedAt      time.Time    `json:"createdAt"`
}

// ToResponse converts a Message, attaching the sender summary
func (m *Message) ToResponse(sender *UserSummary) *MessageResponse {
	return &MessageResponse{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		Sender:         sender,
		ReceiverID:     m.ReceiverID,
		Content:        m.Content,
		IsRead:         m.IsRead,
		CreatedAt:      m.CreatedAt,
	}
}

// ConversationResponse is a conversation annotated for the listing endpoints
type ConversationResponse struct {
	ID            uint             `json:"id"`
	OtherUser     *UserSummary     `json:"otherUser"`
	LastMessage   *MessageResponse `json:"lastMessage,omitempty"`
	UnreadCount   int64            `json:"unreadCount"`
	LastMessageAt time.Time        `json:"lastMessageAt"`
	CreatedAt     time.Time        `json:"createdAt"`
}

// UnreadCountResponse is the body of GET /messages/unread-count
type UnreadCountResponse struct {
	UnreadCount int64 `json:"unreadCount"`
}
