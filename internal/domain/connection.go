package domain

import (
	"time"

	"gorm.io/gorm"
)

// Connection statuses. Rejection and removal delete the row,
// so no terminal status value exists.
const (
	ConnectionPending  = "pending"
	ConnectionAccepted = "accepted"
	ConnectionNone     = "none"
)

// Connection is a directed connection request between two users.
// PairLow/PairHigh hold the canonical unordered pair (lower ID first) so a
// unique index can reject a duplicate row regardless of direction.
type Connection struct {
	ID         uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	SenderID   uint      `gorm:"column:sender_id;index" json:"senderId"`
	ReceiverID uint      `gorm:"column:receiver_id;index" json:"receiverId"`
	PairLow    uint      `gorm:"column:pair_low;uniqueIndex:idx_connection_pair" json:"-"`
	PairHigh   uint      `gorm:"column:pair_high;uniqueIndex:idx_connection_pair" json:"-"`
	Status     string    `gorm:"column:status;type:varchar(20);default:'pending'" json:"status"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (Connection) TableName() string { return "connections" }

// BeforeCreate fills the canonical pair columns
func (c *Connection) BeforeCreate(tx *gorm.DB) error {
	c.PairLow, c.PairHigh = CanonicalPair(c.SenderID, c.ReceiverID)
	return nil
}

// CanonicalPair orders an unordered user pair deterministically, lower ID first
func CanonicalPair(a, b uint) (low, high uint) {
	if a < b {
		return a, b
	}
	return b, a
}

// SendConnectionRequest is the body of POST /connections
type SendConnectionRequest struct {
	ReceiverID uint `json:"receiverId" binding:"required"`
}

// ConnectionResponse includes both participant summaries
type ConnectionResponse struct {
	ID        uint         `json:"id"`
	Sender    *UserSummary `json:"sender"`
	Receiver  *UserSummary `json:"receiver"`
	Status    string       `json:"status"`
	CreatedAt time.Time    `json:"createdAt"`
}

// ConnectionListItem is a connection seen from the caller's perspective:
// direction is normalized away, only the other participant remains
type ConnectionListItem struct {
	ID        uint         `json:"id"`
	User      *UserSummary `json:"user"`
	Status    string       `json:"status"`
	CreatedAt time.Time    `json:"createdAt"`
}

// PendingRequestItem is a pending request with its sender's summary
type PendingRequestItem struct {
	ID        uint         `json:"id"`
	Sender    *UserSummary `json:"sender"`
	Status    string       `json:"status"`
	CreatedAt time.Time    `json:"createdAt"`
}

// ConnectionStatusResponse answers "how am I related to this user"
type ConnectionStatusResponse struct {
	Status       string `json:"status"`
	IsRequester  *bool  `json:"isRequester,omitempty"`
	ConnectionID *uint  `json:"connectionId,omitempty"`
}
