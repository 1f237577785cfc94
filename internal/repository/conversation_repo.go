package repository

import (
	"time"

	"github.com/antera/antera-backend/internal/common"
	"github.com/antera/antera-backend/internal/domain"
	"gorm.io/gorm"
)

// ConversationRepository conversation and message data access interface
type ConversationRepository interface {
	GetOrCreate(userA, userB uint) (*domain.Conversation, error)
	FindByID(id uint) (*domain.Conversation, error)
	FindByUser(userID uint) ([]*domain.Conversation, error)
	TouchLastMessageAt(id uint, at time.Time) error

	CreateMessage(msg *domain.Message) error
	FindMessages(conversationID uint, page, limit int) ([]*domain.Message, int64, error)
	FindLastMessage(conversationID uint) (*domain.Message, error)
	MarkConversationRead(conversationID, receiverID uint) (int64, error)
	CountUnreadInConversation(conversationID, receiverID uint) (int64, error)
	CountUnreadTotal(receiverID uint) (int64, error)
}

type conversationRepository struct {
	db *gorm.DB
}

// NewConversationRepository creates a new ConversationRepository
func NewConversationRepository(db *gorm.DB) ConversationRepository {
	return &conversationRepository{db: db}
}

// GetOrCreate resolves the single conversation for an unordered user pair.
// The unique index on (user1_id, user2_id) makes the create path safe under
// races: a duplicate-key violation means another request won the insert, so
// the existing row is fetched and returned.
func (r *conversationRepository) GetOrCreate(userA, userB uint) (*domain.Conversation, error) {
	low, high := domain.CanonicalPair(userA, userB)

	var conv domain.Conversation
	err := r.db.Where("user1_id = ? AND user2_id = ?", low, high).First(&conv).Error
	if err == nil {
		return &conv, nil
	}
	if !isNotFound(err) {
		return nil, err
	}

	conv = domain.Conversation{User1ID: low, User2ID: high}
	if err := r.db.Create(&conv).Error; err != nil {
		if isDuplicateKey(err) {
			var existing domain.Conversation
			if ferr := r.db.Where("user1_id = ? AND user2_id = ?", low, high).
				First(&existing).Error; ferr != nil {
				return nil, ferr
			}
			return &existing, nil
		}
		return nil, err
	}
	return &conv, nil
}

// FindByID finds a conversation by ID
func (r *conversationRepository) FindByID(id uint) (*domain.Conversation, error) {
	var conv domain.Conversation
	if err := r.db.First(&conv, id).Error; err != nil {
		if isNotFound(err) {
			return nil, common.ErrConversationNotFound
		}
		return nil, err
	}
	return &conv, nil
}

// FindByUser returns the user's conversations, most recent activity first
func (r *conversationRepository) FindByUser(userID uint) ([]*domain.Conversation, error) {
	var convs []*domain.Conversation
	err := r.db.
		Where("user1_id = ? OR user2_id = ?", userID, userID).
		Order("last_message_at DESC").
		Find(&convs).Error
	return convs, err
}

// TouchLastMessageAt bumps the conversation's activity timestamp
func (r *conversationRepository) TouchLastMessageAt(id uint, at time.Time) error {
	return r.db.Model(&domain.Conversation{}).Where("id = ?", id).
		Update("last_message_at", at).Error
}

// CreateMessage appends a message
func (r *conversationRepository) CreateMessage(msg *domain.Message) error {
	return r.db.Create(msg).Error
}

// FindMessages pages through a conversation's messages newest-first.
// Callers reverse the page for chronological presentation.
func (r *conversationRepository) FindMessages(conversationID uint, page, limit int) ([]*domain.Message, int64, error) {
	q := r.db.Model(&domain.Message{}).Where("conversation_id = ?", conversationID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var messages []*domain.Message
	offset := (page - 1) * limit
	err := q.Order("created_at DESC").Offset(offset).Limit(limit).Find(&messages).Error
	if err != nil {
		return nil, 0, err
	}
	return messages, total, nil
}

// FindLastMessage returns the newest message in a conversation, nil if empty
func (r *conversationRepository) FindLastMessage(conversationID uint) (*domain.Message, error) {
	var msg domain.Message
	err := r.db.Where("conversation_id = ?", conversationID).
		Order("created_at DESC").First(&msg).Error
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &msg, nil
}

// MarkConversationRead flips every unread message addressed to the receiver
// in one set-based UPDATE. The unread->read transition is monotonic; nothing
// ever flips back. Returns the number of rows updated.
func (r *conversationRepository) MarkConversationRead(conversationID, receiverID uint) (int64, error) {
	result := r.db.Model(&domain.Message{}).
		Where("conversation_id = ? AND receiver_id = ? AND is_read = ?",
			conversationID, receiverID, false).
		Update("is_read", true)
	return result.RowsAffected, result.Error
}

// CountUnreadInConversation counts unread messages for the receiver in one conversation
func (r *conversationRepository) CountUnreadInConversation(conversationID, receiverID uint) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Message{}).
		Where("conversation_id = ? AND receiver_id = ? AND is_read = ?",
			conversationID, receiverID, false).
		Count(&count).Error
	return count, err
}

// CountUnreadTotal counts unread messages for the receiver across all conversations
func (r *conversationRepository) CountUnreadTotal(receiverID uint) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Message{}).
		Where("receiver_id = ? AND is_read = ?", receiverID, false).
		Count(&count).Error
	return count, err
}
