package repository

import (
	"github.com/antera/antera-backend/internal/common"
	"github.com/antera/antera-backend/internal/domain"
	"gorm.io/gorm"
)

// ConnectionRepository connection data access interface
type ConnectionRepository interface {
	Create(conn *domain.Connection) error
	FindByID(id uint) (*domain.Connection, error)
	FindByPair(userA, userB uint) (*domain.Connection, error)
	FindByUserAndStatus(userID uint, status string) ([]*domain.Connection, error)
	FindPendingForReceiver(receiverID uint) ([]*domain.Connection, error)
	UpdateStatus(id uint, status string) error
	Delete(id uint) error
	CountAcceptedForUser(userID uint) (int64, error)
}

type connectionRepository struct {
	db *gorm.DB
}

// NewConnectionRepository creates a new ConnectionRepository
func NewConnectionRepository(db *gorm.DB) ConnectionRepository {
	return &connectionRepository{db: db}
}

// Create inserts a connection. The unique index on the canonical pair is
// the authority on duplicates; a violation surfaces as ErrConnectionExists
// so two racing sends cannot both succeed.
func (r *connectionRepository) Create(conn *domain.Connection) error {
	if err := r.db.Create(conn).Error; err != nil {
		if isDuplicateKey(err) {
			return common.ErrConnectionExists
		}
		return err
	}
	return nil
}

// FindByID finds a connection by ID
func (r *connectionRepository) FindByID(id uint) (*domain.Connection, error) {
	var conn domain.Connection
	if err := r.db.First(&conn, id).Error; err != nil {
		if isNotFound(err) {
			return nil, common.ErrConnectionNotFound
		}
		return nil, err
	}
	return &conn, nil
}

// FindByPair looks up the connection between two users in either direction
func (r *connectionRepository) FindByPair(userA, userB uint) (*domain.Connection, error) {
	low, high := domain.CanonicalPair(userA, userB)
	var conn domain.Connection
	err := r.db.Where("pair_low = ? AND pair_high = ?", low, high).First(&conn).Error
	if err != nil {
		if isNotFound(err) {
			return nil, common.ErrConnectionNotFound
		}
		return nil, err
	}
	return &conn, nil
}

// FindByUserAndStatus returns connections where the user participates,
// filtered by status
func (r *connectionRepository) FindByUserAndStatus(userID uint, status string) ([]*domain.Connection, error) {
	var conns []*domain.Connection
	err := r.db.
		Where("(sender_id = ? OR receiver_id = ?) AND status = ?", userID, userID, status).
		Order("created_at DESC").
		Find(&conns).Error
	return conns, err
}

// FindPendingForReceiver returns pending requests addressed to the user,
// most recent first
func (r *connectionRepository) FindPendingForReceiver(receiverID uint) ([]*domain.Connection, error) {
	var conns []*domain.Connection
	err := r.db.
		Where("receiver_id = ? AND status = ?", receiverID, domain.ConnectionPending).
		Order("created_at DESC").
		Find(&conns).Error
	return conns, err
}

// UpdateStatus sets the status of a connection
func (r *connectionRepository) UpdateStatus(id uint, status string) error {
	return r.db.Model(&domain.Connection{}).Where("id = ?", id).
		Update("status", status).Error
}

// Delete removes a connection row (reject or remove)
func (r *connectionRepository) Delete(id uint) error {
	return r.db.Delete(&domain.Connection{}, id).Error
}

// CountAcceptedForUser counts accepted connections in either direction
func (r *connectionRepository) CountAcceptedForUser(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Connection{}).
		Where("(sender_id = ? OR receiver_id = ?) AND status = ?",
			userID, userID, domain.ConnectionAccepted).
		Count(&count).Error
	return count, err
}
