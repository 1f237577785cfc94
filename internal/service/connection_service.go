package service

import (
	"errors"
	"fmt"

	"github.com/antera/antera-backend/internal/common"
	"github.com/antera/antera-backend/internal/domain"
	"github.com/antera/antera-backend/internal/repository"
)

// ConnectionService owns the pairwise connection state machine:
// request -> pending -> accepted, with reject and remove deleting the row.
type ConnectionService interface {
	Send(senderID, receiverID uint) (*domain.ConnectionResponse, error)
	Accept(userID, connectionID uint) (*domain.ConnectionResponse, error)
	Reject(userID, connectionID uint) error
	Remove(userID, connectionID uint) error
	List(userID uint, status string) ([]*domain.ConnectionListItem, error)
	ListPending(userID uint) ([]*domain.PendingRequestItem, error)
	Status(userID, otherUserID uint) (*domain.ConnectionStatusResponse, error)
}

type connectionService struct {
	connRepo repository.ConnectionRepository
	userRepo repository.UserRepository
}

// NewConnectionService creates a new ConnectionService
func NewConnectionService(connRepo repository.ConnectionRepository, userRepo repository.UserRepository) ConnectionService {
	return &connectionService{
		connRepo: connRepo,
		userRepo: userRepo,
	}
}

// Send creates a pending request from sender to receiver. At most one
// connection may exist per unordered pair, in either direction; the
// canonical-pair unique index enforces this under concurrent sends.
func (s *connectionService) Send(senderID, receiverID uint) (*domain.ConnectionResponse, error) {
	if senderID == receiverID {
		return nil, common.ErrSelfConnection
	}

	if _, err := s.userRepo.FindByID(receiverID); err != nil {
		return nil, err
	}

	if _, err := s.connRepo.FindByPair(senderID, receiverID); err == nil {
		return nil, common.ErrConnectionExists
	} else if !errors.Is(err, common.ErrConnectionNotFound) {
		return nil, err
	}

	conn := &domain.Connection{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Status:     domain.ConnectionPending,
	}
	if err := s.connRepo.Create(conn); err != nil {
		return nil, err
	}

	return s.toResponse(conn)
}

// Accept transitions a pending request to accepted. Only the receiver may
// accept. Accepting an already-accepted connection succeeds idempotently.
func (s *connectionService) Accept(userID, connectionID uint) (*domain.ConnectionResponse, error) {
	conn, err := s.connRepo.FindByID(connectionID)
	if err != nil {
		return nil, err
	}
	if conn.ReceiverID != userID {
		return nil, common.ErrForbidden
	}

	if err := s.connRepo.UpdateStatus(connectionID, domain.ConnectionAccepted); err != nil {
		return nil, err
	}
	conn.Status = domain.ConnectionAccepted

	return s.toResponse(conn)
}

// Reject deletes a request. Only the receiver may reject; no rejected
// row persists, so the pair may be re-requested afterwards.
func (s *connectionService) Reject(userID, connectionID uint) error {
	conn, err := s.connRepo.FindByID(connectionID)
	if err != nil {
		return err
	}
	if conn.ReceiverID != userID {
		return common.ErrForbidden
	}

	return s.connRepo.Delete(connectionID)
}

// Remove deletes a connection regardless of status. Either participant
// may remove.
func (s *connectionService) Remove(userID, connectionID uint) error {
	conn, err := s.connRepo.FindByID(connectionID)
	if err != nil {
		return err
	}
	if conn.SenderID != userID && conn.ReceiverID != userID {
		return common.ErrForbidden
	}

	return s.connRepo.Delete(connectionID)
}

// List returns the user's connections with the given status, each
// normalized to the other participant's perspective.
func (s *connectionService) List(userID uint, status string) ([]*domain.ConnectionListItem, error) {
	if status == "" {
		status = domain.ConnectionAccepted
	}
	if status != domain.ConnectionAccepted && status != domain.ConnectionPending {
		return nil, fmt.Errorf("%w: unknown status %q", common.ErrInvalidInput, status)
	}

	conns, err := s.connRepo.FindByUserAndStatus(userID, status)
	if err != nil {
		return nil, err
	}

	otherIDs := make([]uint, 0, len(conns))
	for _, conn := range conns {
		if conn.SenderID == userID {
			otherIDs = append(otherIDs, conn.ReceiverID)
		} else {
			otherIDs = append(otherIDs, conn.SenderID)
		}
	}
	summaries, err := s.userRepo.FindSummariesByIDs(otherIDs)
	if err != nil {
		return nil, err
	}

	items := make([]*domain.ConnectionListItem, 0, len(conns))
	for _, conn := range conns {
		otherID := conn.ReceiverID
		if conn.ReceiverID == userID {
			otherID = conn.SenderID
		}
		items = append(items, &domain.ConnectionListItem{
			ID:        conn.ID,
			User:      summaries[otherID],
			Status:    conn.Status,
			CreatedAt: conn.CreatedAt,
		})
	}
	return items, nil
}

// ListPending returns requests awaiting the user's decision, newest first
func (s *connectionService) ListPending(userID uint) ([]*domain.PendingRequestItem, error) {
	conns, err := s.connRepo.FindPendingForReceiver(userID)
	if err != nil {
		return nil, err
	}

	senderIDs := make([]uint, 0, len(conns))
	for _, conn := range conns {
		senderIDs = append(senderIDs, conn.SenderID)
	}
	summaries, err := s.userRepo.FindSummariesByIDs(senderIDs)
	if err != nil {
		return nil, err
	}

	items := make([]*domain.PendingRequestItem, 0, len(conns))
	for _, conn := range conns {
		items = append(items, &domain.PendingRequestItem{
			ID:        conn.ID,
			Sender:    summaries[conn.SenderID],
			Status:    conn.Status,
			CreatedAt: conn.CreatedAt,
		})
	}
	return items, nil
}

// Status reports how the user relates to another user: none, pending or
// accepted, plus request direction and the connection ID when one exists.
func (s *connectionService) Status(userID, otherUserID uint) (*domain.ConnectionStatusResponse, error) {
	conn, err := s.connRepo.FindByPair(userID, otherUserID)
	if err != nil {
		if errors.Is(err, common.ErrConnectionNotFound) {
			return &domain.ConnectionStatusResponse{Status: domain.ConnectionNone}, nil
		}
		return nil, err
	}

	isRequester := conn.SenderID == userID
	return &domain.ConnectionStatusResponse{
		Status:       conn.Status,
		IsRequester:  &isRequester,
		ConnectionID: &conn.ID,
	}, nil
}

func (s *connectionService) toResponse(conn *domain.Connection) (*domain.ConnectionResponse, error) {
	summaries, err := s.userRepo.FindSummariesByIDs([]uint{conn.SenderID, conn.ReceiverID})
	if err != nil {
		return nil, err
	}
	return &domain.ConnectionResponse{
		ID:        conn.ID,
		Sender:    summaries[conn.SenderID],
		Receiver:  summaries[conn.ReceiverID],
		Status:    conn.Status,
		CreatedAt: conn.CreatedAt,
	}, nil
}
