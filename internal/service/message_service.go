package service

import (
	"context"
	"time"

	"github.com/antera/antera-backend/internal/common"
	"github.com/antera/antera-backend/internal/domain"
	"github.com/antera/antera-backend/internal/repository"
	"github.com/antera/antera-backend/pkg/cache"
)

// Notifier pushes realtime events to a connected user. The websocket hub
// implements it; a nil notifier disables pushes.
type Notifier interface {
	SendToUser(userID uint, event string, payload interface{})
}

// MessageService conversation and messaging business logic
type MessageService interface {
	Resolve(userID, otherUserID uint) (*domain.ConversationResponse, error)
	ListConversations(userID uint) ([]*domain.ConversationResponse, error)
	SendMessage(senderID, conversationID uint, req *domain.SendMessageRequest) (*domain.MessageResponse, error)
	ListMessages(userID, conversationID uint, page, limit int) ([]*domain.MessageResponse, *common.Pagination, error)
	MarkAsRead(userID, conversationID uint) (int64, error)
	UnreadCount(userID uint) (int64, error)
}

type messageService struct {
	convRepo repository.ConversationRepository
	userRepo repository.UserRepository
	cache    cache.Service
	notifier Notifier
}

// NewMessageService creates a new MessageService
func NewMessageService(convRepo repository.ConversationRepository, userRepo repository.UserRepository, cacheSvc cache.Service, notifier Notifier) MessageService {
	return &messageService{
		convRepo: convRepo,
		userRepo: userRepo,
		cache:    cacheSvc,
		notifier: notifier,
	}
}

// Resolve returns the single conversation between the caller and another
// user, creating it if it does not exist yet.
func (s *messageService) Resolve(userID, otherUserID uint) (*domain.ConversationResponse, error) {
	if userID == otherUserID {
		return nil, common.ErrSelfConversation
	}

	if _, err := s.userRepo.FindByID(otherUserID); err != nil {
		return nil, err
	}

	conv, err := s.convRepo.GetOrCreate(userID, otherUserID)
	if err != nil {
		return nil, err
	}

	return s.toConversationResponse(conv, userID)
}

// ListConversations returns the caller's conversations ordered by most
// recent activity, each annotated with the other participant, the last
// message and the per-conversation unread count.
func (s *messageService) ListConversations(userID uint) ([]*domain.ConversationResponse, error) {
	convs, err := s.convRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	// the caller is included so a last message they sent gets its summary
	ids := make([]uint, 0, len(convs)+1)
	for _, conv := range convs {
		ids = append(ids, conv.OtherUserID(userID))
	}
	ids = append(ids, userID)
	summaries, err := s.userRepo.FindSummariesByIDs(ids)
	if err != nil {
		return nil, err
	}

	items := make([]*domain.ConversationResponse, 0, len(convs))
	for _, conv := range convs {
		otherID := conv.OtherUserID(userID)

		last, err := s.convRepo.FindLastMessage(conv.ID)
		if err != nil {
			return nil, err
		}
		unread, err := s.convRepo.CountUnreadInConversation(conv.ID, userID)
		if err != nil {
			return nil, err
		}

		item := &domain.ConversationResponse{
			ID:            conv.ID,
			OtherUser:     summaries[otherID],
			UnreadCount:   unread,
			LastMessageAt: conv.LastMessageAt,
			CreatedAt:     conv.CreatedAt,
		}
		if last != nil {
			item.LastMessage = last.ToResponse(summaries[last.SenderID])
		}
		items = append(items, item)
	}
	return items, nil
}

// SendMessage appends a message to an existing conversation. The sender
// must be a participant and the stated receiver must be the other
// participant; a receiver mismatch is rejected rather than silently fixed.
func (s *messageService) SendMessage(senderID, conversationID uint, req *domain.SendMessageRequest) (*domain.MessageResponse, error) {
	conv, err := s.convRepo.FindByID(conversationID)
	if err != nil {
		return nil, err
	}
	if !conv.HasParticipant(senderID) {
		return nil, common.ErrNotParticipant
	}
	if req.ReceiverID != conv.OtherUserID(senderID) {
		return nil, common.ErrNotParticipant
	}

	msg := &domain.Message{
		ConversationID: conversationID,
		SenderID:       senderID,
		ReceiverID:     req.ReceiverID,
		Content:        req.Content,
	}
	if err := s.convRepo.CreateMessage(msg); err != nil {
		return nil, err
	}
	if err := s.convRepo.TouchLastMessageAt(conversationID, time.Now()); err != nil {
		return nil, err
	}

	summaries, err := s.userRepo.FindSummariesByIDs([]uint{senderID})
	if err != nil {
		return nil, err
	}
	resp := msg.ToResponse(summaries[senderID])

	s.cache.InvalidateUnreadCount(context.Background(), req.ReceiverID)

	if s.notifier != nil {
		s.notifier.SendToUser(req.ReceiverID, "message.new", resp)
		if count, err := s.UnreadCount(req.ReceiverID); err == nil {
			s.notifier.SendToUser(req.ReceiverID, "unread_count",
				&domain.UnreadCountResponse{UnreadCount: count})
		}
	}

	return resp, nil
}

// ListMessages returns one page of a conversation's messages in
// chronological order within the page (the newest page is fetched first,
// then reversed). Reading a page marks the caller's unread messages in
// the conversation as read.
func (s *messageService) ListMessages(userID, conversationID uint, page, limit int) ([]*domain.MessageResponse, *common.Pagination, error) {
	conv, err := s.convRepo.FindByID(conversationID)
	if err != nil {
		return nil, nil, err
	}
	if !conv.HasParticipant(userID) {
		return nil, nil, common.ErrNotParticipant
	}

	messages, total, err := s.convRepo.FindMessages(conversationID, page, limit)
	if err != nil {
		return nil, nil, err
	}

	senderIDs := make([]uint, 0, len(messages))
	for _, m := range messages {
		senderIDs = append(senderIDs, m.SenderID)
	}
	summaries, err := s.userRepo.FindSummariesByIDs(senderIDs)
	if err != nil {
		return nil, nil, err
	}

	// newest-first from the store, reversed for display
	items := make([]*domain.MessageResponse, len(messages))
	for i, m := range messages {
		items[len(messages)-1-i] = m.ToResponse(summaries[m.SenderID])
	}

	if _, err := s.markRead(userID, conversationID); err != nil {
		return nil, nil, err
	}
	for _, item := range items {
		if item.ReceiverID == userID {
			item.IsRead = true
		}
	}

	return items, common.NewPagination(page, limit, total), nil
}

// MarkAsRead marks every unread message addressed to the caller in the
// conversation as read and returns how many were updated.
func (s *messageService) MarkAsRead(userID, conversationID uint) (int64, error) {
	conv, err := s.convRepo.FindByID(conversationID)
	if err != nil {
		return 0, err
	}
	if !conv.HasParticipant(userID) {
		return 0, common.ErrNotParticipant
	}
	return s.markRead(userID, conversationID)
}

func (s *messageService) markRead(userID, conversationID uint) (int64, error) {
	updated, err := s.convRepo.MarkConversationRead(conversationID, userID)
	if err != nil {
		return 0, err
	}
	if updated > 0 {
		s.cache.InvalidateUnreadCount(context.Background(), userID)
	}
	return updated, nil
}

// UnreadCount returns the caller's unread total across all conversations,
// served from cache when fresh.
func (s *messageService) UnreadCount(userID uint) (int64, error) {
	ctx := context.Background()
	if count, ok := s.cache.GetUnreadCount(ctx, userID); ok {
		return count, nil
	}

	count, err := s.convRepo.CountUnreadTotal(userID)
	if err != nil {
		return 0, err
	}
	s.cache.SetUnreadCount(ctx, userID, count)
	return count, nil
}

func (s *messageService) toConversationResponse(conv *domain.Conversation, userID uint) (*domain.ConversationResponse, error) {
	otherID := conv.OtherUserID(userID)
	summaries, err := s.userRepo.FindSummariesByIDs([]uint{otherID})
	if err != nil {
		return nil, err
	}

	last, err := s.convRepo.FindLastMessage(conv.ID)
	if err != nil {
		return nil, err
	}
	unread, err := s.convRepo.CountUnreadInConversation(conv.ID, userID)
	if err != nil {
		return nil, err
	}

	resp := &domain.ConversationResponse{
		ID:            conv.ID,
		OtherUser:     summaries[otherID],
		UnreadCount:   unread,
		LastMessageAt: conv.LastMessageAt,
		CreatedAt:     conv.CreatedAt,
	}
	if last != nil {
		lastSender, err := s.userRepo.FindSummariesByIDs([]uint{last.SenderID})
		if err != nil {
			return nil, err
		}
		resp.LastMessage = last.ToResponse(lastSender[last.SenderID])
	}
	return resp, nil
}
