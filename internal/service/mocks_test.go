package service

import (
	"context"
	"time"

	"github.com/antera/antera-backend/internal/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserRepository ---

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) FindByID(id uint) (*domain.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) FindByEmail(email string) (*domain.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) FindSummariesByIDs(ids []uint) (map[uint]*domain.UserSummary, error) {
	args := m.Called(ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uint]*domain.UserSummary), args.Error(1)
}

func (m *mockUserRepo) FindAllSummaries() ([]*domain.UserSummary, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.UserSummary), args.Error(1)
}

func (m *mockUserRepo) Create(user *domain.User) error {
	return m.Called(user).Error(0)
}

func (m *mockUserRepo) UpdateFields(id uint, fields map[string]interface{}) error {
	return m.Called(id, fields).Error(0)
}

func (m *mockUserRepo) IncrementProfileViews(id uint) error {
	return m.Called(id).Error(0)
}

func (m *mockUserRepo) ExistsByEmail(email string) (bool, error) {
	args := m.Called(email)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) Search(query string, page, limit int) ([]*domain.User, int64, error) {
	args := m.Called(query, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*domain.User), args.Get(1).(int64), args.Error(2)
}

// --- Mock ConnectionRepository ---

type mockConnectionRepo struct {
	mock.Mock
}

func (m *mockConnectionRepo) Create(conn *domain.Connection) error {
	return m.Called(conn).Error(0)
}

func (m *mockConnectionRepo) FindByID(id uint) (*domain.Connection, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Connection), args.Error(1)
}

func (m *mockConnectionRepo) FindByPair(userA, userB uint) (*domain.Connection, error) {
	args := m.Called(userA, userB)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Connection), args.Error(1)
}

func (m *mockConnectionRepo) FindByUserAndStatus(userID uint, status string) ([]*domain.Connection, error) {
	args := m.Called(userID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Connection), args.Error(1)
}

func (m *mockConnectionRepo) FindPendingForReceiver(receiverID uint) ([]*domain.Connection, error) {
	args := m.Called(receiverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Connection), args.Error(1)
}

func (m *mockConnectionRepo) UpdateStatus(id uint, status string) error {
	return m.Called(id, status).Error(0)
}

func (m *mockConnectionRepo) Delete(id uint) error {
	return m.Called(id).Error(0)
}

func (m *mockConnectionRepo) CountAcceptedForUser(userID uint) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock ConversationRepository ---

type mockConversationRepo struct {
	mock.Mock
}

func (m *mockConversationRepo) GetOrCreate(userA, userB uint) (*domain.Conversation, error) {
	args := m.Called(userA, userB)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Conversation), args.Error(1)
}

func (m *mockConversationRepo) FindByID(id uint) (*domain.Conversation, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Conversation), args.Error(1)
}

func (m *mockConversationRepo) FindByUser(userID uint) ([]*domain.Conversation, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Conversation), args.Error(1)
}

func (m *mockConversationRepo) TouchLastMessageAt(id uint, at time.Time) error {
	return m.Called(id, at).Error(0)
}

func (m *mockConversationRepo) CreateMessage(msg *domain.Message) error {
	return m.Called(msg).Error(0)
}

func (m *mockConversationRepo) FindMessages(conversationID uint, page, limit int) ([]*domain.Message, int64, error) {
	args := m.Called(conversationID, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*domain.Message), args.Get(1).(int64), args.Error(2)
}

func (m *mockConversationRepo) FindLastMessage(conversationID uint) (*domain.Message, error) {
	args := m.Called(conversationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Message), args.Error(1)
}

func (m *mockConversationRepo) MarkConversationRead(conversationID, receiverID uint) (int64, error) {
	args := m.Called(conversationID, receiverID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockConversationRepo) CountUnreadInConversation(conversationID, receiverID uint) (int64, error) {
	args := m.Called(conversationID, receiverID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockConversationRepo) CountUnreadTotal(receiverID uint) (int64, error) {
	args := m.Called(receiverID)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock JobRepository ---

type mockJobRepo struct {
	mock.Mock
}

func (m *mockJobRepo) Create(job *domain.Job) error {
	return m.Called(job).Error(0)
}

func (m *mockJobRepo) FindByID(id uint) (*domain.Job, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *mockJobRepo) FindActive(filter *domain.JobFilter, page, limit int) ([]*domain.Job, int64, error) {
	args := m.Called(filter, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*domain.Job), args.Get(1).(int64), args.Error(2)
}

func (m *mockJobRepo) Update(id uint, fields map[string]interface{}) error {
	return m.Called(id, fields).Error(0)
}

func (m *mockJobRepo) Delete(id uint) error {
	return m.Called(id).Error(0)
}

func (m *mockJobRepo) IncrementViews(id uint) error {
	return m.Called(id).Error(0)
}

func (m *mockJobRepo) IncrementApplicants(id uint) error {
	return m.Called(id).Error(0)
}

func (m *mockJobRepo) CreateApplication(app *domain.JobApplication) error {
	return m.Called(app).Error(0)
}

func (m *mockJobRepo) FindApplicationByID(id uint) (*domain.JobApplication, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobApplication), args.Error(1)
}

func (m *mockJobRepo) FindApplications(jobID uint, status string, page, limit int) ([]*domain.JobApplication, int64, error) {
	args := m.Called(jobID, status, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*domain.JobApplication), args.Get(1).(int64), args.Error(2)
}

func (m *mockJobRepo) UpdateApplication(id uint, fields map[string]interface{}) error {
	return m.Called(id, fields).Error(0)
}

// --- Mock CompanyRepository ---

type mockCompanyRepo struct {
	mock.Mock
}

func (m *mockCompanyRepo) Create(company *domain.Company) error {
	return m.Called(company).Error(0)
}

func (m *mockCompanyRepo) FindByID(id uint) (*domain.Company, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *mockCompanyRepo) FindAll(page, limit int) ([]*domain.Company, int64, error) {
	args := m.Called(page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*domain.Company), args.Get(1).(int64), args.Error(2)
}

func (m *mockCompanyRepo) Update(id uint, fields map[string]interface{}) error {
	return m.Called(id, fields).Error(0)
}

func (m *mockCompanyRepo) Delete(id uint) error {
	return m.Called(id).Error(0)
}

// --- Stub cache (no Redis in unit tests) ---

type stubCache struct {
	invalidated []uint
}

func (s *stubCache) GetUnreadCount(ctx context.Context, userID uint) (int64, bool) {
	return 0, false
}
func (s *stubCache) SetUnreadCount(ctx context.Context, userID uint, count int64) {}
func (s *stubCache) InvalidateUnreadCount(ctx context.Context, userID uint) {
	s.invalidated = append(s.invalidated, userID)
}

// --- Recording notifier ---

type recordedEvent struct {
	UserID  uint
	Type    string
	Payload interface{}
}

type stubNotifier struct {
	events []recordedEvent
}

func (s *stubNotifier) SendToUser(userID uint, event string, payload interface{}) {
	s.events = append(s.events, recordedEvent{UserID: userID, Type: event, Payload: payload})
}
