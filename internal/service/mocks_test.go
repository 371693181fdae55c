package service_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"toolkeeper-backend/internal/domain"
)

// MockToolRepo
type MockToolRepo struct {
	mock.Mock
}

func (m *MockToolRepo) Create(ctx context.Context, tool *domain.Tool) error {
	args := m.Called(ctx, tool)
	return args.Error(0)
}
func (m *MockToolRepo) GetByID(ctx context.Context, id int32) (*domain.Tool, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tool), args.Error(1)
}
func (m *MockToolRepo) Update(ctx context.Context, tool *domain.Tool) error {
	args := m.Called(ctx, tool)
	return args.Error(0)
}
func (m *MockToolRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockToolRepo) List(ctx context.Context, page, pageSize int32) ([]domain.Tool, int32, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.Tool), args.Get(1).(int32), args.Error(2)
}

// MockBookingRepo
type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) Create(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}
func (m *MockBookingRepo) GetByID(ctx context.Context, id int32) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) Update(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}
func (m *MockBookingRepo) ListByTool(ctx context.Context, toolID int32) ([]domain.Booking, error) {
	args := m.Called(ctx, toolID)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) ListByUser(ctx context.Context, userID int32, status string, page, pageSize int32) ([]domain.Booking, int32, error) {
	args := m.Called(ctx, userID, status, page, pageSize)
	return args.Get(0).([]domain.Booking), args.Get(1).(int32), args.Error(2)
}
func (m *MockBookingRepo) List(ctx context.Context, status string, page, pageSize int32) ([]domain.Booking, int32, error) {
	args := m.Called(ctx, status, page, pageSize)
	return args.Get(0).([]domain.Booking), args.Get(1).(int32), args.Error(2)
}
func (m *MockBookingRepo) ListActivePastEnd(ctx context.Context, asOf time.Time) ([]domain.Booking, error) {
	args := m.Called(ctx, asOf)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

// MockMaintenanceRepo
type MockMaintenanceRepo struct {
	mock.Mock
}

func (m *MockMaintenanceRepo) Create(ctx context.Context, mt *domain.Maintenance) error {
	args := m.Called(ctx, mt)
	return args.Error(0)
}
func (m *MockMaintenanceRepo) GetByID(ctx context.Context, id int32) (*domain.Maintenance, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Maintenance), args.Error(1)
}
func (m *MockMaintenanceRepo) Update(ctx context.Context, mt *domain.Maintenance) error {
	args := m.Called(ctx, mt)
	return args.Error(0)
}
func (m *MockMaintenanceRepo) ListByTool(ctx context.Context, toolID int32) ([]domain.Maintenance, error) {
	args := m.Called(ctx, toolID)
	return args.Get(0).([]domain.Maintenance), args.Error(1)
}
func (m *MockMaintenanceRepo) List(ctx context.Context, status string, page, pageSize int32) ([]domain.Maintenance, int32, error) {
	args := m.Called(ctx, status, page, pageSize)
	return args.Get(0).([]domain.Maintenance), args.Get(1).(int32), args.Error(2)
}
func (m *MockMaintenanceRepo) ListScheduledBetween(ctx context.Context, from, to time.Time) ([]domain.Maintenance, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]domain.Maintenance), args.Error(1)
}

// MockSparePartRepo
type MockSparePartRepo struct {
	mock.Mock
}

func (m *MockSparePartRepo) Create(ctx context.Context, part *domain.SparePart) error {
	args := m.Called(ctx, part)
	return args.Error(0)
}
func (m *MockSparePartRepo) GetByID(ctx context.Context, id int32) (*domain.SparePart, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SparePart), args.Error(1)
}
func (m *MockSparePartRepo) Update(ctx context.Context, part *domain.SparePart) error {
	args := m.Called(ctx, part)
	return args.Error(0)
}
func (m *MockSparePartRepo) List(ctx context.Context, page, pageSize int32) ([]domain.SparePart, int32, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.SparePart), args.Get(1).(int32), args.Error(2)
}
func (m *MockSparePartRepo) ConsumeForMaintenance(ctx context.Context, maintenanceID, partID, quantity int32) (*domain.SparePart, error) {
	args := m.Called(ctx, maintenanceID, partID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SparePart), args.Error(1)
}
func (m *MockSparePartRepo) ListBelowMinimum(ctx context.Context) ([]domain.SparePart, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.SparePart), args.Error(1)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) ListByRole(ctx context.Context, role domain.UserRole) ([]domain.User, error) {
	args := m.Called(ctx, role)
	return args.Get(0).([]domain.User), args.Error(1)
}

// MockNotificationRepo
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, note *domain.Notification) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}
func (m *MockNotificationRepo) List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, userID, limit, offset)
	return args.Get(0).([]domain.Notification), args.Get(1).(int32), args.Error(2)
}
func (m *MockNotificationRepo) MarkAsRead(ctx context.Context, id, userID int32) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendBookingRequestNotification(ctx context.Context, to, requesterName, toolName string, start, end time.Time) error {
	args := m.Called(ctx, to, requesterName, toolName, start, end)
	return args.Error(0)
}
func (m *MockEmailService) SendBookingDecisionNotification(ctx context.Context, to, toolName string, approved bool) error {
	args := m.Called(ctx, to, toolName, approved)
	return args.Error(0)
}
func (m *MockEmailService) SendOverdueNotice(ctx context.Context, to, toolName string, end time.Time) error {
	args := m.Called(ctx, to, toolName, end)
	return args.Error(0)
}
func (m *MockEmailService) SendMaintenanceReminder(ctx context.Context, to, toolName, description string, start time.Time) error {
	args := m.Called(ctx, to, toolName, description, start)
	return args.Error(0)
}
func (m *MockEmailService) SendLowStockAlert(ctx context.Context, to string, parts []domain.SparePart) error {
	args := m.Called(ctx, to, parts)
	return args.Error(0)
}
