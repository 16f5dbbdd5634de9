package booking

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/zennara-clinics/booking-api/internal/audit"
	domain "github.com/zennara-clinics/booking-api/internal/domain/booking"
	"github.com/zennara-clinics/booking-api/internal/models"
	"github.com/zennara-clinics/booking-api/internal/notify"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetBranchByID(ctx context.Context, id uint) (*models.Branch, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Branch), args.Error(1)
}

func (m *MockRepository) GetBranchByName(ctx context.Context, name string) (*models.Branch, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Branch), args.Error(1)
}

func (m *MockRepository) GetConsultation(ctx context.Context, id uint) (*models.Consultation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Consultation), args.Error(1)
}

func (m *MockRepository) GetUser(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockRepository) CreateBooking(ctx context.Context, b *models.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockRepository) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockRepository) GetBookingForUser(ctx context.Context, id uint, userID uint) (*models.Booking, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockRepository) GetBookingByReference(ctx context.Context, reference string) (*models.Booking, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockRepository) ListBookingsForUser(ctx context.Context, userID uint) ([]models.Booking, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockRepository) ListBookings(ctx context.Context, f domain.ListFilter) ([]models.Booking, int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]models.Booking), args.Get(1).(int64), args.Error(2)
}

func (m *MockRepository) UpdateBooking(ctx context.Context, b *models.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockRepository) ListActiveBookings(ctx context.Context, branchID uint, dayStart, dayEnd time.Time) ([]models.Booking, error) {
	args := m.Called(ctx, branchID, dayStart, dayEnd)
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockRepository) ListAwaitingConfirmation(ctx context.Context) ([]models.Booking, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockRepository) DeleteAwaitingConfirmation(ctx context.Context, ids []uint) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

var _ domain.Repository = (*MockRepository)(nil)

type MockSlotLock struct {
	mock.Mock
}

func (m *MockSlotLock) Acquire(ctx context.Context, branchID uint, date time.Time, slot string) (bool, error) {
	args := m.Called(ctx, branchID, date, slot)
	return args.Bool(0), args.Error(1)
}

func (m *MockSlotLock) Release(ctx context.Context, branchID uint, date time.Time, slot string) error {
	args := m.Called(ctx, branchID, date, slot)
	return args.Error(0)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Dispatch(ev notify.Event) {
	m.Called(ev)
}

type MockAuditor struct {
	mock.Mock
}

func (m *MockAuditor) Dispatch(ev audit.Event) {
	m.Called(ev)
}

type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendEmail(ctx context.Context, to, subject, body string) error {
	args := m.Called(ctx, to, subject, body)
	return args.Error(0)
}
