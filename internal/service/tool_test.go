package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"toolkeeper-backend/internal/domain"
	"toolkeeper-backend/internal/repository"
	"toolkeeper-backend/internal/service"
)

func newToolFixture() (*MockToolRepo, *MockBookingRepo, *MockMaintenanceRepo, service.ToolService) {
	toolRepo := new(MockToolRepo)
	bookingRepo := new(MockBookingRepo)
	maintRepo := new(MockMaintenanceRepo)
	svc := service.NewToolService(toolRepo, bookingRepo, maintRepo)
	return toolRepo, bookingRepo, maintRepo, svc
}

func TestToolService_GetTool_DerivedStatus(t *testing.T) {
	ctx := context.Background()
	tool := &domain.Tool{ID: 1, Name: "Circular Saw"}

	cases := []struct {
		name       string
		bookings   []domain.Booking
		maints     []domain.Maintenance
		wantStatus domain.ToolStatus
		wantActive *int32
	}{
		{
			name:       "NoRecords",
			bookings:   []domain.Booking{},
			maints:     []domain.Maintenance{},
			wantStatus: domain.ToolStatusAvailable,
		},
		{
			name: "ActiveBooking",
			bookings: []domain.Booking{
				{ID: 10, ToolID: 1, UserID: 7, Status: domain.BookingStatusActive},
			},
			maints:     []domain.Maintenance{},
			wantStatus: domain.ToolStatusInUse,
			wantActive: int32Ptr(10),
		},
		{
			name: "ApprovedBooking",
			bookings: []domain.Booking{
				{ID: 11, ToolID: 1, UserID: 7, Status: domain.BookingStatusApproved},
			},
			maints:     []domain.Maintenance{},
			wantStatus: domain.ToolStatusBooked,
		},
		{
			name:     "InProgressMaintenanceWinsOverActiveBooking",
			bookings: []domain.Booking{{ID: 10, Status: domain.BookingStatusActive}},
			maints: []domain.Maintenance{
				{ID: 5, ToolID: 1, Status: domain.MaintenanceStatusInProgress},
			},
			wantStatus: domain.ToolStatusInMaintenance,
			wantActive: int32Ptr(10),
		},
		{
			name:     "ScheduledMaintenanceOnly",
			bookings: []domain.Booking{},
			maints: []domain.Maintenance{
				{ID: 5, ToolID: 1, Status: domain.MaintenanceStatusScheduled},
			},
			wantStatus: domain.ToolStatusInMaintenance,
		},
		{
			name: "TerminalRecordsIgnored",
			bookings: []domain.Booking{
				{ID: 12, Status: domain.BookingStatusCompleted},
				{ID: 13, Status: domain.BookingStatusRejected},
			},
			maints: []domain.Maintenance{
				{ID: 6, Status: domain.MaintenanceStatusCompleted},
			},
			wantStatus: domain.ToolStatusAvailable,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			toolRepo, bookingRepo, maintRepo, svc := newToolFixture()
			toolRepo.On("GetByID", ctx, int32(1)).Return(tool, nil)
			bookingRepo.On("ListByTool", ctx, int32(1)).Return(tc.bookings, nil)
			maintRepo.On("ListByTool", ctx, int32(1)).Return(tc.maints, nil)

			view, err := svc.GetTool(ctx, 1)
			assert.NoError(t, err)
			assert.Equal(t, tc.wantStatus, view.Status)
			if tc.wantActive == nil {
				assert.Nil(t, view.ActiveBookingID)
			} else {
				assert.NotNil(t, view.ActiveBookingID)
				assert.Equal(t, *tc.wantActive, *view.ActiveBookingID)
			}
		})
	}
}

func TestToolService_GetTool_NotFound(t *testing.T) {
	toolRepo, _, _, svc := newToolFixture()
	ctx := context.Background()
	toolRepo.On("GetByID", ctx, int32(99)).Return(nil, repository.ErrNotFound)

	_, err := svc.GetTool(ctx, 99)
	assert.ErrorIs(t, err, service.ErrToolNotFound)
}

func TestToolService_ListTools(t *testing.T) {
	toolRepo, bookingRepo, maintRepo, svc := newToolFixture()
	ctx := context.Background()

	toolRepo.On("List", ctx, int32(1), int32(20)).Return([]domain.Tool{
		{ID: 1, Name: "Circular Saw"},
		{ID: 2, Name: "Drill"},
	}, int32(2), nil)
	bookingRepo.On("ListByTool", ctx, int32(1)).Return([]domain.Booking{
		{ID: 10, Status: domain.BookingStatusActive},
	}, nil)
	maintRepo.On("ListByTool", ctx, int32(1)).Return([]domain.Maintenance{}, nil)
	bookingRepo.On("ListByTool", ctx, int32(2)).Return([]domain.Booking{}, nil)
	maintRepo.On("ListByTool", ctx, int32(2)).Return([]domain.Maintenance{}, nil)

	views, count, err := svc.ListTools(ctx, 1, 20)
	assert.NoError(t, err)
	assert.Equal(t, int32(2), count)
	assert.Equal(t, domain.ToolStatusInUse, views[0].Status)
	assert.Equal(t, domain.ToolStatusAvailable, views[1].Status)
}

func int32Ptr(v int32) *int32 { return &v }
