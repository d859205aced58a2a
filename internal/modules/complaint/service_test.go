package complaint

import (
	"context"
	"testing"
	"time"

	"travelbook/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type mockComplaintRepo struct {
	mock.Mock
}

func (m *mockComplaintRepo) Create(ctx context.Context, c *domain.Complaint) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *mockComplaintRepo) GetByID(ctx context.Context, id int64) (*domain.Complaint, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Complaint), args.Error(1)
}

func (m *mockComplaintRepo) Update(ctx context.Context, c *domain.Complaint) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *mockComplaintRepo) ListAll(ctx context.Context) ([]domain.Complaint, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Complaint), args.Error(1)
}

func (m *mockComplaintRepo) ListByUserID(ctx context.Context, userID int64) ([]domain.Complaint, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Complaint), args.Error(1)
}

func (m *mockComplaintRepo) ListByStatus(ctx context.Context, status domain.ComplaintStatus) ([]domain.Complaint, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Complaint), args.Error(1)
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func newService() (*Service, *mockComplaintRepo, *mockUserRepo) {
	complaints := new(mockComplaintRepo)
	users := new(mockUserRepo)
	return NewService(complaints, users), complaints, users
}

func adminUser() *domain.User {
	return &domain.User{ID: 1, Username: "admin", Role: domain.RoleAdmin}
}

func TestSubmit_DefaultsToPending(t *testing.T) {
	svc, complaints, users := newService()

	users.On("GetByID", mock.Anything, int64(2)).
		Return(&domain.User{ID: 2, Username: "traveller", Role: domain.RoleTraveller}, nil)
	complaints.On("Create", mock.Anything, mock.AnythingOfType("*domain.Complaint")).Return(nil)

	c, err := svc.Submit(context.Background(), SubmitComplaintRequest{
		UserID:      2,
		Subject:     "Dirty room",
		Description: "The room was not cleaned",
		Type:        "TRAVEL_PACKAGE",
		EntityName:  "Default Package",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.ComplaintPending, c.Status)
	assert.Equal(t, "traveller", c.Username)
	assert.Nil(t, c.ResolvedAt)
	assert.False(t, c.SubmissionDate.IsZero())
}

func TestSubmit_FallsBackToUsername(t *testing.T) {
	svc, complaints, users := newService()

	users.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)
	users.On("GetByUsername", mock.Anything, "traveller").
		Return(&domain.User{ID: 2, Username: "traveller"}, nil)
	complaints.On("Create", mock.Anything, mock.AnythingOfType("*domain.Complaint")).Return(nil)

	c, err := svc.Submit(context.Background(), SubmitComplaintRequest{
		UserID:      99,
		Username:    "traveller",
		Subject:     "Noise",
		Description: "Loud construction next door",
		Type:        "RESTAURANT",
		EntityName:  "Trattoria",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(2), c.UserID)
}

func TestSubmit_RejectsUnknownType(t *testing.T) {
	svc, complaints, users := newService()

	users.On("GetByID", mock.Anything, int64(2)).
		Return(&domain.User{ID: 2, Username: "traveller"}, nil)

	_, err := svc.Submit(context.Background(), SubmitComplaintRequest{
		UserID:      2,
		Subject:     "x",
		Description: "y",
		Type:        "HOTEL",
		EntityName:  "z",
	})

	assert.ErrorIs(t, err, ErrInvalidType)
	complaints.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubmit_RejectsBlankEntityName(t *testing.T) {
	svc, complaints, _ := newService()

	_, err := svc.Submit(context.Background(), SubmitComplaintRequest{
		UserID:      2,
		Subject:     "Dirty room",
		Description: "The room was not cleaned",
		Type:        "TRAVEL_PACKAGE",
		EntityName:  "   ",
	})

	assert.ErrorIs(t, err, ErrBlankFields)
	complaints.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdateStatus_StampsResolvedAtOnce(t *testing.T) {
	svc, complaints, users := newService()

	users.On("GetByUsername", mock.Anything, "admin").Return(adminUser(), nil)
	complaints.On("GetByID", mock.Anything, int64(5)).
		Return(&domain.Complaint{ID: 5, Status: domain.ComplaintPending}, nil)
	complaints.On("Update", mock.Anything, mock.AnythingOfType("*domain.Complaint")).Return(nil)

	c, err := svc.UpdateStatus(context.Background(), "admin", 5, UpdateStatusRequest{
		Status:   "RESOLVED",
		Response: "Refund issued",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.ComplaintResolved, c.Status)
	assert.NotNil(t, c.ResolvedAt)
	assert.Equal(t, "Refund issued", c.Response)
}

func TestUpdateStatus_KeepsResolvedAtOnReopen(t *testing.T) {
	svc, complaints, users := newService()

	resolved := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	users.On("GetByUsername", mock.Anything, "admin").Return(adminUser(), nil)
	complaints.On("GetByID", mock.Anything, int64(5)).
		Return(&domain.Complaint{ID: 5, Status: domain.ComplaintResolved, ResolvedAt: &resolved}, nil)
	complaints.On("Update", mock.Anything, mock.AnythingOfType("*domain.Complaint")).Return(nil)

	c, err := svc.UpdateStatus(context.Background(), "admin", 5, UpdateStatusRequest{Status: "IN_PROGRESS"})

	assert.NoError(t, err)
	assert.Equal(t, domain.ComplaintInProgress, c.Status)
	assert.Equal(t, &resolved, c.ResolvedAt)
}

func TestUpdateStatus_RequiresAdmin(t *testing.T) {
	svc, complaints, users := newService()

	users.On("GetByUsername", mock.Anything, "bob").
		Return(&domain.User{ID: 2, Username: "bob", Role: domain.RoleTraveller}, nil)

	_, err := svc.UpdateStatus(context.Background(), "bob", 5, UpdateStatusRequest{Status: "RESOLVED"})

	assert.ErrorIs(t, err, ErrAdminOnly)
	complaints.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	svc, _, users := newService()

	users.On("GetByUsername", mock.Anything, "admin").Return(adminUser(), nil)

	_, err := svc.UpdateStatus(context.Background(), "admin", 5, UpdateStatusRequest{Status: "ARCHIVED"})

	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestListByStatus_ValidatesStatus(t *testing.T) {
	svc, complaints, _ := newService()

	_, err := svc.ListByStatus(context.Background(), "bogus")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	complaints.On("ListByStatus", mock.Anything, domain.ComplaintPending).
		Return([]domain.Complaint{{ID: 1}}, nil)

	out, err := svc.ListByStatus(context.Background(), "pending")
	assert.NoError(t, err)
	assert.Len(t, out, 1)
}
