package auth

import (
	"context"
	"testing"

	"travelbook/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) ListByRole(ctx context.Context, role domain.UserRole) ([]domain.User, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

type mockTokenIssuer struct {
	mock.Mock
}

func (m *mockTokenIssuer) GenerateToken(userID int64, username, role string) (string, error) {
	args := m.Called(userID, username, role)
	return args.String(0), args.Error(1)
}

func TestRegister_Success(t *testing.T) {
	users := new(mockUserRepo)
	svc := NewService(users, new(mockTokenIssuer))

	users.On("ExistsByUsername", mock.Anything, "alice").Return(false, nil)
	users.On("ExistsByEmail", mock.Anything, "alice@example.com").Return(false, nil)
	users.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

	user, err := svc.Register(context.Background(), RegisterRequest{
		Username: "alice",
		Password: "secret123",
		Email:    "alice@example.com",
		Role:     "TRAVELLER",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.RoleTraveller, user.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret123")))
	users.AssertExpectations(t)
}

func TestRegister_NormalizesLegacyRolePrefix(t *testing.T) {
	users := new(mockUserRepo)
	svc := NewService(users, new(mockTokenIssuer))

	users.On("ExistsByUsername", mock.Anything, "bob").Return(false, nil)
	users.On("ExistsByEmail", mock.Anything, "bob@example.com").Return(false, nil)
	users.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

	user, err := svc.Register(context.Background(), RegisterRequest{
		Username: "bob",
		Password: "secret123",
		Email:    "bob@example.com",
		Role:     "ROLE_TRAVELLER",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.RoleTraveller, user.Role)
}

func TestRegister_RejectsUnknownRole(t *testing.T) {
	svc := NewService(new(mockUserRepo), new(mockTokenIssuer))

	_, err := svc.Register(context.Background(), RegisterRequest{
		Username: "eve",
		Password: "secret123",
		Email:    "eve@example.com",
		Role:     "SUPERUSER",
	})

	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestRegister_AgencyRequiresName(t *testing.T) {
	svc := NewService(new(mockUserRepo), new(mockTokenIssuer))

	_, err := svc.Register(context.Background(), RegisterRequest{
		Username: "agency1",
		Password: "secret123",
		Email:    "agency@example.com",
		Role:     "TRAVEL_AGENCY",
	})

	assert.ErrorIs(t, err, ErrAgencyNameRequired)
}

func TestRegister_UsernameTaken(t *testing.T) {
	users := new(mockUserRepo)
	svc := NewService(users, new(mockTokenIssuer))

	users.On("ExistsByUsername", mock.Anything, "alice").Return(true, nil)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Username: "alice",
		Password: "secret123",
		Email:    "alice@example.com",
		Role:     "TRAVELLER",
	})

	assert.ErrorIs(t, err, ErrUsernameTaken)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLogin_Success(t *testing.T) {
	users := new(mockUserRepo)
	tokens := new(mockTokenIssuer)
	svc := NewService(users, tokens)

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	users.On("GetByUsername", mock.Anything, "alice").Return(&domain.User{
		ID:           1,
		Username:     "alice",
		PasswordHash: string(hash),
		Role:         domain.RoleTraveller,
	}, nil)
	tokens.On("GenerateToken", int64(1), "alice", "TRAVELLER").Return("tok", nil)

	res, err := svc.Login(context.Background(), LoginRequest{Username: "alice", Password: "secret123"})

	assert.NoError(t, err)
	assert.Equal(t, "tok", res.Token)
	assert.Equal(t, int64(1), res.User.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	users := new(mockUserRepo)
	svc := NewService(users, new(mockTokenIssuer))

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	users.On("GetByUsername", mock.Anything, "alice").Return(&domain.User{
		ID:           1,
		Username:     "alice",
		PasswordHash: string(hash),
	}, nil)

	_, err := svc.Login(context.Background(), LoginRequest{Username: "alice", Password: "nope"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownUser(t *testing.T) {
	users := new(mockUserRepo)
	svc := NewService(users, new(mockTokenIssuer))

	users.On("GetByUsername", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Login(context.Background(), LoginRequest{Username: "ghost", Password: "x"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestListAgencies(t *testing.T) {
	users := new(mockUserRepo)
	svc := NewService(users, new(mockTokenIssuer))

	users.On("ListByRole", mock.Anything, domain.RoleTravelAgency).Return([]domain.User{
		{ID: 3, Username: "agencyuser", Role: domain.RoleTravelAgency, TravelAgencyName: "Default Agency"},
	}, nil)

	agencies, err := svc.ListAgencies(context.Background())

	assert.NoError(t, err)
	assert.Len(t, agencies, 1)
	assert.Equal(t, "Default Agency", agencies[0].TravelAgencyName)
}
