package booking

import (
	"context"
	"testing"
	"time"

	"travelbook/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *mockBookingRepo) CreateWithPackage(ctx context.Context, p *domain.TravelPackage, b *domain.Booking) error {
	args := m.Called(ctx, p, b)
	return args.Error(0)
}

func (m *mockBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *mockBookingRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockBookingRepo) ListByUserID(ctx context.Context, userID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
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

type mockPackageRepo struct {
	mock.Mock
}

func (m *mockPackageRepo) GetByID(ctx context.Context, id int64) (*domain.TravelPackage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TravelPackage), args.Error(1)
}

func (m *mockPackageRepo) ListPublic(ctx context.Context) ([]domain.TravelPackage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TravelPackage), args.Error(1)
}

type mockDestinationRepo struct {
	mock.Mock
}

func (m *mockDestinationRepo) GetByID(ctx context.Context, id int64) (*domain.Destination, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Destination), args.Error(1)
}

type mockHotelRepo struct {
	mock.Mock
}

func (m *mockHotelRepo) GetByID(ctx context.Context, id int64) (*domain.Hotel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Hotel), args.Error(1)
}

type serviceMocks struct {
	bookings     *mockBookingRepo
	users        *mockUserRepo
	packages     *mockPackageRepo
	destinations *mockDestinationRepo
	hotels       *mockHotelRepo
}

func newService() (*Service, serviceMocks) {
	m := serviceMocks{
		bookings:     new(mockBookingRepo),
		users:        new(mockUserRepo),
		packages:     new(mockPackageRepo),
		destinations: new(mockDestinationRepo),
		hotels:       new(mockHotelRepo),
	}
	return NewService(m.bookings, m.users, m.packages, m.destinations, m.hotels), m
}

func traveller() *domain.User {
	return &domain.User{ID: 2, Username: "traveller", Role: domain.RoleTraveller}
}

func TestCreate_CopiesPackagePrice(t *testing.T) {
	svc, m := newService()

	m.users.On("GetByID", mock.Anything, int64(2)).Return(traveller(), nil)
	m.packages.On("GetByID", mock.Anything, int64(10)).
		Return(&domain.TravelPackage{ID: 10, Name: "Default Package", Price: 1000.0}, nil)
	m.bookings.On("Create", mock.Anything, mock.AnythingOfType("*domain.Booking")).Return(nil)

	b, err := svc.Create(context.Background(), CreateBookingRequest{
		UserID:          2,
		TravelPackageID: 10,
		TravelDate:      "2026-09-15",
	})

	assert.NoError(t, err)
	assert.Equal(t, 1000.0, b.TotalPrice)
	assert.Equal(t, int64(2), b.UserID)
	assert.Equal(t, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), b.TravelDate)
	assert.False(t, b.BookingDate.IsZero())
}

func TestCreate_FallsBackToUsername(t *testing.T) {
	svc, m := newService()

	m.users.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)
	m.users.On("GetByUsername", mock.Anything, "traveller").Return(traveller(), nil)
	m.packages.On("GetByID", mock.Anything, int64(10)).
		Return(&domain.TravelPackage{ID: 10, Price: 500}, nil)
	m.bookings.On("Create", mock.Anything, mock.AnythingOfType("*domain.Booking")).Return(nil)

	b, err := svc.Create(context.Background(), CreateBookingRequest{
		UserID:          99,
		Username:        "traveller",
		TravelPackageID: 10,
		TravelDate:      "2026-09-15",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(2), b.UserID)
}

func TestCreate_RejectsNonTraveller(t *testing.T) {
	svc, m := newService()

	m.users.On("GetByID", mock.Anything, int64(3)).
		Return(&domain.User{ID: 3, Username: "agency", Role: domain.RoleTravelAgency}, nil)

	_, err := svc.Create(context.Background(), CreateBookingRequest{
		UserID:          3,
		TravelPackageID: 10,
		TravelDate:      "2026-09-15",
	})

	assert.ErrorIs(t, err, ErrOnlyTravellers)
	m.bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_AcceptsLegacyTravellerRole(t *testing.T) {
	svc, m := newService()

	m.users.On("GetByID", mock.Anything, int64(2)).
		Return(&domain.User{ID: 2, Username: "old", Role: "ROLE_TRAVELLER"}, nil)
	m.packages.On("GetByID", mock.Anything, int64(10)).
		Return(&domain.TravelPackage{ID: 10, Price: 100}, nil)
	m.bookings.On("Create", mock.Anything, mock.AnythingOfType("*domain.Booking")).Return(nil)

	_, err := svc.Create(context.Background(), CreateBookingRequest{
		UserID:          2,
		TravelPackageID: 10,
		TravelDate:      "2026-09-15",
	})

	assert.NoError(t, err)
}

func TestCreate_RejectsBadDateBeforePersisting(t *testing.T) {
	svc, m := newService()

	m.users.On("GetByID", mock.Anything, int64(2)).Return(traveller(), nil)

	_, err := svc.Create(context.Background(), CreateBookingRequest{
		UserID:          2,
		TravelPackageID: 10,
		TravelDate:      "15/09/2026",
	})

	assert.ErrorIs(t, err, ErrInvalidTravelDate)
	m.bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_PackageMissing(t *testing.T) {
	svc, m := newService()

	m.users.On("GetByID", mock.Anything, int64(2)).Return(traveller(), nil)
	m.packages.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Create(context.Background(), CreateBookingRequest{
		UserID:          2,
		TravelPackageID: 404,
		TravelDate:      "2026-09-15",
	})

	assert.ErrorIs(t, err, ErrPackageNotFound)
}

func TestBookDestination_SynthesizesPersonalPackage(t *testing.T) {
	svc, m := newService()

	destID := int64(5)
	m.users.On("GetByID", mock.Anything, int64(2)).Return(traveller(), nil)
	m.destinations.On("GetByID", mock.Anything, destID).
		Return(&domain.Destination{ID: destID, Name: "Paris"}, nil)
	m.hotels.On("GetByID", mock.Anything, int64(7)).
		Return(&domain.Hotel{ID: 7, Name: "Grand Hotel", DestinationID: &destID}, nil)

	var pkg *domain.TravelPackage
	m.bookings.On("CreateWithPackage", mock.Anything,
		mock.AnythingOfType("*domain.TravelPackage"),
		mock.AnythingOfType("*domain.Booking")).
		Run(func(args mock.Arguments) { pkg = args.Get(1).(*domain.TravelPackage) }).
		Return(nil)

	b, err := svc.BookDestination(context.Background(), DestinationBookingRequest{
		UserID:        2,
		DestinationID: destID,
		HotelID:       7,
		TravelDate:    "2026-10-01",
		TotalPrice:    750,
	})

	assert.NoError(t, err)
	assert.Equal(t, "My Trip to Paris", pkg.Name)
	assert.Equal(t, "Hotel: Grand Hotel", pkg.Description)
	assert.Equal(t, "Destination Direct Booking", pkg.TravelAgencyName)
	assert.True(t, pkg.IsPersonalBooking)
	assert.Equal(t, 750.0, pkg.Price)
	assert.Equal(t, 750.0, b.TotalPrice)
}

func TestBookDestination_HotelListedElsewhere(t *testing.T) {
	svc, m := newService()

	destID := int64(5)
	otherDest := int64(6)
	m.users.On("GetByID", mock.Anything, int64(2)).Return(traveller(), nil)
	m.destinations.On("GetByID", mock.Anything, destID).
		Return(&domain.Destination{ID: destID, Name: "Paris"}, nil)
	m.hotels.On("GetByID", mock.Anything, int64(7)).
		Return(&domain.Hotel{ID: 7, Name: "Elsewhere", DestinationID: &otherDest}, nil)
	m.bookings.On("CreateWithPackage", mock.Anything,
		mock.AnythingOfType("*domain.TravelPackage"),
		mock.AnythingOfType("*domain.Booking")).Return(nil)

	b, err := svc.BookDestination(context.Background(), DestinationBookingRequest{
		UserID:        2,
		DestinationID: destID,
		HotelID:       7,
		TravelDate:    "2026-10-01",
		TotalPrice:    750,
	})

	assert.NoError(t, err)
	assert.Equal(t, "My Trip to Paris", b.TravelPackage.Name)
	assert.Equal(t, "Hotel: Elsewhere", b.TravelPackage.Description)
}

func TestCancel_MissingBookingIsNoOp(t *testing.T) {
	svc, m := newService()

	m.bookings.On("Delete", mock.Anything, int64(404)).Return(nil)

	assert.NoError(t, svc.Cancel(context.Background(), 404))
	m.bookings.AssertCalled(t, "Delete", mock.Anything, int64(404))
	m.bookings.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestCancel_Success(t *testing.T) {
	svc, m := newService()

	m.bookings.On("Delete", mock.Anything, int64(1)).Return(nil)

	assert.NoError(t, svc.Cancel(context.Background(), 1))
	m.bookings.AssertExpectations(t)
}

func TestValidateRole(t *testing.T) {
	svc, m := newService()

	m.users.On("GetByID", mock.Anything, int64(2)).Return(traveller(), nil)
	m.users.On("GetByID", mock.Anything, int64(3)).
		Return(&domain.User{ID: 3, Role: domain.RoleTravelAgency}, nil)

	ok, err := svc.ValidateRole(context.Background(), 2)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.ValidateRole(context.Background(), 3)
	assert.NoError(t, err)
	assert.False(t, ok)
}
