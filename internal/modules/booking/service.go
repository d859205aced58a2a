package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"travelbook/internal/domain"

	"gorm.io/gorm"
)

// virtualPackageAgency labels packages synthesized by destination-direct
// bookings; no agency account owns them.
const virtualPackageAgency = "Destination Direct Booking"

type Service struct {
	bookings     BookingRepository
	users        UserRepository
	packages     PackageRepository
	destinations DestinationRepository
	hotels       HotelRepository
}

func NewService(bookings BookingRepository, users UserRepository, packages PackageRepository, destinations DestinationRepository, hotels HotelRepository) *Service {
	return &Service{
		bookings:     bookings,
		users:        users,
		packages:     packages,
		destinations: destinations,
		hotels:       hotels,
	}
}

// resolveUser looks the user up by id first, then falls back to username.
// Requests may carry either identifier.
func (s *Service) resolveUser(ctx context.Context, userID int64, username string) (*domain.User, error) {
	if userID > 0 {
		user, err := s.users.GetByID(ctx, userID)
		if err == nil {
			return user, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}
	if username != "" {
		user, err := s.users.GetByUsername(ctx, username)
		if err == nil {
			return user, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}
	return nil, ErrUserNotFound
}

func requireTraveller(user *domain.User) error {
	if domain.NormalizeRole(string(user.Role)) != domain.RoleTraveller {
		return ErrOnlyTravellers
	}
	return nil
}

func parseTravelDate(raw string) (time.Time, error) {
	d, err := time.Parse(domain.TravelDateLayout, raw)
	if err != nil {
		return time.Time{}, ErrInvalidTravelDate
	}
	return d, nil
}

// today returns the booking date stamp: the current day at midnight UTC.
func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// Create books an existing travel package for a traveller. The total price is
// copied from the package at booking time.
func (s *Service) Create(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	user, err := s.resolveUser(ctx, req.UserID, req.Username)
	if err != nil {
		return nil, err
	}
	if err := requireTraveller(user); err != nil {
		return nil, err
	}

	travelDate, err := parseTravelDate(req.TravelDate)
	if err != nil {
		return nil, err
	}

	pkg, err := s.packages.GetByID(ctx, req.TravelPackageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPackageNotFound
		}
		return nil, fmt.Errorf("failed to load package: %w", err)
	}

	b := &domain.Booking{
		BookingDate:     today(),
		TravelDate:      travelDate,
		TotalPrice:      pkg.Price,
		UserID:          user.ID,
		TravelPackageID: pkg.ID,
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	b.TravelPackage = pkg
	return b, nil
}

// BookDestination books a destination and hotel directly, without a published
// package. A personal one-off package is synthesized to carry the trip; it is
// excluded from public listings.
func (s *Service) BookDestination(ctx context.Context, req DestinationBookingRequest) (*domain.Booking, error) {
	user, err := s.resolveUser(ctx, req.UserID, req.Username)
	if err != nil {
		return nil, err
	}
	if err := requireTraveller(user); err != nil {
		return nil, err
	}

	travelDate, err := parseTravelDate(req.TravelDate)
	if err != nil {
		return nil, err
	}

	dest, err := s.destinations.GetByID(ctx, req.DestinationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDestinationNotFound
		}
		return nil, fmt.Errorf("failed to load destination: %w", err)
	}

	hotel, err := s.hotels.GetByID(ctx, req.HotelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, fmt.Errorf("failed to load hotel: %w", err)
	}

	pkg := &domain.TravelPackage{
		Name:              "My Trip to " + dest.Name,
		Description:       "Hotel: " + hotel.Name,
		Price:             req.TotalPrice,
		UserID:            user.ID,
		TravelAgencyName:  virtualPackageAgency,
		IsPersonalBooking: true,
	}
	b := &domain.Booking{
		BookingDate: today(),
		TravelDate:  travelDate,
		TotalPrice:  req.TotalPrice,
		UserID:      user.ID,
	}

	if err := s.bookings.CreateWithPackage(ctx, pkg, b); err != nil {
		return nil, fmt.Errorf("failed to create destination booking: %w", err)
	}
	b.TravelPackage = pkg
	return b, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}

// Cancel deletes a booking. Any authenticated caller who knows the id may
// cancel it; cancelling a missing id is a no-op, and the synthesized package
// of a destination booking is left in place.
func (s *Service) Cancel(ctx context.Context, id int64) error {
	return s.bookings.Delete(ctx, id)
}

func (s *Service) ListByUserID(ctx context.Context, userID int64) ([]domain.Booking, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return s.bookings.ListByUserID(ctx, userID)
}

func (s *Service) ListByUsername(ctx context.Context, username string) ([]domain.Booking, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return s.bookings.ListByUserID(ctx, user.ID)
}

// AvailablePackages lists what a traveller can book: public packages only.
func (s *Service) AvailablePackages(ctx context.Context) ([]domain.TravelPackage, error) {
	return s.packages.ListPublic(ctx)
}

// ValidateRole reports whether the user may create bookings. Legacy
// "ROLE_TRAVELLER" values count as travellers.
func (s *Service) ValidateRole(ctx context.Context, userID int64) (bool, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrUserNotFound
		}
		return false, err
	}
	return domain.NormalizeRole(string(user.Role)) == domain.RoleTraveller, nil
}
