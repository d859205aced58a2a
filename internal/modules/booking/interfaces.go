package booking

import (
	"context"

	"travelbook/internal/domain"
)

type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	CreateWithPackage(ctx context.Context, p *domain.TravelPackage, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	Delete(ctx context.Context, id int64) error
	ListByUserID(ctx context.Context, userID int64) ([]domain.Booking, error)
}

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

type PackageRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.TravelPackage, error)
	ListPublic(ctx context.Context) ([]domain.TravelPackage, error)
}

type DestinationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Destination, error)
}

type HotelRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Hotel, error)
}
