package admin

import (
	"context"
	"mime/multipart"

	"travelbook/internal/domain"
)

type DestinationRepository interface {
	Create(ctx context.Context, d *domain.Destination) error
	GetByID(ctx context.Context, id int64) (*domain.Destination, error)
	Update(ctx context.Context, d *domain.Destination) error
	DeleteWithChildren(ctx context.Context, id int64) error
	ListAll(ctx context.Context) ([]domain.Destination, error)
}

type HotelRepository interface {
	Create(ctx context.Context, h *domain.Hotel) error
	GetByID(ctx context.Context, id int64) (*domain.Hotel, error)
	Update(ctx context.Context, h *domain.Hotel) error
	Delete(ctx context.Context, id int64) error
	ListAll(ctx context.Context) ([]domain.Hotel, error)
	ListByDestination(ctx context.Context, destinationID int64) ([]domain.Hotel, error)
}

type RestaurantRepository interface {
	Create(ctx context.Context, e *domain.Restaurant) error
	GetByID(ctx context.Context, id int64) (*domain.Restaurant, error)
	Update(ctx context.Context, e *domain.Restaurant) error
	Delete(ctx context.Context, id int64) error
	ListAll(ctx context.Context) ([]domain.Restaurant, error)
	ListByDestination(ctx context.Context, destinationID int64) ([]domain.Restaurant, error)
}

type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

type PackageRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.TravelPackage, error)
}

type ImageStore interface {
	SaveForEntity(ctx context.Context, fh *multipart.FileHeader, entityType string, entityID int64, username string) (*domain.Image, error)
}
