package travelpackage

import (
	"context"
	"mime/multipart"

	"travelbook/internal/domain"
)

type PackageRepository interface {
	CreateWithChildren(ctx context.Context, p *domain.TravelPackage, hotels []domain.Hotel, restaurants []domain.Restaurant) error
	GetByID(ctx context.Context, id int64) (*domain.TravelPackage, error)
	Update(ctx context.Context, p *domain.TravelPackage) error
	Delete(ctx context.Context, id int64) error
	ReplaceHotels(ctx context.Context, packageID int64, hotels []domain.Hotel) error
	ReplaceRestaurants(ctx context.Context, packageID int64, restaurants []domain.Restaurant) error
	ListPublic(ctx context.Context) ([]domain.TravelPackage, error)
	ListByOwnerUsername(ctx context.Context, username string) ([]domain.TravelPackage, error)
	SearchByName(ctx context.Context, q string) ([]domain.TravelPackage, error)
}

type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// ImageStore persists uploaded files for package children.
type ImageStore interface {
	SavePackageImage(ctx context.Context, fh *multipart.FileHeader, uploader *domain.User, kind string, packageID int64) (*domain.Image, error)
}
