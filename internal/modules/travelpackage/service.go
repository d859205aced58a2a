package travelpackage

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"travelbook/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	packages PackageRepository
	users    UserRepository
	images   ImageStore
}

func NewService(packages PackageRepository, users UserRepository, images ImageStore) *Service {
	return &Service{packages: packages, users: users, images: images}
}

func (s *Service) loadOwner(ctx context.Context, username string) (*domain.User, error) {
	owner, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOwnerNotFound
		}
		return nil, err
	}
	return owner, nil
}

func hotelsFromInput(in []HotelInput) []domain.Hotel {
	out := make([]domain.Hotel, 0, len(in))
	for _, h := range in {
		out = append(out, domain.Hotel{
			Name:          h.Name,
			Location:      h.Location,
			Address:       h.Address,
			PricePerNight: h.PricePerNight,
			DestinationID: h.DestinationID,
		})
	}
	return out
}

func restaurantsFromInput(in []RestaurantInput) []domain.Restaurant {
	out := make([]domain.Restaurant, 0, len(in))
	for _, r := range in {
		out = append(out, domain.Restaurant{
			Name:          r.Name,
			Location:      r.Location,
			Address:       r.Address,
			Cuisine:       r.Cuisine,
			CuisineType:   r.Cuisine,
			DestinationID: r.DestinationID,
		})
	}
	return out
}

// CreateWithDetails publishes a package with its hotels, restaurants and
// per-child image files in one call. Only travel agency accounts with an
// agency name may publish. Image files map positionally onto the child lists;
// extras are ignored, and an image save failure does not undo the package.
func (s *Service) CreateWithDetails(ctx context.Context, ownerUsername string, req CreatePackageRequest, hotelImages, restaurantImages []*multipart.FileHeader) (*domain.TravelPackage, error) {
	owner, err := s.loadOwner(ctx, ownerUsername)
	if err != nil {
		return nil, err
	}
	if domain.NormalizeRole(string(owner.Role)) != domain.RoleTravelAgency {
		return nil, ErrNotAgency
	}
	if strings.TrimSpace(owner.TravelAgencyName) == "" {
		return nil, ErrAgencyNameMissing
	}

	pkg := &domain.TravelPackage{
		Name:             req.Name,
		Description:      "Package to " + req.Destination,
		Price:            req.Price,
		UserID:           owner.ID,
		TravelAgencyName: owner.TravelAgencyName,
	}

	hotels := hotelsFromInput(req.Hotels)
	restaurants := restaurantsFromInput(req.Restaurants)

	if err := s.packages.CreateWithChildren(ctx, pkg, hotels, restaurants); err != nil {
		return nil, fmt.Errorf("failed to create package: %w", err)
	}

	for i, fh := range hotelImages {
		if i >= len(pkg.Hotels) {
			break
		}
		if _, err := s.images.SavePackageImage(ctx, fh, owner, "hotel", pkg.ID); err != nil {
			return pkg, fmt.Errorf("package created but hotel image %d failed: %w", i, err)
		}
	}
	for i, fh := range restaurantImages {
		if i >= len(pkg.Restaurants) {
			break
		}
		if _, err := s.images.SavePackageImage(ctx, fh, owner, "restaurant", pkg.ID); err != nil {
			return pkg, fmt.Errorf("package created but restaurant image %d failed: %w", i, err)
		}
	}

	return pkg, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.TravelPackage, error) {
	pkg, err := s.packages.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPackageNotFound
		}
		return nil, err
	}
	return pkg, nil
}

// Update overwrites the package's scalar fields and, when child lists are
// present, replaces all existing children with the given ones.
func (s *Service) Update(ctx context.Context, username string, id int64, req UpdatePackageRequest) (*domain.TravelPackage, error) {
	owner, err := s.loadOwner(ctx, username)
	if err != nil {
		return nil, err
	}

	pkg, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if pkg.UserID != owner.ID {
		return nil, ErrNotOwner
	}

	pkg.Name = req.Name
	pkg.Description = req.Description
	pkg.Price = req.Price
	if err := s.packages.Update(ctx, pkg); err != nil {
		return nil, fmt.Errorf("failed to update package: %w", err)
	}

	if req.Hotels != nil {
		if err := s.packages.ReplaceHotels(ctx, id, hotelsFromInput(*req.Hotels)); err != nil {
			return nil, fmt.Errorf("failed to replace hotels: %w", err)
		}
	}
	if req.Restaurants != nil {
		if err := s.packages.ReplaceRestaurants(ctx, id, restaurantsFromInput(*req.Restaurants)); err != nil {
			return nil, fmt.Errorf("failed to replace restaurants: %w", err)
		}
	}

	return s.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, username string, id int64) error {
	owner, err := s.loadOwner(ctx, username)
	if err != nil {
		return err
	}

	pkg, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if pkg.UserID != owner.ID {
		return ErrNotOwner
	}

	return s.packages.Delete(ctx, id)
}

// ListPublic returns published packages; personal one-off packages created by
// destination bookings are excluded.
func (s *Service) ListPublic(ctx context.Context) ([]domain.TravelPackage, error) {
	return s.packages.ListPublic(ctx)
}

func (s *Service) ListByOwner(ctx context.Context, username string) ([]domain.TravelPackage, error) {
	if _, err := s.loadOwner(ctx, username); err != nil {
		return nil, err
	}
	return s.packages.ListByOwnerUsername(ctx, username)
}

// Search matches package names case-insensitively by substring.
func (s *Service) Search(ctx context.Context, q string) ([]domain.TravelPackage, error) {
	return s.packages.SearchByName(ctx, strings.ToLower(strings.TrimSpace(q)))
}
