package admin

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"travelbook/internal/domain"

	"gorm.io/gorm"
)

// Service holds the catalog management operations: destinations and the
// standalone hotel/restaurant records admins maintain outside package
// publishing.
type Service struct {
	destinations DestinationRepository
	hotels       HotelRepository
	restaurants  RestaurantRepository
	users        UserRepository
	packages     PackageRepository
	images       ImageStore

	// defaultPackageID anchors hotels/restaurants created without an explicit
	// package. The schema requires a package on every hotel and restaurant row.
	defaultPackageID int64
}

func NewService(destinations DestinationRepository, hotels HotelRepository, restaurants RestaurantRepository, users UserRepository, packages PackageRepository, images ImageStore, defaultPackageID int64) *Service {
	return &Service{
		destinations:     destinations,
		hotels:           hotels,
		restaurants:      restaurants,
		users:            users,
		packages:         packages,
		images:           images,
		defaultPackageID: defaultPackageID,
	}
}

func (s *Service) requireAdmin(ctx context.Context, username string) error {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if domain.NormalizeRole(string(user.Role)) != domain.RoleAdmin {
		return ErrAdminOnly
	}
	return nil
}

// resolvePackageID picks the request's package or falls back to the
// configured default.
func (s *Service) resolvePackageID(ctx context.Context, requested int64) (int64, error) {
	id := requested
	if id == 0 {
		id = s.defaultPackageID
	}
	if id == 0 {
		return 0, ErrNoDefaultPackage
	}
	if _, err := s.packages.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrPackageNotFound
		}
		return 0, err
	}
	return id, nil
}

// CreateDestination stores a destination, optionally with a cover image. The
// image file is saved after the row exists so the association has an id.
func (s *Service) CreateDestination(ctx context.Context, adminUsername string, req DestinationRequest, image *multipart.FileHeader) (*domain.Destination, error) {
	if err := s.requireAdmin(ctx, adminUsername); err != nil {
		return nil, err
	}

	d := &domain.Destination{
		Name:        req.Name,
		Country:     req.Country,
		Description: req.Description,
	}
	if err := s.destinations.Create(ctx, d); err != nil {
		return nil, fmt.Errorf("failed to create destination: %w", err)
	}

	if image != nil {
		img, err := s.images.SaveForEntity(ctx, image, domain.ImageEntityDestination, d.ID, adminUsername)
		if err != nil {
			return d, fmt.Errorf("destination created but image failed: %w", err)
		}
		d.ImagePath = img.FilePath
		if err := s.destinations.Update(ctx, d); err != nil {
			return d, fmt.Errorf("destination created but image path not saved: %w", err)
		}
	}

	return d, nil
}

func (s *Service) UpdateDestination(ctx context.Context, adminUsername string, id int64, req UpdateDestinationRequest, image *multipart.FileHeader) (*domain.Destination, error) {
	if err := s.requireAdmin(ctx, adminUsername); err != nil {
		return nil, err
	}

	d, err := s.GetDestination(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		d.Name = req.Name
	}
	if req.Country != "" {
		d.Country = req.Country
	}
	if req.Description != "" {
		d.Description = req.Description
	}
	if image != nil {
		img, err := s.images.SaveForEntity(ctx, image, domain.ImageEntityDestination, d.ID, adminUsername)
		if err != nil {
			return nil, fmt.Errorf("failed to save destination image: %w", err)
		}
		d.ImagePath = img.FilePath
	}

	if err := s.destinations.Update(ctx, d); err != nil {
		return nil, fmt.Errorf("failed to update destination: %w", err)
	}
	return d, nil
}

func (s *Service) DeleteDestination(ctx context.Context, adminUsername string, id int64) error {
	if err := s.requireAdmin(ctx, adminUsername); err != nil {
		return err
	}
	if _, err := s.GetDestination(ctx, id); err != nil {
		return err
	}
	return s.destinations.DeleteWithChildren(ctx, id)
}

func (s *Service) GetDestination(ctx context.Context, id int64) (*domain.Destination, error) {
	d, err := s.destinations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDestinationNotFound
		}
		return nil, err
	}
	return d, nil
}

func (s *Service) ListDestinations(ctx context.Context) ([]domain.Destination, error) {
	return s.destinations.ListAll(ctx)
}

func (s *Service) ListHotelsByDestination(ctx context.Context, destinationID int64) ([]domain.Hotel, error) {
	if _, err := s.GetDestination(ctx, destinationID); err != nil {
		return nil, err
	}
	return s.hotels.ListByDestination(ctx, destinationID)
}

func (s *Service) ListRestaurantsByDestination(ctx context.Context, destinationID int64) ([]domain.Restaurant, error) {
	if _, err := s.GetDestination(ctx, destinationID); err != nil {
		return nil, err
	}
	return s.restaurants.ListByDestination(ctx, destinationID)
}

func (s *Service) CreateHotel(ctx context.Context, adminUsername string, req HotelRequest) (*domain.Hotel, error) {
	if err := s.requireAdmin(ctx, adminUsername); err != nil {
		return nil, err
	}

	packageID, err := s.resolvePackageID(ctx, req.TravelPackageID)
	if err != nil {
		return nil, err
	}
	if req.DestinationID != nil {
		if _, err := s.GetDestination(ctx, *req.DestinationID); err != nil {
			return nil, err
		}
	}

	h := &domain.Hotel{
		Name:            req.Name,
		Location:        req.Location,
		Address:         req.Address,
		PricePerNight:   req.PricePerNight,
		TravelPackageID: packageID,
		DestinationID:   req.DestinationID,
	}
	if err := s.hotels.Create(ctx, h); err != nil {
		return nil, fmt.Errorf("failed to create hotel: %w", err)
	}
	return h, nil
}

func (s *Service) UpdateHotel(ctx context.Context, adminUsername string, id int64, req UpdateHotelRequest) (*domain.Hotel, error) {
	if err := s.requireAdmin(ctx, adminUsername); err != nil {
		return nil, err
	}

	h, err := s.GetHotel(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		h.Name = req.Name
	}
	if req.Location != "" {
		h.Location = req.Location
	}
	if req.Address != "" {
		h.Address = req.Address
	}
	if req.PricePerNight != nil {
		h.PricePerNight = *req.PricePerNight
	}
	if req.DestinationID != nil {
		if _, err := s.GetDestination(ctx, *req.DestinationID); err != nil {
			return nil, err
		}
		h.DestinationID = req.DestinationID
	}

	if err := s.hotels.Update(ctx, h); err != nil {
		return nil, fmt.Errorf("failed to update hotel: %w", err)
	}
	return h, nil
}

func (s *Service) DeleteHotel(ctx context.Context, adminUsername string, id int64) error {
	if err := s.requireAdmin(ctx, adminUsername); err != nil {
		return err
	}
	if _, err := s.GetHotel(ctx, id); err != nil {
		return err
	}
	return s.hotels.Delete(ctx, id)
}

func (s *Service) GetHotel(ctx context.Context, id int64) (*domain.Hotel, error) {
	h, err := s.hotels.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}
	return h, nil
}

func (s *Service) ListHotels(ctx context.Context) ([]domain.Hotel, error) {
	return s.hotels.ListAll(ctx)
}

func (s *Service) CreateRestaurant(ctx context.Context, adminUsername string, req RestaurantRequest) (*domain.Restaurant, error) {
	if err := s.requireAdmin(ctx, adminUsername); err != nil {
		return nil, err
	}

	packageID, err := s.resolvePackageID(ctx, req.TravelPackageID)
	if err != nil {
		return nil, err
	}
	if req.DestinationID != nil {
		if _, err := s.GetDestination(ctx, *req.DestinationID); err != nil {
			return nil, err
		}
	}

	e := &domain.Restaurant{
		Name:            req.Name,
		Location:        req.Location,
		Address:         req.Address,
		Cuisine:         req.Cuisine,
		CuisineType:     req.Cuisine,
		TravelPackageID: packageID,
		DestinationID:   req.DestinationID,
	}
	if err := s.restaurants.Create(ctx, e); err != nil {
		return nil, fmt.Errorf("failed to create restaurant: %w", err)
	}
	return e, nil
}

func (s *Service) UpdateRestaurant(ctx context.Context, adminUsername string, id int64, req UpdateRestaurantRequest) (*domain.Restaurant, error) {
	if err := s.requireAdmin(ctx, adminUsername); err != nil {
		return nil, err
	}

	e, err := s.GetRestaurant(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		e.Name = req.Name
	}
	if req.Location != "" {
		e.Location = req.Location
	}
	if req.Address != "" {
		e.Address = req.Address
	}
	if req.Cuisine != "" {
		e.Cuisine = req.Cuisine
		e.CuisineType = req.Cuisine
	}
	if req.DestinationID != nil {
		if _, err := s.GetDestination(ctx, *req.DestinationID); err != nil {
			return nil, err
		}
		e.DestinationID = req.DestinationID
	}

	if err := s.restaurants.Update(ctx, e); err != nil {
		return nil, fmt.Errorf("failed to update restaurant: %w", err)
	}
	return e, nil
}

func (s *Service) DeleteRestaurant(ctx context.Context, adminUsername string, id int64) error {
	if err := s.requireAdmin(ctx, adminUsername); err != nil {
		return err
	}
	if _, err := s.GetRestaurant(ctx, id); err != nil {
		return err
	}
	return s.restaurants.Delete(ctx, id)
}

func (s *Service) GetRestaurant(ctx context.Context, id int64) (*domain.Restaurant, error) {
	e, err := s.restaurants.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}
	return e, nil
}

func (s *Service) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	return s.restaurants.ListAll(ctx)
}
