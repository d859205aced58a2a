package complaint

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"travelbook/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	complaints ComplaintRepository
	users      UserRepository
}

func NewService(complaints ComplaintRepository, users UserRepository) *Service {
	return &Service{complaints: complaints, users: users}
}

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

// Submit files a complaint. New complaints always start PENDING with a
// server-assigned submission date; the submitter's username is denormalized
// onto the row.
func (s *Service) Submit(ctx context.Context, req SubmitComplaintRequest) (*domain.Complaint, error) {
	if strings.TrimSpace(req.Subject) == "" ||
		strings.TrimSpace(req.Description) == "" ||
		strings.TrimSpace(req.EntityName) == "" {
		return nil, ErrBlankFields
	}

	user, err := s.resolveUser(ctx, req.UserID, req.Username)
	if err != nil {
		return nil, err
	}

	ctype := domain.ComplaintType(strings.ToUpper(strings.TrimSpace(req.Type)))
	if !ctype.Valid() {
		return nil, ErrInvalidType
	}

	c := &domain.Complaint{
		Subject:        req.Subject,
		Description:    req.Description,
		Type:           ctype,
		UserID:         user.ID,
		Username:       user.Username,
		EntityName:     req.EntityName,
		EntityID:       req.EntityID,
		Status:         domain.ComplaintPending,
		SubmissionDate: time.Now().UTC(),
	}
	if err := s.complaints.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to create complaint: %w", err)
	}
	return c, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Complaint, error) {
	c, err := s.complaints.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrComplaintNotFound
		}
		return nil, err
	}
	return c, nil
}

// UpdateStatus moves a complaint to any status in the set. ResolvedAt is
// stamped the first time the complaint reaches RESOLVED and never cleared,
// even if the status later changes again.
func (s *Service) UpdateStatus(ctx context.Context, adminUsername string, id int64, req UpdateStatusRequest) (*domain.Complaint, error) {
	admin, err := s.users.GetByUsername(ctx, adminUsername)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if domain.NormalizeRole(string(admin.Role)) != domain.RoleAdmin {
		return nil, ErrAdminOnly
	}

	status := domain.ComplaintStatus(strings.ToUpper(strings.TrimSpace(req.Status)))
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	c.Status = status
	if req.Response != "" {
		c.Response = req.Response
	}
	if status == domain.ComplaintResolved && c.ResolvedAt == nil {
		now := time.Now().UTC()
		c.ResolvedAt = &now
	}

	if err := s.complaints.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to update complaint: %w", err)
	}
	return c, nil
}

func (s *Service) ListAll(ctx context.Context) ([]domain.Complaint, error) {
	return s.complaints.ListAll(ctx)
}

func (s *Service) ListByUsername(ctx context.Context, username string) ([]domain.Complaint, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return s.complaints.ListByUserID(ctx, user.ID)
}

func (s *Service) ListByStatus(ctx context.Context, raw string) ([]domain.Complaint, error) {
	status := domain.ComplaintStatus(strings.ToUpper(strings.TrimSpace(raw)))
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	return s.complaints.ListByStatus(ctx, status)
}
