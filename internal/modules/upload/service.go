package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"travelbook/internal/domain"

	"gorm.io/gorm"
)

const (
	MaxFileSize    = 10 * 1024 * 1024 // 10 MB
	UploadsBaseDir = "uploads"
)

// AllowedMimeTypes defines which file types are accepted
var AllowedMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// Service stores uploaded files on local disk under
// <baseDir>/<entityType>/<unix-ms>_<name> and records the association pair
// (entityType, entityID) on the Image row. The legacy pair is written too so
// lookups against old rows keep working.
type Service struct {
	images  ImageRepository
	users   UserRepository
	baseDir string
}

func NewService(images ImageRepository, users UserRepository, baseDir string) *Service {
	if baseDir == "" {
		baseDir = UploadsBaseDir
	}
	return &Service{images: images, users: users, baseDir: baseDir}
}

// SaveForEntity stores a file and associates it with the given entity. The
// uploader is resolved by username.
func (s *Service) SaveForEntity(ctx context.Context, fh *multipart.FileHeader, entityType string, entityID int64, username string) (*domain.Image, error) {
	uploader, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUploaderNotFound
		}
		return nil, err
	}
	return s.save(ctx, fh, entityType, entityID, uploader.ID)
}

// SavePackageImage stores an image for a package child list ("hotel" or
// "restaurant") under the package_<kind> entity type, associated with the
// package id.
func (s *Service) SavePackageImage(ctx context.Context, fh *multipart.FileHeader, uploader *domain.User, kind string, packageID int64) (*domain.Image, error) {
	return s.save(ctx, fh, "package_"+kind, packageID, uploader.ID)
}

// UploadGeneral handles the generic upload endpoint. Only admins and travel
// agencies may use it; the record carries the "general" entity type.
func (s *Service) UploadGeneral(ctx context.Context, uploaderID int64, fh *multipart.FileHeader) (*domain.Image, error) {
	uploader, err := s.users.GetByID(ctx, uploaderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUploaderNotFound
		}
		return nil, err
	}

	role := domain.NormalizeRole(string(uploader.Role))
	if role != domain.RoleAdmin && role != domain.RoleTravelAgency {
		return nil, ErrForbidden
	}

	return s.save(ctx, fh, domain.ImageEntityGeneral, 0, uploader.ID)
}

func (s *Service) save(ctx context.Context, fh *multipart.FileHeader, entityType string, entityID, uploaderID int64) (*domain.Image, error) {
	if fh.Size == 0 {
		return nil, ErrEmptyFile
	}
	if fh.Size > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	file, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	// Detect MIME type from first 512 bytes
	buf := make([]byte, 512)
	n, _ := file.Read(buf)
	mimeType := strings.Split(http.DetectContentType(buf[:n]), ";")[0]
	if !AllowedMimeTypes[mimeType] {
		return nil, ErrInvalidMimeType
	}

	if seeker, ok := file.(io.Seeker); ok {
		_, _ = seeker.Seek(0, io.SeekStart)
	}

	absDir := filepath.Join(s.baseDir, entityType)
	if err := os.MkdirAll(absDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	now := time.Now()
	filename := fmt.Sprintf("%d_%s", now.UnixMilli(), sanitizeName(fh.Filename))

	absPath := filepath.Join(absDir, filename)
	dst, err := os.Create(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		_ = os.Remove(absPath)
		return nil, fmt.Errorf("failed to write file: %w", err)
	}

	relPath := filepath.ToSlash(filepath.Join(entityType, filename))

	img := &domain.Image{
		FilePath:        relPath,
		Filename:        filename,
		EntityType:      entityType,
		EntityID:        entityID,
		Type:            entityType,
		RelatedEntityID: entityID,
		UploaderID:      uploaderID,
		UploadDate:      now,
	}

	if err := s.images.Create(ctx, img); err != nil {
		_ = os.Remove(absPath) // rollback file on DB error
		return nil, fmt.Errorf("failed to save image record: %w", err)
	}

	return img, nil
}

func (s *Service) ListByEntity(ctx context.Context, entityType string, entityID int64) ([]domain.Image, error) {
	return s.images.ListByEntity(ctx, entityType, entityID)
}

// ResolvePath maps a stored relative path to an absolute one, rejecting
// anything that escapes the uploads directory.
func (s *Service) ResolvePath(relPath string) (string, error) {
	clean := filepath.Clean("/" + relPath)
	abs := filepath.Join(s.baseDir, clean)

	base, err := filepath.Abs(s.baseDir)
	if err != nil {
		return "", err
	}
	resolved, err := filepath.Abs(abs)
	if err != nil {
		return "", err
	}
	if !strings.HasPrefix(resolved, base+string(os.PathSeparator)) {
		return "", ErrFileNotFound
	}

	if _, err := os.Stat(resolved); err != nil {
		return "", ErrFileNotFound
	}
	return resolved, nil
}

func sanitizeName(name string) string {
	ext := filepath.Ext(name)
	name = filepath.Base(name)
	name = strings.TrimSuffix(name, ext)
	name = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' {
			return r
		}
		return '_'
	}, name)
	if len(name) > 40 {
		name = name[:40]
	}
	if name == "" {
		name = "file"
	}
	return name + ext
}
