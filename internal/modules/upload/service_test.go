package upload

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"travelbook/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type mockImageRepo struct {
	mock.Mock
}

func (m *mockImageRepo) Create(ctx context.Context, img *domain.Image) error {
	args := m.Called(ctx, img)
	return args.Error(0)
}

func (m *mockImageRepo) ListByEntity(ctx context.Context, entityType string, entityID int64) ([]domain.Image, error) {
	args := m.Called(ctx, entityType, entityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Image), args.Error(1)
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

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 13}

func makeFileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", name)
	assert.NoError(t, err)
	_, err = part.Write(content)
	assert.NoError(t, err)
	assert.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	assert.NoError(t, req.ParseMultipartForm(32<<20))

	return req.MultipartForm.File["file"][0]
}

func TestUploadGeneral_AdminAllowed(t *testing.T) {
	images := new(mockImageRepo)
	users := new(mockUserRepo)
	svc := NewService(images, users, t.TempDir())

	users.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.User{ID: 1, Username: "admin", Role: domain.RoleAdmin}, nil)
	images.On("Create", mock.Anything, mock.AnythingOfType("*domain.Image")).Return(nil)

	fh := makeFileHeader(t, "photo.png", pngHeader)
	img, err := svc.UploadGeneral(context.Background(), 1, fh)

	assert.NoError(t, err)
	assert.Equal(t, domain.ImageEntityGeneral, img.EntityType)
	assert.Equal(t, domain.ImageEntityGeneral, img.Type)
	assert.Equal(t, int64(1), img.UploaderID)
	images.AssertExpectations(t)
}

func TestUploadGeneral_TravellerForbidden(t *testing.T) {
	images := new(mockImageRepo)
	users := new(mockUserRepo)
	svc := NewService(images, users, t.TempDir())

	users.On("GetByID", mock.Anything, int64(2)).
		Return(&domain.User{ID: 2, Username: "bob", Role: domain.RoleTraveller}, nil)

	fh := makeFileHeader(t, "photo.png", pngHeader)
	_, err := svc.UploadGeneral(context.Background(), 2, fh)

	assert.ErrorIs(t, err, ErrForbidden)
	images.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUploadGeneral_LegacyRolePrefixAccepted(t *testing.T) {
	images := new(mockImageRepo)
	users := new(mockUserRepo)
	svc := NewService(images, users, t.TempDir())

	users.On("GetByID", mock.Anything, int64(3)).
		Return(&domain.User{ID: 3, Username: "agency", Role: "ROLE_TRAVEL_AGENCY"}, nil)
	images.On("Create", mock.Anything, mock.AnythingOfType("*domain.Image")).Return(nil)

	fh := makeFileHeader(t, "photo.png", pngHeader)
	_, err := svc.UploadGeneral(context.Background(), 3, fh)

	assert.NoError(t, err)
}

func TestUploadGeneral_UploaderMissing(t *testing.T) {
	images := new(mockImageRepo)
	users := new(mockUserRepo)
	svc := NewService(images, users, t.TempDir())

	users.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	fh := makeFileHeader(t, "photo.png", pngHeader)
	_, err := svc.UploadGeneral(context.Background(), 99, fh)

	assert.ErrorIs(t, err, ErrUploaderNotFound)
}

func TestSaveForEntity_RejectsUnknownMime(t *testing.T) {
	images := new(mockImageRepo)
	users := new(mockUserRepo)
	svc := NewService(images, users, t.TempDir())

	users.On("GetByUsername", mock.Anything, "admin").
		Return(&domain.User{ID: 1, Username: "admin", Role: domain.RoleAdmin}, nil)

	fh := makeFileHeader(t, "notes.txt", []byte("plain text, not an image"))
	_, err := svc.SaveForEntity(context.Background(), fh, domain.ImageEntityDestination, 5, "admin")

	assert.ErrorIs(t, err, ErrInvalidMimeType)
}

func TestSaveForEntity_WritesLegacyFields(t *testing.T) {
	images := new(mockImageRepo)
	users := new(mockUserRepo)
	svc := NewService(images, users, t.TempDir())

	users.On("GetByUsername", mock.Anything, "admin").
		Return(&domain.User{ID: 1, Username: "admin", Role: domain.RoleAdmin}, nil)

	var stored *domain.Image
	images.On("Create", mock.Anything, mock.AnythingOfType("*domain.Image")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(*domain.Image) }).
		Return(nil)

	fh := makeFileHeader(t, "beach.png", pngHeader)
	_, err := svc.SaveForEntity(context.Background(), fh, domain.ImageEntityHotel, 7, "admin")

	assert.NoError(t, err)
	assert.Equal(t, domain.ImageEntityHotel, stored.EntityType)
	assert.Equal(t, int64(7), stored.EntityID)
	assert.Equal(t, stored.EntityType, stored.Type)
	assert.Equal(t, stored.EntityID, stored.RelatedEntityID)
}

func TestResolvePath_RejectsTraversal(t *testing.T) {
	svc := NewService(new(mockImageRepo), new(mockUserRepo), t.TempDir())

	_, err := svc.ResolvePath("../../etc/passwd")
	assert.ErrorIs(t, err, ErrFileNotFound)
}
