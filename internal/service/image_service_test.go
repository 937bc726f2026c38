package service

import (
	"context"
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/cadetnet/dutylog-api/internal/models"
)

var pngPayload = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00, 0x00, 0x0D, 0x49, 0x48, 0x44, 0x52}

type memoryImageRepo struct {
	images []models.Image
	err    error
}

func (m *memoryImageRepo) Create(_ context.Context, image *models.Image) error {
	if m.err != nil {
		return m.err
	}
	image.ID = uint(len(m.images) + 1)
	m.images = append(m.images, *image)
	return nil
}

func (m *memoryImageRepo) ListByCompanyDate(_ context.Context, company, date string) ([]models.Image, error) {
	if m.err != nil {
		return nil, m.err
	}
	var matched []models.Image
	for _, image := range m.images {
		if image.Company == company && image.Date == date {
			matched = append(matched, image)
		}
	}
	return matched, nil
}

func (m *memoryImageRepo) GetByID(_ context.Context, id uint) (models.Image, error) {
	if m.err != nil {
		return models.Image{}, m.err
	}
	for _, image := range m.images {
		if image.ID == id {
			return image, nil
		}
	}
	return models.Image{}, gorm.ErrRecordNotFound
}

func stageFile(t *testing.T, payload []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "staged.bin")
	require.NoError(t, os.WriteFile(path, payload, 0o600))
	return path
}

func newTestImageService(repo *memoryImageRepo, at time.Time) *imageService {
	svc := NewImageService(repo, time.UTC, testLogger()).(*imageService)
	svc.now = fixedClock(at)
	return svc
}

func TestImageServiceStoreReadsStagedUpload(t *testing.T) {
	repo := &memoryImageRepo{}
	svc := newTestImageService(repo, time.Date(2025, 1, 10, 9, 30, 0, 0, time.UTC))

	path := stageFile(t, pngPayload)
	require.NoError(t, svc.Store(context.Background(), "barracks.png", path, "A1"))
	require.Len(t, repo.images, 1)

	image := repo.images[0]
	require.Equal(t, pngPayload, image.ImageData)
	require.Equal(t, "barracks.png", image.Name)
	require.Equal(t, "A1", image.Company)
	require.Equal(t, "20250110", image.Date)
	require.Equal(t, "0930", image.Time)

	// Staged file cleanup is the caller's job.
	_, err := os.Stat(path)
	require.NoError(t, err)
}

func TestImageServiceStoreRejectsNonImagePayload(t *testing.T) {
	repo := &memoryImageRepo{}
	svc := newTestImageService(repo, time.Now())

	path := stageFile(t, []byte("just some text"))
	err := svc.Store(context.Background(), "notes.txt", path, "A1")
	require.ErrorIs(t, err, ErrNotAnImage)
	require.Empty(t, repo.images)
}

func TestImageServiceStoreMissingStagedFile(t *testing.T) {
	repo := &memoryImageRepo{}
	svc := newTestImageService(repo, time.Now())

	err := svc.Store(context.Background(), "gone.png", filepath.Join(t.TempDir(), "missing"), "A1")
	require.Error(t, err)
	require.Empty(t, repo.images)
}

func TestImageServiceStoreSwallowsInsertFailure(t *testing.T) {
	repo := &memoryImageRepo{err: errors.New("store down")}
	svc := newTestImageService(repo, time.Now())

	path := stageFile(t, pngPayload)
	require.NoError(t, svc.Store(context.Background(), "barracks.png", path, "A1"))
}

func TestImageServiceListEncodesPayload(t *testing.T) {
	repo := &memoryImageRepo{}
	svc := newTestImageService(repo, time.Date(2025, 1, 10, 9, 30, 0, 0, time.UTC))

	path := stageFile(t, pngPayload)
	require.NoError(t, svc.Store(context.Background(), "barracks.png", path, "A1"))

	images := svc.List(context.Background(), "A1", "20250110")
	require.Len(t, images, 1)

	decoded, err := base64.StdEncoding.DecodeString(images[0].Data)
	require.NoError(t, err)
	require.Equal(t, pngPayload, decoded)
}

func TestImageServiceListSwallowsFailure(t *testing.T) {
	repo := &memoryImageRepo{err: errors.New("store down")}
	svc := newTestImageService(repo, time.Now())

	require.Empty(t, svc.List(context.Background(), "A1", "20250110"))
}

func TestImageServiceGetByIDDistinguishesNotFound(t *testing.T) {
	repo := &memoryImageRepo{}
	svc := newTestImageService(repo, time.Now())

	_, err := svc.GetByID(context.Background(), 7)
	require.ErrorIs(t, err, ErrImageNotFound)

	repo.err = errors.New("store down")
	_, err = svc.GetByID(context.Background(), 7)
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrImageNotFound)
}
