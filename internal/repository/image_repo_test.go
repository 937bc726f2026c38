package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/cadetnet/dutylog-api/internal/models"
)

func TestImageRepositoryRoundTrip(t *testing.T) {
	repo := NewImageRepository(setupTestManager(t))

	payload := []byte{0x89, 'P', 'N', 'G', 0x00, 0xFF, 0x10}
	image := models.Image{
		Name:      "barracks.png",
		Company:   "A1",
		ImageData: payload,
		Date:      "20250110",
		Time:      "0930",
	}
	require.NoError(t, repo.Create(context.Background(), &image))
	require.NotZero(t, image.ID)

	stored, err := repo.GetByID(context.Background(), image.ID)
	require.NoError(t, err)
	require.Equal(t, payload, stored.ImageData)
	require.Equal(t, "barracks.png", stored.Name)
}

func TestImageRepositoryGetByIDNotFound(t *testing.T) {
	repo := NewImageRepository(setupTestManager(t))

	_, err := repo.GetByID(context.Background(), 42)
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestImageRepositoryListByCompanyDate(t *testing.T) {
	repo := NewImageRepository(setupTestManager(t))

	matching := models.Image{Name: "a.png", Company: "A1", ImageData: []byte{1}, Date: "20250110", Time: "0900"}
	otherDate := models.Image{Name: "b.png", Company: "A1", ImageData: []byte{2}, Date: "20250111", Time: "0900"}
	otherCompany := models.Image{Name: "c.png", Company: "B2", ImageData: []byte{3}, Date: "20250110", Time: "0900"}
	require.NoError(t, repo.Create(context.Background(), &matching))
	require.NoError(t, repo.Create(context.Background(), &otherDate))
	require.NoError(t, repo.Create(context.Background(), &otherCompany))

	images, err := repo.ListByCompanyDate(context.Background(), "A1", "20250110")
	require.NoError(t, err)
	require.Len(t, images, 1)
	require.Equal(t, "a.png", images[0].Name)
}
