package services

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/MrSmurf09/Api-Proyecto/internal/models"
	"github.com/MrSmurf09/Api-Proyecto/internal/repositories"
	"github.com/MrSmurf09/Api-Proyecto/internal/storage"
	"github.com/MrSmurf09/Api-Proyecto/internal/utils"
)

// FarmService manages farms and their cover images. Images go through
// the ObjectStore; the database only keeps the resulting URL.
type FarmService struct {
	farmRepo repositories.FarmRepository
	objects  storage.ObjectStore
}

func NewFarmService(farmRepo repositories.FarmRepository, objects storage.ObjectStore) *FarmService {
	return &FarmService{farmRepo: farmRepo, objects: objects}
}

// Create registers a farm, uploading the optional cover image first so a
// storage failure never leaves a farm pointing at nothing.
func (s *FarmService) Create(ctx context.Context, name, description string, ownerID uuid.UUID, imageName string, image io.Reader) (*models.Farm, error) {
	var imageURL *string
	if image != nil {
		url, err := s.objects.Save(imageName, image)
		if err != nil {
			return nil, err
		}
		imageURL = &url
	}

	f := &models.Farm{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		ImageURL:    imageURL,
		OwnerID:     ownerID,
	}
	if err := s.farmRepo.Create(ctx, f); err != nil {
		if imageURL != nil {
			if rmErr := s.objects.Remove(*imageURL); rmErr != nil {
				utils.Logger.WithError(rmErr).Warnf("No se pudo eliminar la imagen huérfana %s", *imageURL)
			}
		}
		return nil, err
	}
	return f, nil
}

func (s *FarmService) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.Farm, error) {
	return s.farmRepo.ListByOwnerID(ctx, ownerID)
}

// Update changes name/description and, when a new image is supplied,
// swaps the cover image. The old object is removed best-effort.
func (s *FarmService) Update(ctx context.Context, id uuid.UUID, name, description string, imageName string, image io.Reader) (*models.Farm, error) {
	f, err := s.farmRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	oldURL := f.ImageURL
	if image != nil {
		url, err := s.objects.Save(imageName, image)
		if err != nil {
			return nil, err
		}
		f.ImageURL = &url
	}
	f.Name = name
	f.Description = description

	if err := s.farmRepo.Update(ctx, f); err != nil {
		return nil, err
	}
	if image != nil && oldURL != nil {
		if err := s.objects.Remove(*oldURL); err != nil {
			utils.Logger.WithError(err).Warnf("No se pudo eliminar la imagen anterior %s", *oldURL)
		}
	}
	return f, nil
}

// Delete removes the farm row and then its cover image; a stray object
// is preferable to a dangling database reference.
func (s *FarmService) Delete(ctx context.Context, id uuid.UUID) error {
	f, err := s.farmRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.farmRepo.Delete(ctx, id); err != nil {
		return err
	}
	if f.ImageURL != nil {
		if err := s.objects.Remove(*f.ImageURL); err != nil {
			utils.Logger.WithError(err).Warnf("No se pudo eliminar la imagen %s", *f.ImageURL)
		}
	}
	return nil
}
