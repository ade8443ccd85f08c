package services

import (
	"fmt"

	"github.com/dig-it-all-from-digital/Plauntie/models"
	"github.com/dig-it-all-from-digital/Plauntie/utils"
)

// PlantService fronts the catalog and vision providers behind one surface.
type PlantService struct {
	catalog *PerenualService
	vision  *PlantNetService
}

func NewPlantService(catalog *PerenualService, vision *PlantNetService) *PlantService {
	return &PlantService{catalog: catalog, vision: vision}
}

// Search by free text
func (s *PlantService) Search(query string) ([]models.PlantSearchResult, error) {
	return s.catalog.SearchPlants(query)
}

// CareInfo by catalog plant id
func (s *PlantService) CareInfo(plantID string) (*models.PlantCareInfo, error) {
	return s.catalog.GetCareInfo(plantID)
}

// Identify normalizes the upload to JPEG and asks the vision provider for
// species guesses.
func (s *PlantService) Identify(imageData []byte) (*models.PlantIdentification, error) {
	jpegData, err := utils.NormalizeJPEG(imageData)
	if err != nil {
		return nil, fmt.Errorf("invalid image file: %w", err)
	}
	return s.vision.Identify(jpegData)
}
