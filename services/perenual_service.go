package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/dig-it-all-from-digital/Plauntie/models"
)

// ErrPlantNotFound is returned when the catalog has no entry for the
// requested plant id.
var ErrPlantNotFound = errors.New("plant not found")

type PerenualService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewPerenualService initializes the catalog client with credentials and
// HTTP client
func NewPerenualService() *PerenualService {
	return &PerenualService{
		apiKey:  os.Getenv("PERENUAL_API_KEY"),
		baseURL: "https://perenual.com/api",
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type speciesListResponse struct {
	Data []struct {
		ID             json.Number `json:"id"`
		CommonName     string      `json:"common_name"`
		ScientificName []string    `json:"scientific_name"`
		OtherName      []string    `json:"other_name"`
		DefaultImage   *struct {
			MediumURL string `json:"medium_url"`
		} `json:"default_image"`
		Description string `json:"description"`
		CareLevel   string `json:"care_level"`
	} `json:"data"`
}

// SearchPlants calls the Perenual species-list endpoint.
func (s *PerenualService) SearchPlants(query string) ([]models.PlantSearchResult, error) {
	u := fmt.Sprintf("%s/species-list?key=%s&q=%s&page=1",
		s.baseURL, s.apiKey, url.QueryEscape(query),
	)

	resp, err := s.client.Get(u)
	if err != nil {
		return nil, fmt.Errorf("failed to call Perenual species-list: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read Perenual response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("perenual API error %d: %s", resp.StatusCode, string(body))
	}

	var sl speciesListResponse
	if err := json.Unmarshal(body, &sl); err != nil {
		return nil, fmt.Errorf("failed to parse Perenual JSON: %w", err)
	}

	results := make([]models.PlantSearchResult, 0, len(sl.Data))
	for _, p := range sl.Data {
		r := models.PlantSearchResult{
			ID:          p.ID.String(),
			Name:        p.CommonName,
			CommonNames: p.OtherName,
			Description: p.Description,
			CareLevel:   p.CareLevel,
		}
		if len(p.ScientificName) > 0 {
			r.ScientificName = p.ScientificName[0]
		}
		if p.DefaultImage != nil {
			r.ImageURL = p.DefaultImage.MediumURL
		}
		results = append(results, r)
	}
	return results, nil
}

type speciesDetailsResponse struct {
	CommonName     string   `json:"common_name"`
	ScientificName []string `json:"scientific_name"`
	Watering       string   `json:"watering"`
	Sunlight       []string `json:"sunlight"`
	Hardiness      struct {
		Min string `json:"min"`
		Max string `json:"max"`
	} `json:"hardiness"`
	Humidity   string   `json:"humidity"`
	Fertilizer string   `json:"fertilizer"`
	Repotting  string   `json:"repotting"`
	Problem    []string `json:"problem"`
	CareGuides []string `json:"care_guides"`
}

// GetCareInfo calls the Perenual species-details endpoint.
func (s *PerenualService) GetCareInfo(plantID string) (*models.PlantCareInfo, error) {
	u := fmt.Sprintf("%s/species/details/%s?key=%s", s.baseURL, url.PathEscape(plantID), s.apiKey)

	resp, err := s.client.Get(u)
	if err != nil {
		return nil, fmt.Errorf("failed to call Perenual details: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read Perenual details response: %w", err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrPlantNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("perenual details API error %d: %s", resp.StatusCode, string(body))
	}

	var sd speciesDetailsResponse
	if err := json.Unmarshal(body, &sd); err != nil {
		return nil, fmt.Errorf("failed to parse Perenual details JSON: %w", err)
	}

	info := &models.PlantCareInfo{
		PlantID:        plantID,
		Name:           sd.CommonName,
		Watering:       sd.Watering,
		Temperature:    fmt.Sprintf("%s - %s°C", sd.Hardiness.Min, sd.Hardiness.Max),
		Humidity:       sd.Humidity,
		Fertilizer:     sd.Fertilizer,
		Repotting:      sd.Repotting,
		CommonProblems: sd.Problem,
		CareTips:       sd.CareGuides,
	}
	if len(sd.ScientificName) > 0 {
		info.ScientificName = sd.ScientificName[0]
	}
	if len(sd.Sunlight) > 0 {
		info.Sunlight = sd.Sunlight[0]
	}
	return info, nil
}
