package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"time"

	"github.com/dig-it-all-from-digital/Plauntie/models"
)

type PlantNetService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewPlantNetService() *PlantNetService {
	return &PlantNetService{
		apiKey:  os.Getenv("PLANTNET_API_KEY"),
		baseURL: "https://my-api.plantnet.org/v2",
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

type plantNetResponse struct {
	Results []struct {
		Score   float64 `json:"score"`
		Species struct {
			ScientificNameWithoutAuthor string   `json:"scientificNameWithoutAuthor"`
			CommonNames                 []string `json:"commonNames"`
			Family                      struct {
				ScientificNameWithoutAuthor string `json:"scientificNameWithoutAuthor"`
			} `json:"family"`
		} `json:"species"`
	} `json:"results"`
}

// Identify sends JPEG image bytes to the PlantNet identify endpoint and
// returns the ranked species guesses.
func (s *PlantNetService) Identify(imageData []byte) (*models.PlantIdentification, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("images", "plant.jpg")
	if err != nil {
		return nil, fmt.Errorf("failed to build identify form: %w", err)
	}
	if _, err := part.Write(imageData); err != nil {
		return nil, fmt.Errorf("failed to write identify image: %w", err)
	}
	_ = w.WriteField("modifiers", `["crops","isolated"]`)
	_ = w.WriteField("plant-details", `["common_names"]`)
	_ = w.WriteField("api-key", s.apiKey)
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish identify form: %w", err)
	}

	u := s.baseURL + "/identify/weurope"
	req, err := http.NewRequest("POST", u, &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create identify request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call PlantNet: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read PlantNet response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("plantnet API error %d: %s", resp.StatusCode, string(body))
	}

	var pr plantNetResponse
	if err := json.Unmarshal(body, &pr); err != nil {
		return nil, fmt.Errorf("failed to parse PlantNet JSON: %w", err)
	}

	ident := &models.PlantIdentification{
		Suggestions: make([]models.SpeciesSuggestion, 0, len(pr.Results)),
	}
	for _, r := range pr.Results {
		if r.Score > ident.Confidence {
			ident.Confidence = r.Score
			ident.IdentifiedName = r.Species.ScientificNameWithoutAuthor
		}
		ident.Suggestions = append(ident.Suggestions, models.SpeciesSuggestion{
			Name:        r.Species.ScientificNameWithoutAuthor,
			CommonNames: r.Species.CommonNames,
			Confidence:  r.Score,
			Family:      r.Species.Family.ScientificNameWithoutAuthor,
		})
	}
	return ident, nil
}
