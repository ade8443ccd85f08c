package models

// API-facing shapes for the plant catalog and identification providers.
// These are not persisted.

type PlantSearchResult struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	ScientificName string   `json:"scientific_name"`
	CommonNames    []string `json:"common_names"`
	ImageURL       string   `json:"image_url,omitempty"`
	Description    string   `json:"description,omitempty"`
	CareLevel      string   `json:"care_level,omitempty"`
}

type PlantCareInfo struct {
	PlantID        string   `json:"plant_id"`
	Name           string   `json:"name"`
	ScientificName string   `json:"scientific_name"`
	Watering       string   `json:"watering,omitempty"`
	Sunlight       string   `json:"sunlight,omitempty"`
	Temperature    string   `json:"temperature,omitempty"`
	Humidity       string   `json:"humidity,omitempty"`
	Fertilizer     string   `json:"fertilizer,omitempty"`
	Repotting      string   `json:"repotting,omitempty"`
	CommonProblems []string `json:"common_problems"`
	CareTips       []string `json:"care_tips"`
}

type SpeciesSuggestion struct {
	Name        string   `json:"name"`
	CommonNames []string `json:"common_names"`
	Confidence  float64  `json:"confidence"`
	Family      string   `json:"family,omitempty"`
}

type PlantIdentification struct {
	Suggestions    []SpeciesSuggestion `json:"suggestions"`
	Confidence     float64             `json:"confidence"`
	IdentifiedName string              `json:"identified_name,omitempty"`
}
