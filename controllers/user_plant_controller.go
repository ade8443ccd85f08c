package controllers

import (
	"net/http"
	"time"

	"github.com/dig-it-all-from-digital/Plauntie/models"
	"github.com/dig-it-all-from-digital/Plauntie/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserPlantController struct {
	DB        *gorm.DB
	Reminders *services.ReminderService
}

func NewUserPlantController(db *gorm.DB, reminders *services.ReminderService) *UserPlantController {
	return &UserPlantController{DB: db, Reminders: reminders}
}

type AddPlantInput struct {
	PlantID                  string `json:"plant_id"`
	Nickname                 string `json:"nickname" binding:"required"`
	PlantName                string `json:"plant_name"`
	ScientificName           string `json:"scientific_name"`
	WateringFrequencyDays    int    `json:"watering_frequency_days" binding:"omitempty,gt=0"`
	FertilizingFrequencyDays int    `json:"fertilizing_frequency_days" binding:"omitempty,gt=0"`
	Notes                    string `json:"notes"`
	ImageURL                 string `json:"image_url"`
}

// POST /user/:userId/plants
func (upc *UserPlantController) AddPlant(c *gin.Context) {
	var input AddPlantInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.WateringFrequencyDays == 0 {
		input.WateringFrequencyDays = 7
	}
	if input.FertilizingFrequencyDays == 0 {
		input.FertilizingFrequencyDays = 30
	}

	plant := models.UserPlant{
		ID:                       uuid.NewString(),
		UserID:                   c.Param("userId"),
		PlantID:                  input.PlantID,
		Nickname:                 input.Nickname,
		PlantName:                input.PlantName,
		ScientificName:           input.ScientificName,
		DateAdded:                time.Now().UTC(),
		WateringFrequencyDays:    input.WateringFrequencyDays,
		FertilizingFrequencyDays: input.FertilizingFrequencyDays,
		Notes:                    input.Notes,
		ImageURL:                 input.ImageURL,
	}

	if err := upc.DB.Create(&plant).Error; err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}

	if _, _, err := upc.Reminders.CreateInitialReminders(&plant); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, plant)
}

// GET /user/:userId/plants
func (upc *UserPlantController) ListPlants(c *gin.Context) {
	var plants []models.UserPlant
	if err := upc.DB.Where("user_id = ?", c.Param("userId")).Find(&plants).Error; err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, plants)
}
