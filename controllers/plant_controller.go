package controllers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/dig-it-all-from-digital/Plauntie/services"

	"github.com/gin-gonic/gin"
)

type PlantController struct {
	Plants *services.PlantService
}

func NewPlantController(plants *services.PlantService) *PlantController {
	return &PlantController{Plants: plants}
}

// GET /plants/search?q=monstera
func (pc *PlantController) SearchPlants(c *gin.Context) {
	q := c.Query("q")
	if len(q) < 2 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query must be at least 2 characters long"})
		return
	}

	results, err := pc.Plants.Search(q)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, results)
}

// GET /plants/:plantId/care
func (pc *PlantController) GetCareInfo(c *gin.Context) {
	info, err := pc.Plants.CareInfo(c.Param("plantId"))
	if err != nil {
		if errors.Is(err, services.ErrPlantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Plant care information not found"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, info)
}

// POST /plants/identify  (multipart, field "file")
func (pc *PlantController) IdentifyPlant(c *gin.Context) {
	imageData, ok := readImageUpload(c)
	if !ok {
		return
	}

	ident, err := pc.Plants.Identify(imageData)
	if err != nil {
		if strings.Contains(err.Error(), "invalid image") {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image file"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ident)
}

// readImageUpload pulls the "file" part out of a multipart form and rejects
// non-image uploads. Writes the error response itself on failure.
func readImageUpload(c *gin.Context) ([]byte, bool) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is required"})
		return nil, false
	}
	if !strings.HasPrefix(fileHeader.Header.Get("Content-Type"), "image/") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File must be an image"})
		return nil, false
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read file"})
		return nil, false
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read file"})
		return nil, false
	}
	return data, true
}
