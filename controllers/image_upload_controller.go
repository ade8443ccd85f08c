package controllers

import (
	"net/http"

	"github.com/dig-it-all-from-digital/Plauntie/utils"

	"github.com/gin-gonic/gin"
)

type PlantPhotoUploadRequest struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
}

// POST /user/:userId/uploads/plant-photo
func UploadPlantPhoto(c *gin.Context) {
	var req PlantPhotoUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	url, err := utils.UploadBase64ImageToS3(req.ImageBase64, c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
