package controllers

import (
	"net/http"

	"github.com/dig-it-all-from-digital/Plauntie/services"
	"github.com/dig-it-all-from-digital/Plauntie/utils"

	"github.com/gin-gonic/gin"
)

type AssistantController struct {
	Assistant *services.AssistantService
}

func NewAssistantController(assistant *services.AssistantService) *AssistantController {
	return &AssistantController{Assistant: assistant}
}

type ChatInput struct {
	Message string `json:"message" binding:"required"`
}

// POST /assistant/chat
func (ac *AssistantController) Chat(c *gin.Context) {
	var input ChatInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	reply, err := ac.Assistant.Chat(input.Message)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

// POST /plants/diagnose  (multipart, field "file", optional "notes")
func (ac *AssistantController) Diagnose(c *gin.Context) {
	imageData, ok := readImageUpload(c)
	if !ok {
		return
	}

	jpegData, err := utils.NormalizeJPEG(imageData)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image file"})
		return
	}

	diagnosis, err := ac.Assistant.Diagnose(jpegData, c.PostForm("notes"))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"diagnosis": diagnosis})
}
