package controllers

import (
	"net/http"

	"github.com/dig-it-all-from-digital/Plauntie/services"

	"github.com/gin-gonic/gin"
)

type PushController struct {
	Push *services.PushService
}

func NewPushController(push *services.PushService) *PushController {
	return &PushController{Push: push}
}

// SubscribeInput mirrors the browser PushSubscription JSON.
type SubscribeInput struct {
	Endpoint string `json:"endpoint" binding:"required,url"`
	Keys     struct {
		P256dh string `json:"p256dh" binding:"required"`
		Auth   string `json:"auth" binding:"required"`
	} `json:"keys" binding:"required"`
}

// POST /user/:userId/push/subscribe
func (pc *PushController) Subscribe(c *gin.Context) {
	var input SubscribeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid subscription"})
		return
	}

	sub, err := pc.Push.Subscribe(c.Param("userId"), input.Endpoint, input.Keys.P256dh, input.Keys.Auth)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, sub)
}

// GET /push/vapid-public-key
func (pc *PushController) VAPIDPublicKey(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"public_key": pc.Push.VAPIDPublicKey()})
}
