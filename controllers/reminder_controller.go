package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dig-it-all-from-digital/Plauntie/services"

	"github.com/gin-gonic/gin"
)

type ReminderController struct {
	Reminders *services.ReminderService
}

func NewReminderController(reminders *services.ReminderService) *ReminderController {
	return &ReminderController{Reminders: reminders}
}

// GET /user/:userId/reminders?days=7
func (rc *ReminderController) ListReminders(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "7"))

	reminders, err := rc.Reminders.ListActiveReminders(c.Param("userId"), days)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reminders)
}

// POST /user/:userId/reminders/:reminderId/complete
func (rc *ReminderController) CompleteReminder(c *gin.Context) {
	err := rc.Reminders.CompleteReminder(c.Param("userId"), c.Param("reminderId"))
	if err != nil {
		if errors.Is(err, services.ErrReminderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Reminder not found"})
			return
		}
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reminder completed successfully"})
}
