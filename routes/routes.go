package routes

import (
	"github.com/dig-it-all-from-digital/Plauntie/controllers"
	"github.com/dig-it-all-from-digital/Plauntie/middlewares"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Deps struct {
	Plants    *controllers.PlantController
	Assistant *controllers.AssistantController
	UserPlant *controllers.UserPlantController
	Reminders *controllers.ReminderController
	Push      *controllers.PushController
	Realtime  *controllers.RealtimeController
}

func SetupRouter(d Deps) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	api := r.Group("/api")

	// Public catalog / identification routes
	plants := api.Group("/plants")
	{
		plants.GET("/search", d.Plants.SearchPlants)
		plants.GET("/:plantId/care", d.Plants.GetCareInfo)
		plants.POST("/identify", d.Plants.IdentifyPlant)
		plants.POST("/diagnose", d.Assistant.Diagnose)
	}

	api.GET("/push/vapid-public-key", d.Push.VAPIDPublicKey)

	// Protected assistant route
	assistant := api.Group("/assistant")
	assistant.Use(middlewares.AuthMiddleware())
	{
		assistant.POST("/chat", d.Assistant.Chat)
	}

	// Protected user routes, scoped to the token's user
	user := api.Group("/user/:userId")
	user.Use(middlewares.AuthMiddleware(), middlewares.RequireSelf())
	{
		user.POST("/plants", d.UserPlant.AddPlant)
		user.GET("/plants", d.UserPlant.ListPlants)
		user.GET("/reminders", d.Reminders.ListReminders)
		user.POST("/reminders/:reminderId/complete", d.Reminders.CompleteReminder)
		user.POST("/push/subscribe", d.Push.Subscribe)
		user.POST("/uploads/plant-photo", controllers.UploadPlantPhoto)
		user.GET("/realtime", d.Realtime.RemindersWS)
	}

	return r
}
