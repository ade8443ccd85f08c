package main

import (
	"github.com/dig-it-all-from-digital/Plauntie/config"
	"github.com/dig-it-all-from-digital/Plauntie/controllers"
	"github.com/dig-it-all-from-digital/Plauntie/routes"
	"github.com/dig-it-all-from-digital/Plauntie/services"
	"github.com/dig-it-all-from-digital/Plauntie/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()

	hub := services.NewRealtimeHub()
	push := services.NewPushService(config.DB)
	reminders := services.NewReminderService(config.DB, services.NewCareNotifier(hub, push))
	plants := services.NewPlantService(services.NewPerenualService(), services.NewPlantNetService())
	assistant := services.NewAssistantService()

	r := routes.SetupRouter(routes.Deps{
		Plants:    controllers.NewPlantController(plants),
		Assistant: controllers.NewAssistantController(assistant),
		UserPlant: controllers.NewUserPlantController(config.DB, reminders),
		Reminders: controllers.NewReminderController(reminders),
		Push:      controllers.NewPushController(push),
		Realtime:  controllers.NewRealtimeController(hub),
	})
	r.Run(":8080")
}
