package controllers_fx

import (
	"go.uber.org/fx"

	"clubcentral/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewPhotosController),
	fx.Provide(controllers.NewEventsController),
	fx.Provide(controllers.NewMembersController),
	fx.Provide(controllers.NewFinanceController),
	fx.Provide(controllers.NewAchievementsController),
	fx.Provide(controllers.NewNotificationsController),
	fx.Provide(controllers.NewAdminRequestsController),
	fx.Provide(controllers.NewSessionController),
	fx.Provide(controllers.NewAssistController),
	fx.Provide(controllers.NewSlideshowController),
	fx.Provide(controllers.NewDashboardController))
