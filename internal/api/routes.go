package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)
	app.Get("/lang/:lang", handler.SetLanguage)

	app.Get("/", handler.ShowLandingPage)
	app.Get("/register", handler.ShowRegisterPage)
	app.Post("/register", handler.Register)
	app.Get("/login", handler.ShowLoginPage)
	app.Post("/login", handler.Login)
	app.Get("/logout", handler.AuthRequired, handler.Logout)

	app.Get("/dashboard", handler.AuthRequired, handler.ShowDashboard)
	app.Get("/profile", handler.AuthRequired, handler.ShowProfile)
	app.Post("/profile", handler.AuthRequired, handler.UpdateProfile)

	farm := app.Group("/farm", handler.AuthRequired)
	farm.Get("/create", handler.ShowFarmCreatePage)
	farm.Post("/create", handler.CreateFarm)
	farm.Get("/:id<int>", handler.ShowFarmDetail)
	farm.Get("/:id<int>/soil/new", handler.ShowSoilRecordForm)
	farm.Post("/:id<int>/soil/new", handler.CreateSoilRecord)
	farm.Get("/:id<int>/animals/new", handler.ShowAnimalRecordForm)
	farm.Post("/:id<int>/animals/new", handler.CreateAnimalRecord)

	app.Get("/soil", handler.AuthRequired, handler.ShowSoilGuide)
	app.Get("/animals", handler.AuthRequired, handler.ShowAnimalsGuide)
	app.Get("/animals/:category", handler.AuthRequired, handler.ShowAnimalCategory)

	app.Get("/export/records.xlsx", handler.AuthRequired, handler.ExportRecords)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
