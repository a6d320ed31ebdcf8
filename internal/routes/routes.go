package routes

import (
	"favorites-backend/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App, favoritesHandler *handlers.FavoritesHandler) {
	// API versioning
	api := app.Group("/api")
	v1 := api.Group("/v1")

	favorites := v1.Group("/favorites")
	{
		favorites.Post("/", favoritesHandler.CreateList)
		favorites.Get("/", favoritesHandler.SearchLists)
		favorites.Get("/:id", favoritesHandler.GetList)
		favorites.Get("/:id/file", favoritesHandler.ExportList)
	}
}
