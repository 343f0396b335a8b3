package delivery

import (
	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, hMedia *MediaHandler) {
	r.Get("/media", hMedia.ListAll)
	r.Get("/media/category/{category}", hMedia.ListByCategory)
	r.Get("/media/search/{name}", hMedia.SearchByName)
	r.Get("/media/details/{id}", hMedia.GetByID)
	r.Post("/media/create", hMedia.Create)
	r.Delete("/media/delete/{id}", hMedia.Delete)
}
