package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// RegisterRoutes registers the list and URL operations.
func RegisterRoutes(api huma.API, lists *ListHandler, urls *URLHandler) {
	huma.Register(api, huma.Operation{
		Method:      http.MethodGet,
		Path:        "/lists",
		Summary:     "Get all lists",
		Description: "Returns all lists ordered by creation time, newest first.",
		Tags:        []string{"Lists"},
	}, lists.GetLists)

	huma.Register(api, huma.Operation{
		Method:        http.MethodPost,
		Path:          "/lists",
		Summary:       "Create a list",
		Description:   "Creates a list with a unique slug, derived from the title unless given.",
		Tags:          []string{"Lists"},
		DefaultStatus: http.StatusCreated,
	}, lists.CreateList)

	// Registered before /lists/{id} so the static segment wins routing.
	huma.Register(api, huma.Operation{
		Method:      http.MethodGet,
		Path:        "/lists/slug/{slug}",
		Summary:     "Get a list by slug",
		Description: "Resolves the list behind a shared /lists/{slug} link.",
		Tags:        []string{"Lists"},
	}, lists.GetListBySlug)

	huma.Register(api, huma.Operation{
		Method:  http.MethodGet,
		Path:    "/lists/{id}",
		Summary: "Get a list",
		Tags:    []string{"Lists"},
	}, lists.GetList)

	huma.Register(api, huma.Operation{
		Method:      http.MethodDelete,
		Path:        "/lists/{id}",
		Summary:     "Delete a list",
		Description: "Deletes the list and every URL in it. Idempotent.",
		Tags:        []string{"Lists"},
	}, lists.DeleteList)

	huma.Register(api, huma.Operation{
		Method:  http.MethodGet,
		Path:    "/lists/{id}/urls",
		Summary: "Get the URLs of a list",
		Tags:    []string{"URLs"},
	}, urls.GetURLs)

	huma.Register(api, huma.Operation{
		Method:        http.MethodPost,
		Path:          "/lists/{id}/urls",
		Summary:       "Add a URL to a list",
		Description:   "Normalizes the URL and fills unset display fields from extracted metadata.",
		Tags:          []string{"URLs"},
		DefaultStatus: http.StatusCreated,
	}, urls.CreateURL)

	huma.Register(api, huma.Operation{
		Method:      http.MethodDelete,
		Path:        "/lists/{id}/urls/{urlId}",
		Summary:     "Remove a URL from a list",
		Description: "Deletes the URL only if it belongs to the list in the path. Idempotent.",
		Tags:        []string{"URLs"},
	}, urls.DeleteURL)
}
