package handlers

import (
	"log"
	"net/url"
	"strings"

	"myflix/internal/services"

	"github.com/gofiber/fiber/v2"
)

// MovieHandler handles HTTP requests for the movie catalog.
type MovieHandler struct {
	service *services.MovieService
}

// NewMovieHandler creates a new MovieHandler.
func NewMovieHandler(service *services.MovieService) *MovieHandler {
	return &MovieHandler{
		service: service,
	}
}

// RegisterRoutes registers the movie routes with the Fiber app. The genre and
// director routes must be registered before the title route so their static
// segments match first.
func (h *MovieHandler) RegisterRoutes(router fiber.Router) {
	movieRoutes := router.Group("/movies")
	movieRoutes.Get("/", h.HandleGetMovies)
	movieRoutes.Get("/genre/:name", h.HandleGetGenre)
	movieRoutes.Get("/director/:name", h.HandleGetDirector)
	movieRoutes.Get("/:title", h.HandleGetMovieByTitle)
}

// pathParam returns a URL-decoded path parameter, falling back to the raw
// value when it is not valid percent-encoding.
func pathParam(c *fiber.Ctx, key string) string {
	raw := c.Params(key)
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}

// HandleGetMovies returns the full movie catalog, unfiltered and unpaginated.
func (h *MovieHandler) HandleGetMovies(c *fiber.Ctx) error {
	movies, err := h.service.GetAllMovies()
	if err != nil {
		log.Printf("Error getting all movies: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve movies",
		})
	}
	return c.JSON(movies)
}

// HandleGetMovieByTitle returns the single movie whose title matches exactly.
func (h *MovieHandler) HandleGetMovieByTitle(c *fiber.Ctx) error {
	title := pathParam(c, "title")
	movie, err := h.service.GetMovieByTitle(title)
	if err != nil {
		log.Printf("Error getting movie by title %s: %v", title, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Movie with title " + title + " not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve movie",
		})
	}
	return c.JSON(movie)
}

// HandleGetGenre returns the genre details from the first movie in that genre.
func (h *MovieHandler) HandleGetGenre(c *fiber.Ctx) error {
	name := pathParam(c, "name")
	genre, err := h.service.GetGenreByName(name)
	if err != nil {
		log.Printf("Error getting genre %s: %v", name, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Genre with name " + name + " not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve genre",
		})
	}
	return c.JSON(genre)
}

// HandleGetDirector returns the director details from the first movie they directed.
func (h *MovieHandler) HandleGetDirector(c *fiber.Ctx) error {
	name := pathParam(c, "name")
	director, err := h.service.GetDirectorByName(name)
	if err != nil {
		log.Printf("Error getting director %s: %v", name, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Director with name " + name + " not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve director",
		})
	}
	return c.JSON(director)
}
