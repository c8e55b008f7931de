package handlers

import (
	"fmt"
	"log"
	"strings"

	"myflix/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for user profiles and favorites.
type UserHandler struct {
	service  *services.UserService
	validate *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the user routes with the Fiber app. All of them
// sit behind the auth middleware.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/users")
	userRoutes.Get("/", h.HandleGetUsers)
	userRoutes.Get("/:username", h.HandleGetUserByUsername)
	userRoutes.Put("/:username", h.HandleUpdateUser)
	userRoutes.Delete("/:username", h.HandleDeleteUser)
	userRoutes.Post("/:username/movies/:movieID", h.HandleAddFavorite)
	userRoutes.Delete("/:username/movies/remove/:movieID", h.HandleRemoveFavorite)
}

// HandleGetUsers returns all users. Password hashes are never serialized.
func (h *UserHandler) HandleGetUsers(c *fiber.Ctx) error {
	users, err := h.service.GetAllUsers()
	if err != nil {
		log.Printf("Error getting all users: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve users",
		})
	}
	for i := range users {
		users[i].Password = ""
	}
	return c.JSON(users)
}

// HandleGetUserByUsername returns the single user matching the username.
func (h *UserHandler) HandleGetUserByUsername(c *fiber.Ctx) error {
	username := pathParam(c, "username")
	user, err := h.service.GetUserByUsername(username)
	if err != nil {
		log.Printf("Error getting user %s: %v", username, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("User with username %s not found", username),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve user",
		})
	}
	user.Password = ""
	return c.JSON(user)
}

// HandleUpdateUser replaces the profile fields of the matching user. The
// request body follows the same rules as registration, and the new password
// is re-hashed before storage.
func (h *UserHandler) HandleUpdateUser(c *fiber.Ctx) error {
	username := pathParam(c, "username")

	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing update request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationErrorMap(err),
		})
	}

	user, err := h.service.UpdateUser(username, services.ProfileUpdate{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Birthday: req.Birthday,
	})
	if err != nil {
		log.Printf("Error updating user %s: %v", username, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("User with username %s not found", username),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update user",
		})
	}

	user.Password = ""
	return c.JSON(user)
}

// HandleDeleteUser permanently removes the matching user.
func (h *UserHandler) HandleDeleteUser(c *fiber.Ctx) error {
	username := pathParam(c, "username")
	if err := h.service.DeleteUser(username); err != nil {
		log.Printf("Error deleting user %s: %v", username, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("User with username %s was not found", username),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete user",
		})
	}
	return c.SendString(fmt.Sprintf("User %s was deleted.", username))
}

// HandleAddFavorite appends a movie ID to the user's favorites list.
func (h *UserHandler) HandleAddFavorite(c *fiber.Ctx) error {
	username := pathParam(c, "username")
	movieID := pathParam(c, "movieID")

	user, err := h.service.AddFavorite(username, movieID)
	if err != nil {
		log.Printf("Error adding favorite %s for user %s: %v", movieID, username, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("User with username %s not found", username),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not add favorite movie",
		})
	}

	user.Password = ""
	return c.JSON(user)
}

// HandleRemoveFavorite removes every occurrence of a movie ID from the
// user's favorites list.
func (h *UserHandler) HandleRemoveFavorite(c *fiber.Ctx) error {
	username := pathParam(c, "username")
	movieID := pathParam(c, "movieID")

	user, err := h.service.RemoveFavorite(username, movieID)
	if err != nil {
		log.Printf("Error removing favorite %s for user %s: %v", movieID, username, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("User with username %s not found", username),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not remove favorite movie",
		})
	}

	user.Password = ""
	return c.JSON(user)
}
