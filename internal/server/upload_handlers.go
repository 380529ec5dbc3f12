// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"io"

	"inkwell/internal/models"

	"github.com/gofiber/fiber/v2"
)

// readUpload reads the multipart form file under the given field name.
// On failure it writes a 400 JSON response and returns errResponseWritten.
func (s *Server) readUpload(c *fiber.Ctx, field string) ([]byte, error) {
	file, err := c.FormFile(field)
	if err != nil {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("No file uploaded"))
		return nil, errResponseWritten
	}

	src, err := file.Open()
	if err != nil {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Unable to read uploaded file"))
		return nil, errResponseWritten
	}
	defer func() { _ = src.Close() }()

	content, err := io.ReadAll(src)
	if err != nil {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Unable to read uploaded file"))
		return nil, errResponseWritten
	}
	return content, nil
}

// UploadProfilePicture handles POST /api/users/me/profile-picture
func (s *Server) UploadProfilePicture(c *fiber.Ctx) error {
	content, err := s.readUpload(c, "image")
	if err != nil {
		return nil
	}

	url, err := s.blobStore.Save(c.UserContext(), content)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	user, err := s.userService.SetProfilePicture(c.UserContext(), currentUserID(c), url)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(user)
}

// UploadCoverPhoto handles POST /api/users/me/cover-photo
func (s *Server) UploadCoverPhoto(c *fiber.Ctx) error {
	content, err := s.readUpload(c, "image")
	if err != nil {
		return nil
	}

	url, err := s.blobStore.Save(c.UserContext(), content)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	user, err := s.userService.SetCoverPhoto(c.UserContext(), currentUserID(c), url)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(user)
}

// UploadPostMedia handles POST /api/posts/media. It stores the file and
// returns its URL; the client then references it when creating a post.
func (s *Server) UploadPostMedia(c *fiber.Ctx) error {
	content, err := s.readUpload(c, "media")
	if err != nil {
		return nil
	}

	url, err := s.blobStore.Save(c.UserContext(), content)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"url": url,
	})
}
