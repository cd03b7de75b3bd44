package handlers

import (
	"github.com/gofiber/fiber/v2"

	"meetapp/domain/dto"
	"meetapp/domain/services"
	"meetapp/pkg/logger"
	"meetapp/pkg/utils"
)

type FileHandler struct {
	fileService services.FileService
}

func NewFileHandler(fileService services.FileService) *FileHandler {
	return &FileHandler{
		fileService: fileService,
	}
}

// Store uploads a banner image from the multipart field "file".
func (h *FileHandler) Store(c *fiber.Ctx) error {
	ctx := c.UserContext()

	file, err := c.FormFile("file")
	if err != nil {
		logger.WarnContext(ctx, "No file provided", "error", err)
		return handleServiceError(c, services.ErrMissingFile)
	}

	logger.InfoContext(ctx, "File upload attempt", "filename", file.Filename, "size", file.Size)

	stored, err := h.fileService.UploadFile(ctx, file)
	if err != nil {
		return handleServiceError(c, err)
	}

	return utils.SuccessResponse(c, dto.FileToFileResponse(stored))
}
