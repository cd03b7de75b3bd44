package services

import (
	"context"
	"mime/multipart"

	"meetapp/domain/models"
)

type FileService interface {
	UploadFile(ctx context.Context, file *multipart.FileHeader) (*models.File, error)
}
