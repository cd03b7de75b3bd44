package serviceimpl

import (
	"context"
	"io"
	"mime/multipart"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"meetapp/domain/models"
	"meetapp/domain/ports"
	"meetapp/domain/repositories"
	"meetapp/domain/services"
	"meetapp/pkg/logger"
	"meetapp/pkg/utils"
)

const bannerFolder = "banners"

type FileServiceImpl struct {
	fileRepo      repositories.FileRepository
	storage       ports.StoragePort
	maxUploadSize int64 // 0 = unlimited
}

func NewFileService(fileRepo repositories.FileRepository, storage ports.StoragePort, maxUploadSize int64) services.FileService {
	return &FileServiceImpl{
		fileRepo:      fileRepo,
		storage:       storage,
		maxUploadSize: maxUploadSize,
	}
}

func (s *FileServiceImpl) UploadFile(ctx context.Context, fileHeader *multipart.FileHeader) (*models.File, error) {
	if fileHeader == nil {
		return nil, services.ErrMissingFile
	}
	if s.maxUploadSize > 0 && fileHeader.Size > s.maxUploadSize {
		logger.WarnContext(ctx, "Upload rejected - file too large", "filename", fileHeader.Filename, "size", fileHeader.Size)
		return nil, services.ErrFileTooLarge
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.ErrorContext(ctx, "Failed to open uploaded file", "filename", fileHeader.Filename, "error", err)
		return nil, err
	}
	defer file.Close()

	// ตรวจ content จริง ไม่เชื่อ Content-Type ที่ client ส่งมา
	mtype, err := mimetype.DetectReader(file)
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(mtype.String(), "image/") {
		logger.WarnContext(ctx, "Upload rejected - not an image", "filename", fileHeader.Filename, "mime", mtype.String())
		return nil, services.ErrInvalidFileType
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	name := utils.SanitizeFileName(fileHeader.Filename)
	path := utils.StoragePath(bannerFolder, uuid.New().String(), mtype.Extension())

	logger.InfoContext(ctx, "Uploading file to storage", "path", path, "size", fileHeader.Size, "provider", s.storage.GetProviderName())

	url, err := s.storage.UploadFile(ctx, file, fileHeader.Size, path, mtype.String())
	if err != nil {
		logger.ErrorContext(ctx, "Failed to upload file to storage", "path", path, "error", err)
		return nil, err
	}

	record := &models.File{
		Name:     name,
		Path:     path,
		MimeType: mtype.String(),
		Size:     fileHeader.Size,
	}

	if err := s.fileRepo.Create(ctx, record); err != nil {
		logger.ErrorContext(ctx, "Failed to save file record, rolling back storage", "path", path, "error", err)
		if delErr := s.storage.DeleteFile(ctx, path); delErr != nil {
			logger.WarnContext(ctx, "Storage rollback failed", "path", path, "error", delErr)
		}
		return nil, err
	}
	record.URL = url

	logger.InfoContext(ctx, "File record saved successfully", "file_id", record.ID, "path", path)
	return record, nil
}
