package upload

import (
	"context"
	"mime/multipart"

	"go-ems/internal/shared/contextutil"
	uploaderrors "go-ems/internal/upload/errors"

	"go.uber.org/zap"
)

const (
	MaxFileSize = 10 << 20
	// MaxRequestSize leaves room for multipart headers around a file of MaxFileSize.
	MaxRequestSize = MaxFileSize + 1<<20
)

type UploadResponse struct {
	Path string `json:"path"`
}

type Service interface {
	Store(ctx context.Context, fh *multipart.FileHeader) (UploadResponse, error)
}

type service struct {
	storage Storage
	logger  *zap.Logger
}

func NewService(storage Storage, logger ...*zap.Logger) Service {
	l := zap.L().Named("upload.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("upload.service")
	}
	return &service{storage: storage, logger: l}
}

func (s *service) Store(ctx context.Context, fh *multipart.FileHeader) (UploadResponse, error) {
	if fh == nil {
		return UploadResponse{}, uploaderrors.ErrFileRequired
	}
	if fh.Size == 0 {
		return UploadResponse{}, uploaderrors.ErrEmptyFile
	}
	if fh.Size > MaxFileSize {
		return UploadResponse{}, uploaderrors.ErrFileTooLarge
	}

	f, err := fh.Open()
	if err != nil {
		s.logger.Error("open uploaded file failed", zap.Error(err))
		return UploadResponse{}, err
	}
	defer f.Close()

	name, err := s.storage.Save(ctx, fh.Filename, f)
	if err != nil {
		s.logger.Error("store uploaded file failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.String("filename", fh.Filename),
			zap.Error(err),
		)
		return UploadResponse{}, err
	}

	s.logger.Info("file uploaded",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("stored_as", name),
		zap.Int64("size", fh.Size),
	)
	return UploadResponse{Path: PublicPrefix + name}, nil
}
