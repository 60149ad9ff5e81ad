package repository

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"aqua-store/models"
)

// driveDocument is a downloaded Drive file
type driveDocument struct {
	Name        string
	ContentType string
	Data        []byte
}

// driveDownloader fetches a Drive file by ID
type driveDownloader interface {
	Download(ctx context.Context, fileID string) (*driveDocument, error)
}

// driveClient implements driveDownloader on top of the Drive v3 API
type driveClient struct {
	service *drive.Service
}

func (c *driveClient) Download(ctx context.Context, fileID string) (*driveDocument, error) {
	meta, err := c.service.Files.Get(fileID).Fields("id, name, mimeType").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get file metadata: %w", err)
	}

	resp, err := c.service.Files.Get(fileID).Context(ctx).Download()
	if err != nil {
		return nil, fmt.Errorf("failed to download file: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read file content: %w", err)
	}

	return &driveDocument{Name: meta.Name, ContentType: meta.MimeType, Data: data}, nil
}

// DriveSource loads the catalog from a JSON or YAML document stored in Google Drive
type DriveSource struct {
	fileID     string
	downloader driveDownloader
	logger     *zap.Logger
}

// NewDriveSource creates a DriveSource authenticated with a service account credentials file
func NewDriveSource(ctx context.Context, credentialsPath, fileID string, logger *zap.Logger) (*DriveSource, error) {
	service, err := drive.NewService(ctx,
		option.WithCredentialsFile(credentialsPath),
		option.WithScopes(drive.DriveReadonlyScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}

	return &DriveSource{
		fileID:     fileID,
		downloader: &driveClient{service: service},
		logger:     logger,
	}, nil
}

// Ensure DriveSource implements CatalogSourceInterface
var _ CatalogSourceInterface = (*DriveSource)(nil)

// Name returns the source description used in logs and errors
func (s *DriveSource) Name() string {
	return "drive " + s.fileID
}

// Load downloads and decodes the document
func (s *DriveSource) Load(ctx context.Context) ([]models.Product, error) {
	doc, err := s.downloader.Download(ctx, s.fileID)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("catalog document downloaded from drive",
		zap.String("file_id", s.fileID),
		zap.String("name", doc.Name),
		zap.Int("bytes", len(doc.Data)),
	)

	return DecodeProducts(doc.Data, DetectFormat(doc.Name, doc.ContentType))
}
