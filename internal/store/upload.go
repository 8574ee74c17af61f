package store

import (
	"context"
	"os"
	"path/filepath"

	"github.com/marlonwill444-cyber/mdigitalartz-leonardo/internal/log"
)

type UploadParams struct {
	Key         string
	Data        []byte
	ContentType string
	Metadata    map[string]string
}

type Uploader interface {
	Upload(context.Context, UploadParams) error
}

// FileUploader writes artifacts to a local directory instead of S3.
// Handy for running the pipeline outside Lambda; metadata is dropped.
type FileUploader struct {
	Dir string
}

func (u *FileUploader) Upload(ctx context.Context, params UploadParams) error {
	logger := log.FromContextOrDiscard(ctx).WithGroup("store")
	logger.Info("writing artifact to disk", "key", params.Key, "dir", u.Dir)
	return os.WriteFile(filepath.Join(u.Dir, params.Key), params.Data, 0600)
}
