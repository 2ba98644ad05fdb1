package service

import (
	"context"
	"time"

	"github.com/gurusoftware/backend/internal/storage"
	"github.com/gurusoftware/backend/internal/validator"
)

// resumeTimestampLayout prefixes stored resumes to avoid name collisions.
const resumeTimestampLayout = "20060102150405"

// ResumeStore validates and persists resume uploads.
type ResumeStore struct {
	storage    storage.Storage
	extensions []string
	now        func() time.Time
}

// NewResumeStore creates a ResumeStore writing to st and accepting only the
// given file extensions.
func NewResumeStore(st storage.Storage, extensions []string) *ResumeStore {
	return &ResumeStore{storage: st, extensions: extensions, now: time.Now}
}

// Save stores up and returns the stored name (YYYYMMDDHHMMSS_<safe name>).
// A nil upload or one without a filename is a no-op returning "".
func (r *ResumeStore) Save(ctx context.Context, up *ResumeUpload) (string, error) {
	if up == nil || up.Filename == "" {
		return "", nil
	}
	if !validator.HasAllowedExtension(up.Filename, r.extensions) {
		return "", validationError(MsgUnsupportedResume)
	}

	ext := validator.Extension(up.Filename)
	name := validator.SecureFilename(up.Filename)
	if validator.Extension(name) != ext {
		name = "resume." + ext
	}
	saved := r.now().UTC().Format(resumeTimestampLayout) + "_" + name

	if _, err := r.storage.Save(ctx, saved, up.Content, up.Size, up.ContentType); err != nil {
		return "", filesystemError("save resume", err)
	}
	return saved, nil
}

// Remove deletes a previously stored resume.
func (r *ResumeStore) Remove(ctx context.Context, saved string) error {
	if err := r.storage.Delete(ctx, saved); err != nil {
		return filesystemError("remove resume", err)
	}
	return nil
}
