package storage

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"ysocial/internal/pkg/errs"
	"ysocial/internal/pkg/req"
)

const (
	// MaxAvatarSizeMB is the maximum allowed avatar size in megabytes.
	MaxAvatarSizeMB = 5

	// MaxAvatarSize is the maximum allowed avatar size in bytes.
	MaxAvatarSize = MaxAvatarSizeMB * 1024 * 1024

	// PresignedURLDuration is how long an avatar upload URL stays valid.
	PresignedURLDuration = 15 * time.Minute

	avatarPrefix = "avatars"
)

// AllowedMIMETypes defines the set of permitted MIME types for avatars.
var AllowedMIMETypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/webp": {},
	"image/gif":  {},
}

// ExtToMIME maps file extensions to their corresponding MIME types.
var ExtToMIME = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
	".gif":  "image/gif",
}

// ValidateAvatar checks the declared size, MIME type and file extension of an
// avatar upload. Every failing field is reported.
func ValidateAvatar(fileName, mimeType string, fileSize int64) *errs.CustomError {
	var fields []req.FieldError

	switch {
	case fileSize <= 0:
		fields = append(fields, req.FieldError{Field: "fileSize", Rule: "gt"})
	case fileSize > MaxAvatarSize:
		fields = append(fields, req.FieldError{Field: "fileSize", Rule: "max"})
	}

	lowerMimeType := strings.ToLower(mimeType)
	if _, ok := AllowedMIMETypes[lowerMimeType]; !ok {
		fields = append(fields, req.FieldError{Field: "mimeType", Rule: "oneof"})
	} else if expected, ok := ExtToMIME[strings.ToLower(filepath.Ext(fileName))]; !ok || expected != lowerMimeType {
		fields = append(fields, req.FieldError{Field: "fileName", Rule: "ext"})
	}

	if len(fields) > 0 {
		return req.InvalidFields(fields...)
	}
	return nil
}

// OwnsAvatarKey reports whether key is an avatar key minted for userID by AvatarKey.
func OwnsAvatarKey(userID, key string) bool {
	prefix := fmt.Sprintf("%s/%s/", avatarPrefix, userID)
	name, ok := strings.CutPrefix(key, prefix)
	if !ok || strings.Contains(name, "/") {
		return false
	}

	ext := filepath.Ext(name)
	if _, err := uuid.Parse(strings.TrimSuffix(name, ext)); err != nil {
		return false
	}
	_, ok = ExtToMIME[ext]
	return ok
}

// AvatarKey returns a fresh object key for an avatar of userID, keeping the
// file's extension.
func AvatarKey(userID, fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	return fmt.Sprintf("%s/%s/%s%s", avatarPrefix, userID, uuid.New().String(), ext)
}
