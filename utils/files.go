// utils/files.go - Upload naming and validation helpers
package utils

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Upload size caps in bytes.
const (
	MaxReportFileSize       = 20 << 20
	MaxAnnouncementFileSize = 10 << 20
)

var allowedUploadExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
	".xls":  true,
	".xlsx": true,
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".txt":  true,
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// SanitizeFilename strips path components and replaces anything outside
// a safe character set, so a client-supplied name can never escape the
// upload directory or break a URL.
func SanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, " ", "_")
	name = unsafeFilenameChars.ReplaceAllString(name, "")
	if name == "" || name == "." || name == ".." {
		name = "file"
	}
	return name
}

// StoredFilename builds the on-disk name for an upload: millisecond
// timestamp, short uuid, then the sanitized original name. The prefix
// keeps names unique without losing the human-readable part.
func StoredFilename(original string) string {
	short := strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
	return fmt.Sprintf("%d_%s_%s", time.Now().UnixMilli(), short, SanitizeFilename(original))
}

// ValidateUpload checks an uploaded file against the extension
// allow-list and a size cap. Returns a user-facing message on failure.
func ValidateUpload(fh *multipart.FileHeader, maxSize int64) (bool, string) {
	if fh.Size > maxSize {
		return false, fmt.Sprintf("%s exceeds the %dMB size limit", fh.Filename, maxSize>>20)
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedUploadExtensions[ext] {
		return false, fmt.Sprintf("%s has an unsupported file type", fh.Filename)
	}
	return true, ""
}
