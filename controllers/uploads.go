// controllers/uploads.go - shared multipart upload handling
package controllers

import (
	"fmt"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"recheck-api/utils"
)

func uploadRoot() string {
	if p := os.Getenv("UPLOAD_PATH"); p != "" {
		return p
	}
	return "./uploads"
}

// saveUploadedFiles validates and stores a batch of uploads under
// uploads/<folder>/, returning the public paths served by the /files
// route. The batch is all-or-nothing: the first failure removes
// everything already written.
func saveUploadedFiles(c *gin.Context, files []*multipart.FileHeader, folder string, maxSize int64) ([]string, error) {
	dir := filepath.Join(uploadRoot(), folder)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	var stored []string
	var diskPaths []string
	for _, fh := range files {
		if ok, msg := utils.ValidateUpload(fh, maxSize); !ok {
			removeStoredFiles(diskPaths)
			return nil, fmt.Errorf("%s", msg)
		}
		name := utils.StoredFilename(fh.Filename)
		dst := filepath.Join(dir, name)
		if err := c.SaveUploadedFile(fh, dst); err != nil {
			removeStoredFiles(diskPaths)
			return nil, fmt.Errorf("failed to save %s: %w", fh.Filename, err)
		}
		diskPaths = append(diskPaths, dst)
		stored = append(stored, "/files/"+folder+"/"+name)
	}
	return stored, nil
}

// removeStoredFiles best-effort deletes files written before a failed
// operation, so a rolled-back insert leaves no orphans on disk.
func removeStoredFiles(paths []string) {
	for _, p := range paths {
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			log.Printf("failed to remove orphaned upload %s: %v", p, err)
		}
	}
}

// diskPathsFor maps public /files/ paths back to their on-disk
// locations under the upload root.
func diskPathsFor(publicPaths []string) []string {
	out := make([]string, 0, len(publicPaths))
	for _, p := range publicPaths {
		rel, ok := trimFilesPrefix(p)
		if !ok {
			continue
		}
		out = append(out, filepath.Join(uploadRoot(), filepath.FromSlash(rel)))
	}
	return out
}

func trimFilesPrefix(p string) (string, bool) {
	const prefix = "/files/"
	if len(p) <= len(prefix) || p[:len(prefix)] != prefix {
		return "", false
	}
	return p[len(prefix):], true
}
