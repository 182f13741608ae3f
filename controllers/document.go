// controllers/document.go - stored file management
package controllers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// DeleteStoredFile removes one uploaded file by its public path
// (/files/...). Staff only. The resolved path must stay inside the
// upload root; anything else is treated as not found.
func DeleteStoredFile(c *gin.Context) {
	public := "/files" + c.Param("path")

	rel, ok := trimFilesPrefix(public)
	if !ok || rel == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file path"})
		return
	}

	root, err := filepath.Abs(uploadRoot())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve upload root"})
		return
	}
	target, err := filepath.Abs(filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil || !strings.HasPrefix(target, root+string(os.PathSeparator)) {
		c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		return
	}

	if err := os.Remove(target); err != nil {
		if os.IsNotExist(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete file"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "File deleted",
	})
}
