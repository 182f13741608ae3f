package utils

import (
	"mime/multipart"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitizeFilename(t *testing.T) {
	require.Equal(t, "report_final.pdf", SanitizeFilename("report final.pdf"))
	require.Equal(t, "passwd", SanitizeFilename("../../etc/passwd"))
	require.Equal(t, "file", SanitizeFilename("///"))
	require.Equal(t, ".pdf", SanitizeFilename("ประวัติ.pdf"))
}

func TestStoredFilenameShape(t *testing.T) {
	name := StoredFilename("My Report.pdf")
	parts := strings.SplitN(name, "_", 3)
	require.Len(t, parts, 3)
	require.Len(t, parts[1], 8)
	require.Equal(t, "My_Report.pdf", parts[2])

	// Two calls never collide even within the same millisecond.
	require.NotEqual(t, name, StoredFilename("My Report.pdf"))
}

func TestValidateUpload(t *testing.T) {
	ok, _ := ValidateUpload(&multipart.FileHeader{Filename: "a.pdf", Size: 1024}, MaxReportFileSize)
	require.True(t, ok)

	ok, msg := ValidateUpload(&multipart.FileHeader{Filename: "a.exe", Size: 1024}, MaxReportFileSize)
	require.False(t, ok)
	require.Contains(t, msg, "unsupported file type")

	ok, msg = ValidateUpload(&multipart.FileHeader{Filename: "big.pdf", Size: MaxAnnouncementFileSize + 1}, MaxAnnouncementFileSize)
	require.False(t, ok)
	require.Contains(t, msg, "size limit")
}
