package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExportFormats(t *testing.T) {
	got, err := ParseExportFormats("pdf")
	require.NoError(t, err)
	assert.Equal(t, []ExportFormat{ExportPDF}, got)

	got, err = ParseExportFormats("Image")
	require.NoError(t, err)
	assert.Equal(t, []ExportFormat{ExportPNG}, got)

	got, err = ParseExportFormats("all")
	require.NoError(t, err)
	assert.Equal(t, AllExportFormats(), got)

	got, err = ParseExportFormats("")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	_, err = ParseExportFormats("gif")
	assert.Error(t, err)
}

func TestExportFormat_Metadata(t *testing.T) {
	assert.Equal(t, ".pdf", ExportPDF.Extension())
	assert.Equal(t, "application/pdf", ExportPDF.MIMEType())
	assert.Equal(t, "image/png", ExportPNG.MIMEType())
	assert.Equal(t, "application/octet-stream", ExportFormat("tiff").MIMEType())
}
