package entity

import (
	"fmt"
	"strings"
)

// ExportFormat is a page export artifact type.
type ExportFormat string

const (
	ExportPDF ExportFormat = "pdf"
	ExportPNG ExportFormat = "png"
)

// AllExportFormats lists every supported format in menu order.
func AllExportFormats() []ExportFormat {
	return []ExportFormat{ExportPDF, ExportPNG}
}

// ParseExportFormats parses "pdf", "png" or "all".
func ParseExportFormats(s string) ([]ExportFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pdf":
		return []ExportFormat{ExportPDF}, nil
	case "png", "image":
		return []ExportFormat{ExportPNG}, nil
	case "all", "":
		return AllExportFormats(), nil
	default:
		return nil, fmt.Errorf("unknown export format %q (want pdf, png or all)", s)
	}
}

// Extension returns the file extension including the dot.
func (f ExportFormat) Extension() string {
	return "." + string(f)
}

// MIMEType returns the media type of the artifact.
func (f ExportFormat) MIMEType() string {
	switch f {
	case ExportPDF:
		return "application/pdf"
	case ExportPNG:
		return "image/png"
	default:
		return "application/octet-stream"
	}
}

// ExportArtifact is a rendered export.
type ExportArtifact struct {
	Format ExportFormat
	Title  string
	Data   []byte
	// Path is set once the artifact has been written to disk.
	Path string
}
