package usecase

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/pagehost/internal/application/port"
	"github.com/bnema/pagehost/internal/domain/entity"
	"github.com/bnema/pagehost/internal/domain/filename"
	urlutil "github.com/bnema/pagehost/internal/domain/url"
	"github.com/bnema/pagehost/internal/logging"
)

// ExportPageUseCase renders a page as PDF and/or PNG and saves the artifacts.
type ExportPageUseCase struct {
	fs              port.FileSystem
	dir             string
	printBackground bool
	now             func() time.Time
}

// NewExportPageUseCase creates a new export use case writing into dir.
// A nil fs keeps artifacts in memory only.
func NewExportPageUseCase(fs port.FileSystem, dir string, printBackground bool) *ExportPageUseCase {
	return &ExportPageUseCase{
		fs:              fs,
		dir:             dir,
		printBackground: printBackground,
		now:             time.Now,
	}
}

// ExportPageInput contains parameters for an export.
type ExportPageInput struct {
	Page    port.WebPage
	Formats []entity.ExportFormat
	// Title and URL name the files.
	Title string
	URL   string
}

// ExportPageOutput contains the artifacts that rendered successfully.
type ExportPageOutput struct {
	Artifacts []entity.ExportArtifact
	// Failed maps each format that could not be rendered to its error.
	Failed map[entity.ExportFormat]error
}

// Execute renders every requested format concurrently. A format that fails
// is logged and left out; an error is returned only when nothing rendered.
func (uc *ExportPageUseCase) Execute(ctx context.Context, input ExportPageInput) (*ExportPageOutput, error) {
	if input.Page == nil {
		return nil, ErrNoPage
	}
	formats := input.Formats
	if len(formats) == 0 {
		formats = entity.AllExportFormats()
	}
	log := logging.FromContext(ctx)

	if uc.fs != nil {
		if err := uc.fs.MkdirAll(ctx, uc.dir); err != nil {
			return nil, fmt.Errorf("failed to create export directory: %w", err)
		}
	}

	base := uc.baseName(input)
	artifacts := make([]entity.ExportArtifact, len(formats))
	var (
		mu     sync.Mutex
		failed = make(map[entity.ExportFormat]error)
	)

	g, gctx := errgroup.WithContext(ctx)
	for i, format := range formats {
		g.Go(func() error {
			artifact, err := uc.exportOne(gctx, input.Page, format, base)
			if err != nil {
				log.Warn().Err(err).Str("format", string(format)).Msg("export failed")
				mu.Lock()
				failed[format] = err
				mu.Unlock()
				return nil
			}
			artifact.Title = input.Title
			artifacts[i] = artifact
			return nil
		})
	}
	_ = g.Wait()

	out := &ExportPageOutput{Failed: failed}
	for _, a := range artifacts {
		if a.Format != "" {
			out.Artifacts = append(out.Artifacts, a)
		}
	}

	if len(out.Artifacts) == 0 {
		errs := make([]error, 0, len(failed))
		for _, f := range formats {
			errs = append(errs, failed[f])
		}
		return out, fmt.Errorf("export failed: %w", errors.Join(errs...))
	}

	log.Info().Int("artifacts", len(out.Artifacts)).Int("failed", len(failed)).Msg("page exported")
	return out, nil
}

func (uc *ExportPageUseCase) exportOne(ctx context.Context, page port.WebPage, format entity.ExportFormat, base string) (entity.ExportArtifact, error) {
	var (
		data []byte
		err  error
	)
	switch format {
	case entity.ExportPDF:
		data, err = page.PDF(ctx, uc.printBackground)
	case entity.ExportPNG:
		data, err = page.Snapshot(ctx)
	default:
		return entity.ExportArtifact{}, fmt.Errorf("unsupported export format %q", format)
	}
	if err != nil {
		return entity.ExportArtifact{}, fmt.Errorf("render %s: %w", format, err)
	}
	if len(data) == 0 {
		return entity.ExportArtifact{}, fmt.Errorf("render %s: %w", format, ErrEmptyExport)
	}

	artifact := entity.ExportArtifact{Format: format, Data: data}
	if uc.fs == nil {
		return artifact, nil
	}

	name := filename.Unique(uc.dir, base+format.Extension(), func(path string) bool {
		ok, err := uc.fs.Exists(ctx, path)
		return err == nil && ok
	})
	path := filepath.Join(uc.dir, name)
	if err := uc.fs.WriteFile(ctx, path, data); err != nil {
		return entity.ExportArtifact{}, fmt.Errorf("save %s: %w", format, err)
	}
	artifact.Path = path
	return artifact, nil
}

const maxBaseNameRunes = 80

// baseName builds "<title or domain>-<timestamp>" for the artifact files.
func (uc *ExportPageUseCase) baseName(input ExportPageInput) string {
	name := urlutil.SanitizeForFilename(input.Title)
	if name == "" {
		name = urlutil.SanitizeForFilename(urlutil.ExtractDomain(input.URL))
	}
	if name == "" {
		name = "page"
	}
	if r := []rune(name); len(r) > maxBaseNameRunes {
		name = string(r[:maxBaseNameRunes])
	}
	return name + "-" + uc.now().Format("20060102-150405")
}
