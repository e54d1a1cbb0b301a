package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/knightandthey/knightshade-email-service/internal/store"
)

// ExportVersion is the only bundle schema version this build understands.
const ExportVersion = "1.0"

// ExportBundle is the JSON envelope for template export/import.
type ExportBundle struct {
	Version    string                 `json:"version"`
	ExportDate time.Time              `json:"exportDate"`
	Templates  []store.CustomTemplate `json:"templates"`
}

// ImportOptions controls how an import treats existing records.
type ImportOptions struct {
	Overwrite      bool `json:"overwrite"`
	GenerateNewIDs bool `json:"generateNewIds"`
}

// ImportReport summarizes an import run. A single bad item never aborts the
// batch; its error is recorded and the rest proceeds.
type ImportReport struct {
	Imported int      `json:"imported"`
	Updated  int      `json:"updated"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}

// TransferService moves template sets in and out of the store.
type TransferService struct {
	repo TemplateStore
	now  func() time.Time
}

func NewTransferService(repo TemplateStore) *TransferService {
	return &TransferService{repo: repo, now: time.Now}
}

// Export packages every stored template into a bundle.
func (s *TransferService) Export(ctx context.Context) (ExportBundle, error) {
	tpls, err := s.repo.List(ctx)
	if err != nil {
		return ExportBundle{}, err
	}
	return ExportBundle{
		Version:    ExportVersion,
		ExportDate: s.now().UTC(),
		Templates:  tpls,
	}, nil
}

// Import loads a bundle into the store according to the options.
func (s *TransferService) Import(ctx context.Context, bundle ExportBundle, opts ImportOptions) (ImportReport, error) {
	if bundle.Version != ExportVersion {
		return ImportReport{}, fmt.Errorf("%w: unsupported bundle version %q", ErrInvalidRequest, bundle.Version)
	}

	var report ImportReport
	now := s.now().UTC()

	for i, tpl := range bundle.Templates {
		if err := validateImported(tpl); err != nil {
			report.Errors = append(report.Errors, itemError(i, tpl.Name, err))
			continue
		}

		if opts.GenerateNewIDs || tpl.ID == "" {
			tpl.ID = uuid.NewString()
		}
		if tpl.CreatedAt.IsZero() {
			tpl.CreatedAt = now
		}
		tpl.UpdatedAt = now

		existing, err := s.repo.Get(ctx, tpl.ID)
		switch {
		case errors.Is(err, store.ErrNotFound):
			if insErr := s.repo.Insert(ctx, &tpl); insErr != nil {
				report.Errors = append(report.Errors, itemError(i, tpl.Name, insErr))
				continue
			}
			report.Imported++

		case err != nil:
			report.Errors = append(report.Errors, itemError(i, tpl.Name, err))

		case opts.Overwrite:
			tpl.CreatedAt = existing.CreatedAt
			if updErr := s.repo.Update(ctx, &tpl); updErr != nil {
				report.Errors = append(report.Errors, itemError(i, tpl.Name, updErr))
				continue
			}
			report.Updated++

		default:
			report.Skipped++
		}
	}

	return report, nil
}

func validateImported(tpl store.CustomTemplate) error {
	if strings.TrimSpace(tpl.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidRequest)
	}
	if !store.ValidTemplateType(tpl.Type) {
		return fmt.Errorf("%w: unknown template type %q", ErrInvalidRequest, tpl.Type)
	}
	if strings.TrimSpace(tpl.Content) == "" {
		return fmt.Errorf("%w: content is required", ErrInvalidRequest)
	}
	return nil
}

func itemError(index int, name string, err error) string {
	if name == "" {
		name = "(unnamed)"
	}
	return fmt.Sprintf("templates[%d] %s: %v", index, name, err)
}
