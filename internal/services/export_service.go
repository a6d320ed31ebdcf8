package services

import (
	"context"
	"fmt"
	"time"

	"favorites-backend/internal/metrics"
	"favorites-backend/internal/models"
	"favorites-backend/internal/repository"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

const (
	ExportSheetName   = "list details"
	ExportContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ListExport is a generated spreadsheet ready to be sent to the client.
type ListExport struct {
	Filename    string
	ContentType string
	Data        []byte
	// ArchiveURL is set when the workbook was also stored in object storage.
	ArchiveURL string
}

type ExportService interface {
	ExportList(ctx context.Context, id uint) (*ListExport, error)
}

// Archiver keeps a copy of a generated export and returns where it lives.
type Archiver interface {
	Archive(ctx context.Context, listID uint, filename string, data []byte) (string, error)
}

type exportService struct {
	store    repository.Store
	archiver Archiver
	logger   *logrus.Logger
	now      func() time.Time
}

// NewExportService builds the export service. archiver may be nil.
func NewExportService(store repository.Store, archiver Archiver, logger *logrus.Logger) ExportService {
	return &exportService{
		store:    store,
		archiver: archiver,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *exportService) ExportList(ctx context.Context, id uint) (*ListExport, error) {
	list, err := s.store.Lists().FindByIDWithFilms(ctx, id)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, ErrListNotFound
	}

	rows := BuildCharacterTable(list)
	data, err := WriteWorkbook(rows)
	if err != nil {
		return nil, err
	}

	export := &ListExport{
		Filename:    fmt.Sprintf("%ddata.xlsx", s.now().UnixMilli()),
		ContentType: ExportContentType,
		Data:        data,
	}
	metrics.ExportsGenerated.Inc()

	if s.archiver != nil {
		url, err := s.archiver.Archive(ctx, list.ID, export.Filename, data)
		if err != nil {
			metrics.ExportsArchived.WithLabelValues("error").Inc()
			s.logger.WithError(err).WithField("list_id", list.ID).Warn("Failed to archive list export")
		} else {
			metrics.ExportsArchived.WithLabelValues("ok").Inc()
			export.ArchiveURL = url
		}
	}

	s.logger.WithFields(logrus.Fields{
		"list_id":  list.ID,
		"rows":     len(rows),
		"filename": export.Filename,
	}).Info("List export generated")

	return export, nil
}

// BuildCharacterTable pivots a list into one row per distinct character name,
// in first-seen order, holding the ", "-joined titles of the films the
// character appears in. Films are walked in list order and characters in
// film order.
func BuildCharacterTable(list *models.List) []models.CharacterFilms {
	var rows []models.CharacterFilms
	index := make(map[string]int)

	for _, film := range list.Films {
		for _, character := range film.Characters {
			if i, ok := index[character.Name]; ok {
				rows[i].Movies += ", " + film.Title
				continue
			}
			index[character.Name] = len(rows)
			rows = append(rows, models.CharacterFilms{
				Character: character.Name,
				Movies:    film.Title,
			})
		}
	}
	return rows
}

// WriteWorkbook renders rows as an xlsx document with a single
// "list details" sheet and Character/Movies header.
func WriteWorkbook(rows []models.CharacterFilms) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ExportSheetName); err != nil {
		return nil, fmt.Errorf("failed to name worksheet: %w", err)
	}

	if err := f.SetSheetRow(ExportSheetName, "A1", &[]interface{}{"Character", "Movies"}); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(ExportSheetName, cell, &[]interface{}{row.Character, row.Movies}); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render workbook: %w", err)
	}
	return buf.Bytes(), nil
}
