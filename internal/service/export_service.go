package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/wordup-api/internal/models"
	"github.com/noah-isme/wordup-api/pkg/export"
	appErrors "github.com/noah-isme/wordup-api/pkg/errors"
)

// Formats accepted by ExportWords.
const (
	// ExportFormatCSV is the default when no format is requested.
	ExportFormatCSV = "csv"
	ExportFormatPDF = "pdf"
)

var wordExportHeaders = []string{"word_id", "content", "speech", "meaning", "is_wrong"}

type wordLister interface {
	List(ctx context.Context) ([]models.Word, error)
}

type renderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
	ContentType() string
	Extension() string
}

// ExportFile is a rendered download.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportService renders the word list into downloadable files.
type ExportService struct {
	words     wordLister
	renderers map[string]renderer
	logger    *zap.Logger
	now       func() time.Time
}

// NewExportService constructs an ExportService. Nil renderers fall back to the defaults.
func NewExportService(words wordLister, csv, pdf renderer, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter("", nil)
	}
	return &ExportService{
		words:     words,
		renderers: map[string]renderer{ExportFormatCSV: csv, ExportFormatPDF: pdf},
		logger:    logger,
		now:       time.Now,
	}
}

// ExportWords renders every word in the requested format. An empty format means CSV.
func (s *ExportService) ExportWords(ctx context.Context, format string) (*ExportFile, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = ExportFormatCSV
	}
	r, ok := s.renderers[format]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unsupported export format: "+format)
	}

	words, err := s.words.List(ctx)
	if err != nil {
		return nil, err
	}

	data, err := r.Render(wordDataset(words), "Word List")
	if err != nil {
		return nil, internalError(err, "failed to render export")
	}

	s.logger.Info("word list exported", zap.String("format", format), zap.Int("rows", len(words)))
	return &ExportFile{
		Filename:    fmt.Sprintf("words_%s.%s", s.now().UTC().Format("20060102_150405"), r.Extension()),
		ContentType: r.ContentType(),
		Data:        data,
	}, nil
}

func wordDataset(words []models.Word) export.Dataset {
	rows := make([]map[string]string, 0, len(words))
	for _, w := range words {
		speech := ""
		if w.Speech != nil {
			speech = *w.Speech
		}
		rows = append(rows, map[string]string{
			"word_id":  strconv.FormatInt(w.ID, 10),
			"content":  w.Content,
			"speech":   speech,
			"meaning":  w.Meaning,
			"is_wrong": strconv.FormatBool(w.IsWrong),
		})
	}
	return export.Dataset{Headers: wordExportHeaders, Rows: rows}
}
