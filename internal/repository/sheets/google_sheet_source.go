package sheets

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/adiouf/finsight/internal/config"
	"github.com/adiouf/finsight/internal/dataset"
	"github.com/adiouf/finsight/internal/domain/models"
)

// Source loads the financial dataset from an external spreadsheet.
type Source interface {
	Load(ctx context.Context) ([]models.FinancialRecord, error)
}

// GoogleSheetSource implements Source using the official Google Sheets API.
// The sheet is read-only input: the first row is the header, the remaining
// rows the figures, in the same layout as the bundled CSV.
type GoogleSheetSource struct {
	service       *sheetsapi.Service
	spreadsheetID string
	readRange     string
	logger        *zap.Logger
}

// NewGoogleSheetSource builds a Google Sheets backed dataset source.
func NewGoogleSheetSource(ctx context.Context, cfg config.SheetsConfig, logger *zap.Logger) (Source, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	service, err := sheetsapi.NewService(ctx, option.WithCredentialsFile(cfg.CredentialsPath), option.WithScopes(sheetsapi.SpreadsheetsReadonlyScope))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sheets client: %w", err)
	}

	return &GoogleSheetSource{
		service:       service,
		spreadsheetID: cfg.SpreadsheetID,
		readRange:     cfg.ReadRange,
		logger:        logger,
	}, nil
}

// Load fetches the configured range and converts it into financial records.
func (s *GoogleSheetSource) Load(ctx context.Context) ([]models.FinancialRecord, error) {
	if s.readRange == "" {
		return nil, fmt.Errorf("read range must not be empty")
	}

	resp, err := s.service.Spreadsheets.Values.Get(s.spreadsheetID, s.readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read range %s: %w", s.readRange, err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			cells = append(cells, fmt.Sprint(cell))
		}
		rows = append(rows, cells)
	}

	records, err := dataset.ParseTable(rows)
	if err != nil {
		return nil, fmt.Errorf("parse sheet %s: %w", s.readRange, err)
	}

	s.logger.Debug("dataset loaded from sheet", zap.String("range", s.readRange), zap.Int("records", len(records)))
	return records, nil
}
