package services

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/datamill-labs/sqlfan-cli/internal/core/domain"
	"github.com/datamill-labs/sqlfan-cli/internal/logger"
)

// Required CSV column names. The match is case-sensitive.
const (
	columnServer   = "server"
	columnDatabase = "database"
)

// ReadTargets parses (server, database) pairs from CSV data.
//
// The header row is mandatory and must contain "server" and "database"
// columns in any order; unrecognised columns are ignored. Values are
// whitespace-trimmed. Rows whose fields are all blank are skipped;
// a row with an empty server or database value aborts the parse with
// a FormatError naming the row, because a fan-out script that silently
// skips a server is worse than no script at all.
func (s *GeneratorService) ReadTargets(r io.Reader) ([]domain.Target, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, domain.ErrNoTargets
	}
	if err != nil {
		return nil, &domain.FormatError{Reason: fmt.Sprintf("reading header: %v", err)}
	}

	serverIdx, databaseIdx := -1, -1
	for i, name := range header {
		if i == 0 {
			// Excel and friends prepend a UTF-8 BOM.
			name = strings.TrimPrefix(name, "\ufeff")
		}
		switch name {
		case columnServer:
			serverIdx = i
		case columnDatabase:
			databaseIdx = i
		}
	}
	if serverIdx < 0 {
		return nil, &domain.FormatError{Column: columnServer}
	}
	if databaseIdx < 0 {
		return nil, &domain.FormatError{Column: columnDatabase}
	}

	var targets []domain.Target
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &domain.FormatError{
				Row:    len(targets) + 1,
				Reason: fmt.Sprintf("unparseable row: %v", err),
			}
		}
		if blankRecord(record) {
			// Trailing blank lines in hand-edited CSVs.
			continue
		}

		server := fieldValue(record, serverIdx)
		database := fieldValue(record, databaseIdx)
		if server == "" {
			return nil, &domain.FormatError{Row: len(targets) + 1, Reason: "empty server value"}
		}
		if database == "" {
			return nil, &domain.FormatError{Row: len(targets) + 1, Reason: "empty database value"}
		}

		targets = append(targets, domain.Target{
			Server:   server,
			Database: database,
			Ordinal:  len(targets) + 1,
		})
	}

	if len(targets) == 0 {
		return nil, domain.ErrNoTargets
	}

	logger.Debug("parsed %d targets from csv", len(targets))
	return targets, nil
}

// fieldValue returns the trimmed value at idx, or "" for short rows.
func fieldValue(record []string, idx int) string {
	if idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

func blankRecord(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}
