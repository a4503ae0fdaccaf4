package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/datamill-labs/sqlfan-cli/internal/core/domain"
	"github.com/datamill-labs/sqlfan-cli/internal/logger"
)

// Output filename convention: run_all_20260103_213522.sql.
// The fixed-width timestamp keeps lexicographic order equal to
// chronological order across runs.
const (
	filenamePrefix  = "run_all_"
	filenameExt     = ".sql"
	timestampLayout = "20060102_150405"
)

const bannerRule = "------------------------------------------------------------"

// Generate assembles the SQLCMD fan-out document for the request.
//
// The document binds USERNAME, PASSWORD and SCRIPT once in a :setvar
// preamble, then emits one self-contained execution block per target
// in ordinal order. Execution blocks reference the variables, never
// the literal values, so the preamble stays the single source of
// truth for credentials. Output is a deterministic function of
// (req, now).
func (s *GeneratorService) Generate(req domain.GenerationRequest, now time.Time) (*domain.GeneratedScript, error) {
	// The reader already rejects empty input; validate again so a
	// caller constructing requests by hand cannot produce an empty or
	// script-less document.
	if err := req.Validate(); err != nil {
		return nil, err
	}

	lines := []string{
		bannerRule,
		"-- MULTI-DATABASE SQLCMD SCRIPT",
		"-- Enable: Query > SQLCMD Mode",
		bannerRule,
		"",
		fmt.Sprintf(`:setvar USERNAME "%s"`, req.Username),
		fmt.Sprintf(`:setvar PASSWORD "%s"`, req.Password),
		fmt.Sprintf(`:setvar SCRIPT "%s"`, req.ScriptPath),
		"",
		bannerRule,
		"-- BEGIN EXECUTION",
		bannerRule,
		"",
		"",
	}

	for _, t := range req.Targets {
		lines = append(lines,
			fmt.Sprintf("PRINT '--- %s ---'", t.Label()),
			fmt.Sprintf(":CONNECT %s -U $(USERNAME) -P $(PASSWORD)", t.Server),
			fmt.Sprintf("USE [%s];", t.Database),
			":r $(SCRIPT)",
			"GO",
			"",
		)
	}

	script := &domain.GeneratedScript{
		Content:  strings.Join(lines, "\n"),
		Filename: Filename(now),
	}

	logger.Debug("assembled script for %d targets as %s", len(req.Targets), script.Filename)
	return script, nil
}

// Filename returns the suggested output filename for a generation at
// the given instant.
func Filename(now time.Time) string {
	return filenamePrefix + now.Format(timestampLayout) + filenameExt
}
