package toc

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/ethansocal/math-answers/internal/types"
)

// Line prefixes recognized by Convert.
const (
	reviewPrefix     = "Review Exercises"
	problemSetPrefix = "P.S."
)

// ConvertResult is the output of Convert.
type ConvertResult struct {
	Entries []Entry
	// Skipped counts recognized lines that produced no entry: the page
	// token was not a number, or no chapter had been seen yet.
	Skipped int
}

// Convert turns a plain-text table of contents into entries.
//
// "Review Exercises ... 812" becomes section R of the current chapter,
// "P.S. ... 814" becomes section PS, and a line whose first word is
// "<chapter>.<section>" switches the current chapter and starts that
// section. The page is always the last word on the line. Other lines are
// ignored.
func Convert(r io.Reader, logger *slog.Logger) (*ConvertResult, error) {
	if logger == nil {
		logger = slog.Default()
	}

	res := &ConvertResult{}
	chapter := ""
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		fields := strings.Split(line, " ")

		var section string
		switch {
		case strings.HasPrefix(line, reviewPrefix):
			section = types.SectionReview
		case strings.HasPrefix(line, problemSetPrefix):
			section = types.SectionProblemSet
		default:
			parts := strings.Split(fields[0], ".")
			if len(parts) != 2 {
				continue
			}
			chapter = parts[0]
			section = parts[1]
		}
		if chapter == "" {
			logger.Debug("skipping toc line before first chapter", "line", lineNo, "text", line)
			res.Skipped++
			continue
		}

		page, err := strconv.Atoi(strings.TrimSpace(fields[len(fields)-1]))
		if err != nil {
			logger.Debug("skipping toc line without page number", "line", lineNo, "text", line)
			res.Skipped++
			continue
		}

		res.Entries = append(res.Entries, Entry{
			Page:    page,
			Section: section,
			Chapter: chapter,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read toc text: %w", err)
	}

	logger.Info("converted table of contents", "entries", len(res.Entries), "skipped", res.Skipped)
	return res, nil
}
