package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/huangsam/prospect/internal/contract"
	"github.com/huangsam/prospect/schema"
)

// WriteAnalysis outputs a repository analysis, dispatching based on the
// configured output format. Parquet is not offered for single-repository
// analyses; there is no row set to export.
func WriteAnalysis(analysis *schema.RepoAnalysis, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, analysis)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeAnalysisCSV(w, analysis)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for analyze")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeAnalysisTable(analysis, cfg, w)
		}, "Wrote table")
	}
}

// writeAnalysisCSV writes one row per indicator plus a summary row.
func writeAnalysisCSV(w io.Writer, analysis *schema.RepoAnalysis) error {
	header := []string{"repository", "indicator", "value"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		name := analysis.Repository.FullName
		for _, key := range schema.AllIndicatorKeys {
			record := []string{name, string(key), strconv.FormatBool(analysis.Indicators[key])}
			if err := csvWriter.Write(record); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
		rows := [][]string{
			{name, "matched_keywords", strings.Join(analysis.MatchedKeywords, "|")},
			{name, "business_score", strconv.Itoa(analysis.BusinessScore)},
		}
		for _, record := range rows {
			if err := csvWriter.Write(record); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
		return nil
	})
}

// writeAnalysisTable generates and writes the human-readable report.
func writeAnalysisTable(analysis *schema.RepoAnalysis, cfg *contract.Config, writer io.Writer) error {
	repo := analysis.Repository
	fmt.Fprintf(writer, "Repository: %s (%d stars, %d forks)\n", repo.FullName, repo.StarCount, repo.ForkCount)
	if repo.Description != "" {
		fmt.Fprintf(writer, "Description: %s\n", repo.Description)
	}
	fmt.Fprintln(writer)

	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Indicator", "Value"})

	var data [][]string
	for _, key := range schema.AllIndicatorKeys {
		data = append(data, []string{string(key), strconv.FormatBool(analysis.Indicators[key])})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	keywords := "(none)"
	if len(analysis.MatchedKeywords) > 0 {
		keywords = strings.Join(analysis.MatchedKeywords, ", ")
	}
	fmt.Fprintf(writer, "\nMatched keywords: %s\n", keywords)

	label := contract.GetPlainLabel(analysis.BusinessScore)
	if cfg.UseColors {
		label = contract.GetColorLabel(analysis.BusinessScore)
	}
	fmt.Fprintf(writer, "Business score: %d (%s)\n", analysis.BusinessScore, label)
	return nil
}
