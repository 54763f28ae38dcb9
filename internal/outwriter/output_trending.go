package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/huangsam/prospect/internal/contract"
	"github.com/huangsam/prospect/internal/parquet"
	"github.com/huangsam/prospect/schema"
)

// WriteTrending outputs trending repositories, dispatching based on the
// configured output format.
func WriteTrending(repos []schema.RepoSummary, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, repos)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTrendingCSV(w, repos)
		}, "Wrote CSV")
	case schema.ParquetOut:
		if err := requireOutputFile(cfg); err != nil {
			return err
		}
		records := parquet.TrendingRecordsFromRepos(repos)
		return parquet.WriteTrendingRecordsParquet(records, cfg.OutputFile)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTrendingTable(repos, cfg, duration, w)
		}, "Wrote table")
	}
}

// writeTrendingCSV writes one row per repository.
func writeTrendingCSV(w io.Writer, repos []schema.RepoSummary) error {
	header := []string{"rank", "repository", "language", "stars", "forks", "created_at", "url"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for i, r := range repos {
			record := []string{
				strconv.Itoa(i + 1),
				r.FullName,
				r.Language,
				strconv.Itoa(r.StarCount),
				strconv.Itoa(r.ForkCount),
				r.CreatedAt.Format(contract.DateTimeFormat),
				r.URL,
			}
			if err := csvWriter.Write(record); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
		return nil
	})
}

// writeTrendingTable generates and writes the human-readable table.
func writeTrendingTable(repos []schema.RepoSummary, cfg *contract.Config, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Rank", "Repository", "Language", "Stars", "Created"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	maxWidth := getMaxTableNameWidth(cfg)
	var data [][]string
	for i, r := range repos {
		row := []string{
			strconv.Itoa(i + 1),
			contract.TruncatePath(r.FullName, maxWidth),
			r.Language,
			strconv.Itoa(r.StarCount),
			r.CreatedAt.Format("2006-01-02"),
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Fprintf(writer, "\nFound %d repositories in %.2fs\n", len(repos), duration.Seconds())
	return nil
}
