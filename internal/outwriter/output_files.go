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

// WriteFiles outputs tree listing results, dispatching based on the
// configured output format.
func WriteFiles(files []schema.FileEntry, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, files)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeFilesCSV(w, files)
		}, "Wrote CSV")
	case schema.ParquetOut:
		if err := requireOutputFile(cfg); err != nil {
			return err
		}
		records := parquet.FileRecordsFromEntries(files)
		return parquet.WriteFileRecordsParquet(records, cfg.OutputFile)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeFilesTable(files, cfg, duration, w)
		}, "Wrote table")
	}
}

// WriteContent prints a single decoded file. Text mode emits the raw
// content; JSON emits the full FileContent record.
func WriteContent(content *schema.FileContent, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, content)
		}, "Wrote JSON")
	case schema.TextOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			_, err := io.WriteString(w, content.Content)
			return err
		}, "Wrote content")
	default:
		return fmt.Errorf("%s output is not supported for fetch", cfg.Output)
	}
}

// writeFilesCSV writes one row per file entry.
func writeFilesCSV(w io.Writer, files []schema.FileEntry) error {
	header := []string{"path", "name", "extension", "size_bytes", "download_url"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, f := range files {
			record := []string{
				f.Path,
				f.Name,
				f.Extension,
				strconv.FormatInt(f.SizeBytes, 10),
				f.DownloadURL,
			}
			if err := csvWriter.Write(record); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
		return nil
	})
}

// writeFilesTable generates and writes the human-readable table.
func writeFilesTable(files []schema.FileEntry, cfg *contract.Config, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Path", "Ext", "Size"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	maxWidth := getMaxTableNameWidth(cfg)
	var data [][]string
	var totalBytes int64
	for _, f := range files {
		data = append(data, []string{
			contract.TruncatePath(f.Path, maxWidth),
			f.Extension,
			strconv.FormatInt(f.SizeBytes, 10),
		})
		totalBytes += f.SizeBytes
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Fprintf(writer, "\nListed %d files (%d bytes) in %.2fs\n", len(files), totalBytes, duration.Seconds())
	return nil
}
