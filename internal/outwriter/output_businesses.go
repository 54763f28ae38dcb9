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

// WriteBusinesses outputs ranked business profiles, dispatching based on the
// configured output format.
func WriteBusinesses(profiles []schema.BusinessProfile, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, profiles)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeBusinessCSV(w, profiles)
		}, "Wrote CSV")
	case schema.ParquetOut:
		if err := requireOutputFile(cfg); err != nil {
			return err
		}
		records := parquet.BusinessRecordsFromProfiles(profiles)
		return parquet.WriteBusinessRecordsParquet(records, cfg.OutputFile)
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeBusinessTable(profiles, cfg, duration, w)
		}, "Wrote table")
	}
}

// writeBusinessCSV writes one row per profile.
func writeBusinessCSV(w io.Writer, profiles []schema.BusinessProfile) error {
	header := []string{"rank", "owner", "name", "type", "location", "website", "public_repos", "followers", "matched_repos", "star_total"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for i, p := range profiles {
			record := []string{
				strconv.Itoa(i + 1),
				p.OwnerLogin,
				p.DisplayName,
				string(p.AccountType),
				p.Location,
				p.Website,
				strconv.Itoa(p.PublicRepoCount),
				strconv.Itoa(p.FollowerCount),
				strconv.Itoa(len(p.Repositories)),
				strconv.Itoa(p.StarTotal()),
			}
			if err := csvWriter.Write(record); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
		return nil
	})
}

// writeBusinessTable generates and writes the human-readable table.
func writeBusinessTable(profiles []schema.BusinessProfile, cfg *contract.Config, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Rank", "Owner", "Name", "Type", "Repos", "Stars", "Location"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	maxWidth := getMaxTableNameWidth(cfg)
	var data [][]string
	for i, p := range profiles {
		row := []string{
			strconv.Itoa(i + 1),
			contract.TruncatePath(p.OwnerLogin, maxWidth),
			contract.TruncatePath(p.DisplayName, maxWidth),
			string(p.AccountType),
			strconv.Itoa(len(p.Repositories)),
			strconv.Itoa(p.StarTotal()),
			contract.TruncatePath(p.Location, maxWidth),
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Fprintf(writer, "\nFound %d businesses in %.2fs\n", len(profiles), duration.Seconds())
	return nil
}
