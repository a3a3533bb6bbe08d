package main

import (
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"podmerge/internal/domain"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

// renderStats lists the action counters of a merge, sorted by action.
func renderStats(stats *domain.MergeStats) string {
	names := make([]string, 0, len(stats.Actions))
	for name := range stats.Actions {
		names = append(names, name)
	}
	slices.Sort(names)

	rows := make([][]string, 0, len(names)+1)
	for _, name := range names {
		rows = append(rows, []string{name, strconv.Itoa(stats.Actions[name])})
	}
	rows = append(rows, []string{"duration", stats.Duration.Round(time.Millisecond).String()})

	return renderTable([]string{"Action", "Count"}, rows, []columnAlignment{alignLeft, alignRight})
}

func renderQueueStats(stats *domain.QueueStats) string {
	rows := [][]string{
		{"processed", strconv.Itoa(stats.Processed)},
		{"failed", strconv.Itoa(stats.Failed)},
		{"skipped", strconv.Itoa(stats.Skipped)},
	}
	return renderTable([]string{"Requests", "Count"}, rows, []columnAlignment{alignLeft, alignRight})
}

func mergeSummary(stats *domain.MergeStats) string {
	return fmt.Sprintf("merge succeeded, %d objects skipped due to conflicts", stats.Skipped)
}
