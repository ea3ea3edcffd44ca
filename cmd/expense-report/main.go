package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/snehilworks/finance-expense/internal/aggregate"
	"github.com/snehilworks/finance-expense/internal/cli"
	"github.com/snehilworks/finance-expense/internal/core"
	"github.com/snehilworks/finance-expense/internal/service"
	"github.com/snehilworks/finance-expense/internal/store/sqlite"
)

type Params struct {
	View   string `descr:"Report view" alts:"week,month" default:"week" strict:"true"`
	Date   string `descr:"Reference day for the week view (YYYY-MM-DD, default today)"`
	Month  string `descr:"Month for the month view (YYYY-MM, default current)"`
	DBPath string `descr:"Path to the sqlite database file" default:"./data/expense.db"`
}

func main() {
	boa.NewCmdT[Params]("expense-report").
		WithShort("Print weekly or monthly spending reports from the terminal").
		WithRunFunc(func(params *Params) {
			cli.LoadEnvFile()
			logger := cli.SetupLogger()

			st, err := sqlite.New(params.DBPath)
			if err != nil {
				logger.Error("Failed to open store", "error", err, "db_path", params.DBPath)
				os.Exit(1)
			}
			defer st.Close()

			svc := service.New(st)
			ctx := context.Background()

			switch params.View {
			case "month":
				ym := params.Month
				if ym == "" {
					ym = time.Now().UTC().Format(core.MonthLayout)
				}
				summary, err := svc.MonthFor(ctx, ym)
				if err != nil {
					logger.Error("Failed to build month summary", "error", err, "month", ym)
					os.Exit(1)
				}
				printMonth(summary)
			default:
				ref := time.Now().UTC()
				if params.Date != "" {
					d, err := core.ParseDay(params.Date)
					if err != nil {
						fmt.Fprintf(os.Stderr, "invalid date %q: expected YYYY-MM-DD\n", params.Date)
						os.Exit(1)
					}
					ref = d
				}
				summary, err := svc.WeekFor(ctx, ref)
				if err != nil {
					logger.Error("Failed to build week summary", "error", err)
					os.Exit(1)
				}
				printWeek(summary)
			}
		}).
		Run()
}

func printWeek(s aggregate.WeekSummary) {
	fmt.Printf("Week %s to %s\n\n",
		s.Start.Format(core.DayLayout), s.End.Format(core.DayLayout))

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Category", "Count", "Total"})
	for _, g := range s.Groups {
		t.AppendRow(table.Row{g.Category, g.Count, formatAmount(g.Total)})
	}
	t.AppendSeparator()
	t.AppendFooter(table.Row{text.Bold.Sprint("Total"), "", text.Bold.Sprint(formatAmount(s.Total))})
	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatDefault
	t.Style().Format.Footer = text.FormatDefault
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
	})
	t.Render()

	if s.PreviousTotal > 0 {
		change := text.FgGreen.Sprintf("%+.1f%%", s.Change)
		if s.Change > 0 {
			change = text.FgRed.Sprintf("%+.1f%%", s.Change)
		}
		fmt.Printf("\nvs previous week (%s): %s\n", formatAmount(s.PreviousTotal), change)
	}
}

func printMonth(s aggregate.MonthSummary) {
	fmt.Printf("Month %s\n\n", s.YearMonth)

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Category", "Total", "Share"})
	for _, sh := range s.Shares {
		t.AppendRow(table.Row{sh.Category, formatAmount(sh.Total), fmt.Sprintf("%.1f%%", sh.Percent)})
	}
	t.AppendSeparator()
	t.AppendFooter(table.Row{text.Bold.Sprint("Total"), text.Bold.Sprint(formatAmount(s.Total)), ""})
	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatDefault
	t.Style().Format.Footer = text.FormatDefault
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})
	t.Render()

	if len(s.Weeks) > 0 {
		fmt.Println()
		w := table.NewWriter()
		w.SetOutputMirror(os.Stdout)
		w.AppendHeader(table.Row{"Week", "Total"})
		for _, b := range s.Weeks {
			w.AppendRow(table.Row{b.Label, formatAmount(b.Total)})
		}
		w.SetStyle(table.StyleRounded)
		w.Style().Format.Header = text.FormatDefault
		w.SetColumnConfigs([]table.ColumnConfig{
			{Number: 2, Align: text.AlignRight},
		})
		w.Render()
	}
}

func formatAmount(v float64) string {
	return fmt.Sprintf("₹%.2f", v)
}
