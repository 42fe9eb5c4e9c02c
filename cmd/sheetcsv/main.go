// Package main provides the CLI entry point for sheetcsv.
package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"sheetcsv/pkg/schedule"
	"sheetcsv/pkg/sheetcsv"
	"sheetcsv/pkg/sheetcsv/engine"
	"sheetcsv/pkg/sheetcsv/models"
)

// defaultInput is used when no input path argument is given.
const defaultInput = "workbook.xlsx"

var (
	sheetName     string
	sheetIndex    int
	allSheets     bool
	includeHidden bool
	overwrite     bool
	encodingName  string
	logLevel      string
	quiet         bool
)

var (
	scheduleStart    string
	scheduleEnd      string
	scheduleInterval int
	scheduleGroups   []string
	scheduleOutput   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sheetcsv [input.xlsx [output]]",
		Short: "Convert spreadsheet workbooks to delimited text files",
		Long: `sheetcsv exports worksheets as CSV files, selecting sheets by name,
index or visibility. Without a selection flag the first visible sheet is
exported; with --all every sheet goes to its own file in an output directory.`,
		Args:         cobra.MaximumNArgs(2),
		RunE:         runConvert,
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVarP(&sheetName, "sheet-name", "n", "", "Export the sheet with this exact name")
	rootCmd.Flags().IntVarP(&sheetIndex, "sheet-index", "s", 0, "Export the sheet at this 1-based position")
	rootCmd.Flags().BoolVarP(&allSheets, "all", "a", false, "Export every sheet to its own file")
	rootCmd.Flags().BoolVar(&includeHidden, "include-hidden", false, "With --all, include hidden sheets")
	rootCmd.Flags().BoolVarP(&overwrite, "overwrite", "f", false, "Replace existing output files")
	rootCmd.Flags().StringVar(&encodingName, "encoding", "utf-8", "Output encoding: utf-8, utf-8-bom, windows-1252")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "warn", "Log level: trace, debug, info, warn, error")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress progress output")

	rootCmd.AddCommand(newScheduleCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runConvert(cmd *cobra.Command, args []string) error {
	logger := newLogger(logLevel)

	mode, err := selectionFromFlags()
	if err != nil {
		return err
	}

	format, err := engine.ParseFormat(encodingName)
	if err != nil {
		return err
	}

	inputPath := defaultInput
	if len(args) > 0 {
		inputPath = args[0]
	}
	outputPath := ""
	if len(args) > 1 {
		outputPath = args[1]
	}

	opts := sheetcsv.Options{
		InputPath:     inputPath,
		OutputPath:    outputPath,
		Mode:          mode,
		IncludeHidden: includeHidden,
		Overwrite:     overwrite,
		Format:        format,
		Logger:        logger,
	}

	if allSheets && !quiet && isatty.IsTerminal(os.Stderr.Fd()) {
		var bar *progressbar.ProgressBar
		opts.OnSelect = func(targets []models.ExportTarget) {
			bar = progressbar.Default(int64(len(targets)), "exporting sheets")
		}
		opts.OnSheet = func(o models.ExportOutcome) {
			if bar != nil && o.Status == models.Written {
				bar.Add(1)
			}
		}
		defer func() {
			if bar != nil {
				bar.Finish()
			}
		}()
	}

	outcomes, err := sheetcsv.Convert(opts)
	if err != nil {
		return err
	}

	logger.Info().Int("sheets", len(outcomes)).Msg("export complete")
	return nil
}

// selectionFromFlags builds the selection mode, rejecting contradictory flag
// combinations before any workbook is opened.
func selectionFromFlags() (sheetcsv.SelectionMode, error) {
	var zero sheetcsv.SelectionMode
	if sheetName != "" && sheetIndex != 0 {
		return zero, fmt.Errorf("cannot combine --sheet-name with --sheet-index")
	}
	if (sheetName != "" || sheetIndex != 0) && allSheets {
		return zero, fmt.Errorf("cannot combine --sheet-name or --sheet-index with --all")
	}

	switch {
	case sheetName != "":
		return sheetcsv.SelectByName(sheetName), nil
	case sheetIndex != 0:
		if sheetIndex < 1 {
			return zero, fmt.Errorf("sheet index must be >= 1, got %d", sheetIndex)
		}
		return sheetcsv.SelectByIndex(sheetIndex), nil
	case allSheets:
		return sheetcsv.SelectAll(), nil
	default:
		return sheetcsv.SelectFirstVisible(), nil
	}
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.WarnLevel
	}
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	return zerolog.New(output).Level(lvl).With().Timestamp().Logger()
}

func newScheduleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Build a blank hierarchical schedule grid as CSV",
		Long: `schedule lays out a time grid with one row per group. Group names may be
hierarchical, with levels separated by " - ", e.g. "Players - Planners - Leads".`,
		Args: cobra.NoArgs,
		RunE: runSchedule,
	}

	cmd.Flags().StringVar(&scheduleStart, "start", "0530", "First time slot (HHMM)")
	cmd.Flags().StringVar(&scheduleEnd, "end", "2400", "Last time slot (HHMM, 2400 for midnight)")
	cmd.Flags().IntVar(&scheduleInterval, "interval", 30, "Slot interval in minutes")
	cmd.Flags().StringArrayVar(&scheduleGroups, "group", nil, "Group name (repeatable)")
	cmd.Flags().StringVarP(&scheduleOutput, "output", "o", "", "Output file path (default: stdout)")

	return cmd
}

func runSchedule(cmd *cobra.Command, args []string) error {
	builder := schedule.NewBuilder()
	if err := builder.SetTimePeriod(scheduleStart, scheduleEnd, scheduleInterval); err != nil {
		return err
	}
	for _, g := range scheduleGroups {
		builder.AddGroup(g)
	}

	if scheduleOutput == "" {
		return builder.WriteCSV(os.Stdout)
	}

	f, err := os.Create(scheduleOutput)
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", scheduleOutput, err)
	}
	if err := builder.WriteCSV(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
