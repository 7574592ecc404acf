// Package main provides the CLI entry point for stickerfill.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/plcops/stickerfill/pkg/stickerfill"
	"github.com/plcops/stickerfill/pkg/stickerfill/office"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "stickerfill",
		Short:         "Copy LOTO sticker data from the tracking workbook into the information sticker slides",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(fillCmd(), checkCmd())

	if err := rootCmd.Execute(); err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}
}

func fillCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fill",
		Short: "Fill the presentation shapes from the live workbook",
		Long: `fill attaches to running Excel and PowerPoint instances (starting them if
needed), opens the deployed workbook and presentation, and copies every
sticker row into its placeholder shapes.`,
		Args: cobra.NoArgs,
		RunE: runFill,
	}
}

func runFill(cmd *cobra.Command, args []string) error {
	opts := stickerfill.DefaultOptions()

	done := office.InitCOM()
	defer done()

	excel, err := office.Attach("Excel.Application")
	if err != nil {
		return err
	}
	defer excel.Close()

	workbook, err := excel.OpenWorkbook(stickerfill.WorkbookPath)
	if err != nil {
		return fmt.Errorf("open workbook (if it lives on SharePoint or OneDrive, sync it locally first): %w", err)
	}
	defer workbook.Close()

	sheet, err := workbook.Worksheet(stickerfill.SheetName)
	if err != nil {
		return err
	}
	defer sheet.Close()

	powerpoint, err := office.Attach("PowerPoint.Application")
	if err != nil {
		return err
	}
	defer powerpoint.Close()

	deck, err := powerpoint.OpenPresentation(stickerfill.PresentationPath)
	if err != nil {
		return err
	}
	defer deck.Close()

	rep := stickerfill.NewReporter(os.Stdout)
	if err := stickerfill.Fill(sheet, deck, opts, rep); err != nil {
		return err
	}
	fmt.Println("stickers updated")
	return nil
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Read the workbook file and print what a fill run would write",
		Long: `check opens the workbook file directly, without Excel or PowerPoint, and
prints the text each placeholder shape would receive. Use it to validate the
sheet before touching the presentation.`,
		Args: cobra.NoArgs,
		RunE: runCheck,
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	opts := stickerfill.DefaultOptions()

	sheet, err := office.OpenXLSXWorksheet(stickerfill.WorkbookPath, stickerfill.SheetName)
	if err != nil {
		return err
	}
	defer sheet.Close()

	return stickerfill.Check(sheet, opts, os.Stdout)
}
