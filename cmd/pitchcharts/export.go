package main

import (
	"github.com/spf13/cobra"

	"github.com/midbel/pitchcharts/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export [chart...]",
	Short: "Export chart datasets to an Excel workbook",
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := selectCharts(args)
		if err != nil {
			return err
		}
		file, _ := cmd.Flags().GetString("file")
		if err := export.SaveAs(file, list...); err != nil {
			return err
		}
		logger.Info("datasets exported", "file", file, "charts", len(list))
		return nil
	},
}

func init() {
	exportCmd.Flags().String("file", "pitchcharts.xlsx", "workbook file")
}
