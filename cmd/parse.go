package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Roof-ER21/roof-hr-sub004/internal/extract"
)

var parseCmd = &cobra.Command{
	Use:   "parse <text-file>",
	Short: "Extract structured fields from certificate text",
	Long:  "Reads already-extracted document text from a file and prints the parsed certificate as JSON. Byte-to-text conversion happens upstream.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return eris.Wrap(err, "parse: read input file")
		}

		extractor := extract.New(zap.L())
		cert, err := extractor.Parse(string(data))
		if err != nil {
			return eris.Wrap(err, "parse: extract fields")
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(cert)
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
