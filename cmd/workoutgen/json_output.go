package main

import (
	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/spf13/cobra"
)

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	out := cmd.OutOrStdout()
	if err := json.MarshalWrite(out, v, jsontext.WithIndent("  ")); err != nil {
		return err
	}
	_, err := out.Write([]byte("\n"))
	return err
}
