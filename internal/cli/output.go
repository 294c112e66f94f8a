package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// writeJSON encodes v as indented JSON to path, or to w when path is empty.
func writeJSON(w io.Writer, path string, v any) error {
	if path == "" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// emit writes v as JSON when common asks for it and otherwise calls styled.
// A report written to a file is announced on w.
func emit(w io.Writer, common commonOpts, v any, styled func()) error {
	if !common.wantsJSON() {
		styled()
		return nil
	}
	if err := writeJSON(w, common.output, v); err != nil {
		return err
	}
	if common.output != "" {
		printSuccess(w, "Wrote report")
		printFile(w, common.output)
	}
	return nil
}
