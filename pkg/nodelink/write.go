package nodelink

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Write encodes a view as indented JSON and writes it to w.
func Write(w io.Writer, v View) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteFile writes a view to a JSON file at path.
func WriteFile(path string, v View) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(f, v); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
