package display

import (
	"encoding/json"
	"fmt"
)

// Info prints an informational line
func (d *Display) Info(format string, args ...any) {
	fmt.Fprintln(d.out, d.pal.paint(d.pal.Info, fmt.Sprintf(format, args...)))
}

// Error prints err in the error color
func (d *Display) Error(err error) {
	fmt.Fprintln(d.out, d.pal.paint(d.pal.Error, "Error: "+err.Error()))
}

// Text prints s as is
func (d *Display) Text(s string) {
	fmt.Fprintln(d.out, s)
}

// JSON prints v as indented JSON
func (d *Display) JSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		d.Error(fmt.Errorf("formatting JSON: %w", err))
		return
	}
	fmt.Fprintln(d.out, string(data))
}
