// Package export renders the task store in interchange formats.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"gopkg.in/yaml.v3"

	"ltask/internal/store"
)

// record is the serialized shape of a task for json/yaml output.
type record struct {
	ID          uint64 `json:"id" yaml:"id"`
	Description string `json:"description" yaml:"description"`
	Status      string `json:"status" yaml:"status"`
}

// Export renders tasks in the given format.
func Export(tasks []store.Task, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "json":
		return json.MarshalIndent(records(tasks), "", "  ")
	case "yaml":
		return yaml.Marshal(records(tasks))
	case "csv":
		var b strings.Builder
		w := csv.NewWriter(&b)
		_ = w.Write([]string{"id", "status", "description"})
		for _, t := range tasks {
			_ = w.Write([]string{strconv.FormatUint(t.ID, 10), t.StatusWord(), t.Description})
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return nil, err
		}
		return []byte(b.String()), nil
	case "pdf":
		pdf := gofpdf.New("P", "mm", "A4", "")
		pdf.AddPage()
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(40, 10, "Task List")
		pdf.Ln(12)
		pdf.SetFont("Arial", "", 10)
		for _, t := range tasks {
			line := fmt.Sprintf("[%s] %d %s", t.StatusWord(), t.ID, t.Description)
			pdf.MultiCell(0, 6, line, "0", "L", false)
		}
		var buf strings.Builder
		if err := pdf.Output(&buf); err != nil {
			return nil, err
		}
		return []byte(buf.String()), nil
	default:
		return nil, fmt.Errorf("unknown format %s", format)
	}
}

func records(tasks []store.Task) []record {
	out := make([]record, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, record{
			ID:          t.ID,
			Description: t.Description,
			Status:      t.StatusWord(),
		})
	}
	return out
}
