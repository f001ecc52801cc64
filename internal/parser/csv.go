package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/docdesk/internal/docstore"
)

// csvBatchSize is the number of data rows per section.
const csvBatchSize = 20

// CSVParser handles CSV files. The header row becomes the description and
// data rows are listed in sections of csvBatchSize.
type CSVParser struct{}

func (p *CSVParser) Parse(r io.Reader, filename string) (*docstore.Document, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	b := newBuilder(filename)
	if len(records) == 0 {
		return b.build(), nil
	}

	headers := records[0]
	b.paragraph("Columns: " + strings.Join(headers, ", "))

	dataRows := records[1:]
	for i := 0; i < len(dataRows); i += csvBatchSize {
		end := min(i+csvBatchSize, len(dataRows))

		var rows []string
		for _, row := range dataRows[i:end] {
			rows = append(rows, formatRow(headers, row))
		}
		b.doc.Sections = append(b.doc.Sections, docstore.Section{
			Heading: fmt.Sprintf("Rows %d-%d", i+2, end+1), // 1-indexed, skip header
			List:    rows,
		})
	}
	return b.build(), nil
}

func formatRow(headers, row []string) string {
	cells := make([]string, 0, len(row))
	for j, cell := range row {
		if j < len(headers) {
			cells = append(cells, headers[j]+": "+cell)
		} else {
			cells = append(cells, cell)
		}
	}
	return strings.Join(cells, ", ")
}
