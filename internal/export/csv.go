// Package export renders assessment records as CSV for downstream
// analysis tools.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/abhisek/readiq/internal/assessment"
)

// Columns is the export header. The order is a compatibility contract
// with downstream consumers and must not change.
var Columns = []string{
	"session_id",
	"timestamp",
	"numeracy_score",
	"reading_score",
	"computer_score",
	"logic_score",
	"communication_score",
	"mindset_score",
	"readiness_level",
	"readiness_title",
}

// timestampLayout keeps exported timestamps second-precise and sortable.
const timestampLayout = time.RFC3339

// WriteCSV emits the header row followed by one row per record.
func WriteCSV(w io.Writer, records []assessment.Record) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, rec := range records {
		row := []string{
			rec.SessionID,
			rec.Timestamp.UTC().Format(timestampLayout),
			strconv.Itoa(rec.Scores[assessment.Numeracy]),
			strconv.Itoa(rec.Scores[assessment.Reading]),
			strconv.Itoa(rec.Scores[assessment.Computer]),
			strconv.Itoa(rec.Scores[assessment.Logic]),
			strconv.Itoa(rec.Scores[assessment.Communication]),
			strconv.Itoa(rec.Scores[assessment.Mindset]),
			strconv.Itoa(rec.ReadinessLevel),
			rec.ReadinessTitle,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row %s: %w", rec.SessionID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
