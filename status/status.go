// Package status derives delivery progress from the free-text cells our
// back office keeps in the tracking spreadsheet. The cells hold whatever the
// salespeople type, so classification works off known vocabularies with a
// catch-all for everything else.
package status

import "strings"

// Status is the classification of a single tracking cell.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// naSentinel is what the sheet exports for a broken VLOOKUP.
const naSentinel = "#N/A"

// NegativeVocabulary are the cell values that mean "not started yet".
// Checked before the positive set: a negative match always wins.
var NegativeVocabulary = []string{
	"NO",
	"FALSE",
	"NO ENVIADO",
	"#N/D",
	"PENDIENTE",
}

// PositiveVocabulary are the cell values that mean "done".
var PositiveVocabulary = []string{
	"OK",
	"LISTO",
	"FINALIZADO",
	"COMPLETADO",
	"SI",
	"TRUE",
}

// completedSubstring marks invoiced sales regardless of the rest of the cell,
// e.g. "FACTURADA PARCIAL" or "facturada 12/03".
const completedSubstring = "FACTURADA"

// Classify maps a raw cell value to a Status. It is total: any input,
// including empty strings and the #N/A sentinel, yields a valid Status.
func Classify(text string) Status {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || trimmed == naSentinel {
		return StatusPending
	}
	upper := strings.ToUpper(trimmed)
	for _, v := range NegativeVocabulary {
		if upper == v {
			return StatusPending
		}
	}
	for _, v := range PositiveVocabulary {
		if upper == v {
			return StatusCompleted
		}
	}
	if strings.Contains(upper, completedSubstring) {
		return StatusCompleted
	}
	return StatusInProgress
}

func (s Status) String() string {
	return string(s)
}

// Weight orders statuses by progress: pending < in-progress < completed.
func (s Status) Weight() int {
	switch s {
	case StatusCompleted:
		return 2
	case StatusInProgress:
		return 1
	default:
		return 0
	}
}

// IsCompleted reports whether the step is done.
func (s Status) IsCompleted() bool {
	return s == StatusCompleted
}
