package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Status
	}{
		{"empty", "", StatusPending},
		{"whitespace only", "   ", StatusPending},
		{"sheet NA sentinel", "#N/A", StatusPending},
		{"spanish NA sentinel", "#N/D", StatusPending},
		{"no lowercase", "no", StatusPending},
		{"no uppercase", "NO", StatusPending},
		{"no padded", "  no  ", StatusPending},
		{"false", "FALSE", StatusPending},
		{"no enviado", "No Enviado", StatusPending},
		{"pendiente", "pendiente", StatusPending},
		{"ok", "ok", StatusCompleted},
		{"si", "SI", StatusCompleted},
		{"true", "true", StatusCompleted},
		{"listo", "Listo", StatusCompleted},
		{"finalizado", "FINALIZADO", StatusCompleted},
		{"completado", "completado", StatusCompleted},
		{"facturada substring", "facturada parcial", StatusCompleted},
		{"facturada with date", "FACTURADA 12/03", StatusCompleted},
		{"free text falls through", "en tramite", StatusInProgress},
		{"another free text", "esperando repuestos", StatusInProgress},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.text))
		})
	}
}

// the classifier must be total: arbitrary junk never panics and always
// lands in a valid bucket.
func TestClassifyIsTotal(t *testing.T) {
	inputs := []string{"\x00\xff", "ñandú", "123456", "\tNO\n", "OK OK", "#n/a"}
	for _, in := range inputs {
		got := Classify(in)
		if got != StatusPending && got != StatusInProgress && got != StatusCompleted {
			t.Fatalf("Classify(%q) = %q, not a valid status", in, got)
		}
	}
}

func TestStatusWeight(t *testing.T) {
	assert.Greater(t, StatusCompleted.Weight(), StatusInProgress.Weight())
	assert.Greater(t, StatusInProgress.Weight(), StatusPending.Weight())
}

func TestVocabulariesDoNotOverlap(t *testing.T) {
	seen := map[string]bool{}
	for _, v := range NegativeVocabulary {
		seen[v] = true
	}
	for _, v := range PositiveVocabulary {
		assert.Falsef(t, seen[v], "%q present in both vocabularies", v)
	}
}
