package status

import (
	"testing"

	"github.com/andesmotors/entregas/fields"
	"github.com/stretchr/testify/assert"
)

func TestBuildTracker(t *testing.T) {
	rec := &fields.Record{
		Billed:                "FACTURADA TOTAL",
		RegistrationProcedure: "en tramite",
		PreDelivery:           "",
	}
	tracker := BuildTracker(rec)

	if assert.Len(t, tracker.Steps, 3) {
		assert.Equal(t, StatusCompleted, tracker.Steps[0].Status)
		assert.Equal(t, "FACTURADA TOTAL", tracker.Steps[0].Detail)

		assert.Equal(t, StatusInProgress, tracker.Steps[1].Status)
		// raw text is preserved as the customer-visible detail
		assert.Equal(t, "en tramite", tracker.Steps[1].Detail)

		assert.Equal(t, StatusPending, tracker.Steps[2].Status)
		assert.Equal(t, "Pendiente", tracker.Steps[2].Detail)
	}
}

func TestTrackerConnectorsFollowDownstreamStep(t *testing.T) {
	rec := &fields.Record{
		Billed:                "OK",
		RegistrationProcedure: "en tramite",
		PreDelivery:           "NO",
	}
	tracker := BuildTracker(rec)
	conns := tracker.Connectors()

	// connector i takes the status of step i+1
	if assert.Len(t, conns, 2) {
		assert.Equal(t, StatusInProgress, conns[0])
		assert.Equal(t, StatusPending, conns[1])
	}
}

func TestTrackerLabels(t *testing.T) {
	tracker := BuildTracker(&fields.Record{})
	labels := []string{}
	for _, s := range tracker.Steps {
		labels = append(labels, s.Label)
	}
	assert.Equal(t, []string{"Facturación", "Patentamiento", "Pre-entrega"}, labels)
}
