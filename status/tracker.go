package status

import "github.com/andesmotors/entregas/fields"

// pendingPlaceholder is shown when a cell is empty; user-facing copy is
// Spanish like the rest of the page.
const pendingPlaceholder = "Pendiente"

// Step is one stage of the delivery tracker.
type Step struct {
	Key    string `json:"key"`
	Label  string `json:"label"`
	Detail string `json:"detail"`
	Status Status `json:"status"`
}

// Tracker is the three-stage sequence shown to the customer:
// billing, registration procedure, pre-delivery.
type Tracker struct {
	Steps []Step `json:"steps"`
}

// BuildTracker classifies the three tracking cells of a record
// independently. The raw cell text is kept as the step detail.
func BuildTracker(rec *fields.Record) Tracker {
	return Tracker{Steps: []Step{
		newStep("billing", "Facturación", rec.Billed),
		newStep("registration", "Patentamiento", rec.RegistrationProcedure),
		newStep("predelivery", "Pre-entrega", rec.PreDelivery),
	}}
}

func newStep(key, label, raw string) Step {
	detail := raw
	if detail == "" {
		detail = pendingPlaceholder
	}
	return Step{Key: key, Label: label, Detail: detail, Status: Classify(raw)}
}

// Connectors returns the status driving each connector's color. Connector i
// sits between steps i and i+1 and takes the status of the downstream step,
// so it reflects forward progress rather than the step behind it.
func (t Tracker) Connectors() []Status {
	if len(t.Steps) < 2 {
		return nil
	}
	out := make([]Status, 0, len(t.Steps)-1)
	for _, s := range t.Steps[1:] {
		out = append(out, s.Status)
	}
	return out
}
