package fields

import "strings"

// Record is one sale row from the tracking spreadsheet, keyed by the
// customer's national ID. Every field is free text; empty means the back
// office has not filled the cell yet. Columns we do not recognize are kept
// in Extra so a new spreadsheet column never breaks a lookup.
type Record struct {
	ID                    string            `json:"id"`
	Salesperson           string            `json:"salesperson"`
	Customer              string            `json:"customer"`
	SaleDate              string            `json:"sale_date"`
	Billed                string            `json:"billed"`
	Registration          string            `json:"registration"`
	RegistrationProcedure string            `json:"registration_procedure"`
	PatentDate            string            `json:"patent_date"`
	Patented              string            `json:"patented"`
	PreDeliveries         string            `json:"pre_deliveries"`
	PreDelivery           string            `json:"pre_delivery"`
	Extra                 map[string]string `json:"-"`
}

// headerAliases maps normalized spreadsheet headers to Record fields. The
// sheet has lived through several column renames (Spanish and English), so
// both spellings stay recognized.
var headerAliases = map[string]func(r *Record, v string){
	"ID":                     func(r *Record, v string) { r.ID = v },
	"DNI":                    func(r *Record, v string) { r.ID = v },
	"SALESPERSON":            func(r *Record, v string) { r.Salesperson = v },
	"VENDEDOR":               func(r *Record, v string) { r.Salesperson = v },
	"CUSTOMER":               func(r *Record, v string) { r.Customer = v },
	"CLIENTE":                func(r *Record, v string) { r.Customer = v },
	"SALE DATE":              func(r *Record, v string) { r.SaleDate = v },
	"FECHA VENTA":            func(r *Record, v string) { r.SaleDate = v },
	"BILLED":                 func(r *Record, v string) { r.Billed = v },
	"FACTURADO":              func(r *Record, v string) { r.Billed = v },
	"FACTURACION":            func(r *Record, v string) { r.Billed = v },
	"REGISTRATION":           func(r *Record, v string) { r.Registration = v },
	"PATENTE":                func(r *Record, v string) { r.Registration = v },
	"REGISTRATION PROCEDURE": func(r *Record, v string) { r.RegistrationProcedure = v },
	"TRAMITE PATENTE":        func(r *Record, v string) { r.RegistrationProcedure = v },
	"PATENT DATE":            func(r *Record, v string) { r.PatentDate = v },
	"FECHA PATENTE":          func(r *Record, v string) { r.PatentDate = v },
	"PATENTED":               func(r *Record, v string) { r.Patented = v },
	"PATENTADO":              func(r *Record, v string) { r.Patented = v },
	"PRE-DELIVERIES":         func(r *Record, v string) { r.PreDeliveries = v },
	"PRE-ENTREGAS":           func(r *Record, v string) { r.PreDeliveries = v },
	"PRE-DELIVERY":           func(r *Record, v string) { r.PreDelivery = v },
	"PRE-ENTREGA":            func(r *Record, v string) { r.PreDelivery = v },
}

// RecordFromRow builds a Record out of a sheet row using the header row for
// column names. Short rows are fine: the sheet API drops trailing empty
// cells, so missing columns simply stay empty.
func RecordFromRow(headers, row []string) *Record {
	rec := &Record{}
	for i, h := range headers {
		if i >= len(row) {
			break
		}
		value := strings.TrimSpace(row[i])
		key := normalizeHeader(h)
		if assign, ok := headerAliases[key]; ok {
			assign(rec, value)
			continue
		}
		if value != "" {
			if rec.Extra == nil {
				rec.Extra = map[string]string{}
			}
			rec.Extra[strings.TrimSpace(h)] = value
		}
	}
	return rec
}

func normalizeHeader(h string) string {
	key := strings.ToUpper(strings.TrimSpace(h))
	// the sheet is inconsistent about accents on "Facturación" etc.
	replacer := strings.NewReplacer("Á", "A", "É", "E", "Í", "I", "Ó", "O", "Ú", "U")
	return replacer.Replace(key)
}

// MaskID keeps the last three digits of a national ID for audit logs, so
// operators can correlate attempts without storing the full document number.
func MaskID(id string) string {
	id = strings.TrimSpace(id)
	if len(id) <= 3 {
		return strings.Repeat("*", len(id))
	}
	return strings.Repeat("*", len(id)-3) + id[len(id)-3:]
}
