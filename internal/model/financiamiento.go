// ABOUTME: Financiamiento entity (acquired goods/services and their funding)

package model

// Financiamiento is a funded acquisition. Denominacion is fixed once the
// record has been created; the console never offers to edit it.
type Financiamiento struct {
	ID                   string  `json:"id"`
	Denominacion         string  `json:"denominacion" validate:"required"`
	CantidadAdquirida    int     `json:"cantidadAdquirida" validate:"gte=0"`
	MontoInvertido       float64 `json:"montoInvertido" validate:"gte=0"`
	FechaIncorporacion   string  `json:"fechaIncorporacion" validate:"required,datetime=2006-01-02"`
	DescripcionBreve     string  `json:"descripcionBreve"`
	FuenteFinanciamiento string  `json:"fuenteFinanciamiento"`
	Destinatario         string  `json:"destinatario"`
}

// RecordID implements Identifiable.
func (f *Financiamiento) RecordID() string { return f.ID }

// AssignID implements Identifiable.
func (f *Financiamiento) AssignID(id string) { f.ID = id }
