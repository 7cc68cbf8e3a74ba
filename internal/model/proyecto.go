// ABOUTME: Proyecto entity (research projects of the group)

package model

// Proyecto is a research project. FechaFinalizacion may be empty (ongoing
// project); when present it must not precede FechaInicio, which the forms
// layer checks before any upsert.
type Proyecto struct {
	ID                   string `json:"id"`
	NombreProyecto       string `json:"nombreProyecto" validate:"required"`
	TipoProyecto         string `json:"tipoProyecto" validate:"required"`
	CodigoProyecto       string `json:"codigoProyecto" validate:"required"`
	FechaInicio          string `json:"fechaInicio" validate:"required,datetime=2006-01-02"`
	FechaFinalizacion    string `json:"fechaFinalizacion" validate:"omitempty,datetime=2006-01-02"`
	FuenteFinanciamiento string `json:"fuenteFinanciamiento"`
}

// RecordID implements Identifiable.
func (p *Proyecto) RecordID() string { return p.ID }

// AssignID implements Identifiable.
func (p *Proyecto) AssignID(id string) { p.ID = id }
