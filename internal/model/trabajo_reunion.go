// ABOUTME: TrabajoReunion entity (conference/meeting contributions)

package model

// TipoParticipacion is the kind of contribution presented.
type TipoParticipacion string

const (
	ParticipacionPoster TipoParticipacion = "Poster"
	ParticipacionOral   TipoParticipacion = "Oral"
	ParticipacionOtro   TipoParticipacion = "Otro"
)

// TipoNacionalidad flags the provenance of the event.
type TipoNacionalidad string

const (
	NacionalidadNacional      TipoNacionalidad = "Nacional"
	NacionalidadInternacional TipoNacionalidad = "Internacional"
)

// TrabajoReunion is a contribution to a scientific meeting. InvestigadorID
// is a soft reference to a Personal record of type INVESTIGADOR.
type TrabajoReunion struct {
	ID               string            `json:"id"`
	InvestigadorID   string            `json:"investigadorId" validate:"required"`
	Titulo           string            `json:"titulo" validate:"required"`
	Evento           string            `json:"evento" validate:"required"`
	Fecha            string            `json:"fecha" validate:"required,datetime=2006-01-02"`
	Lugar            string            `json:"lugar,omitempty"`
	Tipo             TipoParticipacion `json:"tipo" validate:"required,oneof=Poster Oral Otro"`
	TipoNacionalidad TipoNacionalidad  `json:"tipoNacionalidad" validate:"required,oneof=Nacional Internacional"`
}

// RecordID implements Identifiable.
func (t *TrabajoReunion) RecordID() string { return t.ID }

// AssignID implements Identifiable.
func (t *TrabajoReunion) AssignID(id string) { t.ID = id }
