// ABOUTME: Docencia entity (teaching activities of a researcher)

package model

// GradoAcademico is the academic grade a course is taught at.
type GradoAcademico string

const (
	GradoGrado    GradoAcademico = "Grado"
	GradoPosgrado GradoAcademico = "Posgrado"
	GradoPregrado GradoAcademico = "Pregrado"
)

// RolDocencia is the role held in the teaching activity.
type RolDocencia string

const (
	RolTitular  RolDocencia = "Titular"
	RolAdjunto  RolDocencia = "Adjunto"
	RolJTP      RolDocencia = "JTP" // Jefe de Trabajos Prácticos
	RolAyudante RolDocencia = "Ayudante"
)

// Docencia is a teaching activity. InvestigadorID is a soft reference to a
// Personal record of type INVESTIGADOR.
type Docencia struct {
	ID                  string         `json:"id"`
	InvestigadorID      string         `json:"investigadorId" validate:"required"`
	DenominacionCatedra string         `json:"denominacionCatedra" validate:"required"`
	InstitucionDictada  string         `json:"institucionDictada" validate:"required"`
	GradoAcademico      GradoAcademico `json:"gradoAcademico" validate:"required,oneof=Grado Posgrado Pregrado"`
	RolActividad        RolDocencia    `json:"rolActividad" validate:"required,oneof=Titular Adjunto JTP Ayudante"`
	FechaInicio         string         `json:"fechaInicio" validate:"required,datetime=2006-01-02"`
	FechaFin            string         `json:"fechaFin" validate:"required,datetime=2006-01-02"`
}

// RecordID implements Identifiable.
func (d *Docencia) RecordID() string { return d.ID }

// AssignID implements Identifiable.
func (d *Docencia) AssignID(id string) { d.ID = id }
