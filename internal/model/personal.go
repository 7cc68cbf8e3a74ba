// ABOUTME: Personal entity with its four subtype variants
// ABOUTME: Tagged union in memory, flat JSON object on the wire

package model

import (
	"encoding/json"
	"fmt"
)

// PersonalType discriminates the four Personal variants.
type PersonalType string

const (
	TipoInvestigador PersonalType = "INVESTIGADOR"
	TipoProfesional  PersonalType = "PROFESIONAL"
	TipoPTAA         PersonalType = "PTAA" // Personal Técnico, Administrativo y de Apoyo
	TipoBecario      PersonalType = "BECARIO"
)

// Categoria is the academic category of a researcher.
type Categoria string

const (
	CategoriaA Categoria = "Resolución A"
	CategoriaB Categoria = "Resolución B"
	CategoriaD Categoria = "Resolución D"
	CategoriaE Categoria = "Resolución E"
	CategoriaF Categoria = "Resolución F"
	CategoriaG Categoria = "Resolución G"
)

// Incentivos is the researcher incentive program tier.
type Incentivos string

const (
	IncentivosI  Incentivos = "I"
	IncentivosII Incentivos = "II"
)

// Dedicacion is the researcher dedication level.
type Dedicacion string

const (
	DedicacionSimple        Dedicacion = "Simple"
	DedicacionExclusiva     Dedicacion = "Exclusiva"
	DedicacionSemiexclusiva Dedicacion = "Semiexclusiva"
)

// TipoPersonalApoyo is the sub-role of technical/administrative/support staff.
type TipoPersonalApoyo string

const (
	ApoyoTecnico        TipoPersonalApoyo = "Técnico"
	ApoyoAdministrativo TipoPersonalApoyo = "Administrativo"
	ApoyoApoyo          TipoPersonalApoyo = "Apoyo"
)

// TipoFormacion flags whether a grant holder is a scholarship holder or
// staff in formation.
type TipoFormacion string

const (
	FormacionBecario  TipoFormacion = "Becario"
	FormacionPersonal TipoFormacion = "Personal en Formación"
)

// InvestigadorDetalle carries the researcher-specific fields.
type InvestigadorDetalle struct {
	CategoriaUtn       Categoria  `validate:"omitempty,oneof='Resolución A' 'Resolución B' 'Resolución D' 'Resolución E' 'Resolución F' 'Resolución G'"`
	ProgramaIncentivos Incentivos `validate:"omitempty,oneof=I II"`
	Dedicacion         Dedicacion `validate:"omitempty,oneof=Simple Exclusiva Semiexclusiva"`
	// ProyectoCoordinaID optionally references the Proyecto this researcher
	// coordinates. Soft reference; may be empty or dangling.
	ProyectoCoordinaID string
}

// PTAADetalle carries the fields of technical/administrative/support staff.
type PTAADetalle struct {
	TipoPersonal TipoPersonalApoyo `validate:"required,oneof=Técnico Administrativo Apoyo"`
	FechaInicio  string            `validate:"omitempty,datetime=2006-01-02"`
	FechaFin     string            `validate:"omitempty,datetime=2006-01-02"`
}

// BecarioDetalle carries the fields of scholarship holders / trainees.
type BecarioDetalle struct {
	FuenteFinanciamiento string
	TipoFormacion        TipoFormacion `validate:"required,oneof=Becario 'Personal en Formación'"`
}

// Personal is a group member. Exactly one of the variant pointers matching
// Tipo is populated (Profesional carries no extra fields, so all three are
// nil in that case).
type Personal struct {
	ID             string
	NombreApellido string       `validate:"required"`
	HorasSemanales int          `validate:"gte=0"`
	Tipo           PersonalType `validate:"required,oneof=INVESTIGADOR PROFESIONAL PTAA BECARIO"`

	Investigador *InvestigadorDetalle
	PTAA         *PTAADetalle
	Becario      *BecarioDetalle
}

// RecordID implements Identifiable.
func (p *Personal) RecordID() string { return p.ID }

// AssignID implements Identifiable.
func (p *Personal) AssignID(id string) { p.ID = id }

// SetTipo switches the subtype discriminator. Variants that do not match
// the new subtype are cleared, and the matching variant is allocated empty
// if absent, so a draft never carries fields from a previous subtype.
func (p *Personal) SetTipo(t PersonalType) {
	p.Tipo = t
	if t != TipoInvestigador {
		p.Investigador = nil
	} else if p.Investigador == nil {
		p.Investigador = &InvestigadorDetalle{}
	}
	if t != TipoPTAA {
		p.PTAA = nil
	} else if p.PTAA == nil {
		p.PTAA = &PTAADetalle{}
	}
	if t != TipoBecario {
		p.Becario = nil
	} else if p.Becario == nil {
		p.Becario = &BecarioDetalle{}
	}
}

// personalWire is the flat JSON shape shared with the REST API and the
// persisted mock store.
type personalWire struct {
	ID             string       `json:"id"`
	NombreApellido string       `json:"nombreApellido"`
	HorasSemanales int          `json:"horasSemanales"`
	Tipo           PersonalType `json:"tipo"`

	// INVESTIGADOR
	CategoriaUtn       *Categoria  `json:"categoriaUtn,omitempty"`
	ProgramaIncentivos *Incentivos `json:"programaIncentivos,omitempty"`
	Dedicacion         *Dedicacion `json:"dedicacion,omitempty"`
	ProyectoCoordinaID *string     `json:"proyectoCoordinaId,omitempty"`

	// PTAA
	TipoPersonal *TipoPersonalApoyo `json:"tipoPersonal,omitempty"`
	FechaInicio  *string            `json:"fechaInicio,omitempty"`
	FechaFin     *string            `json:"fechaFin,omitempty"`

	// BECARIO
	FuenteFinanciamiento *string        `json:"fuenteFinanciamiento,omitempty"`
	TipoFormacion        *TipoFormacion `json:"tipoFormacion,omitempty"`
}

// MarshalJSON flattens the active variant into the wire shape. Fields of
// inactive variants are never emitted.
func (p Personal) MarshalJSON() ([]byte, error) {
	w := personalWire{
		ID:             p.ID,
		NombreApellido: p.NombreApellido,
		HorasSemanales: p.HorasSemanales,
		Tipo:           p.Tipo,
	}
	switch p.Tipo {
	case TipoInvestigador:
		if d := p.Investigador; d != nil {
			if d.CategoriaUtn != "" {
				w.CategoriaUtn = &d.CategoriaUtn
			}
			if d.ProgramaIncentivos != "" {
				w.ProgramaIncentivos = &d.ProgramaIncentivos
			}
			if d.Dedicacion != "" {
				w.Dedicacion = &d.Dedicacion
			}
			if d.ProyectoCoordinaID != "" {
				w.ProyectoCoordinaID = &d.ProyectoCoordinaID
			}
		}
	case TipoPTAA:
		if d := p.PTAA; d != nil {
			w.TipoPersonal = &d.TipoPersonal
			if d.FechaInicio != "" {
				w.FechaInicio = &d.FechaInicio
			}
			if d.FechaFin != "" {
				w.FechaFin = &d.FechaFin
			}
		}
	case TipoBecario:
		if d := p.Becario; d != nil {
			w.FuenteFinanciamiento = &d.FuenteFinanciamiento
			w.TipoFormacion = &d.TipoFormacion
		}
	}
	return json.Marshal(w)
}

// UnmarshalJSON re-nests the flat wire shape. Only the variant selected by
// the discriminator is populated; stray fields from other variants are
// dropped, which keeps the one-variant invariant even for sloppy payloads.
func (p *Personal) UnmarshalJSON(data []byte) error {
	var w personalWire
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("decoding personal: %w", err)
	}

	*p = Personal{
		ID:             w.ID,
		NombreApellido: w.NombreApellido,
		HorasSemanales: w.HorasSemanales,
		Tipo:           w.Tipo,
	}

	switch w.Tipo {
	case TipoInvestigador:
		d := &InvestigadorDetalle{}
		if w.CategoriaUtn != nil {
			d.CategoriaUtn = *w.CategoriaUtn
		}
		if w.ProgramaIncentivos != nil {
			d.ProgramaIncentivos = *w.ProgramaIncentivos
		}
		if w.Dedicacion != nil {
			d.Dedicacion = *w.Dedicacion
		}
		if w.ProyectoCoordinaID != nil {
			d.ProyectoCoordinaID = *w.ProyectoCoordinaID
		}
		p.Investigador = d
	case TipoPTAA:
		d := &PTAADetalle{}
		if w.TipoPersonal != nil {
			d.TipoPersonal = *w.TipoPersonal
		}
		if w.FechaInicio != nil {
			d.FechaInicio = *w.FechaInicio
		}
		if w.FechaFin != nil {
			d.FechaFin = *w.FechaFin
		}
		p.PTAA = d
	case TipoBecario:
		d := &BecarioDetalle{}
		if w.FuenteFinanciamiento != nil {
			d.FuenteFinanciamiento = *w.FuenteFinanciamiento
		}
		if w.TipoFormacion != nil {
			d.TipoFormacion = *w.TipoFormacion
		}
		p.Becario = d
	}
	return nil
}
