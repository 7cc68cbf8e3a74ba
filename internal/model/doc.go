// Package model defines the entity records managed by the GIDAS admin
// system and their JSON wire representation.
//
// # Entities
//
//   - Personal: group member with a subtype discriminator (Tipo) selecting
//     exactly one variant shape (Investigador, Profesional, PTAA, Becario)
//   - Financiamiento: acquired goods/services funded by the group
//   - Proyecto: research project
//   - Docencia: teaching activity of a researcher
//   - TrabajoReunion: conference/meeting contribution of a researcher
//   - Uct: the singleton organizational-unit record (no id)
//
// All list entities carry an opaque string id assigned on first upsert.
// Date fields travel as YYYY-MM-DD strings (see internal/dates).
//
// # Soft references
//
// Docencia.InvestigadorID and TrabajoReunion.InvestigadorID reference a
// Personal record of type INVESTIGADOR by id, and
// InvestigadorDetalle.ProyectoCoordinaID optionally references a Proyecto.
// No referential integrity is enforced anywhere; a dangling id simply
// resolves to a placeholder name at display time.
//
// # Personal as a tagged union
//
// The wire format is flat (variant fields live next to the base fields),
// but in memory each variant is a separate struct and at most one of them
// is non-nil. Custom JSON marshaling flattens and re-nests the variant,
// and SetTipo clears the variants that do not match the new discriminator.
package model
