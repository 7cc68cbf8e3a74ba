// ABOUTME: Uct singleton entity (organizational-unit metadata)

package model

// Uct is the organizational-unit record. A single instance exists
// system-wide; it has no id and is always written as a full replace.
type Uct struct {
	FacultadRegional string `json:"facultadRegional" validate:"required"`
	NombreSigla      string `json:"nombreSigla" validate:"required"`
	Director         string `json:"director"`
	Vicedirector     string `json:"vicedirector"`
	Correo           string `json:"correo" validate:"omitempty,email"`
	Objetivos        string `json:"objetivos"`
}
