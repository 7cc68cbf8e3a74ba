// ABOUTME: Client-side validation run before any service call
// ABOUTME: Reports the first failing field as one blocking Spanish message

package forms

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/gidas-utn/gidas-admin/internal/dates"
	"github.com/gidas-utn/gidas-admin/internal/model"
)

// Error is a blocking validation error for a single field. Submissions stop
// at the first failing field; no error list is accumulated.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string { return e.Message }

var validate = validator.New()

// mensajes maps struct namespaces to the message shown for that field. The
// namespace is relative to the entity struct ("Proyecto.NombreProyecto").
var mensajes = map[string]string{
	"Personal.NombreApellido": "El campo 'Nombre y Apellido' es requerido.",
	"Personal.HorasSemanales": "Las horas semanales deben ser un entero ≥ 0.",
	"Personal.Tipo":           "Seleccione el tipo de personal.",

	"Personal.PTAA.TipoPersonal":               "Seleccione el tipo de personal de apoyo.",
	"Personal.PTAA.FechaInicio":                "La fecha de inicio no es válida.",
	"Personal.PTAA.FechaFin":                   "La fecha de fin no es válida.",
	"Personal.Becario.TipoFormacion":           "Seleccione el tipo de formación.",
	"Personal.Investigador.CategoriaUtn":       "Seleccione una categoría válida.",
	"Personal.Investigador.ProgramaIncentivos": "Seleccione un programa de incentivos válido.",
	"Personal.Investigador.Dedicacion":         "Seleccione una dedicación válida.",

	"Proyecto.NombreProyecto": "El nombre del proyecto es obligatorio.",
	"Proyecto.TipoProyecto":   "El tipo de proyecto es obligatorio.",
	"Proyecto.CodigoProyecto": "El código del proyecto es obligatorio.",
	"Proyecto.FechaInicio":    "La fecha de inicio es obligatoria.",

	"Financiamiento.Denominacion":       "La denominación es obligatoria.",
	"Financiamiento.CantidadAdquirida":  "La cantidad adquirida debe ser un entero válido (≥ 0).",
	"Financiamiento.MontoInvertido":     "El monto invertido debe ser un número válido (≥ 0).",
	"Financiamiento.FechaIncorporacion": "La fecha de incorporación es obligatoria.",

	"Docencia.InvestigadorID":      "Seleccione un/a investigador/a.",
	"Docencia.DenominacionCatedra": "Complete 'Denominación de Cátedra'.",
	"Docencia.InstitucionDictada":  "Complete 'Institución'.",
	"Docencia.GradoAcademico":      "Seleccione 'Grado Académico'.",
	"Docencia.RolActividad":        "Seleccione 'Rol'.",
	"Docencia.FechaInicio":         "Complete fechas de inicio y fin.",
	"Docencia.FechaFin":            "Complete fechas de inicio y fin.",

	"TrabajoReunion.InvestigadorID":   "Seleccione un/a investigador/a.",
	"TrabajoReunion.Titulo":           "Complete el título del trabajo.",
	"TrabajoReunion.Evento":           "Complete el nombre del evento.",
	"TrabajoReunion.Fecha":            "Seleccione la fecha del evento.",
	"TrabajoReunion.Tipo":             "Seleccione el tipo de participación.",
	"TrabajoReunion.TipoNacionalidad": "Seleccione el alcance del evento.",

	"Uct.FacultadRegional": "Complete la Facultad Regional.",
	"Uct.NombreSigla":      "Complete el nombre o sigla.",
	"Uct.Correo":           "El correo no es válido.",
}

// firstError converts the first tag violation (fields are checked in
// declaration order) into the blocking message for that field.
func firstError(err error) error {
	if err == nil {
		return nil
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return err
	}
	fe := errs[0]
	msg, ok := mensajes[fe.StructNamespace()]
	if !ok {
		msg = fmt.Sprintf("El campo '%s' no es válido.", fe.Field())
	}
	return &Error{Field: fe.StructField(), Message: msg}
}

// CheckPersonal validates a personnel draft. The active variant (switched
// through SetTipo) is validated along with the base fields.
func CheckPersonal(p *model.Personal) error {
	return firstError(validate.Struct(p))
}

// CheckProyecto validates a project draft. FechaFinalizacion may be empty
// (ongoing project); when present it must not precede FechaInicio.
func CheckProyecto(p *model.Proyecto) error {
	if err := firstError(validate.Struct(p)); err != nil {
		return err
	}
	if p.FechaFinalizacion != "" {
		ini, err1 := dates.ParseYMD(p.FechaInicio)
		fin, err2 := dates.ParseYMD(p.FechaFinalizacion)
		if err1 == nil && err2 == nil && fin.Before(ini) {
			return &Error{
				Field:   "FechaFinalizacion",
				Message: "La fecha de finalización no puede ser anterior a la de inicio.",
			}
		}
	}
	return nil
}

// CheckFinanciamiento validates a funding draft.
func CheckFinanciamiento(f *model.Financiamiento) error {
	return firstError(validate.Struct(f))
}

// CheckDocencia validates a teaching-activity draft, including the
// end-not-before-start rule over the activity period.
func CheckDocencia(d *model.Docencia) error {
	if err := firstError(validate.Struct(d)); err != nil {
		return err
	}
	ini, err1 := dates.ParseYMD(d.FechaInicio)
	fin, err2 := dates.ParseYMD(d.FechaFin)
	if err1 == nil && err2 == nil && fin.Before(ini) {
		return &Error{
			Field:   "FechaFin",
			Message: "La 'Fecha fin' debe ser posterior o igual a la 'Fecha inicio'.",
		}
	}
	return nil
}

// CheckTrabajo validates a contribution draft.
func CheckTrabajo(t *model.TrabajoReunion) error {
	return firstError(validate.Struct(t))
}

// CheckUct validates the organizational-unit record.
func CheckUct(u *model.Uct) error {
	return firstError(validate.Struct(u))
}
