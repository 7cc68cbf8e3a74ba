package forms

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gidas-utn/gidas-admin/internal/config"
	"github.com/gidas-utn/gidas-admin/internal/model"
	"github.com/gidas-utn/gidas-admin/internal/service"
	"github.com/gidas-utn/gidas-admin/internal/store"
)

func TestCheckPersonal_FirstFailingFieldOnly(t *testing.T) {
	p := &model.Personal{} // everything missing

	err := CheckPersonal(p)
	require.Error(t, err)

	var ve *Error
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "NombreApellido", ve.Field)
	assert.Equal(t, "El campo 'Nombre y Apellido' es requerido.", ve.Message)
}

func TestCheckPersonal_NegativeHours(t *testing.T) {
	p := &model.Personal{NombreApellido: "Ana Ruiz", HorasSemanales: -5}
	p.SetTipo(model.TipoProfesional)

	err := CheckPersonal(p)
	require.Error(t, err)
	assert.Equal(t, "Las horas semanales deben ser un entero ≥ 0.", err.Error())
}

func TestCheckPersonal_VariantFields(t *testing.T) {
	p := &model.Personal{NombreApellido: "Juan Vera", HorasSemanales: 10}
	p.SetTipo(model.TipoPTAA)

	err := CheckPersonal(p)
	require.Error(t, err, "PTAA requires a support-staff subtype")
	assert.Equal(t, "Seleccione el tipo de personal de apoyo.", err.Error())

	p.PTAA.TipoPersonal = model.ApoyoTecnico
	assert.NoError(t, CheckPersonal(p))
}

func TestCheckPersonal_SubtypeSwitchClearsOldVariant(t *testing.T) {
	p := &model.Personal{NombreApellido: "Juan Vera"}
	p.SetTipo(model.TipoPTAA)
	p.PTAA.TipoPersonal = model.ApoyoAdministrativo

	p.SetTipo(model.TipoProfesional)
	require.Nil(t, p.PTAA)
	assert.NoError(t, CheckPersonal(p), "stale variant fields must not be validated")
}

func TestCheckProyecto_RequiredFieldsInOrder(t *testing.T) {
	pr := &model.Proyecto{}
	err := CheckProyecto(pr)
	require.Error(t, err)
	assert.Equal(t, "El nombre del proyecto es obligatorio.", err.Error())

	pr.NombreProyecto = "Estudio Energético"
	err = CheckProyecto(pr)
	require.Error(t, err)
	assert.Equal(t, "El tipo de proyecto es obligatorio.", err.Error())
}

func TestCheckProyecto_OngoingProjectAllowed(t *testing.T) {
	pr := &model.Proyecto{
		NombreProyecto: "Estudio Energético",
		TipoProyecto:   "Investigación",
		CodigoProyecto: "EE-01",
		FechaInicio:    "2024-01-10",
	}
	assert.NoError(t, CheckProyecto(pr), "empty end date means ongoing")
}

func TestCheckProyecto_EndBeforeStartRejected(t *testing.T) {
	pr := &model.Proyecto{
		NombreProyecto:    "Estudio Energético",
		TipoProyecto:      "Investigación",
		CodigoProyecto:    "EE-01",
		FechaInicio:       "2024-01-10",
		FechaFinalizacion: "2024-01-05",
	}
	err := CheckProyecto(pr)
	require.Error(t, err)
	assert.Equal(t, "La fecha de finalización no puede ser anterior a la de inicio.", err.Error())

	pr.FechaFinalizacion = "2024-01-10"
	assert.NoError(t, CheckProyecto(pr), "end equal to start is allowed")
}

// A project edit that moves the end date before the start date must be
// rejected without reaching the service at all.
func TestCheckProyecto_RejectsBeforeUpsert(t *testing.T) {
	cfg := config.Default()
	cfg.Mock.Latency = 0
	svcs := service.New(cfg, store.NewMockStore())
	ctx := context.Background()

	pr := &model.Proyecto{
		NombreProyecto: "Estudio Energético",
		TipoProyecto:   "Investigación",
		CodigoProyecto: "EE-01",
		FechaInicio:    "2024-01-10",
	}
	require.NoError(t, CheckProyecto(pr))
	saved, err := svcs.Proyectos.Upsert(ctx, pr)
	require.NoError(t, err)

	edited := *saved
	edited.FechaFinalizacion = "2024-01-05"
	require.Error(t, CheckProyecto(&edited))

	list, err := svcs.Proyectos.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "", list[0].FechaFinalizacion, "rejected edit never persisted")
}

func TestCheckFinanciamiento_Messages(t *testing.T) {
	f := &model.Financiamiento{}
	err := CheckFinanciamiento(f)
	require.Error(t, err)
	assert.Equal(t, "La denominación es obligatoria.", err.Error())

	f.Denominacion = "Osciloscopio"
	f.CantidadAdquirida = -1
	err = CheckFinanciamiento(f)
	require.Error(t, err)
	assert.Equal(t, "La cantidad adquirida debe ser un entero válido (≥ 0).", err.Error())

	f.CantidadAdquirida = 1
	err = CheckFinanciamiento(f)
	require.Error(t, err)
	assert.Equal(t, "La fecha de incorporación es obligatoria.", err.Error())

	f.FechaIncorporacion = "2023-06-01"
	assert.NoError(t, CheckFinanciamiento(f))
}

func TestCheckDocencia_DateOrdering(t *testing.T) {
	d := &model.Docencia{
		InvestigadorID:      "inv-1",
		DenominacionCatedra: "Redes de Datos",
		InstitucionDictada:  "UTN FRLP",
		GradoAcademico:      model.GradoGrado,
		RolActividad:        model.RolTitular,
		FechaInicio:         "2024-03-01",
		FechaFin:            "2024-02-01",
	}
	err := CheckDocencia(d)
	require.Error(t, err)
	assert.Equal(t, "La 'Fecha fin' debe ser posterior o igual a la 'Fecha inicio'.", err.Error())

	d.FechaFin = "2024-03-01"
	assert.NoError(t, CheckDocencia(d), "same-day period is allowed")
}

func TestCheckDocencia_MissingResearcherFirst(t *testing.T) {
	d := &model.Docencia{DenominacionCatedra: "Redes de Datos"}
	err := CheckDocencia(d)
	require.Error(t, err)
	assert.Equal(t, "Seleccione un/a investigador/a.", err.Error())
}

func TestCheckTrabajo_Messages(t *testing.T) {
	tr := &model.TrabajoReunion{InvestigadorID: "inv-1"}
	err := CheckTrabajo(tr)
	require.Error(t, err)
	assert.Equal(t, "Complete el título del trabajo.", err.Error())

	tr.Titulo = "IoT en agro"
	tr.Evento = "CASE 2024"
	tr.Fecha = "2024-08-15"
	tr.Tipo = model.ParticipacionPoster
	tr.TipoNacionalidad = model.NacionalidadNacional
	assert.NoError(t, CheckTrabajo(tr))
}

func TestCheckUct_EmailOptionalButValidated(t *testing.T) {
	u := &model.Uct{FacultadRegional: "La Plata", NombreSigla: "GIDAS"}
	assert.NoError(t, CheckUct(u), "empty email is fine")

	u.Correo = "no-es-un-correo"
	err := CheckUct(u)
	require.Error(t, err)
	assert.Equal(t, "El correo no es válido.", err.Error())

	u.Correo = "gidas@frlp.utn.edu.ar"
	assert.NoError(t, CheckUct(u))
}
