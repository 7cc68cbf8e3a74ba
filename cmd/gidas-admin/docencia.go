// ABOUTME: docencia subcommands: teaching activities of researchers
// ABOUTME: Researcher names resolved for display; dangling ids show a placeholder

package main

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"github.com/gidas-utn/gidas-admin/internal/forms"
	"github.com/gidas-utn/gidas-admin/internal/model"
	"github.com/gidas-utn/gidas-admin/internal/query"
	"github.com/gidas-utn/gidas-admin/internal/ui/card"
)

func (a *app) cmdDocencia(args []string) error {
	subcmd := "list"
	if len(args) > 0 {
		subcmd = args[0]
		args = args[1:]
	}

	switch subcmd {
	case "list", "ls":
		return a.docenciaList(args)
	case "show":
		return a.docenciaShow(args)
	case "create", "add":
		return a.docenciaCreate(args)
	case "edit":
		return a.docenciaEdit(args)
	case "delete", "rm", "remove":
		return a.docenciaDelete(args)
	default:
		return fmt.Errorf("unknown docencia subcommand: %s (use list, show, create, edit, delete)", subcmd)
	}
}

func (a *app) docenciaList(args []string) error {
	var investigadorID string
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--investigador", "-i":
			if i+1 < len(args) {
				investigadorID = args[i+1]
				i++
			}
		}
	}

	ctx, cancel := a.ctx()
	defer cancel()

	list, err := a.qs.Docencia(investigadorID).Get(ctx)
	if err != nil {
		return errNoData(err)
	}
	idx, err := a.qs.InvestigadorIndex(ctx)
	if err != nil {
		return errNoData(err)
	}

	cyan := color.New(color.FgCyan)
	fmt.Println()
	cyan.Println("  Actividades en Docencia")
	cyan.Println("  -----------------------")

	if len(list) == 0 {
		fmt.Println("  (sin registros)")
		fmt.Println()
		return nil
	}

	w := newTable()
	fmt.Fprintln(w, "  ID\tCÁTEDRA\tINVESTIGADOR/A\tROL\tPERÍODO")
	fmt.Fprintln(w, "  --\t-------\t--------------\t---\t-------")
	for _, d := range list {
		periodo := fmt.Sprintf("%s a %s", displayDate(d.FechaInicio), displayDate(d.FechaFin))
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\n",
			truncate(d.ID, 12), truncate(d.DenominacionCatedra, 26),
			truncate(idx.Nombre(d.InvestigadorID), 24), d.RolActividad, periodo)
	}
	w.Flush()
	fmt.Println()
	return nil
}

func (a *app) docenciaShow(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: docencia show <id>")
	}
	id := args[0]

	ctx, cancel := a.ctx()
	defer cancel()

	d, err := a.findDocencia(ctx, id)
	if err != nil {
		return err
	}
	if d == nil {
		return notFound(id)
	}
	idx, err := a.qs.InvestigadorIndex(ctx)
	if err != nil {
		idx = query.InvestigadorIndex{}
	}

	c := card.Card[model.Docencia]{
		Item:     *d,
		Title:    func(d model.Docencia) string { return d.DenominacionCatedra },
		Subtitle: func(d model.Docencia) string { return d.InstitucionDictada },
	}
	printCard(c.Lines())

	fmt.Printf("  Investigador/a:  %s\n", idx.Nombre(d.InvestigadorID))
	fmt.Printf("  Grado:           %s\n", d.GradoAcademico)
	fmt.Printf("  Rol:             %s\n", d.RolActividad)
	fmt.Printf("  Período:         %s a %s\n", displayDate(d.FechaInicio), displayDate(d.FechaFin))
	fmt.Println()
	return nil
}

func (a *app) docenciaCreate(args []string) error {
	d := &model.Docencia{}
	applyDocenciaFlags(d, args)
	return a.saveDocencia(d, "Registrada")
}

func (a *app) docenciaEdit(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: docencia edit <id> [flags]")
	}
	id := args[0]

	ctx, cancel := a.ctx()
	defer cancel()

	d, err := a.findDocencia(ctx, id)
	if err != nil {
		return err
	}
	if d == nil {
		return notFound(id)
	}

	applyDocenciaFlags(d, args[1:])
	return a.saveDocencia(d, "Actualizada")
}

func (a *app) saveDocencia(d *model.Docencia, verb string) error {
	if err := forms.CheckDocencia(d); err != nil {
		return err
	}

	ctx, cancel := a.ctx()
	defer cancel()

	var saved *model.Docencia
	err := a.qs.MutateDocencia().Do(ctx, func(ctx context.Context) error {
		var err error
		saved, err = a.svcs.Docencia.Upsert(ctx, d)
		return err
	})
	if err != nil {
		return fmt.Errorf("no se pudo guardar: %v", err)
	}

	green := color.New(color.FgGreen)
	green.Printf("✓ %s: %s (%s)\n", verb, saved.DenominacionCatedra, saved.ID)
	return nil
}

func (a *app) docenciaDelete(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: docencia delete <id>")
	}
	id := args[0]

	ctx, cancel := a.ctx()
	defer cancel()

	err := a.qs.MutateDocencia().Do(ctx, func(ctx context.Context) error {
		return a.svcs.Docencia.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	green := color.New(color.FgGreen)
	green.Printf("✓ Eliminada: %s\n", id)
	return nil
}

func applyDocenciaFlags(d *model.Docencia, args []string) {
	for i := 0; i < len(args); i++ {
		next := func() string {
			if i+1 < len(args) {
				i++
				return args[i]
			}
			return ""
		}

		switch args[i] {
		case "--investigador", "-i":
			d.InvestigadorID = next()
		case "--catedra", "-c":
			d.DenominacionCatedra = next()
		case "--institucion":
			d.InstitucionDictada = next()
		case "--grado":
			d.GradoAcademico = model.GradoAcademico(next())
		case "--rol":
			d.RolActividad = model.RolDocencia(next())
		case "--inicio":
			d.FechaInicio = next()
		case "--fin":
			d.FechaFin = next()
		}
	}
}

func (a *app) findDocencia(ctx context.Context, id string) (*model.Docencia, error) {
	list, err := a.qs.Docencia("").Get(ctx)
	if err != nil {
		return nil, errNoData(err)
	}
	for i := range list {
		if list[i].ID == id {
			return &list[i], nil
		}
	}
	return nil, nil
}
