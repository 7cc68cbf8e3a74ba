// ABOUTME: trabajos subcommands: scientific-meeting contributions

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

func (a *app) cmdTrabajos(args []string) error {
	subcmd := "list"
	if len(args) > 0 {
		subcmd = args[0]
		args = args[1:]
	}

	switch subcmd {
	case "list", "ls":
		return a.trabajosList(args)
	case "show":
		return a.trabajosShow(args)
	case "create", "add":
		return a.trabajosCreate(args)
	case "edit":
		return a.trabajosEdit(args)
	case "delete", "rm", "remove":
		return a.trabajosDelete(args)
	default:
		return fmt.Errorf("unknown trabajos subcommand: %s (use list, show, create, edit, delete)", subcmd)
	}
}

func (a *app) trabajosList(args []string) error {
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

	list, err := a.qs.Trabajos(investigadorID).Get(ctx)
	if err != nil {
		return errNoData(err)
	}
	idx, err := a.qs.InvestigadorIndex(ctx)
	if err != nil {
		return errNoData(err)
	}

	cyan := color.New(color.FgCyan)
	fmt.Println()
	cyan.Println("  Trabajos en Reunión Científica")
	cyan.Println("  ------------------------------")

	if len(list) == 0 {
		fmt.Println("  (sin registros)")
		fmt.Println()
		return nil
	}

	w := newTable()
	fmt.Fprintln(w, "  ID\tTÍTULO\tINVESTIGADOR/A\tEVENTO\tFECHA\tTIPO")
	fmt.Fprintln(w, "  --\t------\t--------------\t------\t-----\t----")
	for _, tr := range list {
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\t%s\n",
			truncate(tr.ID, 12), truncate(tr.Titulo, 26),
			truncate(idx.Nombre(tr.InvestigadorID), 24),
			truncate(tr.Evento, 20), displayDate(tr.Fecha), tr.Tipo)
	}
	w.Flush()
	fmt.Println()
	return nil
}

func (a *app) trabajosShow(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: trabajos show <id>")
	}
	id := args[0]

	ctx, cancel := a.ctx()
	defer cancel()

	tr, err := a.findTrabajo(ctx, id)
	if err != nil {
		return err
	}
	if tr == nil {
		return notFound(id)
	}
	idx, err := a.qs.InvestigadorIndex(ctx)
	if err != nil {
		idx = query.InvestigadorIndex{}
	}

	c := card.Card[model.TrabajoReunion]{
		Item:     *tr,
		Title:    func(t model.TrabajoReunion) string { return t.Titulo },
		Subtitle: func(t model.TrabajoReunion) string { return t.Evento },
	}
	printCard(c.Lines())

	fmt.Printf("  Investigador/a:  %s\n", idx.Nombre(tr.InvestigadorID))
	fmt.Printf("  Fecha:           %s\n", displayDate(tr.Fecha))
	fmt.Printf("  Lugar:           %s\n", orDash(tr.Lugar))
	fmt.Printf("  Participación:   %s\n", tr.Tipo)
	fmt.Printf("  Alcance:         %s\n", tr.TipoNacionalidad)
	fmt.Println()
	return nil
}

func (a *app) trabajosCreate(args []string) error {
	tr := &model.TrabajoReunion{}
	applyTrabajoFlags(tr, args)
	return a.saveTrabajo(tr, "Registrado")
}

func (a *app) trabajosEdit(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: trabajos edit <id> [flags]")
	}
	id := args[0]

	ctx, cancel := a.ctx()
	defer cancel()

	tr, err := a.findTrabajo(ctx, id)
	if err != nil {
		return err
	}
	if tr == nil {
		return notFound(id)
	}

	applyTrabajoFlags(tr, args[1:])
	return a.saveTrabajo(tr, "Actualizado")
}

func (a *app) saveTrabajo(tr *model.TrabajoReunion, verb string) error {
	if err := forms.CheckTrabajo(tr); err != nil {
		return err
	}

	ctx, cancel := a.ctx()
	defer cancel()

	var saved *model.TrabajoReunion
	err := a.qs.MutateTrabajos().Do(ctx, func(ctx context.Context) error {
		var err error
		saved, err = a.svcs.Trabajos.Upsert(ctx, tr)
		return err
	})
	if err != nil {
		return fmt.Errorf("no se pudo guardar: %v", err)
	}

	green := color.New(color.FgGreen)
	green.Printf("✓ %s: %s (%s)\n", verb, saved.Titulo, saved.ID)
	return nil
}

func (a *app) trabajosDelete(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: trabajos delete <id>")
	}
	id := args[0]

	ctx, cancel := a.ctx()
	defer cancel()

	err := a.qs.MutateTrabajos().Do(ctx, func(ctx context.Context) error {
		return a.svcs.Trabajos.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	green := color.New(color.FgGreen)
	green.Printf("✓ Eliminado: %s\n", id)
	return nil
}

func applyTrabajoFlags(tr *model.TrabajoReunion, args []string) {
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
			tr.InvestigadorID = next()
		case "--titulo":
			tr.Titulo = next()
		case "--evento":
			tr.Evento = next()
		case "--fecha":
			tr.Fecha = next()
		case "--lugar":
			tr.Lugar = next()
		case "--tipo", "-t":
			tr.Tipo = model.TipoParticipacion(next())
		case "--alcance":
			tr.TipoNacionalidad = model.TipoNacionalidad(next())
		}
	}
}

func (a *app) findTrabajo(ctx context.Context, id string) (*model.TrabajoReunion, error) {
	list, err := a.qs.Trabajos("").Get(ctx)
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
