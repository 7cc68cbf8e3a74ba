// ABOUTME: proyectos subcommands: list/show/create/edit/delete projects

package main

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"github.com/gidas-utn/gidas-admin/internal/forms"
	"github.com/gidas-utn/gidas-admin/internal/model"
	"github.com/gidas-utn/gidas-admin/internal/ui/card"
)

func (a *app) cmdProyectos(args []string) error {
	subcmd := "list"
	if len(args) > 0 {
		subcmd = args[0]
		args = args[1:]
	}

	switch subcmd {
	case "list", "ls":
		return a.proyectosList()
	case "show":
		return a.proyectosShow(args)
	case "create", "add":
		return a.proyectosCreate(args)
	case "edit":
		return a.proyectosEdit(args)
	case "delete", "rm", "remove":
		return a.proyectosDelete(args)
	default:
		return fmt.Errorf("unknown proyectos subcommand: %s (use list, show, create, edit, delete)", subcmd)
	}
}

func (a *app) proyectosList() error {
	ctx, cancel := a.ctx()
	defer cancel()

	list, err := a.qs.Proyectos().Get(ctx)
	if err != nil {
		return errNoData(err)
	}

	cyan := color.New(color.FgCyan)
	fmt.Println()
	cyan.Println("  Proyectos")
	cyan.Println("  ---------")

	if len(list) == 0 {
		fmt.Println("  (sin registros)")
		fmt.Println()
		return nil
	}

	w := newTable()
	fmt.Fprintln(w, "  ID\tNOMBRE\tTIPO\tCÓDIGO\tINICIO\tFIN")
	fmt.Fprintln(w, "  --\t------\t----\t------\t------\t---")
	for _, p := range list {
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\t%s\n",
			truncate(p.ID, 12), truncate(p.NombreProyecto, 30), truncate(p.TipoProyecto, 16),
			p.CodigoProyecto, displayDate(p.FechaInicio), displayDate(p.FechaFinalizacion))
	}
	w.Flush()
	fmt.Println()
	return nil
}

func (a *app) proyectosShow(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: proyectos show <id>")
	}
	id := args[0]

	ctx, cancel := a.ctx()
	defer cancel()

	p, err := a.findProyecto(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return notFound(id)
	}

	c := card.Card[model.Proyecto]{
		Item:     *p,
		Title:    func(p model.Proyecto) string { return p.NombreProyecto },
		Subtitle: func(p model.Proyecto) string { return p.TipoProyecto },
	}
	printCard(c.Lines())

	fmt.Printf("  Código:   %s\n", p.CodigoProyecto)
	fmt.Printf("  Inicio:   %s\n", displayDate(p.FechaInicio))
	fmt.Printf("  Fin:      %s\n", displayDate(p.FechaFinalizacion))
	fmt.Printf("  Fuente:   %s\n", orDash(p.FuenteFinanciamiento))
	fmt.Println()
	return nil
}

func (a *app) proyectosCreate(args []string) error {
	p := &model.Proyecto{}
	applyProyectoFlags(p, args)
	return a.saveProyecto(p, "Registrado")
}

func (a *app) proyectosEdit(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: proyectos edit <id> [flags]")
	}
	id := args[0]

	ctx, cancel := a.ctx()
	defer cancel()

	p, err := a.findProyecto(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return notFound(id)
	}

	applyProyectoFlags(p, args[1:])
	return a.saveProyecto(p, "Actualizado")
}

func (a *app) saveProyecto(p *model.Proyecto, verb string) error {
	if err := forms.CheckProyecto(p); err != nil {
		return err
	}

	ctx, cancel := a.ctx()
	defer cancel()

	var saved *model.Proyecto
	err := a.qs.MutateProyectos().Do(ctx, func(ctx context.Context) error {
		var err error
		saved, err = a.svcs.Proyectos.Upsert(ctx, p)
		return err
	})
	if err != nil {
		return fmt.Errorf("no se pudo guardar: %v", err)
	}

	green := color.New(color.FgGreen)
	green.Printf("✓ %s: %s (%s)\n", verb, saved.NombreProyecto, saved.ID)
	return nil
}

func (a *app) proyectosDelete(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: proyectos delete <id>")
	}
	id := args[0]

	ctx, cancel := a.ctx()
	defer cancel()

	err := a.qs.MutateProyectos().Do(ctx, func(ctx context.Context) error {
		return a.svcs.Proyectos.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	green := color.New(color.FgGreen)
	green.Printf("✓ Eliminado: %s\n", id)
	return nil
}

func applyProyectoFlags(p *model.Proyecto, args []string) {
	for i := 0; i < len(args); i++ {
		next := func() string {
			if i+1 < len(args) {
				i++
				return args[i]
			}
			return ""
		}

		switch args[i] {
		case "--nombre", "-n":
			p.NombreProyecto = next()
		case "--tipo", "-t":
			p.TipoProyecto = next()
		case "--codigo", "-c":
			p.CodigoProyecto = next()
		case "--inicio":
			p.FechaInicio = next()
		case "--fin":
			p.FechaFinalizacion = next()
		case "--fuente":
			p.FuenteFinanciamiento = next()
		}
	}
}

func (a *app) findProyecto(ctx context.Context, id string) (*model.Proyecto, error) {
	list, err := a.qs.Proyectos().Get(ctx)
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
