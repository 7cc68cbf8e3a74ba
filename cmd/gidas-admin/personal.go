// ABOUTME: personal subcommands: list/show/create/edit/delete group members
// ABOUTME: Subtype-specific flags populate the matching Personal variant

package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fatih/color"

	"github.com/gidas-utn/gidas-admin/internal/forms"
	"github.com/gidas-utn/gidas-admin/internal/model"
	"github.com/gidas-utn/gidas-admin/internal/ui/card"
)

func (a *app) cmdPersonal(args []string) error {
	subcmd := "list"
	if len(args) > 0 {
		subcmd = args[0]
		args = args[1:]
	}

	switch subcmd {
	case "list", "ls":
		return a.personalList(args)
	case "show":
		return a.personalShow(args)
	case "create", "add":
		return a.personalCreate(args)
	case "edit":
		return a.personalEdit(args)
	case "delete", "rm", "remove":
		return a.personalDelete(args)
	default:
		return fmt.Errorf("unknown personal subcommand: %s (use list, show, create, edit, delete)", subcmd)
	}
}

func (a *app) personalList(args []string) error {
	var tipo string
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--tipo", "-t":
			if i+1 < len(args) {
				tipo = args[i+1]
				i++
			}
		}
	}

	ctx, cancel := a.ctx()
	defer cancel()

	res, err := a.qs.Personal(model.PersonalType(tipo)).Get(ctx)
	if err != nil {
		return errNoData(err)
	}

	cyan := color.New(color.FgCyan)
	fmt.Println()
	cyan.Println("  Personal")
	cyan.Println("  --------")

	if res.Count == 0 {
		fmt.Println("  (sin registros)")
		fmt.Println()
		return nil
	}

	w := newTable()
	fmt.Fprintln(w, "  ID\tNOMBRE\tTIPO\tHORAS")
	fmt.Fprintln(w, "  --\t------\t----\t-----")
	for _, p := range res.List {
		fmt.Fprintf(w, "  %s\t%s\t%s\t%d\n",
			truncate(p.ID, 12), truncate(p.NombreApellido, 30), p.Tipo, p.HorasSemanales)
	}
	w.Flush()

	if tipo != "" {
		fmt.Printf("\n  %d de %d registros\n", res.Count, res.Total)
	}
	fmt.Println()
	return nil
}

func (a *app) personalShow(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: personal show <id>")
	}
	id := args[0]

	ctx, cancel := a.ctx()
	defer cancel()

	p, err := a.findPersonal(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return notFound(id)
	}

	c := card.Card[model.Personal]{
		Item:  *p,
		Title: func(p model.Personal) string { return p.NombreApellido },
		Subtitle: func(p model.Personal) string {
			return fmt.Sprintf("%s · %d hs/semana", p.Tipo, p.HorasSemanales)
		},
	}
	printCard(c.Lines())

	switch p.Tipo {
	case model.TipoInvestigador:
		if d := p.Investigador; d != nil {
			fmt.Printf("  Categoría UTN:   %s\n", orDash(string(d.CategoriaUtn)))
			fmt.Printf("  Incentivos:      %s\n", orDash(string(d.ProgramaIncentivos)))
			fmt.Printf("  Dedicación:      %s\n", orDash(string(d.Dedicacion)))
			if d.ProyectoCoordinaID != "" {
				fmt.Printf("  Coordina:        %s\n", a.proyectoNombre(ctx, d.ProyectoCoordinaID))
			}
		}
	case model.TipoPTAA:
		if d := p.PTAA; d != nil {
			fmt.Printf("  Tipo personal:   %s\n", d.TipoPersonal)
			fmt.Printf("  Período:         %s a %s\n", displayDate(d.FechaInicio), displayDate(d.FechaFin))
		}
	case model.TipoBecario:
		if d := p.Becario; d != nil {
			fmt.Printf("  Formación:       %s\n", d.TipoFormacion)
			fmt.Printf("  Fuente:          %s\n", orDash(d.FuenteFinanciamiento))
		}
	}
	fmt.Println()
	return nil
}

func (a *app) personalCreate(args []string) error {
	p := &model.Personal{}
	if err := applyPersonalFlags(p, args); err != nil {
		return err
	}
	return a.savePersonal(p, "Registrado")
}

func (a *app) personalEdit(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: personal edit <id> [flags]")
	}
	id := args[0]

	ctx, cancel := a.ctx()
	defer cancel()

	p, err := a.findPersonal(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return notFound(id)
	}

	if err := applyPersonalFlags(p, args[1:]); err != nil {
		return err
	}
	return a.savePersonal(p, "Actualizado")
}

func (a *app) savePersonal(p *model.Personal, verb string) error {
	if err := forms.CheckPersonal(p); err != nil {
		return err
	}

	ctx, cancel := a.ctx()
	defer cancel()

	var saved *model.Personal
	err := a.qs.MutatePersonal().Do(ctx, func(ctx context.Context) error {
		var err error
		saved, err = a.svcs.Personal.Upsert(ctx, p)
		return err
	})
	if err != nil {
		return fmt.Errorf("no se pudo guardar: %v", err)
	}

	green := color.New(color.FgGreen)
	green.Printf("✓ %s: %s (%s)\n", verb, saved.NombreApellido, saved.ID)
	return nil
}

func (a *app) personalDelete(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: personal delete <id>")
	}
	id := args[0]

	ctx, cancel := a.ctx()
	defer cancel()

	err := a.qs.MutatePersonal().Do(ctx, func(ctx context.Context) error {
		return a.svcs.Personal.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	green := color.New(color.FgGreen)
	green.Printf("✓ Eliminado: %s\n", id)
	return nil
}

// applyPersonalFlags updates a draft from command-line flags. Switching
// --tipo clears the variants of the previous subtype before the new
// variant's flags land.
func applyPersonalFlags(p *model.Personal, args []string) error {
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
			p.NombreApellido = next()
		case "--horas":
			h, err := strconv.Atoi(next())
			if err != nil {
				return fmt.Errorf("--horas: %w", err)
			}
			p.HorasSemanales = h
		case "--tipo", "-t":
			p.SetTipo(model.PersonalType(next()))
		case "--categoria":
			if p.Investigador == nil {
				return fmt.Errorf("--categoria requiere --tipo INVESTIGADOR")
			}
			p.Investigador.CategoriaUtn = model.Categoria(next())
		case "--incentivos":
			if p.Investigador == nil {
				return fmt.Errorf("--incentivos requiere --tipo INVESTIGADOR")
			}
			p.Investigador.ProgramaIncentivos = model.Incentivos(next())
		case "--dedicacion":
			if p.Investigador == nil {
				return fmt.Errorf("--dedicacion requiere --tipo INVESTIGADOR")
			}
			p.Investigador.Dedicacion = model.Dedicacion(next())
		case "--coordina":
			if p.Investigador == nil {
				return fmt.Errorf("--coordina requiere --tipo INVESTIGADOR")
			}
			p.Investigador.ProyectoCoordinaID = next()
		case "--tipo-apoyo":
			if p.PTAA == nil {
				return fmt.Errorf("--tipo-apoyo requiere --tipo PTAA")
			}
			p.PTAA.TipoPersonal = model.TipoPersonalApoyo(next())
		case "--inicio":
			if p.PTAA == nil {
				return fmt.Errorf("--inicio requiere --tipo PTAA")
			}
			p.PTAA.FechaInicio = next()
		case "--fin":
			if p.PTAA == nil {
				return fmt.Errorf("--fin requiere --tipo PTAA")
			}
			p.PTAA.FechaFin = next()
		case "--fuente":
			if p.Becario == nil {
				return fmt.Errorf("--fuente requiere --tipo BECARIO")
			}
			p.Becario.FuenteFinanciamiento = next()
		case "--formacion":
			if p.Becario == nil {
				return fmt.Errorf("--formacion requiere --tipo BECARIO")
			}
			p.Becario.TipoFormacion = model.TipoFormacion(next())
		default:
			return fmt.Errorf("unknown flag: %s", args[i])
		}
	}
	return nil
}

// findPersonal looks a member up by id over the cached list.
func (a *app) findPersonal(ctx context.Context, id string) (*model.Personal, error) {
	res, err := a.qs.Personal("").Get(ctx)
	if err != nil {
		return nil, errNoData(err)
	}
	for i := range res.List {
		if res.List[i].ID == id {
			return &res.List[i], nil
		}
	}
	return nil, nil
}

// proyectoNombre resolves a coordinated project's name, tolerating dangling
// references.
func (a *app) proyectoNombre(ctx context.Context, id string) string {
	list, err := a.qs.Proyectos().Get(ctx)
	if err != nil {
		return id
	}
	for _, pr := range list {
		if pr.ID == id {
			return pr.NombreProyecto
		}
	}
	return fmt.Sprintf("%s (inexistente)", id)
}

func printCard(lines []string) {
	cyan := color.New(color.FgCyan)
	fmt.Println()
	for i, l := range lines {
		if i == 0 {
			cyan.Printf("  %s\n", l)
			continue
		}
		fmt.Printf("  %s\n", l)
	}
	fmt.Println()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
