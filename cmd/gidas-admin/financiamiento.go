// ABOUTME: financiamiento subcommands: funded acquisitions of the group
// ABOUTME: Denominación is fixed at creation; edit never touches it

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

func (a *app) cmdFinanciamiento(args []string) error {
	subcmd := "list"
	if len(args) > 0 {
		subcmd = args[0]
		args = args[1:]
	}

	switch subcmd {
	case "list", "ls":
		return a.financiamientoList()
	case "show":
		return a.financiamientoShow(args)
	case "create", "add":
		return a.financiamientoCreate(args)
	case "edit":
		return a.financiamientoEdit(args)
	case "delete", "rm", "remove":
		return a.financiamientoDelete(args)
	default:
		return fmt.Errorf("unknown financiamiento subcommand: %s (use list, show, create, edit, delete)", subcmd)
	}
}

func (a *app) financiamientoList() error {
	ctx, cancel := a.ctx()
	defer cancel()

	list, err := a.qs.Financiamientos().Get(ctx)
	if err != nil {
		return errNoData(err)
	}

	cyan := color.New(color.FgCyan)
	fmt.Println()
	cyan.Println("  Financiamiento")
	cyan.Println("  --------------")

	if len(list) == 0 {
		fmt.Println("  (sin registros)")
		fmt.Println()
		return nil
	}

	w := newTable()
	fmt.Fprintln(w, "  ID\tDENOMINACIÓN\tCANT.\tMONTO\tINCORPORACIÓN")
	fmt.Fprintln(w, "  --\t------------\t-----\t-----\t-------------")
	for _, f := range list {
		fmt.Fprintf(w, "  %s\t%s\t%d\t%.2f\t%s\n",
			truncate(f.ID, 12), truncate(f.Denominacion, 30),
			f.CantidadAdquirida, f.MontoInvertido, displayDate(f.FechaIncorporacion))
	}
	w.Flush()
	fmt.Println()
	return nil
}

func (a *app) financiamientoShow(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: financiamiento show <id>")
	}
	id := args[0]

	ctx, cancel := a.ctx()
	defer cancel()

	f, err := a.findFinanciamiento(ctx, id)
	if err != nil {
		return err
	}
	if f == nil {
		return notFound(id)
	}

	c := card.Card[model.Financiamiento]{
		Item:     *f,
		Title:    func(f model.Financiamiento) string { return f.Denominacion },
		Subtitle: func(f model.Financiamiento) string { return f.DescripcionBreve },
	}
	printCard(c.Lines())

	fmt.Printf("  Cantidad:       %d\n", f.CantidadAdquirida)
	fmt.Printf("  Monto:          %.2f\n", f.MontoInvertido)
	fmt.Printf("  Incorporación:  %s\n", displayDate(f.FechaIncorporacion))
	fmt.Printf("  Fuente:         %s\n", orDash(f.FuenteFinanciamiento))
	fmt.Printf("  Destinatario:   %s\n", orDash(f.Destinatario))
	fmt.Println()
	return nil
}

func (a *app) financiamientoCreate(args []string) error {
	f := &model.Financiamiento{}
	if err := applyFinanciamientoFlags(f, args, true); err != nil {
		return err
	}
	return a.saveFinanciamiento(f, "Registrado")
}

func (a *app) financiamientoEdit(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: financiamiento edit <id> [flags]")
	}
	id := args[0]

	ctx, cancel := a.ctx()
	defer cancel()

	f, err := a.findFinanciamiento(ctx, id)
	if err != nil {
		return err
	}
	if f == nil {
		return notFound(id)
	}

	if err := applyFinanciamientoFlags(f, args[1:], false); err != nil {
		return err
	}
	return a.saveFinanciamiento(f, "Actualizado")
}

func (a *app) saveFinanciamiento(f *model.Financiamiento, verb string) error {
	if err := forms.CheckFinanciamiento(f); err != nil {
		return err
	}

	ctx, cancel := a.ctx()
	defer cancel()

	var saved *model.Financiamiento
	err := a.qs.MutateFinanciamientos().Do(ctx, func(ctx context.Context) error {
		var err error
		saved, err = a.svcs.Financiamiento.Upsert(ctx, f)
		return err
	})
	if err != nil {
		return fmt.Errorf("no se pudo guardar: %v", err)
	}

	green := color.New(color.FgGreen)
	green.Printf("✓ %s: %s (%s)\n", verb, saved.Denominacion, saved.ID)
	return nil
}

func (a *app) financiamientoDelete(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: financiamiento delete <id>")
	}
	id := args[0]

	ctx, cancel := a.ctx()
	defer cancel()

	err := a.qs.MutateFinanciamientos().Do(ctx, func(ctx context.Context) error {
		return a.svcs.Financiamiento.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	green := color.New(color.FgGreen)
	green.Printf("✓ Eliminado: %s\n", id)
	return nil
}

func applyFinanciamientoFlags(f *model.Financiamiento, args []string, creating bool) error {
	for i := 0; i < len(args); i++ {
		next := func() string {
			if i+1 < len(args) {
				i++
				return args[i]
			}
			return ""
		}

		switch args[i] {
		case "--denominacion", "-d":
			if !creating {
				return fmt.Errorf("la denominación no puede modificarse")
			}
			f.Denominacion = next()
		case "--cantidad":
			n, err := strconv.Atoi(next())
			if err != nil {
				return fmt.Errorf("--cantidad: %w", err)
			}
			f.CantidadAdquirida = n
		case "--monto":
			m, err := strconv.ParseFloat(next(), 64)
			if err != nil {
				return fmt.Errorf("--monto: %w", err)
			}
			f.MontoInvertido = m
		case "--incorporacion":
			f.FechaIncorporacion = next()
		case "--descripcion":
			f.DescripcionBreve = next()
		case "--fuente":
			f.FuenteFinanciamiento = next()
		case "--destinatario":
			f.Destinatario = next()
		default:
			return fmt.Errorf("unknown flag: %s", args[i])
		}
	}
	return nil
}

func (a *app) findFinanciamiento(ctx context.Context, id string) (*model.Financiamiento, error) {
	list, err := a.qs.Financiamientos().Get(ctx)
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
