// ABOUTME: uct subcommands: the singleton organizational-unit record
// ABOUTME: set always writes a full replace; show reports the absent state

package main

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"github.com/gidas-utn/gidas-admin/internal/forms"
	"github.com/gidas-utn/gidas-admin/internal/model"
)

func (a *app) cmdUct(args []string) error {
	subcmd := "show"
	if len(args) > 0 {
		subcmd = args[0]
		args = args[1:]
	}

	switch subcmd {
	case "show":
		return a.uctShow()
	case "set", "edit":
		return a.uctSet(args)
	case "delete", "rm", "remove":
		return a.uctDelete()
	default:
		return fmt.Errorf("unknown uct subcommand: %s (use show, set, delete)", subcmd)
	}
}

func (a *app) uctShow() error {
	ctx, cancel := a.ctx()
	defer cancel()

	u, err := a.qs.Uct().Get(ctx)
	if err != nil {
		return errNoData(err)
	}

	cyan := color.New(color.FgCyan)
	fmt.Println()
	cyan.Println("  Unidad de Ciencia y Tecnología")
	cyan.Println("  ------------------------------")

	if u == nil {
		fmt.Println("  (sin datos cargados)")
		fmt.Println()
		return nil
	}

	fmt.Printf("  Facultad Regional:  %s\n", u.FacultadRegional)
	fmt.Printf("  Nombre / Sigla:     %s\n", u.NombreSigla)
	fmt.Printf("  Director/a:         %s\n", orDash(u.Director))
	fmt.Printf("  Vicedirector/a:     %s\n", orDash(u.Vicedirector))
	fmt.Printf("  Correo:             %s\n", orDash(u.Correo))
	fmt.Printf("  Objetivos:          %s\n", orDash(u.Objetivos))
	fmt.Println()
	return nil
}

func (a *app) uctSet(args []string) error {
	ctx, cancel := a.ctx()
	defer cancel()

	// Start from the current record so partial flag sets keep the rest.
	u, err := a.qs.Uct().Get(ctx)
	if err != nil {
		return errNoData(err)
	}
	if u == nil {
		u = &model.Uct{}
	}

	for i := 0; i < len(args); i++ {
		next := func() string {
			if i+1 < len(args) {
				i++
				return args[i]
			}
			return ""
		}

		switch args[i] {
		case "--facultad":
			u.FacultadRegional = next()
		case "--sigla":
			u.NombreSigla = next()
		case "--director":
			u.Director = next()
		case "--vicedirector":
			u.Vicedirector = next()
		case "--correo":
			u.Correo = next()
		case "--objetivos":
			u.Objetivos = next()
		default:
			return fmt.Errorf("unknown flag: %s", args[i])
		}
	}

	if err := forms.CheckUct(u); err != nil {
		return err
	}

	err = a.qs.MutateUct().Do(ctx, func(ctx context.Context) error {
		_, err := a.svcs.Uct.Upsert(ctx, *u)
		return err
	})
	if err != nil {
		return fmt.Errorf("no se pudo guardar: %v", err)
	}

	green := color.New(color.FgGreen)
	green.Printf("✓ Guardado: %s\n", u.NombreSigla)
	return nil
}

func (a *app) uctDelete() error {
	ctx, cancel := a.ctx()
	defer cancel()

	err := a.qs.MutateUct().Do(ctx, func(ctx context.Context) error {
		return a.svcs.Uct.Delete(ctx)
	})
	if err != nil {
		return err
	}

	green := color.New(color.FgGreen)
	green.Println("✓ Registro eliminado")
	return nil
}
