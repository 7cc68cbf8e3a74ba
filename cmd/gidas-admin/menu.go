// ABOUTME: menu and calendar commands: offline views of the UI primitives

package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/gidas-utn/gidas-admin/internal/ui/datepicker"
	"github.com/gidas-utn/gidas-admin/internal/ui/navmenu"
)

// cmdMenu prints the navigation tree. By default only the top level shows;
// --all expands everything.
func cmdMenu(args []string) error {
	all := false
	for _, arg := range args {
		if arg == "--all" || arg == "-a" {
			all = true
		}
	}

	m := navmenu.New(navmenu.Items)
	lines := m.Render()
	if all {
		lines = m.RenderAll()
	}

	cyan := color.New(color.FgCyan)
	gray := color.New(color.FgHiBlack)

	fmt.Println()
	cyan.Println("  MENÚ")
	cyan.Println("  ----")
	for _, l := range lines {
		fmt.Printf("  %s%s", l.Indent(), l.Label)
		if l.Target != "" {
			gray.Printf("  %s", l.Target)
		}
		if l.HasKids && !all {
			gray.Print("  ▸")
		}
		fmt.Println()
	}
	fmt.Println()
	return nil
}

// cmdCalendar prints a month grid, defaulting to the current month.
func cmdCalendar(args []string) error {
	now := time.Now()
	year, month := now.Year(), now.Month()

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--month", "-m":
			if i+1 < len(args) {
				i++
				y, m, err := parseMonth(args[i])
				if err != nil {
					return err
				}
				year, month = y, m
			}
		}
	}

	cells := datepicker.MonthGrid(year, month)

	cyan := color.New(color.FgCyan)
	fmt.Println()
	cyan.Printf("  %s %d\n", monthES(month), year)
	fmt.Println("  Do Lu Ma Mi Ju Vi Sa")
	for i, c := range cells {
		if i%7 == 0 && i > 0 {
			fmt.Println()
		}
		if i%7 == 0 {
			fmt.Print("  ")
		}
		if c.Blank {
			fmt.Print("   ")
		} else {
			fmt.Printf("%2d ", c.Day)
		}
	}
	fmt.Println()
	fmt.Println()
	return nil
}

func parseMonth(s string) (int, time.Month, error) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("--month expects YYYY-MM, got %q", s)
	}
	y, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("--month: %w", err)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 1 || m > 12 {
		return 0, 0, fmt.Errorf("--month expects YYYY-MM, got %q", s)
	}
	return y, time.Month(m), nil
}

func monthES(m time.Month) string {
	names := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return names[m-1]
}
