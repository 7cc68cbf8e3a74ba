// ABOUTME: Admin console for the GIDAS research-group registry
// ABOUTME: Per-entity commands over the query/cache layer, mock or remote

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/joho/godotenv"

	"github.com/gidas-utn/gidas-admin/internal/config"
	"github.com/gidas-utn/gidas-admin/internal/dates"
	"github.com/gidas-utn/gidas-admin/internal/query"
	"github.com/gidas-utn/gidas-admin/internal/service"
	"github.com/gidas-utn/gidas-admin/internal/store"
)

const banner = `
        _     _                        _           _
   __ _(_) __| | __ _ ___        __ _ | |_ __ ___ (_)_ __
  / _' | |/ _' |/ _' / __|_____ / _' || | '_ ' _ \| | '_ \
 | (_| | | (_| | (_| \__ \_____| (_| || | | | | | | | | | |
  \__, |_|\__,_|\__,_|___/      \__,_||_|_| |_| |_|_|_| |_|
  |___/
`

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	if cmd == "help" || cmd == "-h" || cmd == "--help" {
		printUsage()
		return
	}

	// Offline commands need no data layer.
	switch cmd {
	case "menu":
		if err := cmdMenu(args); err != nil {
			color.Red("Error: %v\n", err)
			os.Exit(1)
		}
		return
	case "calendar":
		if err := cmdCalendar(args); err != nil {
			color.Red("Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	a, err := newApp()
	if err != nil {
		color.Red("Error: %v\n", err)
		os.Exit(1)
	}
	defer a.close()

	switch cmd {
	case "personal":
		err = a.cmdPersonal(args)
	case "proyectos":
		err = a.cmdProyectos(args)
	case "financiamiento":
		err = a.cmdFinanciamiento(args)
	case "docencia":
		err = a.cmdDocencia(args)
	case "trabajos":
		err = a.cmdTrabajos(args)
	case "uct":
		err = a.cmdUct(args)
	case "status":
		err = a.cmdStatus()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		color.Red("Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	cyan := color.New(color.FgCyan)
	yellow := color.New(color.FgYellow)

	cyan.Print(banner)
	fmt.Println()
	fmt.Println("Usage: gidas-admin <command> [args]")
	fmt.Println()
	yellow.Println("Commands:")
	fmt.Println("  status                        Show mode, store and API reachability")
	fmt.Println("  personal list [--tipo T]      List group members (filter by subtype)")
	fmt.Println("  personal show <id>            Show one member")
	fmt.Println("  personal create [flags]       Register a member")
	fmt.Println("  personal edit <id> [flags]    Update a member (full replace)")
	fmt.Println("  personal delete <id>          Remove a member")
	fmt.Println("  proyectos ...                 Same subcommands for projects")
	fmt.Println("  financiamiento ...            Same subcommands for funded acquisitions")
	fmt.Println("  docencia [--investigador id]  Teaching activities of a researcher")
	fmt.Println("  trabajos [--investigador id]  Scientific-meeting contributions")
	fmt.Println("  uct show|set|delete           Organizational-unit record (singleton)")
	fmt.Println("  menu [--all]                  Print the navigation tree")
	fmt.Println("  calendar [--month YYYY-MM]    Print a month grid")
	fmt.Println()
	yellow.Println("Environment:")
	fmt.Println("  GIDAS_CONFIG     Config file path (default: config.yaml, then built-in mock mode)")
	fmt.Println("  GIDAS_API_URL    Overrides api.base_url (remote mode)")
	fmt.Println()
	yellow.Println("Examples:")
	fmt.Println("  gidas-admin personal list --tipo INVESTIGADOR")
	fmt.Println("  gidas-admin proyectos create --nombre 'Estudio Energético' --tipo Investigación \\")
	fmt.Println("      --codigo EE-01 --inicio 2024-01-10")
	fmt.Println("  gidas-admin uct set --sigla GIDAS --facultad 'La Plata'")
	fmt.Println()
}

// app wires configuration, the persisted store (mock mode only), the entity
// services and the caching query layer for one invocation.
type app struct {
	cfg  *config.Config
	st   store.Store
	svcs *service.Services
	qs   *query.Queries
}

func newApp() (*app, error) {
	// A .env next to the binary may carry GIDAS_API_URL and friends.
	_ = godotenv.Load()

	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if url := os.Getenv("GIDAS_API_URL"); url != "" {
		cfg.API.BaseURL = url
	}

	slog.SetDefault(setupLogger(cfg.Logging))

	a := &app{cfg: cfg}
	if cfg.Mode() == config.ModeMock {
		st, err := store.NewSQLiteStore(cfg.Store.Path)
		if err != nil {
			return nil, fmt.Errorf("opening store: %w", err)
		}
		a.st = st
	}

	a.svcs = service.New(cfg, a.st)
	a.qs = query.New(a.svcs, cfg.API.ServerFilterPersonal)
	return a, nil
}

func (a *app) close() {
	if a.st != nil {
		a.st.Close()
	}
}

// loadConfig reads GIDAS_CONFIG or ./config.yaml; a missing file falls back
// to the built-in mock-mode defaults.
func loadConfig() (*config.Config, error) {
	path := os.Getenv("GIDAS_CONFIG")
	explicit := path != ""
	if !explicit {
		path = "config.yaml"
	}

	cfg, err := config.Load(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return config.Default(), nil
		}
		return nil, err
	}
	return cfg, nil
}

func setupLogger(cfg config.LoggingConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	opts := &slog.HandlerOptions{Level: level}

	// Logs go to stderr so tables stay pipeable.
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}

func (a *app) cmdStatus() error {
	cyan := color.New(color.FgCyan)
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)

	cyan.Print(banner)
	fmt.Println()

	if a.cfg.Mode() == config.ModeMock {
		green.Printf("  Mode:   ")
		fmt.Println("mock (local store)")
		green.Printf("  Store:  ")
		fmt.Println(a.cfg.Store.Path)
		green.Printf("  Latency: ")
		fmt.Println(a.cfg.Mock.Latency)
	} else {
		green.Printf("  Mode:   ")
		fmt.Println("remote")
		green.Printf("  API:    ")
		fmt.Println(a.cfg.API.BaseURL)

		ctx, cancel := a.ctx()
		defer cancel()
		if _, err := a.svcs.Proyectos.List(ctx); err != nil {
			yellow.Printf("  Reach:  ")
			color.Red("UNREACHABLE (%v)\n", err)
		} else {
			green.Printf("  Reach:  ")
			fmt.Println("ok")
		}
	}

	fmt.Println()
	return nil
}

// ctx returns the per-command context. Mock latency plus a generous margin;
// remote calls carry their own transport timeout.
func (a *app) ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 30*time.Second)
}

// errNoData is the generic load-failure message shown instead of raw
// transport errors.
func errNoData(err error) error {
	slog.Debug("load failed", "error", err)
	return fmt.Errorf("no se pudieron cargar los datos: %v", err)
}

// notFound prints the explicit not-found panel for a missing record.
func notFound(id string) error {
	yellow := color.New(color.FgYellow)
	fmt.Println()
	yellow.Println("  No se encontró el registro")
	yellow.Println("  --------------------------")
	fmt.Printf("  id: %s\n", id)
	fmt.Println()
	return nil
}

// newTable starts a two-space indented tabwriter table.
func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}

// displayDate renders a storage-form date as DD/MM/YYYY, passing through
// empty (ongoing) values.
func displayDate(ymd string) string {
	if ymd == "" {
		return "-"
	}
	t, err := dates.ParseYMD(ymd)
	if err != nil {
		return ymd
	}
	return dates.FormatDisplay(t)
}
