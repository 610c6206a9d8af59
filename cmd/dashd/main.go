package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cloudlab-sh/dashd"
	"github.com/cloudlab-sh/dashd/internal/config"
	"github.com/cloudlab-sh/dashd/internal/logger"
	"github.com/cloudlab-sh/dashd/internal/paths"
)

// ANSI colors for the startup banner, matching the cloudlab CLI style.
const (
	colorCyan   = "\033[96m"
	colorGreen  = "\033[92m"
	colorYellow = "\033[93m"
	colorRed    = "\033[91m"
	colorBold   = "\033[1m"
	colorReset  = "\033[0m"
)

func main() {
	if err := buildRoot().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// ServeFlags holds flags for the serve subcommand.
type ServeFlags struct {
	Port      int
	Root      string
	Daemonize bool
	LogFile   string
	LogLevel  string
}

func buildRoot() *cobra.Command {
	root := &cobra.Command{
		Use:           "dashd",
		Short:         "CloudLab dashboard daemon",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(createServeCommand(), createVersionCommand())
	return root
}

// defaultPort resolves the bind port: CLOUDLAB_PORT overrides the
// documented default; malformed values fall back.
func defaultPort() int {
	v := viper.New()
	v.SetDefault("port", config.DefaultDashboardPort)
	_ = v.BindEnv("port", "CLOUDLAB_PORT")
	if p := v.GetInt("port"); p > 0 {
		return p
	}
	return config.DefaultDashboardPort
}

func createServeCommand() *cobra.Command {
	flags := &ServeFlags{}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the dashboard HTTP server",
		Long: `Start the dashboard HTTP server.

Examples:
  dashd serve                   # serve on CLOUDLAB_PORT or 3000
  dashd serve --port 8000       # explicit port
  dashd serve --daemonize       # run in the background`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(flags)
		},
	}
	cmd.Flags().IntVar(&flags.Port, "port", defaultPort(), "bind port")
	cmd.Flags().StringVar(&flags.Root, "root", "", "cloudlab root directory (default ~/.cloudlab)")
	cmd.Flags().BoolVar(&flags.Daemonize, "daemonize", false, "run as daemon in background")
	cmd.Flags().StringVar(&flags.LogFile, "logfile", "", "redirect daemon logs to file")
	cmd.Flags().StringVar(&flags.LogLevel, "log-level", "info", "log level (debug, info, warn, error)")
	return cmd
}

func createVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the dashd version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("dashd %s\n", dashd.Version)
		},
	}
}

func runServe(flags *ServeFlags) error {
	d := dashd.NewWithRoot(flags.Root)
	if err := d.EnsureDirs(); err != nil {
		return fmt.Errorf("failed to prepare %s: %w", d.Root(), err)
	}
	layout := paths.Layout{Root: d.Root()}

	if flags.Daemonize {
		logFile := flags.LogFile
		if logFile == "" {
			logFile = layout.LogFile("dashboard")
		}
		return daemonize(layout.PIDFile("dashboard"), logFile)
	}

	closer := logger.Setup(logger.Config{Path: flags.LogFile, Level: flags.LogLevel})
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}
	if err := dashd.RegisterMetrics(); err != nil {
		slog.Warn("failed to register metrics", "error", err)
	}

	printBanner(flags.Port)
	srv := d.NewServer(fmt.Sprintf("0.0.0.0:%d", flags.Port))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case <-ctx.Done():
		fmt.Printf("\n%sShutting down dashboard server...%s\n", colorYellow, colorReset)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		_ = removePidFile(layout.PIDFile("dashboard"))
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		if strings.Contains(err.Error(), "address already in use") {
			fmt.Printf("%sError: Port %d is already in use%s\n", colorRed, flags.Port, colorReset)
			fmt.Println("Try: cloudlab stop dashboard && cloudlab start dashboard")
		}
		return err
	}
}

func printBanner(port int) {
	fmt.Printf("\n%s%s☁️  CloudLab Dashboard Server%s\n", colorCyan, colorBold, colorReset)
	fmt.Printf("%sURL:%s http://localhost:%d\n", colorGreen, colorReset, port)
	fmt.Printf("%sPress Ctrl+C to stop%s\n\n", colorYellow, colorReset)
}
