// citizen-dojo: digital citizenship mini-games for the terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"k8s.io/klog/v2"

	"citizen-dojo/pkg/config"
	"citizen-dojo/pkg/engine"
	"citizen-dojo/pkg/feedback"
	"citizen-dojo/pkg/game"
	"citizen-dojo/pkg/k8s"
	"citizen-dojo/pkg/registry"
	"citizen-dojo/pkg/state"
	"citizen-dojo/pkg/tui"
)

func main() {
	dump := flag.Bool("dump-catalog", false, "print the effective game catalog as YAML and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		config.Exitf("%v", err)
	}

	closeLog, err := setupLogging(cfg)
	if err != nil {
		config.Exitf("Failed to set up logging: %v", err)
	}
	defer closeLog()

	reg := game.NewRegistry()
	catalog := loadCatalog(cfg, reg.Catalog())
	if *dump {
		if err := dumpCatalog(os.Stdout, catalog); err != nil {
			config.Exitf("Failed to dump catalog: %v", err)
		}
		return
	}

	recorder, closeRecorder, err := openRecorder(cfg)
	if err != nil {
		config.Exitf("Failed to open progress store: %v", err)
	}
	defer closeRecorder()

	promReg := prometheus.NewRegistry()
	promReg.MustRegister(collectors.NewGoCollector())
	metrics := feedback.NewMetrics(promReg)
	stopMetrics := serveMetrics(cfg.MetricsAddr, promReg)
	defer stopMetrics()

	notifier := tui.NewNotifier()
	eng := engine.NewEngine(reg,
		engine.WithRecorder(recorder),
		engine.WithEmitter(metrics),
		engine.WithFeedbackDelay(cfg.FeedbackDelay),
		engine.WithResolver(registry.NewResolver(catalog)),
		engine.WithOnChange(notifier.SessionChanged),
	)
	defer eng.Leave()

	model := tui.NewAppModel(eng, reg)
	p := tea.NewProgram(model, tea.WithAltScreen())
	notifier.SetProgram(p)

	klog.InfoS("Starting citizen-dojo", "games", reg.Count(), "backend", cfg.StateBackend)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running citizen-dojo: %v\n", err)
		os.Exit(1)
	}
}

// setupLogging keeps klog off the terminal: it writes to LogFile when set and
// is discarded otherwise.
func setupLogging(cfg config.Config) (func(), error) {
	fs := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(fs)
	if err := fs.Set("v", strconv.Itoa(cfg.LogVerbosity)); err != nil {
		return nil, err
	}
	klog.LogToStderr(false)

	if cfg.LogFile == "" {
		klog.SetOutput(io.Discard)
		return func() {}, nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	klog.SetOutput(f)
	return func() {
		klog.Flush()
		f.Close()
	}, nil
}

func openRecorder(cfg config.Config) (state.Recorder, func(), error) {
	switch cfg.StateBackend {
	case config.BackendSQLite:
		path := cfg.StatePath
		if path == "" {
			p, err := state.DefaultPath("progress.db")
			if err != nil {
				return nil, nil, err
			}
			path = p
		}
		store, err := state.OpenStore(path)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { store.Close() }, nil
	default:
		mgr, err := state.NewManager(cfg.StatePath)
		if err != nil {
			return nil, nil, err
		}
		return mgr, func() {}, nil
	}
}

// loadCatalog layers the catalog file and ConfigMap over the built-in one.
// A source that fails to load is skipped.
func loadCatalog(cfg config.Config, base *registry.Catalog) *registry.Catalog {
	catalog := base

	if cfg.CatalogFile != "" {
		c, err := registry.LoadFile(cfg.CatalogFile)
		if err != nil {
			klog.ErrorS(err, "Ignoring catalog file", "path", cfg.CatalogFile)
		} else {
			catalog = catalog.Merge(c)
			klog.V(1).InfoS("Loaded catalog file", "path", cfg.CatalogFile, "categories", c.Categories())
		}
	}

	if cfg.CatalogConfigMap != "" {
		c, err := loadConfigMapCatalog(cfg)
		if err != nil {
			klog.ErrorS(err, "Ignoring catalog ConfigMap", "configmap", cfg.CatalogConfigMap)
		} else {
			catalog = catalog.Merge(c)
			klog.V(1).InfoS("Loaded catalog ConfigMap", "configmap", cfg.CatalogConfigMap, "categories", c.Categories())
		}
	}

	return catalog
}

func loadConfigMapCatalog(cfg config.Config) (*registry.Catalog, error) {
	ref, err := registry.ParseConfigMapRef(cfg.CatalogConfigMap)
	if err != nil {
		return nil, err
	}
	client, err := k8s.NewClientFromPath(cfg.Kubeconfig)
	if err != nil {
		return nil, err
	}
	v, err := client.ServerVersion()
	if err != nil {
		return nil, err
	}
	klog.V(1).InfoS("Connected to cluster", "host", client.Config.Host, "version", v)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return registry.LoadConfigMap(ctx, client.Clientset, ref)
}

// dumpCatalog writes c in the format CITIZEN_DOJO_CATALOG_FILE expects.
func dumpCatalog(w io.Writer, c *registry.Catalog) error {
	data, err := c.Marshal()
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func serveMetrics(addr string, g prometheus.Gatherer) func() {
	if addr == "" {
		return func() {}
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", feedback.Handler(g))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			klog.ErrorS(err, "Metrics server stopped", "addr", addr)
		}
	}()
	klog.InfoS("Serving metrics", "addr", addr)

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}
