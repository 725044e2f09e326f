package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goerrors "github.com/go-errors/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/go-lvgl/lvgl/internal/config"
	lverrors "github.com/go-lvgl/lvgl/pkg/errors"
	"github.com/go-lvgl/lvgl/pkg/demo"
	"github.com/go-lvgl/lvgl/pkg/logx"
	"github.com/go-lvgl/lvgl/pkg/lvgl"
)

func init() {
	for _, sc := range demo.Scenes() {
		rootCmd.AddCommand(sceneCmd(sc))
	}
}

func sceneCmd(sc demo.Scene) *cobra.Command {
	return &cobra.Command{
		Use:   sc.Name,
		Short: sc.Short,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			run(func() error { return showScene(cmd.Context(), sc.Name) })
		},
	}
}

func newLogger() *slog.Logger {
	lvl := slog.LevelInfo
	if debugFlag {
		lvl = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

func configDir() string {
	if configFlag != "" {
		return configFlag
	}
	if root, err := config.FindProjectRoot(); err == nil {
		return root
	}
	return "."
}

func showScene(ctx context.Context, name string) error {
	logger := newLogger()
	slog.SetDefault(logger)
	lverrors.SetHandler(&lverrors.LogHandler{Logger: logger, Verbose: debugFlag})

	res, err := config.Resolve(configDir())
	if err != nil {
		return goerrors.Wrap(err, 0)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	d, err := lvgl.Init(res.Display, lvgl.WithLogger(logger), lvgl.WithRegisterer(reg))
	if err != nil {
		return goerrors.Wrap(err, 0)
	}

	show := demo.New(d, res.AssetDir)
	show.Animate = animateFlag
	if err := show.Draw(name); err != nil {
		return goerrors.Wrap(err, 0)
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	if metricsAddrFlag != "" {
		srv := &http.Server{
			Addr:              metricsAddrFlag,
			Handler:           promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
			ReadHeaderTimeout: 5 * time.Second,
		}
		g.Go(func() error {
			logx.Info("serving metrics", d, "addr", metricsAddrFlag)
			if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
	}

	logx.Info("display loop running", d, "app", res.AppName, "scene", name, "backend", d.Backend())
	loopErr := d.Run(gctx)
	stop()
	if err := g.Wait(); err != nil {
		return goerrors.Wrap(err, 0)
	}
	if loopErr != nil && !errors.Is(loopErr, context.Canceled) {
		return goerrors.Wrap(loopErr, 0)
	}
	return nil
}
