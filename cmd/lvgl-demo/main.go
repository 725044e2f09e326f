// Command lvgl-demo draws the widget showcase on the compiled backend.
//
//	lvgl-demo panel --animate
//	lvgl-demo button --config ./kiosk --metrics-addr :9100
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-errors/errors"
	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

var rootCmd = &cobra.Command{
	Use:          filepath.Base(os.Args[0]) + " <scene>",
	Short:        "lvgl-demo draws LVGL widget scenes",
	Long:         "lvgl-demo draws one LVGL widget scene, or the full panel, and runs the display loop until interrupted.",
	Version:      Version + " (built " + BuildTime + ")",
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	// LVGL and the GTK simulator must stay on the thread that initialized
	// them; main runs the display loop.
	runtime.LockOSThread()

	cobra.EnablePrefixMatching = true
	rootCmd.PersistentFlags().BoolVar(&debugFlag, `debug`, false, `debug logging and error stacks`)
	rootCmd.PersistentFlags().StringVarP(&configFlag, `config`, `c`, ``, `directory holding lvgl.yaml (default: project root or working directory)`)
	rootCmd.PersistentFlags().StringVar(&metricsAddrFlag, `metrics-addr`, ``, `serve prometheus metrics on this address`)
	rootCmd.PersistentFlags().BoolVar(&animateFlag, `animate`, false, `sweep the panel gauges`)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var (
	debugFlag       bool
	configFlag      string
	metricsAddrFlag string
	animateFlag     bool
)

func run(fn func() error) {
	var err error
	if fn == nil {
		err = errors.New("lvgl-demo: nil command")
	} else {
		err = fn()
	}
	if err == nil {
		return
	}
	if stackFramer, ok := err.(interface{ ErrorStack() string }); debugFlag && ok {
		fmt.Fprintln(os.Stderr, stackFramer.ErrorStack())
	} else {
		fmt.Fprintln(os.Stderr, "lvgl-demo: "+err.Error())
	}
	os.Exit(1)
}
