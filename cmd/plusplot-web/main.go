package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/gacevedo/virus-sucks-plotter/compileinfo"
	_ "github.com/gacevedo/virus-sucks-plotter/compileinfoprint"
	"github.com/gacevedo/virus-sucks-plotter/config"
	"github.com/gacevedo/virus-sucks-plotter/docslot"
	"github.com/sirupsen/logrus"
)

var global *Global

func main() {
	errors := make(chan error, 1)
	sig := make(chan os.Signal, 1)
	signal.Notify(sig,
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGUSR1,
	)

	var configPath, host string
	var port int
	flag.StringVar(&configPath, "config", "", "(Optional) Path to a config.json file")
	flag.StringVar(&host, "host", "127.0.0.1", "Interface for the HTTP server. Files are only ever processed by this process, so keep it local unless you mean to share it.")
	flag.IntVar(&port, "port", 9019, "Port for HTTP server")
	flag.Parse()

	logger := logrus.New()
	compileinfo.Log(logger)

	cfg := config.Default()
	if configPath != "" {
		var err error
		cfg, err = config.ParseJSONConfigFromPath(configPath)
		if err != nil {
			logger.Fatalln(err)
		}
	}

	global = NewGlobal(cfg, logger)

	global.log.Println("Launching", global.Site)

	h, err := router(global)
	if err != nil {
		logger.Fatalln(err)
	}

	go func() {
		addr := fmt.Sprintf("%s:%d", host, port)
		global.log.Println("Starting HTTP server on", addr)
		if err := http.ListenAndServe(addr, h); err != nil {
			errors <- err
			global.log.Println(err)
			sig <- syscall.SIGTERM
			return
		}
	}()

Outer:
	for {
		select {
		case sigl := <-sig:

			if sigl == syscall.SIGUSR1 {
				SigStatus()
				continue
			}

			global.log.Printf("\nExit: %s\n", sigl.String())

			break Outer

		case err := <-errors:
			if err == nil {
				global.log.Println("Finished")
				break Outer
			}

			global.log.Println("Exiting due to error", err)
			os.Exit(1)
		}
	}
}

func SigStatus() {
	_, loaded := global.slot.Current()
	global.log.Println("There are", runtime.NumGoroutine(), "goroutines running; document loaded:", loaded)
}

// NewGlobal wires the shared state every handler sees.
func NewGlobal(cfg config.JSONConfig, log logger) *Global {
	return &Global{
		log:    log,
		slot:   docslot.New(cfg.TicksPerMinute),
		config: cfg,
		Site:   cfg.Site,
	}
}
