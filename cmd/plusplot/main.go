package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gacevedo/virus-sucks-plotter/compileinfo"
	_ "github.com/gacevedo/virus-sucks-plotter/compileinfoprint"
	"github.com/gacevedo/virus-sucks-plotter/config"
	"github.com/gacevedo/virus-sucks-plotter/pluslife"
	"github.com/gacevedo/virus-sucks-plotter/render"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func main() {
	var filename, outPath, configPath, format string
	var widthPx, heightPx int
	var printStats, debug bool

	flag.StringVar(&filename, "file", "", "JSON test results file exported from the virus.sucks app")
	flag.StringVar(&outPath, "out", "", "(Optional) Where to write the chart. Defaults to the input name with a .png or .svg suffix.")
	flag.StringVar(&configPath, "config", "", "(Optional) Path to a config.json file")
	flag.StringVar(&format, "format", "", "(Optional) Chart format, png or svg. Overrides the config file.")
	flag.IntVar(&widthPx, "width", 0, "(Optional) Chart pixel width. Overrides the config file.")
	flag.IntVar(&heightPx, "height", 0, "(Optional) Chart pixel height. Overrides the config file.")
	flag.BoolVar(&printStats, "stats", false, "Print a per-channel summary table?")
	flag.BoolVar(&debug, "debug", false, "Print extra detail during processing?")
	flag.Parse()

	if filename == "" {
		flag.PrintDefaults()
		os.Exit(1)
	}

	if debug {
		log.SetLevel(logrus.DebugLevel)
	}
	compileinfo.Log(log)

	cfg := config.Default()
	if configPath != "" {
		var err error
		cfg, err = config.ParseJSONConfigFromPath(configPath)
		if err != nil {
			log.Fatalln(err)
		}
	}
	if format != "" {
		cfg.Format = strings.ToLower(format)
	}
	if widthPx > 0 {
		cfg.Width = widthPx
	}
	if heightPx > 0 {
		cfg.Height = heightPx
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalln(err)
	}

	if err := run(os.Stdout, filename, outPath, cfg, printStats); err != nil {
		fmt.Fprintln(os.Stderr, userMessage(err))
		log.Fatalln(err)
	}
}

func run(w io.Writer, filename, outPath string, cfg config.JSONConfig, printStats bool) error {
	if err := pluslife.CheckInput(filepath.Base(filename), ""); err != nil {
		return err
	}

	raw, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	log.WithField("bytes", len(raw)).Debugln("Read", filename)

	doc, err := pluslife.IngestWithDivisor(raw, cfg.TicksPerMinute)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"samples":  len(doc.TestData.Samples),
		"channels": len(pluslife.Channels(doc.TestData.Samples)),
	}).Debugln("Ingested", filename)

	fmt.Fprintln(w, summaryLine(pluslife.Summarize(doc)))

	if printStats {
		chStats, err := pluslife.ChannelStats(doc.TestData.Samples)
		if err != nil {
			return err
		}
		if err := writeStats(w, chStats); err != nil {
			return err
		}
	}

	opts := cfg.RenderOptions()
	if outPath == "" {
		outPath = chartPath(filename, cfg.OutputDir, opts.Format)
	}

	if len(doc.TestData.Samples) == 0 {
		log.Warnln("No samples in", filename, "- not writing a chart")
		return nil
	}

	return writeChart(outPath, doc, opts)
}

func chartPath(filename, outputDir string, format render.Format) string {
	base := strings.TrimSuffix(filename, filepath.Ext(filename)) + format.Extension()
	if outputDir == "" {
		return base
	}

	return filepath.Join(outputDir, filepath.Base(base))
}

func writeChart(outPath string, doc pluslife.TestDocument, opts render.Options) error {
	outFile, err := os.Create(outPath)
	if err != nil {
		return err
	}

	if err := render.Render(outFile, doc, opts); err != nil {
		outFile.Close()
		os.Remove(outPath)
		return err
	}

	if err := outFile.Close(); err != nil {
		return err
	}

	log.Infoln("Wrote", outPath)

	return nil
}

func userMessage(err error) string {
	if msg := pluslife.Alert(err); msg != "" {
		return msg
	}

	return "Error: " + err.Error()
}
