package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/gacevedo/virus-sucks-plotter/pluslife"
	"github.com/gacevedo/virus-sucks-plotter/render"
)

type JSONConfig struct {
	ConfigPath string `json:"-"`

	// TicksPerMinute converts exported samplingTime values into minutes.
	TicksPerMinute float64 `json:"ticks_per_minute"`
	Width          int     `json:"width"`
	Height         int     `json:"height"`
	Format         string  `json:"format"`
	OutputDir      string  `json:"output_dir"`
	Site           string  `json:"site"`
	MaxUploadBytes int64   `json:"max_upload_bytes"`
}

// Default is the configuration used when no file is given.
func Default() JSONConfig {
	opts := render.DefaultOptions()

	return JSONConfig{
		TicksPerMinute: pluslife.TicksPerMinute,
		Width:          opts.Width,
		Height:         opts.Height,
		Format:         string(opts.Format),
		Site:           "virus.sucks plotter",
		MaxUploadBytes: 10 << 20,
	}
}

// ParseJSONConfigFromPath reads a config file. Fields left out of the file keep
// their Default values.
func ParseJSONConfigFromPath(path string) (JSONConfig, error) {
	out := Default()
	out.ConfigPath = expandHomeDir(path)

	f, err := os.Open(out.ConfigPath)
	if err != nil {
		return out, pfx.Err(err)
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(&out); err != nil {
		if e, ok := err.(*json.SyntaxError); ok {
			log.Printf("syntax error at byte offset %d", e.Offset)
		}

		return out, pfx.Err(err)
	}

	out.Format = strings.ToLower(out.Format)
	out.OutputDir = expandHomeDir(out.OutputDir)

	return out, pfx.Err(out.Validate())
}

func (c JSONConfig) Validate() error {
	if c.TicksPerMinute <= 0 {
		return fmt.Errorf("ticks_per_minute must be positive, got %v", c.TicksPerMinute)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("chart size must be positive, got %dx%d", c.Width, c.Height)
	}
	if _, err := render.ParseFormat(c.Format); err != nil {
		return err
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("max_upload_bytes must be positive, got %d", c.MaxUploadBytes)
	}

	return nil
}

// RenderOptions converts the chart settings. Call Validate first.
func (c JSONConfig) RenderOptions() render.Options {
	return render.Options{
		Width:  c.Width,
		Height: c.Height,
		Format: render.Format(c.Format),
	}
}

// Via https://stackoverflow.com/a/17617721/199475
func expandHomeDir(path string) string {
	usr, err := user.Current()
	if err != nil {
		return path
	}

	dir := usr.HomeDir

	if path == "~" {
		path = dir
	} else if strings.HasPrefix(path, "~/") {
		path = filepath.Join(dir, path[2:])
	}

	return path
}
