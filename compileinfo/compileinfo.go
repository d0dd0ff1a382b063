// Package compileinfo reports which source revision a plotter binary was
// built from.
package compileinfo

import (
	"fmt"
	"io"
	"os"
	"path"
	"runtime/debug"

	"github.com/sirupsen/logrus"
)

type CompileInfo struct {
	Binary     string
	Version    string
	GoVersion  string
	Commit     string
	CommitTime string
	Modified   bool
}

func (c CompileInfo) String() string {
	mod := ""
	if c.Modified {
		mod = " (uncommitted changes)"
	}

	return fmt.Sprintf("%s %s built with %s from commit %v at %v%s", c.Binary, c.Version, c.GoVersion, c.Commit, c.CommitTime, mod)
}

// Fields exposes the build details for structured log lines.
func (c CompileInfo) Fields() logrus.Fields {
	return logrus.Fields{
		"binary":   c.Binary,
		"version":  c.Version,
		"go":       c.GoVersion,
		"commit":   c.Commit,
		"modified": c.Modified,
	}
}

// Log records the running binary's build details as one structured line.
func Log(l logrus.FieldLogger) {
	l.WithFields(Get().Fields()).Infoln("Build")
}

func Get() CompileInfo {
	out := CompileInfo{Binary: path.Base(os.Args[0]), Version: "(devel)"}

	z, ok := debug.ReadBuildInfo()
	if !ok {
		return out
	}

	out.GoVersion = z.GoVersion
	if z.Path != "" {
		out.Binary = path.Base(z.Path)
	}
	if z.Main.Version != "" {
		out.Version = z.Main.Version
	}
	for _, s := range z.Settings {
		switch s.Key {
		case "vcs.revision":
			out.Commit = s.Value
		case "vcs.time":
			out.CommitTime = s.Value
		case "vcs.modified":
			out.Modified = s.Value == "true"
		}
	}

	return out
}

func Fprint(w io.Writer) {
	fmt.Fprintln(w, Get())
}

func PrintToStdErr() {
	Fprint(os.Stderr)
}
