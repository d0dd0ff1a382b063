// compileinfoprint is imported for the side effect of printing the compileinfo
// to os.Stderr when a plotter binary starts.
package compileinfoprint

import "github.com/gacevedo/virus-sucks-plotter/compileinfo"

func init() {
	compileinfo.PrintToStdErr()
}
