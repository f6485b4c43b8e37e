// Package cli implements the lvpath command-line interface.
//
// The CLI loads a weighted graph from a TOML or YAML document (or a grid
// from a text map) and prints the shortest path or the K shortest loopless
// paths between two nodes. It is built using cobra and logs through
// charmbracelet/log.
//
// # Commands
//
//   - shortest: single shortest path between two vertices of a graph document
//   - kshortest: the K shortest loopless paths, ranked by cost
//   - grid: shortest and alternative routes across a text map
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// surfaces the per-path records of the K-shortest search. Loggers are passed
// through context.Context.
//
// # Example
//
//	import "github.com/katalvlaran/lvpath/internal/cli"
//
//	func main() {
//	    if err := cli.Execute(context.Background()); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli
