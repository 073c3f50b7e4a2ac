package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "ontoview",
		Short: "View an RDF graph as OWL2 constructs",
		Long: `ontoview resolves the nodes of an RDF graph as OWL2 classes, properties,
individuals and class expressions, and walks their hierarchies.

The graph is read from an N-Triples file (--input), a badger database (--db),
or both. Configuration can also come from a YAML file (--config) or from
ONTOVIEW_* environment variables.

Examples:
  ontoview --db ./onto.db load pizza.nt
  ontoview --db ./onto.db list Class
  ontoview -i pizza.nt cast http://example.org/Margherita ClassExpression
  ontoview -i pizza.nt supers http://example.org/Margherita --direct
  ontoview -i pizza.nt --profile lax declared http://example.org/Pizza`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringP("input", "i", "", "N-Triples file to read before running the command")
	flags.String("db", "", "badger database directory (default: in-memory graph)")
	flags.StringP("profile", "p", "strict", "punning profile: strict, weak, lax or one defined by --vocabulary")
	flags.String("vocabulary", "", "YAML vocabulary replacing the standard OWL2 one")
	flags.Bool("collapse-equivalents", true, "treat mutually sub-of nodes as one in direct hierarchy queries")
	flags.String("config", "", "YAML config file")
	flags.CountP("verbose", "v", "increase log verbosity (-v, -vv)")

	root.AddCommand(
		newLoadCmd(),
		newListCmd(),
		newCastCmd(),
		newHierarchyCmd("supers", "Show the super classes of a class expression", false),
		newHierarchyCmd("subs", "Show the sub classes of a class expression", true),
		newDeclaredCmd(),
		newTypesCmd(),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
