package main

import (
	"fmt"
	"io"
	"iter"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/aleksaelezovic/ontoview/pkg/ont"
	"github.com/aleksaelezovic/ontoview/pkg/rdf"
	"github.com/aleksaelezovic/ontoview/pkg/view"
)

type runFunc func(cmd *cobra.Command, s *session, args []string) error

// withSession resolves the configuration, opens the session and closes it
// once fn returns.
func withSession(fn runFunc) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		logger, err := newLogger(cfg.Verbose)
		if err != nil {
			return errors.Wrap(err, "init logger")
		}
		defer func() { _ = logger.Sync() }()

		s, err := openSession(cfg, logger)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := s.Close(); cerr != nil && err == nil {
				err = errors.Wrap(cerr, "close graph")
			}
		}()
		return fn(cmd, s, args)
	}
}

// parseNode accepts N-Triples terms ("<iri>", "_:b") and bare absolute IRIs.
func parseNode(s string) (rdf.Term, error) {
	switch {
	case strings.HasPrefix(s, "<"), strings.HasPrefix(s, "_:"):
		return rdf.ParseTerm(s)
	case strings.Contains(s, ":"):
		return rdf.NewNamedNode(s), nil
	}
	return nil, errors.WithHint(errors.Wrapf(view.ErrIllegalArgument, "%q is not a node", s),
		"pass an absolute IRI or a blank node label such as _:b0")
}

func lookupType(s *session, name string) (*view.Type, error) {
	t, ok := ont.TypeByName(s.ont.Registry(), name)
	if !ok {
		return nil, errors.WithHint(errors.Wrapf(view.ErrUnsupportedType, "%q", name),
			"run 'ontoview types' for the registered types")
	}
	return t, nil
}

// printNodes writes the sorted nodes of seq, one per line.
func printNodes[T view.Object](w io.Writer, seq iter.Seq[T]) error {
	var lines []string
	for obj := range seq {
		lines = append(lines, fmt.Sprintf("%s\t%s", obj.Node(), obj.Type()))
	}
	slices.Sort(lines)
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}

func newLoadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load <file.nt>",
		Short: "Load an N-Triples file into the graph",
		Long:  "Load an N-Triples file into the graph. Without --db the file is only parsed and counted.",
		Args:  cobra.ExactArgs(1),
		RunE: withSession(func(cmd *cobra.Command, s *session, args []string) error {
			n, err := s.load(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "loaded %d triples from %s\n", n, args[0])
			return err
		}),
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <type>",
		Short: "List every node resolvable as a type",
		Args:  cobra.ExactArgs(1),
		RunE: withSession(func(cmd *cobra.Command, s *session, args []string) error {
			t, err := lookupType(s, args[0])
			if err != nil {
				return err
			}
			return printNodes(cmd.OutOrStdout(), s.ont.Objects(t))
		}),
	}
}

func newCastCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cast <node> <type>",
		Short: "Resolve one node as a type",
		Args:  cobra.ExactArgs(2),
		RunE: withSession(func(cmd *cobra.Command, s *session, args []string) error {
			node, err := parseNode(args[0])
			if err != nil {
				return err
			}
			t, err := lookupType(s, args[1])
			if err != nil {
				return err
			}
			obj, err := s.ont.As(node, t)
			if err != nil {
				var conv *view.ConversionError
				if errors.As(err, &conv) {
					for _, alt := range conv.Suppressed {
						fmt.Fprintf(cmd.ErrOrStderr(), "  tried: %v\n", alt)
					}
				}
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), obj)
			return err
		}),
	}
}

func newHierarchyCmd(use, short string, down bool) *cobra.Command {
	var direct bool
	cmd := &cobra.Command{
		Use:   use + " <class>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: withSession(func(cmd *cobra.Command, s *session, args []string) error {
			node, err := parseNode(args[0])
			if err != nil {
				return err
			}
			c, err := s.ont.ClassExpression(node)
			if err != nil {
				return err
			}
			if down {
				return printNodes(cmd.OutOrStdout(), c.SubClasses(direct))
			}
			return printNodes(cmd.OutOrStdout(), c.SuperClasses(direct))
		}),
	}
	cmd.Flags().BoolVar(&direct, "direct", false, "only direct neighbors")
	return cmd
}

func newDeclaredCmd() *cobra.Command {
	var direct bool
	cmd := &cobra.Command{
		Use:   "declared <class>",
		Short: "Show the properties declared on a class expression",
		Args:  cobra.ExactArgs(1),
		RunE: withSession(func(cmd *cobra.Command, s *session, args []string) error {
			node, err := parseNode(args[0])
			if err != nil {
				return err
			}
			c, err := s.ont.ClassExpression(node)
			if err != nil {
				return err
			}
			return printNodes(cmd.OutOrStdout(), c.DeclaredProperties(direct))
		}),
	}
	cmd.Flags().BoolVar(&direct, "direct", false, "only properties declared on the class itself")
	return cmd
}

func newTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the registered construct types",
		Args:  cobra.NoArgs,
		RunE: withSession(func(cmd *cobra.Command, s *session, _ []string) error {
			for _, t := range s.ont.Registry().Types() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), t); err != nil {
					return err
				}
			}
			return nil
		}),
	}
}
