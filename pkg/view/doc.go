// Package view resolves graph nodes into typed facades by inspecting local graph shape.
//
// The moving parts, leaf to root:
//
//   - Predicate: a boolean shape test over (node, model), composable with And/Or/Not.
//     True and False are absorbing constants and composition never wraps them.
//   - Locator: a lazy stream of candidate nodes, narrowed with Restrict.
//   - Instantiator: turns a qualifying node into a facade and optionally inserts the
//     declaring edges for a node that does not qualify yet.
//   - Factory: one locator, one predicate and one instantiator bound together.
//   - Composite: an ordered, flattened list of factories resolved by first match.
//   - Registry: an immutable Type -> Factory mapping plus the vocabulary tables the
//     predicates consult. Built once with a Builder and shared read-only afterwards.
//
// Resolution is the "facade casting" contract:
//
//	obj, err := view.As(node, model, ont.TypeClass)
//	if errors.Is(err, view.ErrConversion) {
//	    // node does not have the shape of a class
//	}
//
// Normal "no match" results are reported with a boolean (CreateInstance) or a typed
// *ConversionError (Wrap); errors are reserved for malformed data and configuration.
//
// Nothing in this package takes locks: graph access is single-writer and iteration is
// lazy, so a model must not be mutated while a sequence derived from it is consumed.
package view
