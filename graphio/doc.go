// Package graphio turns structured input into a *core.Graph.
//
// Input shape (JSON or YAML):
//
//	nodes:
//	  - A                      # bare ID (string or number)
//	  - {id: B, x: 1, y: 0}    # object; x and y default to 0
//	edges:
//	  - {from: A, to: B}                          # weight 1.0, bidirectional
//	  - {from: B, to: C, weight: 2.5, bidirectional: false}
//
// Defaults are resolved here, at the input boundary, and nowhere else:
// x = y = 0, weight = 1.0, bidirectional = true.
//
// Errors:
//
//   - ErrMalformedInput: a node without id, an edge without from or to.
//     Build fails before any search can run.
//   - ErrMissingField: a Request without graph, start or end.
//   - core.ErrNegativeWeight / core.ErrBadWeight propagate from AddEdge.
//   - ErrEmptyDocument: a reader held no document at all.
//   - Other decoding failures are wrapped with the format that failed.
package graphio
