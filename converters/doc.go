// Package converters exports core.Graph values to gonum: a weighted
// undirected graph/simple graph for gonum algorithms, and Graphviz DOT via
// graph/encoding/dot for inspecting class spanning trees.
package converters
