// Package network implements the flow-network data structure: a directed
// multigraph of FlowEdge values with residual-capacity semantics, addressed
// by integer vertex id (see package voxel for the id scheme). Vertices and
// edges are created only during construction; after that, only an edge's
// Flow field and the network's own incidence-list copies change, and only
// through AddResidualFlow.
//
// Iteration order of incidence lists is deterministic (insertion order),
// because the max-flow solver's augmenting-path tie-breaks — and therefore
// which min cut is returned when more than one exists — depend on it.
package network
