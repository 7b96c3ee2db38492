// Package maxflow computes maximum s-t flow and the corresponding minimum
// cut over a network.FlowNetwork using the shortest-augmenting-path
// (Edmonds–Karp) variant of Ford–Fulkerson: repeated breadth-first search
// over the residual graph, augmenting by the bottleneck capacity along
// each discovered path, until the sink is unreachable.
//
// BFS visits each vertex's neighbors in network.FlowNetwork.Neighbors
// order (out-edges then in-edges, each in insertion order); the first
// discovery of a vertex wins. This makes the reported min cut deterministic
// when the underlying graph admits more than one.
package maxflow
