// Package converters provides adapters between core.Graph and popular Go
// graph libraries.
//
// Use converters to export core.Graph's vertices, edges, and weights into
// an external representation for algorithms or visualization that library
// already implements.
package converters
