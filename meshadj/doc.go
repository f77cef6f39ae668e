// Package meshadj builds a half-edge-style adjacency over a raw triangle
// list: for every face, the (up to) three neighbouring faces across its
// three edges, together with the index of the reciprocal edge on the
// neighbour.
//
// Edge ordinals are fixed: edge 0 = (V0,V1), edge 1 = (V0,V2), edge 2 =
// (V1,V2). A face's three neighbour links are packed into 32-bit words —
// the low 30 bits hold the neighbour face index, the top 2 bits hold the
// matching edge ordinal on that neighbour — so MaxFaceIndex faces is the
// practical ceiling (see types.go). BoundaryLink (all-ones) marks an edge
// with no neighbour.
//
// Build enforces manifoldness: an edge shared by three or more faces is
// rejected with ErrNonManifold rather than silently picking two of the
// sharers. It locates shared edges using a radix.Sorter over the triple
// (owning face, vMin, vMax) rather than a map or a comparison sort — the
// same component spec.md describes as doing double duty for finding
// matching edges here and ordering seed faces in package strip.
//
// Complexity: O(F) time and space to build the adjacency for F faces (the
// three radix.Sort calls are each O(3F)); O(1) per FindEdge/OppositeVertex
// query.
//
// Errors:
//
//	ErrBadInput    — nil/empty-in-the-wrong-way triangle list, or a
//	                 triangle list whose shared-edge vertices don't
//	                 actually appear together on one of the two faces.
//	ErrNonManifold — three or more faces share one undirected edge.
package meshadj
