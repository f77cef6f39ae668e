// Package strip turns a built mesh adjacency into a compact set of GPU
// triangle strips: for every still-unused face, it tries three directed
// starting edges, extends each as far as the adjacency graph allows, picks
// the longest, commits its faces, and (per flag) parity-corrects or
// concatenates the whole output into one strip via degenerate triangles.
//
// The pipeline is Striper.Init (build adjacency, validate) then
// Striper.Compute (walk seeds, emit strips). A *Striper is reusable across
// Init calls but Compute's result borrows nothing beyond its own call —
// each Compute produces a fresh Result.
//
// Strip walking is a greedy local heuristic, not a globally optimal
// strip cover; SORTSEEDS biases seed order toward low-degree (corner)
// faces, which empirically produces longer strips, but the result is not
// guaranteed minimal in strip count.
package strip
