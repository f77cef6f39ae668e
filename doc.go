// Package tristrip turns an unordered triangle list into a compact set of
// triangle strips for GPU consumption.
//
// 🚀 What is tristrip?
//
//	A small, zero-runtime-dependency library that brings together:
//
//	  • A byte-radix sorter over 32-bit keys (unsigned, signed, float)
//	  • A half-edge-style mesh adjacency builder with manifoldness checks
//	  • A greedy strip generator with parity correction and concatenation
//
// ✨ Why choose tristrip?
//
//   - Deterministic  — identical input and flags always produce identical output
//   - Greedy, not global — strips are a local heuristic, not an optimal cover
//   - Pure Go        — no cgo, no rendering dependency, no I/O
//
// Under the hood, everything is organized under three subpackages:
//
//	radix/   — stable 4-pass LSB-first byte-radix permutation sort
//	meshadj/ — Face/Edge adjacency construction and manifoldness enforcement
//	strip/   — strip tracker, seed-best selector, concatenator, top-level Striper
//
// Quick example: a two-triangle quad [0,1,2, 2,1,3] strips down to the
// single four-index strip 3,2,1,0 (its windows (3,2,1) and (2,1,0) are the
// triangles (1,2,3) and (0,1,2), which share an edge and alternate winding).
//
// Dive into DESIGN.md for the grounding of each package in the wider
// lvlath family this module grew out of.
//
//	go get github.com/katalvlaran/tristrip
package tristrip
