// Package wiringlib is your in-memory workbench for building, transforming,
// and normalizing wiring diagrams — box-and-wire presentations of
// processes, from plain composition to junction calculus and operadic
// substitution.
//
// 🚀 What is wiring?
//
//	A small, focused library that brings together:
//		• Core primitives: diagrams, boxes, ports & wires — mutate freely, compare structurally
//		• Categorical operations: identities, sequential & parallel composition, braiding, permutation
//		• Diagonal structure: copy/merge/delete/create, dispatched per wiring theory
//		• Junction calculus: implicit ↔ explicit fan-in/fan-out, junction merging
//		• Operadic substitution: replace boxes by whole diagrams, flatten nesting
//		• Graph views: export connectivity for component analysis
//
// ✨ Why choose wiring?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – stable box numbering, order-independent equality
//   - Pure Go – no cgo, no hidden deps
//   - Theory-aware – one dispatch table decides how each doctrine renders
//     its diagonal structure
//
// Under the hood, everything is organized under two subpackages:
//
//	wiring/ — diagrams, boxes, ports, theories, operations & junction management
//	graphs/ — minimal directed multigraph with induced subgraphs & weak components
//
// Quick ASCII example:
//
//	in ──▶ [filter] ──▶ ● ──▶ [analyze] ──▶ out
//	                    │
//	                    └────▶ [archive] ──▶ out
//
//	a filtered stream duplicated at a junction and consumed by two boxes.
//
// Dive into examples/ for end-to-end scenarios: pipeline assembly,
// junction normalization and operadic refinement.
//
//	go get github.com/katalvlaran/wiring
package wiringlib
