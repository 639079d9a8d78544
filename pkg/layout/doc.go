// Package layout places graph nodes on the canvas.
//
// [Circular] puts the nodes on a circle in insertion order, node i at angle
// 2π·i/N. It is a closed-form placement: deterministic, with no randomness or
// iterative relaxation, so the same graph always yields the same picture and
// the result can seed any later refinement.
//
// [Frame] derives a center and radius from a viewport. The default frame,
// 500×500 with a 50px margin, places nodes on a circle of radius 200 around
// (250, 250).
package layout
