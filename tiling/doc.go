// Package tiling generates constrained procedural tilings: Truchet-style grids
// whose cells hold tile types that connect points on the cell perimeter
// (ports) with lines, and whose lines are colored so that they flow
// continuously from tile to tile.
//
// A generation pass has three stages run in order over a row-major grid:
//
//   - BlankDistribution decides, cell by cell, whether a cell is left empty,
//     hitting a target probability without long runs or vertical alignment.
//   - Placer draws a tile type for every other cell from a weighted table and
//     checks it against the already placed neighbors, retrying other types on
//     failure. When every type has been tried the last one is kept.
//   - ColorFlow floods colors along connected ports with an explicit stack,
//     keeping color usage balanced and switching color with a configurable
//     probability.
//
// Every random decision is drawn from one Source in a fixed order, so a given
// seed and Options always produce the same Grid.
package tiling
