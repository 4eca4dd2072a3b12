// Package compact slides nodes together along one axis at a time,
// closing unused rows/columns left behind by shape synthesis and bend
// refinement, without letting two nodes (or the segments between them)
// collide.
//
// Compaction assumes positions already form a dense, non-negative integer
// grid per axis (exactly what classes/ordering produce): the column (or
// row) index used for conflict checking is the position coordinate
// itself, not a derived rank. CompactX then CompactY each walk columns
// (rows) left to right, sliding a column as far left as it can go
// without its occupied row-span overlapping any row-span already parked
// at the target column.
package compact
