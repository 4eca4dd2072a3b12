// Package gridgraph finds short obstacle-avoiding corridors through the
// integer drawing grid, used by high-degree rewiring to splice a removed
// edge back in without crossing existing geometry.
//
// A Grid is a bounded window of the drawing's coordinate space; cells
// occupied by an existing node or edge segment are marked Occupy'd.
// ShortestFreePath runs a 0-1 BFS (moving into a free cell costs 0, into
// an occupied one costs 1) so the returned corridor crosses as little
// existing geometry as possible, and none at all when a free route
// exists.
package gridgraph
