// Package refine removes useless bends: red (synthetic) nodes whose two
// incident shape edges run the same orientation, which means the bend
// added no turn at all. Each removed bend is replaced by a single direct
// edge carrying the direction its flat corner already implied.
package refine
