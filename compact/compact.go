package compact

import (
	"fmt"

	"github.com/katalvlaran/orthodraw/core"
)

// span is an inclusive [min,max] range along the axis orthogonal to the
// one currently being compacted.
type span [2]int

// Compact runs CompactX followed by CompactY, the standard order: close
// up horizontal slack first, then vertical.
func Compact(g *core.Graph, positions *core.Positions) error {
	if err := CompactX(g, positions); err != nil {
		return fmt.Errorf("compact: Compact: %w", err)
	}
	if err := CompactY(g, positions); err != nil {
		return fmt.Errorf("compact: Compact: %w", err)
	}
	return nil
}

// CompactX slides each occupied column (constant X) as far left as
// possible without its Y-span overlapping a column already parked at the
// destination.
func CompactX(g *core.Graph, positions *core.Positions) error {
	return compactAxis(g, positions, true)
}

// CompactY slides each occupied row (constant Y) as far up as possible
// without its X-span overlapping a row already parked at the
// destination.
func CompactY(g *core.Graph, positions *core.Positions) error {
	return compactAxis(g, positions, false)
}

func compactAxis(g *core.Graph, positions *core.Positions, xAxis bool) error {
	primary := make(map[int][]int) // primary coordinate -> node ids
	maxPrimary := 0

	for _, id := range g.Nodes() {
		p, err := positions.Get(id)
		if err != nil {
			return fmt.Errorf("compact: compactAxis(%d): %w", id, err)
		}
		coord := p.Y
		if xAxis {
			coord = p.X
		}
		primary[coord] = append(primary[coord], id)
		if coord > maxPrimary {
			maxPrimary = coord
		}
	}

	ranges := make(map[int][]span, len(primary))
	for coord, ids := range primary {
		ranges[coord] = []span{crossSpan(positions, ids, xAxis)}
	}

	for idx := 1; idx <= maxPrimary; idx++ {
		ids, ok := primary[idx]
		if !ok {
			continue
		}
		shift := computeShift(idx, ranges)
		if shift == 0 {
			continue
		}
		for _, id := range ids {
			p, err := positions.Get(id)
			if err != nil {
				return fmt.Errorf("compact: compactAxis(%d): %w", id, err)
			}
			if xAxis {
				p.X -= shift
			} else {
				p.Y -= shift
			}
			positions.Set(id, p)
		}
		ranges[idx-shift] = append(ranges[idx-shift], ranges[idx][0])
		ranges[idx] = nil
	}
	return nil
}

// crossSpan returns the [min,max] range, along the orthogonal axis,
// occupied by ids.
func crossSpan(positions *core.Positions, ids []int, xAxis bool) span {
	min, max := int(^uint(0)>>1), 0
	for _, id := range ids {
		p, _ := positions.Get(id)
		v := p.X
		if xAxis {
			v = p.Y
		}
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return span{min, max}
}

// computeShift walks backwards from idx, counting how many consecutive
// indices the column/row at idx can move through without its span
// overlapping anything already parked there.
func computeShift(idx int, ranges map[int][]span) int {
	toShift := ranges[idx][0]
	shift := 0
	for {
		if idx-shift == 0 {
			return shift
		}
		if !canMoveInto(ranges[idx-shift-1], toShift) {
			break
		}
		shift++
	}
	return shift
}

// canMoveInto reports whether toShift overlaps none of the spans already
// parked at a candidate destination index.
func canMoveInto(parked []span, toShift span) bool {
	for _, r := range parked {
		if !(r[0] > toShift[1] || toShift[0] > r[1]) {
			return false
		}
	}
	return true
}
