package wiring

import "fmt"

// Encapsulate collapses each group of boxes into a single replacement box,
// discarding the groups' internal boxes and wires and exposing only the
// boundary connections. Wires crossing into a group enumerate, in diagram
// wire order, the replacement box's input ports; wires crossing out
// enumerate its output ports. makeBox receives the group and the crossing
// ports' value lists and returns the replacement box.
//
// Groups must be non-empty, disjoint, and reference existing boxes.
// Returns ErrBadGroup or ErrBoxNotFound. The receiver is not modified.
// Complexity: O(B + W)
func (d *Diagram) Encapsulate(groups [][]int, makeBox func(group []int, inputs, outputs []any) Box) (*Diagram, error) {
	// 1. Validate groups and build the membership index.
	groupOf := make(map[int]int)
	for gi, group := range groups {
		if len(group) == 0 {
			return nil, fmt.Errorf("%w: group %d is empty", ErrBadGroup, gi)
		}
		for _, id := range group {
			if _, ok := d.boxes[id]; !ok {
				return nil, fmt.Errorf("%w: id %d", ErrBoxNotFound, id)
			}
			if prev, ok := groupOf[id]; ok {
				return nil, fmt.Errorf("%w: box %d in groups %d and %d", ErrBadGroup, id, prev, gi)
			}
			groupOf[id] = gi
		}
	}

	// 2. Classify wires: internal ones vanish; crossing ones claim the
	//    next port of their group's replacement box, in wire order.
	type crossing struct{ srcPort, tgtPort int } // claimed indices, -1 if not crossing
	claims := make([]crossing, len(d.wires))
	groupIns := make([][]any, len(groups))
	groupOuts := make([][]any, len(groups))
	internal := make([]bool, len(d.wires))
	for i, w := range d.wires {
		claims[i] = crossing{srcPort: -1, tgtPort: -1}
		sg, srcIn := groupOf[w.Source.Box]
		tg, tgtIn := groupOf[w.Target.Box]
		if srcIn && tgtIn && sg == tg {
			internal[i] = true

			continue
		}
		if tgtIn {
			claims[i].tgtPort = len(groupIns[tg])
			groupIns[tg] = append(groupIns[tg], d.portValue(w.Target))
		}
		if srcIn {
			claims[i].srcPort = len(groupOuts[sg])
			groupOuts[sg] = append(groupOuts[sg], d.portValue(w.Source))
		}
	}

	// 3. Rebuild boxes: survivors in ID order, each replacement box at its
	//    first member's position.
	res := newDiagram(d.Dom(), d.Codom())
	kept := make(map[int]int)
	groupBox := make([]int, len(groups))
	placed := make([]bool, len(groups))
	for _, id := range d.BoxIDs() {
		if gi, ok := groupOf[id]; ok {
			if !placed[gi] {
				groupBox[gi] = res.AddBox(makeBox(groups[gi], groupIns[gi], groupOuts[gi]))
				placed[gi] = true
			}

			continue
		}
		kept[id] = res.AddBox(d.boxes[id].copyBox())
	}

	// 4. Rewire.
	for i, w := range d.wires {
		if internal[i] {
			continue
		}
		src, tgt := w.Source, w.Target
		if gi, ok := groupOf[src.Box]; ok {
			src = OutPort(groupBox[gi], claims[i].srcPort)
		} else if src.Box != inputNode {
			src = OutPort(kept[src.Box], src.Index)
		}
		if gi, ok := groupOf[tgt.Box]; ok {
			tgt = InPort(groupBox[gi], claims[i].tgtPort)
		} else if tgt.Box != outputNode {
			tgt = InPort(kept[tgt.Box], tgt.Index)
		}
		if err := res.AddWire(Wire{Source: src, Target: tgt}); err != nil {
			return nil, err
		}
	}

	return res, nil
}
