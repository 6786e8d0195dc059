package engine

// distanceWindows holds, per period d, the ascending end positions registered
// as matches with that period. Entries left of the current window are dropped
// lazily by evict.
type distanceWindows map[int][]int

func (w distanceWindows) register(d, end int) {
	w[d] = append(w[d], end)
}

// evict drops entries below lo and returns what is left. ok is false when no
// window exists for d at all.
func (w distanceWindows) evict(d, lo int) (live []int, ok bool) {
	live, ok = w[d]
	if !ok {
		return nil, false
	}
	k := 0
	for k < len(live) && live[k] < lo {
		k++
	}
	if k > 0 {
		live = live[k:]
		w[d] = live
	}
	return live, true
}

func (w distanceWindows) reset() { clear(w) }
