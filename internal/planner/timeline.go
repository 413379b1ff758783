package planner

import "math"

// interval is one committed execution window on a machine. start < finish
// for every committed interval.
type interval struct {
	start, finish float64
}

// timeline is the ordered, non-overlapping set of execution windows
// committed to one machine. Each timeline is owned by a single planning
// run and mutated only when that machine wins a task.
type timeline struct {
	slots []interval // sorted by start; slots[i].finish <= slots[i+1].start
}

// findSlot returns the earliest window of the given duration starting at
// or after ready, without mutating the timeline. It is the scoring query:
// for identical inputs it returns exactly the window commit would.
func (t *timeline) findSlot(ready, duration float64) interval {
	slot, _ := t.place(ready, duration)
	return slot
}

// commit finds the same window findSlot would return and inserts it at its
// sorted position.
func (t *timeline) commit(ready, duration float64) interval {
	slot, pos := t.place(ready, duration)
	t.slots = append(t.slots, interval{})
	copy(t.slots[pos+1:], t.slots[pos:])
	t.slots[pos] = slot
	return slot
}

// place runs the insertion-based idle-slot search and returns the chosen
// window with its insertion position.
//
// With two or more committed windows the scan walks adjacent pairs from
// latest to earliest, keeping the earliest gap that fits. It stops as soon
// as ready falls strictly after the earlier window of the pair, at which
// point only the gap in front of the later window can still hold a task
// that is not ready before then.
func (t *timeline) place(ready, duration float64) (interval, int) {
	n := len(t.slots)
	if n == 0 {
		return interval{start: ready, finish: ready + duration}, 0
	}

	if n == 1 {
		only := t.slots[0]
		switch {
		case ready >= only.finish:
			return interval{start: ready, finish: ready + duration}, 1
		case ready+duration <= only.start:
			return interval{start: ready, finish: ready + duration}, 0
		default:
			return interval{start: only.finish, finish: only.finish + duration}, 1
		}
	}

	// Default: queue after the last committed window.
	start := math.Max(ready, t.slots[n-1].finish)
	best := interval{start: start, finish: start + duration}
	pos := n

	stopped := false
	for i, j := n-1, n-2; j >= 0; i, j = i-1, j-1 {
		current, previous := t.slots[i], t.slots[j]
		if ready > previous.finish {
			if ready+duration <= current.start {
				best = interval{start: ready, finish: ready + duration}
				pos = i
			}
			stopped = true
			break
		}
		if previous.finish+duration <= current.start {
			best = interval{start: previous.finish, finish: previous.finish + duration}
			pos = i
		}
	}

	// Scan reached the front: the window may fit before the first slot.
	if !stopped && ready+duration <= t.slots[0].start {
		best = interval{start: ready, finish: ready + duration}
		pos = 0
	}
	return best, pos
}
