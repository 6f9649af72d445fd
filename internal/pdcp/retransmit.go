package pdcp

import (
	"sort"

	"github.com/l2sim/pdcp-entity/pkg/apperr"
)

// retransmitQueue is an ordered map from TX COUNT to a retained deep copy
// of the SDU, used by DRB/AM bearers for reestablishment replay and status
// report generation. Ordering matters: the status reporter scans the queue
// end to end to derive the First Missing SDU and the acknowledgement
// bitmap.
//
// No ordered-map container appears anywhere in the retrieval pack; per
// spec.md §9 "a sorted flat vector is acceptable if entries are few (≤
// reorder window)", so this is a plain map paired with a sorted key slice
// rather than a balanced tree.
type retransmitQueue struct {
	entries map[uint32][]byte
	keys    []uint32 // kept sorted ascending
	timers  map[uint32]Timer
}

func newRetransmitQueue() *retransmitQueue {
	return &retransmitQueue{
		entries: make(map[uint32][]byte),
		timers:  make(map[uint32]Timer),
	}
}

// Len reports the number of stored SDUs.
func (q *retransmitQueue) Len() int { return len(q.keys) }

// Store inserts a deep copy of sdu under count. Returns
// apperr.ErrDuplicateCount if the key already exists.
func (q *retransmitQueue) Store(count uint32, sdu []byte) error {
	if _, exists := q.entries[count]; exists {
		return apperr.ErrDuplicateCount
	}
	cp := make([]byte, len(sdu))
	copy(cp, sdu)
	q.entries[count] = cp

	i := sort.Search(len(q.keys), func(i int) bool { return q.keys[i] >= count })
	q.keys = append(q.keys, 0)
	copy(q.keys[i+1:], q.keys[i:])
	q.keys[i] = count
	return nil
}

// Erase removes count from the queue and stops its discard timer, if any.
// Returns true if the key was present.
func (q *retransmitQueue) Erase(count uint32) bool {
	if _, exists := q.entries[count]; !exists {
		return false
	}
	delete(q.entries, count)
	if t, ok := q.timers[count]; ok {
		t.Stop()
		delete(q.timers, count)
	}
	i := sort.Search(len(q.keys), func(i int) bool { return q.keys[i] >= count })
	if i < len(q.keys) && q.keys[i] == count {
		q.keys = append(q.keys[:i], q.keys[i+1:]...)
	}
	return true
}

// SetTimer associates an armed discard timer with count.
func (q *retransmitQueue) SetTimer(count uint32, t Timer) {
	q.timers[count] = t
}

// FirstKey returns the smallest stored COUNT.
func (q *retransmitQueue) FirstKey() (uint32, bool) {
	if len(q.keys) == 0 {
		return 0, false
	}
	return q.keys[0], true
}

// LastKey returns the largest stored COUNT.
func (q *retransmitQueue) LastKey() (uint32, bool) {
	if len(q.keys) == 0 {
		return 0, false
	}
	return q.keys[len(q.keys)-1], true
}

// Keys returns the stored COUNTs in ascending order. The caller must not
// mutate the returned slice.
func (q *retransmitQueue) Keys() []uint32 { return q.keys }

// Snapshot deep-copies every stored entry, keyed by COUNT, for inspection
// or handover forwarding (get_buffered_pdus).
func (q *retransmitQueue) Snapshot() map[uint32][]byte {
	out := make(map[uint32][]byte, len(q.entries))
	for k, v := range q.entries {
		cp := make([]byte, len(v))
		copy(cp, v)
		out[k] = cp
	}
	return out
}

// Drain removes and returns every entry in ascending key order, clearing
// the queue and stopping all discard timers. Used by reestablish() to
// replay undelivered SDUs.
func (q *retransmitQueue) Drain() []struct {
	Count uint32
	SDU   []byte
} {
	out := make([]struct {
		Count uint32
		SDU   []byte
	}, 0, len(q.keys))
	for _, k := range q.keys {
		out = append(out, struct {
			Count uint32
			SDU   []byte
		}{Count: k, SDU: q.entries[k]})
	}
	for _, t := range q.timers {
		t.Stop()
	}
	q.entries = make(map[uint32][]byte)
	q.timers = make(map[uint32]Timer)
	q.keys = nil
	return out
}
