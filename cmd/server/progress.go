package main

import (
	"image"
	"sync"
)

// event is one progress update pushed to websocket subscribers.
type event struct {
	Type  string `json:"type"` // "strip", "palette" or "complete"
	Done  int    `json:"done,omitempty"`
	Total int    `json:"total,omitempty"`
	Size  int    `json:"size,omitempty"`
}

// renderState tracks render progress and fans events out to subscribers.
// The hooks are called from worker goroutines and the handlers from HTTP
// serving goroutines, so all state lives behind the mutex.
type renderState struct {
	m           sync.Mutex
	subscribers map[chan event]struct{}
	done, total int
	img         *image.RGBA
}

func newRenderState() *renderState {
	return &renderState{subscribers: make(map[chan event]struct{})}
}

func (rs *renderState) stripDone(done, total int) {
	rs.m.Lock()
	defer rs.m.Unlock()
	rs.done, rs.total = done, total
	rs.broadcastLocked(event{Type: "strip", Done: done, Total: total})
}

func (rs *renderState) paletteBuilt(size int) {
	rs.m.Lock()
	defer rs.m.Unlock()
	rs.broadcastLocked(event{Type: "palette", Size: size})
}

func (rs *renderState) complete(img *image.RGBA) {
	rs.m.Lock()
	defer rs.m.Unlock()
	rs.img = img
	rs.broadcastLocked(event{Type: "complete"})
}

// image returns the finished image, or nil while the render is in flight.
func (rs *renderState) image() *image.RGBA {
	rs.m.Lock()
	defer rs.m.Unlock()
	return rs.img
}

// subscribe registers a new event channel, primed with the current state so
// late subscribers see where the render stands.
func (rs *renderState) subscribe() (ch chan event, cancel func()) {
	ch = make(chan event, 16)
	rs.m.Lock()
	rs.subscribers[ch] = struct{}{}
	if rs.total > 0 {
		ch <- event{Type: "strip", Done: rs.done, Total: rs.total}
	}
	if rs.img != nil {
		ch <- event{Type: "complete"}
	}
	rs.m.Unlock()

	return ch, func() {
		rs.m.Lock()
		delete(rs.subscribers, ch)
		rs.m.Unlock()
	}
}

func (rs *renderState) broadcastLocked(ev event) {
	for ch := range rs.subscribers {
		select {
		case ch <- ev:
		default:
			// slow subscriber, drop the event rather than block a worker
		}
	}
}
