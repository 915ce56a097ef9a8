package prism

// frameRing records the timestamps of the last N frames so the host can
// show a frame rate without keeping an unbounded history.
type frameRing struct {
	buffer    []float64
	nextIndex int
	count     int
}

func newFrameRing(size int) *frameRing {
	if size < 2 {
		size = 2
	}
	return &frameRing{buffer: make([]float64, size)}
}

func (r *frameRing) record(t float64) {
	r.buffer[r.nextIndex] = t
	r.nextIndex++
	if r.nextIndex >= len(r.buffer) {
		r.nextIndex = 0
	}
	if r.count < len(r.buffer) {
		r.count++
	}
}

// snapshot returns up to the last n timestamps, most recent last.
func (r *frameRing) snapshot(n int) []float64 {
	if n > r.count {
		n = r.count
	}
	out := make([]float64, n)
	idx := r.nextIndex - 1
	for i := n - 1; i >= 0; i-- {
		if idx < 0 {
			idx = len(r.buffer) - 1
		}
		out[i] = r.buffer[idx]
		idx--
	}
	return out
}

// rate returns frames per second over the recorded window.
func (r *frameRing) rate() float64 {
	s := r.snapshot(r.count)
	if len(s) < 2 {
		return 0
	}
	span := s[len(s)-1] - s[0]
	if span <= 0 {
		return 0
	}
	return float64(len(s)-1) / span
}
