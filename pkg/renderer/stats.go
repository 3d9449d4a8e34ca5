package renderer

import "time"

// statsWindow is the number of recent frames averaged for the rolling
// frame-time report
const statsWindow = 20

// FrameStats keeps a rolling window of recent frame durations
type FrameStats struct {
	durations []time.Duration
	next      int
}

// NewFrameStats creates an empty stats window
func NewFrameStats() *FrameStats {
	return &FrameStats{durations: make([]time.Duration, 0, statsWindow)}
}

// Add records the duration of a completed frame, evicting the oldest
// entry once the window is full
func (fs *FrameStats) Add(d time.Duration) {
	if len(fs.durations) < statsWindow {
		fs.durations = append(fs.durations, d)
		return
	}
	fs.durations[fs.next] = d
	fs.next = (fs.next + 1) % statsWindow
}

// Average returns the mean duration over the window, zero when empty
func (fs *FrameStats) Average() time.Duration {
	if len(fs.durations) == 0 {
		return 0
	}
	var total time.Duration
	for _, d := range fs.durations {
		total += d
	}
	return total / time.Duration(len(fs.durations))
}

// Count returns how many frames are currently in the window
func (fs *FrameStats) Count() int {
	return len(fs.durations)
}
