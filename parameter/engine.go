package parameter

import "time"

// Host loop timing
const (
	// TickRate is the target simulation and render rate in ticks per second
	TickRate = 60

	// FrameUpdateInterval is the ticker period derived from TickRate
	FrameUpdateInterval = time.Second / TickRate

	// EventChannelSize buffers input events between the poller goroutine and the host loop
	EventChannelSize = 100
)
