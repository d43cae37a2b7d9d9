package allocation

type TimeInterval struct {
	TimeStart int64
	TimeEnd   int64
}

func (interval *TimeInterval) Duration() int64 {
	return interval.TimeEnd - interval.TimeStart
}

const _SecondsPerMinute = int64(60)

// Task durations are estimated in minutes, the clock runs in unix seconds.
func minutesToSeconds(minutes int64) int64 {
	return minutes * _SecondsPerMinute
}
