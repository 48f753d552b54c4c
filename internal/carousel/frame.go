package carousel

// FrameScheduler coalesces recomputation requests so at most one job is
// pending per frame, however many scroll events arrive in between.
type FrameScheduler struct {
	pending bool
	runs    int
}

// Request schedules a run for the next frame. It returns false when one was
// already pending and the request was coalesced into it.
func (s *FrameScheduler) Request() bool {
	if s.pending {
		return false
	}
	s.pending = true
	return true
}

// Pending reports whether a run is scheduled.
func (s *FrameScheduler) Pending() bool { return s.pending }

// Flush runs fn if a run is pending and clears the flag. Call once per
// frame. It reports whether fn ran.
func (s *FrameScheduler) Flush(fn func()) bool {
	if !s.pending {
		return false
	}
	s.pending = false
	s.runs++
	fn()
	return true
}

// Cancel drops a pending run.
func (s *FrameScheduler) Cancel() { s.pending = false }

// Runs counts how many times Flush actually ran a job.
func (s *FrameScheduler) Runs() int { return s.runs }
