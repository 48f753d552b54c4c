package carousel

import "math"

// Role classifies what sits under the pointer when a drag might start.
type Role int

const (
	RoleSurface Role = iota
	RoleButton
	RoleLink
	RoleInput
)

// Target describes the element a pointer-down landed on.
type Target struct {
	Role   Role
	NoDrag bool
}

// Interactive reports whether a pointer-down on t belongs to a control and
// must not be turned into a drag.
func (t Target) Interactive() bool {
	return t.NoDrag || t.Role != RoleSurface
}

// DragConfig bounds the commit threshold: max(Min, min(Max, itemWidth*Ratio)).
type DragConfig struct {
	Min   float64
	Max   float64
	Ratio float64
}

// DefaultDragConfig matches the 52px..160px, 22% of item width threshold.
func DefaultDragConfig() DragConfig {
	return DragConfig{Min: 52, Max: 160, Ratio: 0.22}
}

// Threshold returns the distance a drag must cover to commit a step.
func (c DragConfig) Threshold(itemWidth float64) float64 {
	return math.Max(c.Min, math.Min(c.Max, itemWidth*c.Ratio))
}

type dragPhase int

const (
	dragIdle dragPhase = iota
	dragDragging
)

// Release is the outcome of a finished drag.
type Release struct {
	// Commit is true when the drag crossed the threshold.
	Commit bool
	// Start is the index the drag began on.
	Start int
	// Dir is +1 or -1 for a commit, 0 for a snap-back.
	Dir int
	// DeltaX is the final horizontal travel in pixels.
	DeltaX float64
}

// Target returns the index the carousel should move to.
func (r Release) Target() int {
	return r.Start + r.Dir
}

// DragController turns a pointer down/move/up sequence into either a single
// step commit or a snap-back to the starting index.
type DragController struct {
	cfg        DragConfig
	phase      dragPhase
	startX     float64
	startIndex int
	deltaX     float64
}

func NewDragController(cfg DragConfig) *DragController {
	return &DragController{cfg: cfg}
}

// Down starts a drag at x over the given index. It returns false and stays
// idle when the pointer landed on an interactive element, so the element's
// own click handling still runs.
func (d *DragController) Down(x float64, target Target, index int) bool {
	if target.Interactive() {
		return false
	}
	d.phase = dragDragging
	d.startX = x
	d.startIndex = index
	d.deltaX = 0
	return true
}

// Move updates the drag with the current pointer position and returns the
// travel so far. Moves while idle are ignored.
func (d *DragController) Move(x float64) float64 {
	if d.phase != dragDragging {
		return 0
	}
	d.deltaX = x - d.startX
	return d.deltaX
}

// Up ends the drag and evaluates the travel against the threshold for
// itemWidth. A drag to the left (negative delta) advances, to the right goes
// back. ok is false when no drag was in progress.
func (d *DragController) Up(itemWidth float64) (r Release, ok bool) {
	if d.phase != dragDragging {
		return Release{}, false
	}
	r = Release{Start: d.startIndex, DeltaX: d.deltaX}
	if math.Abs(d.deltaX) >= d.cfg.Threshold(itemWidth) {
		r.Commit = true
		if d.deltaX > 0 {
			r.Dir = -1
		} else {
			r.Dir = 1
		}
	}
	d.reset()
	return r, true
}

// Cancel is a pointer-cancel; it is evaluated exactly like Up.
func (d *DragController) Cancel(itemWidth float64) (Release, bool) {
	return d.Up(itemWidth)
}

// Dragging reports whether a drag is in progress.
func (d *DragController) Dragging() bool {
	return d.phase == dragDragging
}

// DeltaX is the current travel, 0 when idle.
func (d *DragController) DeltaX() float64 {
	if d.phase != dragDragging {
		return 0
	}
	return d.deltaX
}

func (d *DragController) reset() {
	d.phase = dragIdle
	d.startX = 0
	d.deltaX = 0
}
