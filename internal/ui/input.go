package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/depeter/atelier/internal/carousel"
)

// Input is one frame's worth of user input, collected by the app and handed
// to the current screen.
type Input struct {
	// Key is the navigation key pressed this frame, after key repeat.
	Key carousel.Key

	CursorX, CursorY float64
	// Pressed and Released are edges of the primary button; Held is its level.
	Pressed  bool
	Released bool
	Held     bool

	// WheelX and WheelY are in pixels, positive when the content should
	// move left or up (the browser's deltaX/deltaY sign).
	WheelX, WheelY float64
}

// Wheeled reports whether there was any wheel travel this frame.
func (in *Input) Wheeled() bool { return in.WheelX != 0 || in.WheelY != 0 }

// PollPointer fills the pointer and wheel fields from ebiten.
func PollPointer(in *Input) {
	x, y := ebiten.CursorPosition()
	in.CursorX, in.CursorY = float64(x), float64(y)
	in.Pressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	in.Released = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	in.Held = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	// ebiten reports notches with positive y meaning away from the user.
	wx, wy := ebiten.Wheel()
	in.WheelX = -wx * ScrollWheelSpeed
	in.WheelY = -wy * ScrollWheelSpeed
}

// UpdateInputState must be called at the end of each Update() to track key state.
func UpdateInputState() {
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		if ebiten.IsKeyPressed(k) {
			keyHoldFrames[k]++
		} else {
			delete(keyHoldFrames, k)
		}
	}
}

var keyHoldFrames = make(map[ebiten.Key]int)

const (
	repeatDelay    = 18 // frames before repeat starts (~300ms at 60fps)
	repeatInterval = 8  // frames between repeats; slower than a list so each step can land
)

// KeyRepeating reports a press on the first frame and then at the repeat
// interval while the key is held.
func KeyRepeating(key ebiten.Key) bool {
	if !ebiten.IsKeyPressed(key) {
		return false
	}
	frames, held := keyHoldFrames[key]
	if !held || frames == 0 {
		return true
	}
	return repeatFires(frames)
}

func repeatFires(frames int) bool {
	return frames >= repeatDelay && (frames-repeatDelay)%repeatInterval == 0
}

// PointInRect returns true if point (px, py) is inside the rectangle (rx, ry, rw, rh).
func PointInRect(px, py float64, rx, ry, rw, rh float64) bool {
	return px >= rx && px <= rx+rw &&
		py >= ry && py <= ry+rh
}

// Lerp for smooth scrolling
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
