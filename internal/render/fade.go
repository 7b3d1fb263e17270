package render

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"skinkit/internal/palette"
)

// Fade animates a color between two resolved values, typically the same
// attribute at the previous and the new State. Callers drive it with
// Update(dt) from their own tick.
type Fade struct {
	tweens  [4]*gween.Tween
	current palette.Color
	to      palette.Color
	Done    bool
}

// NewFade fades from one color to another over duration seconds. A nil fn
// uses ease.Linear. Empty endpoints snap, since there is nothing to blend.
func NewFade(from, to palette.Color, duration float32, fn ease.TweenFunc) *Fade {
	f := &Fade{current: from, to: to}
	if from.IsEmpty() || to.IsEmpty() || duration <= 0 || from == to {
		f.current = to
		f.Done = true
		return f
	}
	if fn == nil {
		fn = ease.Linear
	}
	f.tweens[0] = gween.New(float32(from.R), float32(to.R), duration, fn)
	f.tweens[1] = gween.New(float32(from.G), float32(to.G), duration, fn)
	f.tweens[2] = gween.New(float32(from.B), float32(to.B), duration, fn)
	f.tweens[3] = gween.New(float32(from.A), float32(to.A), duration, fn)
	return f
}

// FadeBack fades t's background color1 from one state to another.
func FadeBack(t *palette.Triple, from, to palette.State, duration float32, fn ease.TweenFunc) *Fade {
	return NewFade(t.Back().BackColor1(from), t.Back().BackColor1(to), duration, fn)
}

// Update advances the fade by dt seconds and returns the current color.
func (f *Fade) Update(dt float32) palette.Color {
	if f.Done {
		return f.current
	}
	var ch [4]uint8
	done := true
	for i, tw := range f.tweens {
		val, finished := tw.Update(dt)
		ch[i] = channel(val)
		if !finished {
			done = false
		}
	}
	f.current = palette.Color{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}
	if done {
		f.current = f.to
		f.Done = true
	}
	return f.current
}

// Current returns the last computed color.
func (f *Fade) Current() palette.Color { return f.current }

func channel(v float32) uint8 {
	return uint8(min(max(v+0.5, 0), 255))
}
