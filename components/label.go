package components

import (
	"github.com/automoto/pacdots/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// FloatingLabelData is transient text shown above a consumed hazard. It is
// owned by Parent and destroyed together with it.
type FloatingLabelData struct {
	Text    string
	Parent  donburi.Entity
	Anchor  gamemath.Vec3
	Rise    float64 // current offset above Anchor
	Alpha   float64
	Settled bool // both tweens have finished
	rise    *gween.Tween
	fade    *gween.Tween
}

// NewFloatingLabel prepares a label that rises by distance and fades out over
// duration seconds.
func NewFloatingLabel(text string, parent donburi.Entity, anchor gamemath.Vec3, distance, duration float64) FloatingLabelData {
	return FloatingLabelData{
		Text:   text,
		Parent: parent,
		Anchor: anchor,
		Alpha:  1,
		rise:   gween.New(0, float32(distance), float32(duration), ease.OutQuad),
		fade:   gween.New(1, 0, float32(duration), ease.Linear),
	}
}

// Advance steps both tweens by dt seconds.
func (l *FloatingLabelData) Advance(dt float64) {
	if l.Settled || l.rise == nil || l.fade == nil {
		return
	}
	rise, riseDone := l.rise.Update(float32(dt))
	alpha, fadeDone := l.fade.Update(float32(dt))
	l.Rise = float64(rise)
	l.Alpha = float64(alpha)
	l.Settled = riseDone && fadeDone
}

var FloatingLabel = donburi.NewComponentType[FloatingLabelData]()
