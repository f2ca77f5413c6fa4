package systems

import (
	"github.com/automoto/pacdots/gamemath"
	"github.com/solarlune/resolv"
)

// overlaps reports whether two rectangles share area. Touching edges do not
// count.
func overlaps(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	return ax < bx+bw && bx < ax+aw && ay < by+bh && by < ay+ah
}

func objectsOverlap(a, b *resolv.Object) bool {
	return overlaps(a.X, a.Y, a.W, a.H, b.X, b.Y, b.W, b.H)
}

// overlapping returns the objects with tag that currently overlap obj.
func overlapping(obj *resolv.Object, tag string) []*resolv.Object {
	check := obj.Check(0, 0, tag)
	if check == nil {
		return nil
	}
	var hits []*resolv.Object
	for _, other := range check.ObjectsByTags(tag) {
		if objectsOverlap(obj, other) {
			hits = append(hits, other)
		}
	}
	return hits
}

// blockedAt reports whether obj, centred on pos, would overlap anything
// tagged tag.
func blockedAt(obj *resolv.Object, pos gamemath.Vec3, tag string) bool {
	nx := pos.X - obj.W/2
	ny := pos.Z - obj.H/2
	check := obj.Check(nx-obj.X, ny-obj.Y, tag)
	if check == nil {
		return false
	}
	for _, other := range check.ObjectsByTags(tag) {
		if overlaps(nx, ny, obj.W, obj.H, other.X, other.Y, other.W, other.H) {
			return true
		}
	}
	return false
}
