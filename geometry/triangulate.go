package geometry

import "seehuhn.de/go/geom/vec"

// Fan triangulates n vertices as a fan anchored at vertex 0.
// For N points it generates N-2 triangles.
func Fan(n int) []int {
	if n < 3 {
		return []int{}
	}
	out := make([]int, 0, 3*(n-2))
	for i := 1; i < n-1; i++ {
		out = append(out, 0, i, i+1)
	}
	return out
}

// EarClip triangulates a simple polygon by ear clipping. The returned
// indices refer to ring. ok is false when no ear could be found before the
// ring was exhausted, which happens for self-intersecting rings; the
// remaining vertices are then closed with a fan so the result still covers
// the whole ring.
func EarClip(ring []vec.Vec2) (indices []int, ok bool) {
	n := len(ring)
	if n < 3 {
		return []int{}, true
	}

	ccw := SignedArea(ring) >= 0
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	indices = make([]int, 0, 3*(n-2))
	for len(idx) > 3 {
		found := false
		for i := range idx {
			m := len(idx)
			prev, cur, next := idx[(i+m-1)%m], idx[i], idx[(i+1)%m]
			a, b, c := ring[prev], ring[cur], ring[next]

			turn := Cross2D(b.Sub(a), c.Sub(b))
			if turn == 0 {
				// 共线顶点不贡献面积，直接剔除
				idx = append(idx[:i], idx[i+1:]...)
				found = true
				break
			}
			if (turn > 0) != ccw {
				continue
			}
			if containsAny(ring, idx, prev, cur, next) {
				continue
			}

			indices = append(indices, prev, cur, next)
			idx = append(idx[:i], idx[i+1:]...)
			found = true
			break
		}
		if !found {
			for i := 1; i < len(idx)-1; i++ {
				indices = append(indices, idx[0], idx[i], idx[i+1])
			}
			return indices, false
		}
	}
	indices = append(indices, idx[0], idx[1], idx[2])
	return indices, true
}

// containsAny reports whether any remaining vertex other than the ear's own
// corners lies inside or on the triangle a-b-c.
func containsAny(ring []vec.Vec2, idx []int, ia, ib, ic int) bool {
	a, b, c := ring[ia], ring[ib], ring[ic]
	for _, j := range idx {
		if j == ia || j == ib || j == ic {
			continue
		}
		p := ring[j]
		if p == a || p == b || p == c {
			continue
		}
		if inTriangle(p, a, b, c) {
			return true
		}
	}
	return false
}

func inTriangle(p, a, b, c vec.Vec2) bool {
	d1 := Cross2D(b.Sub(a), p.Sub(a))
	d2 := Cross2D(c.Sub(b), p.Sub(b))
	d3 := Cross2D(a.Sub(c), p.Sub(c))
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}
