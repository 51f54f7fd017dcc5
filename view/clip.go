package view

// ClipNearPlane clips a convex polygon given as (x, y, depth) points
// against the plane depth == near, keeping the part with depth >= near.
// Points on the plane are kept.
func ClipNearPlane(poly [][3]float64, near float64) [][3]float64 {
	if len(poly) == 0 {
		return nil
	}

	out := make([][3]float64, 0, len(poly)+1)
	prev := poly[len(poly)-1]
	prevIn := prev[2] >= near
	for _, cur := range poly {
		curIn := cur[2] >= near
		if curIn != prevIn {
			out = append(out, intersectNearPlane(prev, cur, near))
		}
		if curIn {
			out = append(out, cur)
		}
		prev, prevIn = cur, curIn
	}
	return out
}

// intersectNearPlane returns where segment p1-p2 crosses depth == near.
// A segment parallel to the plane returns p1.
func intersectNearPlane(p1, p2 [3]float64, near float64) [3]float64 {
	dz := p2[2] - p1[2]
	if dz == 0 {
		return p1
	}
	t := (near - p1[2]) / dz
	return [3]float64{
		p1[0] + t*(p2[0]-p1[0]),
		p1[1] + t*(p2[1]-p1[1]),
		near,
	}
}
