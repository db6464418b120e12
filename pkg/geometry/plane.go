package geometry

// Plane is an oriented plane given by a point on it and its normal
type Plane struct {
	Point  Vector3
	Normal Vector3
}

// NewPlane creates a plane through point with the given normal.
// The normal is stored normalized.
func NewPlane(point, normal Vector3) Plane {
	return Plane{Point: point, Normal: normal.Normalize()}
}

// Distance returns the signed distance of p from the plane
func (pl Plane) Distance(p Vector3) float64 {
	return p.Sub(pl.Point).Dot(pl.Normal)
}
