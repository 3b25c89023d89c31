package entity

// Detection is a single object found by the detection inference service.
type Detection struct {
	Object      string     `json:"object"`      // Class label reported by the model.
	Confidence  float64    `json:"confidence"`  // Model confidence in [0, 1].
	BoundingBox [4]float64 `json:"boundingBox"` // [x1, y1, x2, y2] in image pixel coordinates.
}
