package planarlib

import (
	"bytes"
	"encoding/json"

	"oss.terrastruct.com/xdefer"

	"oss.terrastruct.com/planar/lib/geo"
)

// Document lists the points, lines and shapes to measure.
type Document struct {
	Points []PointDecl `json:"points"`
	Lines  []LineDecl  `json:"lines"`
	Shapes []ShapeDecl `json:"shapes"`
}

// Coord is written as [x, y].
type Coord [2]float64

func (c Coord) Point() *geo.Point {
	return geo.NewPoint(c[0], c[1])
}

type PointDecl struct {
	Name string `json:"name"`
	At   Coord  `json:"at"`

	// To is an optional second point to measure the distance to.
	To *Coord `json:"to,omitempty"`
}

type LineDecl struct {
	Name  string `json:"name"`
	Start Coord  `json:"start"`
	End   Coord  `json:"end"`
}

type ShapeDecl struct {
	Name string `json:"name"`

	// Type is one of the lib/shape type names. Empty means classify (or a general
	// polygon when classification is off).
	Type     string  `json:"type"`
	Regular  bool    `json:"regular"`
	Vertices []Coord `json:"vertices"`
}

func (s ShapeDecl) Points() geo.Points {
	ps := make(geo.Points, 0, len(s.Vertices))
	for _, v := range s.Vertices {
		ps = append(ps, v.Point())
	}
	return ps
}

// Parse decodes a Document. Unknown fields are rejected.
func Parse(input []byte) (_ *Document, err error) {
	defer xdefer.Errorf(&err, "failed to parse document")

	dec := json.NewDecoder(bytes.NewReader(input))
	dec.DisallowUnknownFields()

	var doc Document
	err = dec.Decode(&doc)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}
