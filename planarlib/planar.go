// Package planarlib measures the points, lines and shapes of a Document.
package planarlib

import (
	"context"
	"fmt"

	"cdr.dev/slog"
	"go.uber.org/multierr"

	"oss.terrastruct.com/planar/lib/geo"
	"oss.terrastruct.com/planar/lib/go2"
	"oss.terrastruct.com/planar/lib/log"
	"oss.terrastruct.com/planar/lib/shape"
)

type CompileOptions struct {
	// Classify picks the most specific type for shapes that do not name one.
	Classify bool
}

// Compile parses input and measures everything in it.
//
// A shape that cannot be created is reported with its error and the error is also
// returned, combined with those of every other failed shape. The report is complete
// either way. Only a malformed document returns a nil report.
func Compile(ctx context.Context, input []byte, opts *CompileOptions) (*Report, error) {
	if opts == nil {
		opts = &CompileOptions{}
	}
	ctx = log.Named(ctx, "planarlib")

	doc, err := Parse(input)
	if err != nil {
		return nil, err
	}
	log.Debug(ctx, "parsed document",
		slog.F("points", len(doc.Points)),
		slog.F("lines", len(doc.Lines)),
		slog.F("shapes", len(doc.Shapes)),
	)

	r := &Report{}
	for i, p := range doc.Points {
		r.Points = append(r.Points, measurePoint(entryName(p.Name, "point", i), p))
	}
	for i, l := range doc.Lines {
		r.Lines = append(r.Lines, measureLine(entryName(l.Name, "line", i), l))
	}

	var errs error
	for i, s := range doc.Shapes {
		sr, serr := measureShape(ctx, entryName(s.Name, "shape", i), s, opts)
		if serr != nil {
			errs = multierr.Append(errs, serr)
		}
		r.Shapes = append(r.Shapes, sr)
	}
	log.Info(ctx, "measured document", slog.F("failed_shapes", len(multierr.Errors(errs))))
	return r, errs
}

func entryName(name, kind string, i int) string {
	if name != "" {
		return name
	}
	return fmt.Sprintf("%s%d", kind, i)
}

func measurePoint(name string, d PointDecl) PointReport {
	p := d.At.Point()
	pr := PointReport{
		Name: name,
		At:   p.String(),
	}
	if d.To != nil {
		to := d.To.Point()
		pr.To = to.String()
		pr.Distance, pr.DistanceError = measured("distance", p.DistanceTo(to))
	}
	return pr
}

func measureLine(name string, d LineDecl) LineReport {
	line := geo.NewLine(d.Start.Point(), d.End.Point())
	lr := LineReport{
		Name: name,
		Line: line.String(),
	}
	lr.Length, lr.LengthError = measured("length", line.Length())
	slope, err := line.Slope()
	if err != nil {
		lr.SlopeError = err.Error()
	} else {
		lr.Slope = go2.Pointer(slope)
	}
	if p, ok := line.HorizontalCross(); ok {
		lr.XCross = p.String()
	}
	if p, ok := line.VerticalCross(); ok {
		lr.YCross = p.String()
	}
	return lr
}

func measureShape(ctx context.Context, name string, d ShapeDecl, opts *CompileOptions) (ShapeReport, error) {
	sr := ShapeReport{Name: name}

	s, err := newShape(d, opts)
	if err != nil {
		log.Warn(ctx, "invalid shape", slog.F("name", name), slog.Error(err))
		sr.Error = err.Error()
		return sr, fmt.Errorf("shape %q: %w", name, err)
	}
	log.Debug(ctx, "created shape", slog.F("name", name), slog.F("type", s.GetType()))

	sr.Type = s.GetType()
	sr.Regular = s.IsRegular()
	sr.Description = s.String()
	sr.Perimeter = s.Perimeter()

	area, err := s.Area()
	if err != nil {
		sr.AreaError = err.Error()
	} else {
		sr.Area = go2.Pointer(area)
	}
	angles, err := s.InnerAngles()
	if err != nil {
		sr.AnglesError = err.Error()
	} else {
		sr.InnerAngles = angles
	}
	return sr, nil
}

func newShape(d ShapeDecl, opts *CompileOptions) (shape.Shape, error) {
	vertices := d.Points()
	if d.Type != "" {
		return shape.NewShape(d.Type, d.Regular, vertices)
	}
	if opts.Classify {
		return shape.Classify(vertices)
	}
	return shape.NewShape(shape.SHAPE_TYPE, d.Regular, vertices)
}

// measured returns v, or the reason it cannot be reported when it left the float range.
func measured(what string, v float64) (*float64, string) {
	if !geo.IsFinite(v) {
		return nil, fmt.Sprintf("%v: %s is out of range", geo.ErrDegenerate, what)
	}
	return go2.Pointer(v), ""
}
