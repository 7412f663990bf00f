package planarlib

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

type Report struct {
	Points []PointReport `json:"points,omitempty"`
	Lines  []LineReport  `json:"lines,omitempty"`
	Shapes []ShapeReport `json:"shapes,omitempty"`
}

type PointReport struct {
	Name     string   `json:"name"`
	At       string   `json:"at"`
	To            string   `json:"to,omitempty"`
	Distance      *float64 `json:"distance,omitempty"`
	DistanceError string   `json:"distanceError,omitempty"`
}

type LineReport struct {
	Name        string   `json:"name"`
	Line        string   `json:"line"`
	Length      *float64 `json:"length,omitempty"`
	LengthError string   `json:"lengthError,omitempty"`
	Slope       *float64 `json:"slope,omitempty"`
	SlopeError  string   `json:"slopeError,omitempty"`

	// XCross and YCross are empty when the line does not cross the axis.
	XCross string `json:"xCross,omitempty"`
	YCross string `json:"yCross,omitempty"`
}

type ShapeReport struct {
	Name string `json:"name"`

	// Error is set when the shape could not be created. Only Name is set alongside it.
	Error string `json:"error,omitempty"`

	Type        string    `json:"type,omitempty"`
	Regular     bool      `json:"regular"`
	Description string    `json:"description,omitempty"`
	Perimeter   float64   `json:"perimeter"`
	Area        *float64  `json:"area,omitempty"`
	AreaError   string    `json:"areaError,omitempty"`
	InnerAngles []float64 `json:"innerAngles,omitempty"`
	AnglesError string    `json:"anglesError,omitempty"`
}

func (r *Report) JSON() ([]byte, error) {
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

// WriteText writes r for people, with numbers rounded to precision decimals.
func (r *Report) WriteText(w io.Writer, precision int) error {
	b := &strings.Builder{}
	num := func(v float64) string {
		return formatFloat(v, precision)
	}

	for _, p := range r.Points {
		fmt.Fprintf(b, "point %s %s\n", p.Name, p.At)
		if p.Distance != nil {
			fmt.Fprintf(b, "  distance to %s: %s\n", p.To, num(*p.Distance))
		} else if p.DistanceError != "" {
			fmt.Fprintf(b, "  distance to %s: %s\n", p.To, p.DistanceError)
		}
	}

	for _, l := range r.Lines {
		fmt.Fprintf(b, "line %s: %s\n", l.Name, l.Line)
		if l.Length != nil {
			fmt.Fprintf(b, "  length: %s\n", num(*l.Length))
		} else {
			fmt.Fprintf(b, "  length: %s\n", l.LengthError)
		}
		if l.Slope != nil {
			fmt.Fprintf(b, "  slope: %s\n", num(*l.Slope))
		} else {
			fmt.Fprintf(b, "  slope: %s\n", l.SlopeError)
		}
		fmt.Fprintf(b, "  x-axis crossing: %s\n", orNone(l.XCross))
		fmt.Fprintf(b, "  y-axis crossing: %s\n", orNone(l.YCross))
	}

	for _, s := range r.Shapes {
		if s.Error != "" {
			fmt.Fprintf(b, "shape %s: error: %s\n", s.Name, s.Error)
			continue
		}
		fmt.Fprintf(b, "shape %s: %s\n", s.Name, s.Description)
		fmt.Fprintf(b, "  regular: %t\n", s.Regular)
		fmt.Fprintf(b, "  perimeter: %s\n", num(s.Perimeter))
		if s.Area != nil {
			fmt.Fprintf(b, "  area: %s\n", num(*s.Area))
		} else {
			fmt.Fprintf(b, "  area: %s\n", s.AreaError)
		}
		if s.InnerAngles != nil {
			angles := make([]string, 0, len(s.InnerAngles))
			for _, a := range s.InnerAngles {
				angles = append(angles, num(a))
			}
			fmt.Fprintf(b, "  inner angles: %s\n", strings.Join(angles, ", "))
		} else {
			fmt.Fprintf(b, "  inner angles: %s\n", s.AnglesError)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// formatFloat rounds v to precision decimals and drops trailing zeros.
func formatFloat(v float64, precision int) string {
	s := strconv.FormatFloat(v, 'f', precision, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}
