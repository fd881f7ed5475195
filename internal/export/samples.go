// Package export writes scenes as SVG stills and sampled ribbons as CSV or
// JSON.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/loxodrome/internal/curve"
	"github.com/san-kum/loxodrome/internal/scene"
)

var csvHeader = []string{"ribbon", "i", "t", "x", "y", "z"}

// WriteCSV writes one row per sample. Pass a nil filter to write every
// ribbon.
func WriteCSV(w io.Writer, s *scene.Scene, filter func(index int) bool) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, rb := range s.Ribbons {
		if filter != nil && !filter(rb.Index) {
			continue
		}
		for i, p := range rb.Points {
			row := []string{
				strconv.Itoa(rb.Index),
				strconv.Itoa(i),
				formatFloat(s.Range.At(i)),
				formatFloat(p.X),
				formatFloat(p.Y),
				formatFloat(p.Z),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV parses WriteCSV output into per-ribbon point lists keyed by index.
func ReadCSV(r io.Reader) (map[int][]r3.Vec, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(csvHeader)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	out := make(map[int][]r3.Vec)
	for n, rec := range records {
		if n == 0 {
			continue
		}
		idx, err := strconv.Atoi(rec[0])
		if err != nil {
			return nil, fmt.Errorf("row %d: ribbon: %w", n, err)
		}
		var v [3]float64
		for j := range v {
			if v[j], err = strconv.ParseFloat(rec[3+j], 64); err != nil {
				return nil, fmt.Errorf("row %d: %s: %w", n, csvHeader[3+j], err)
			}
		}
		out[idx] = append(out[idx], r3.Vec{X: v[0], Y: v[1], Z: v[2]})
	}
	return out, nil
}

type jsonRibbon struct {
	Index       int          `json:"index"`
	AngleOffset float64      `json:"angle_offset"`
	Color       string       `json:"color"`
	StrokeWidth float64      `json:"stroke_width"`
	Points      [][3]float64 `json:"points"`
}

type jsonScene struct {
	Radius  float64      `json:"radius"`
	Ribbons int          `json:"ribbons"`
	Turns   float64      `json:"turns"`
	Range   curve.Range  `json:"range"`
	Data    []jsonRibbon `json:"data"`
}

// WriteJSON writes the scene parameters and sampled ribbons.
func WriteJSON(w io.Writer, s *scene.Scene, filter func(index int) bool) error {
	out := jsonScene{
		Radius:  s.Params.Radius,
		Ribbons: s.Params.Ribbons,
		Turns:   s.Params.Turns,
		Range:   s.Range,
		Data:    make([]jsonRibbon, 0, len(s.Ribbons)),
	}
	for _, rb := range s.Ribbons {
		if filter != nil && !filter(rb.Index) {
			continue
		}
		jr := jsonRibbon{
			Index:       rb.Index,
			AngleOffset: rb.AngleOffset,
			Color:       rb.Color.Hex(),
			StrokeWidth: rb.StrokeWidth,
			Points:      make([][3]float64, len(rb.Points)),
		}
		for i, p := range rb.Points {
			jr.Points[i] = [3]float64{p.X, p.Y, p.Z}
		}
		out.Data = append(out.Data, jr)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
