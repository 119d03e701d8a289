package studio

import (
	"fmt"
	"math"
	"strings"
)

// Control describes one editable field of a color model.
type Control struct {
	Model   string
	Field   string
	Label   string
	Min     float64
	Max     float64
	Step    float64
	Percent bool // shown as a percentage next to the value
}

// Controls lists every editable field in display order.
var Controls = []Control{
	{Model: "rgb", Field: "r", Label: "R", Min: 0, Max: 255, Step: 1},
	{Model: "rgb", Field: "g", Label: "G", Min: 0, Max: 255, Step: 1},
	{Model: "rgb", Field: "b", Label: "B", Min: 0, Max: 255, Step: 1},
	{Model: "cmyk", Field: "c", Label: "C", Min: 0, Max: 1, Step: 0.001, Percent: true},
	{Model: "cmyk", Field: "m", Label: "M", Min: 0, Max: 1, Step: 0.001, Percent: true},
	{Model: "cmyk", Field: "y", Label: "Y", Min: 0, Max: 1, Step: 0.001, Percent: true},
	{Model: "cmyk", Field: "k", Label: "K", Min: 0, Max: 1, Step: 0.001, Percent: true},
	{Model: "hls", Field: "h", Label: "H", Min: 0, Max: 1, Step: 0.001},
	{Model: "hls", Field: "l", Label: "L", Min: 0, Max: 1, Step: 0.001},
	{Model: "hls", Field: "s", Label: "S", Min: 0, Max: 1, Step: 0.001},
}

// LookupControl finds a control by field name. Field names are unique
// across models.
func LookupControl(field string) (Control, bool) {
	field = strings.ToLower(field)
	for _, c := range Controls {
		if c.Field == field {
			return c, true
		}
	}
	return Control{}, false
}

// Value reads the field of ctl from the snapshot.
func (s Snapshot) Value(ctl Control) float64 {
	switch ctl.Field {
	case "r":
		return float64(s.RGB.R)
	case "g":
		return float64(s.RGB.G)
	case "b":
		return float64(s.RGB.B)
	case "c":
		return s.CMYK.C
	case "m":
		return s.CMYK.M
	case "y":
		return s.CMYK.Y
	case "k":
		return s.CMYK.K
	case "h":
		return s.HLS.H
	case "l":
		return s.HLS.L
	case "s":
		return s.HLS.S
	}
	return 0
}

// Nudge moves one field by delta steps, clamps it to the control range and
// re-applies its model.
func (s *Studio) Nudge(model, field string, delta int) error {
	ctl, ok := LookupControl(field)
	if !ok || (model != "" && !strings.EqualFold(model, ctl.Model)) {
		return s.fail(fmt.Errorf("%w: unknown field %s.%s", ErrInput, model, field))
	}

	snap := s.Snapshot()
	v := snap.Value(ctl) + float64(delta)*ctl.Step
	v = math.Max(ctl.Min, math.Min(ctl.Max, v))

	switch ctl.Model {
	case "rgb":
		vals := [3]float64{float64(snap.RGB.R), float64(snap.RGB.G), float64(snap.RGB.B)}
		vals[strings.Index("rgb", ctl.Field)] = v
		return s.ApplyRGB(vals[0], vals[1], vals[2])
	case "cmyk":
		vals := [4]float64{snap.CMYK.C, snap.CMYK.M, snap.CMYK.Y, snap.CMYK.K}
		vals[strings.Index("cmyk", ctl.Field)] = v
		return s.ApplyCMYK(vals[0], vals[1], vals[2], vals[3])
	default:
		vals := [3]float64{snap.HLS.H, snap.HLS.L, snap.HLS.S}
		vals[strings.Index("hls", ctl.Field)] = v
		return s.ApplyHLS(vals[0], vals[1], vals[2])
	}
}
