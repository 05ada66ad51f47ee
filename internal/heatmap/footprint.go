package heatmap

// Offset is one cell of a paint footprint relative to its centre.
type Offset struct {
	DX, DY int
	Amount int
}

// Footprint lists every offset a PaintCell with p touches, in the same
// order, each with the amount added there. Invalid params give nil.
func (p PaintParams) Footprint() []Offset {
	if p.Validate() != nil {
		return nil
	}
	out := make([]Offset, 0, 2*p.TotalRadius*p.TotalRadius)
	for dx := 0; dx < p.TotalRadius; dx++ {
		for dy := 0; dy < p.TotalRadius-dx; dy++ {
			amount := p.Amount(dx + dy)
			out = append(out, Offset{DX: dx, DY: dy, Amount: amount})
			if dx != 0 {
				out = append(out, Offset{DX: -dx, DY: dy, Amount: amount})
			}
			if dy != 0 {
				out = append(out, Offset{DX: dx, DY: -dy, Amount: amount})
				if dx != 0 {
					out = append(out, Offset{DX: -dx, DY: -dy, Amount: amount})
				}
			}
		}
	}
	return out
}

// Edge returns the offsets on the outermost ring of the footprint.
func (p PaintParams) Edge() []Offset {
	var out []Offset
	for _, o := range p.Footprint() {
		if abs(o.DX)+abs(o.DY) == p.TotalRadius-1 {
			out = append(out, o)
		}
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
