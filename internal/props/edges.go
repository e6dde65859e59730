package props

// Edges holds per-side spacing in LTRB order, matching the wire 4-tuple.
type Edges struct {
	Left, Top, Right, Bottom float64
}

// Uniform builds equal spacing on all four sides.
func Uniform(v float64) Edges {
	return Edges{Left: v, Top: v, Right: v, Bottom: v}
}

// Edges parses the named prop as spacing: a scalar (number or numeric
// string) yields uniform spacing, a 4-element [L,T,R,B] sequence yields
// per-side values, and any other shape yields zero spacing.
func (b Bag) Edges(key string) Edges {
	v, ok := b[key]
	if !ok {
		return Edges{}
	}
	if f, ok := toFloat(v); ok {
		return Uniform(f)
	}
	seq, ok := v.([]any)
	if !ok || len(seq) != 4 {
		return Edges{}
	}
	var sides [4]float64
	for i, raw := range seq {
		f, ok := toFloat(raw)
		if !ok {
			return Edges{}
		}
		sides[i] = f
	}
	return Edges{Left: sides[0], Top: sides[1], Right: sides[2], Bottom: sides[3]}
}
