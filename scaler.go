package charts

// Range is an interval of the surface, in CSS pixels.
type Range struct {
	F float64
	T float64
}

func NewRange(f, t float64) Range {
	return Range{
		F: f,
		T: t,
	}
}

func (r Range) Len() float64 {
	return r.T - r.F
}

func (r Range) Min() float64 {
	return r.F
}

// LinearScale maps the values of a domain onto a range. Values outside the
// domain are mapped outside the range.
type LinearScale struct {
	Range
	Lower float64
	Upper float64
}

func NewLinearScale(lower, upper float64, rg Range) LinearScale {
	return LinearScale{
		Range: rg,
		Lower: lower,
		Upper: upper,
	}
}

func (s LinearScale) Extend() float64 {
	return s.Upper - s.Lower
}

// Scale returns the distance from the start of the range to v.
func (s LinearScale) Scale(v float64) float64 {
	return (v - s.Lower) * s.Space()
}

// Space is the length of the range covered by one unit of the domain.
func (s LinearScale) Space() float64 {
	if s.Extend() == 0 {
		return 0
	}
	return s.Len() / s.Extend()
}

// Ticks returns n+1 values of the domain evenly spread from its lower bound
// to its upper bound, both included.
func (s LinearScale) Ticks(n int) []float64 {
	if n <= 0 {
		return []float64{s.Lower, s.Upper}
	}
	var (
		all  = make([]float64, 0, n+1)
		step = s.Extend() / float64(n)
	)
	for i := 0; i < n; i++ {
		all = append(all, s.Lower+float64(i)*step)
	}
	return append(all, s.Upper)
}

// BandScale splits a range into one band of equal width per category.
type BandScale struct {
	Range
	Bands []string
}

func NewBandScale(bands []string, rg Range) BandScale {
	return BandScale{
		Range: rg,
		Bands: append([]string{}, bands...),
	}
}

func (s BandScale) Width() float64 {
	if len(s.Bands) == 0 {
		return 0
	}
	return s.Len() / float64(len(s.Bands))
}

func (s BandScale) Start(i int) float64 {
	return s.Min() + float64(i)*s.Width()
}

func (s BandScale) Center(i int) float64 {
	return s.Start(i) + s.Width()/2
}
