package hist

import "sort"

// Axis is a uniform binning over [Min, Max) with Bins bins.
type Axis struct {
	Bins int
	Min  float64
	Max  float64
}

// Index returns the bin holding x, or false when x is out of range.
// The division can land a value sitting exactly on an interior bin edge
// one bin low, so the result is checked against the interpolated edges
// and corrected.
func (a Axis) Index(x float64) (int, bool) {
	if x < a.Min || x >= a.Max {
		return 0, false
	}
	i := int(float64(a.Bins) * (x - a.Min) / (a.Max - a.Min))
	if i >= a.Bins { // guard the floating-point edge at Max
		i = a.Bins - 1
	}
	if i+1 < a.Bins && x >= a.edge(i+1) {
		i++
	} else if i > 0 && x < a.edge(i) {
		i--
	}
	return i, true
}

// edge returns the lower edge of bin i.
func (a Axis) edge(i int) float64 {
	return a.Min + (a.Max-a.Min)*float64(i)/float64(a.Bins)
}

// BinCenter returns the center of bin i.
func (a Axis) BinCenter(i int) float64 {
	width := (a.Max - a.Min) / float64(a.Bins)
	return a.Min + (float64(i)+0.5)*width
}

// H3 is a sparse three-dimensional histogram. Only non-empty bins are
// stored; fills outside the axis ranges are dropped. hbook carries no 3D
// histogram type, so this mirrors the sparse n-dimensional accumulator of
// the reference analysis for the (activity, pt, mass) spectra.
type H3 struct {
	X, Y, Z Axis

	bins    map[[3]int]float64
	entries int64
}

// NewH3 creates an empty sparse 3D histogram over the given axes.
func NewH3(x, y, z Axis) *H3 {
	return &H3{
		X:    x,
		Y:    y,
		Z:    z,
		bins: make(map[[3]int]float64),
	}
}

// Fill adds weight w at (x, y, z). Out-of-range fills are dropped.
func (h *H3) Fill(x, y, z, w float64) {
	ix, ok := h.X.Index(x)
	if !ok {
		return
	}
	iy, ok := h.Y.Index(y)
	if !ok {
		return
	}
	iz, ok := h.Z.Index(z)
	if !ok {
		return
	}
	h.bins[[3]int{ix, iy, iz}] += w
	h.entries++
}

// Entries reports the number of in-range fills.
func (h *H3) Entries() int64 { return h.entries }

// SumW reports the total accumulated weight.
func (h *H3) SumW() float64 {
	var sum float64
	for _, key := range h.sortedKeys() {
		sum += h.bins[key]
	}
	return sum
}

// At returns the content of bin (ix, iy, iz).
func (h *H3) At(ix, iy, iz int) float64 {
	return h.bins[[3]int{ix, iy, iz}]
}

// Bin is one non-empty cell of an H3.
type Bin struct {
	IX, IY, IZ int
	Content    float64
}

// NonEmpty returns the non-empty bins in a deterministic order.
func (h *H3) NonEmpty() []Bin {
	keys := h.sortedKeys()
	out := make([]Bin, 0, len(keys))
	for _, k := range keys {
		out = append(out, Bin{IX: k[0], IY: k[1], IZ: k[2], Content: h.bins[k]})
	}
	return out
}

func (h *H3) sortedKeys() [][3]int {
	keys := make([][3]int, 0, len(h.bins))
	for k := range h.bins {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a[0] != b[0] {
			return a[0] < b[0]
		}
		if a[1] != b[1] {
			return a[1] < b[1]
		}
		return a[2] < b[2]
	})
	return keys
}
