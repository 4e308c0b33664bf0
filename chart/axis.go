package chart

import (
	"math"
	"strconv"

	"github.com/aclements/go-moremath/scale"
)

// maxTicks is the most ticks drawn on one axis.
const maxTicks = 8

// Palette is the sequence of series colors, matplotlib's "tab10" cycle.
var Palette = []string{
	"#1f77b4",
	"#ff7f0e",
	"#2ca02c",
	"#d62728",
	"#9467bd",
	"#8c564b",
	"#e377c2",
	"#7f7f7f",
	"#bcbd22",
	"#17becf",
}

// ticks returns the major ticks of the axis [lo, hi], at most n of them and
// spaced by a power of ten, along with that spacing.
func ticks(lo, hi float64, n int) ([]float64, float64) {
	if !(hi > lo) || math.IsInf(hi-lo, 0) {
		return nil, 0
	}
	major, minor := scale.Linear{Min: lo, Max: hi}.Ticks(scale.TickOptions{Max: n})
	for i, v := range major {
		if v == 0 {
			// Drop the sign of negative zero.
			major[i] = 0
		}
	}
	switch {
	case len(major) >= 2:
		return major, major[1] - major[0]
	case len(minor) >= 2:
		// Minor ticks are one level, a factor of ten, finer.
		return major, 10 * (minor[1] - minor[0])
	default:
		return major, 0
	}
}

// tickDecimals returns the number of decimals needed to tell apart ticks
// that are step apart.
func tickDecimals(step float64) int {
	if !(step > 0) {
		return 0
	}
	return max(0, int(-math.Floor(math.Log10(step)+1e-9)))
}

func formatTick(v float64, decimals int) string {
	s := strconv.FormatFloat(v, 'f', decimals, 64)
	if v == 0 || s == "-"+strconv.FormatFloat(0, 'f', decimals, 64) {
		s = strconv.FormatFloat(0, 'f', decimals, 64)
	}
	return s
}
