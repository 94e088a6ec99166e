package plot

import (
	"math"
	"strconv"
)

// Tick is a labeled position along an axis.
type Tick struct {
	Position float64
	Label    string
}

// Ticks returns up to maxCount evenly spaced ticks on [lo, hi] whose step is
// 1, 2 or 5 times a power of ten. It returns nil for an empty or invalid
// range.
func Ticks(lo, hi float64, maxCount int) []Tick {
	if !isReal(lo) || !isReal(hi) || hi <= lo || maxCount < 2 {
		return nil
	}

	step := niceStep((hi - lo) / float64(maxCount-1))
	decimals := max(0, -int(math.Floor(math.Log10(step)+1e-9)))
	first := math.Ceil(lo/step - 1e-9)

	var ticks []Tick
	for i := 0; ; i++ {
		v := (first + float64(i)) * step
		if v > hi+step*1e-9 {
			break
		}
		if math.Abs(v) < step*1e-9 {
			v = 0
		}
		ticks = append(ticks, Tick{Position: v, Label: strconv.FormatFloat(v, 'f', decimals, 64)})
	}
	return ticks
}

// niceStep rounds raw up to the nearest 1, 2 or 5 times a power of ten.
func niceStep(raw float64) float64 {
	exp := math.Floor(math.Log10(raw))
	base := math.Pow(10, exp)
	const eps = 1e-9
	switch f := raw / base; {
	case f <= 1+eps:
		return base
	case f <= 2+eps:
		return 2 * base
	case f <= 5+eps:
		return 5 * base
	}
	return 10 * base
}
