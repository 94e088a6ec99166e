package plot

import "fmt"

// Alignment names the point of a text box that is placed at the anchor.
type Alignment int

const (
	UpperLeft Alignment = iota
	UpperCenter
	UpperRight
	MiddleLeft
	MiddleCenter
	MiddleRight
	LowerLeft
	LowerCenter
	LowerRight
)

var alignmentNames = [...]string{
	"upper-left", "upper-center", "upper-right",
	"middle-left", "middle-center", "middle-right",
	"lower-left", "lower-center", "lower-right",
}

func (a Alignment) String() string {
	if a < 0 || int(a) >= len(alignmentNames) {
		return fmt.Sprintf("Alignment(%d)", int(a))
	}
	return alignmentNames[a]
}

// HorizontalFraction is 0 for left, 0.5 for center and 1 for right alignments.
func (a Alignment) HorizontalFraction() float64 {
	switch a % 3 {
	case 1:
		return 0.5
	case 2:
		return 1
	}
	return 0
}

// VerticalFraction is 0 for upper, 0.5 for middle and 1 for lower alignments.
func (a Alignment) VerticalFraction() float64 {
	switch a / 3 {
	case 1:
		return 0.5
	case 2:
		return 1
	}
	return 0
}

// ParseAlignment parses the names returned by Alignment.String.
func ParseAlignment(s string) (Alignment, bool) {
	for i, n := range alignmentNames {
		if n == s {
			return Alignment(i), true
		}
	}
	return 0, false
}

// Orientation is the direction a bar grows in.
type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}
