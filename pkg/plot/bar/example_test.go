package bar_test

import (
	"fmt"

	"github.com/plotkit/barplot/pkg/plot"
	"github.com/plotkit/barplot/pkg/plot/bar"
	"github.com/plotkit/barplot/pkg/render/record"
)

func Example() {
	s := bar.FromValues(5, -3)
	s.LegendText = "delta"
	s.Bars()[1].LabelOnTop = true

	fig := plot.NewFigure(400, 300)
	fig.Add(s)

	rec := record.New()
	fig.Render(rec)

	texts := rec.Texts()
	fmt.Println(texts[len(texts)-3:])
	// Output:
	// [5 -3 delta]
}
