package plot

// Surface is a drawing target. Calls are synchronous and have no result;
// a backend that fails records the failure and reports it when its output
// is encoded.
type Surface interface {
	FillRect(r PixelRect, c Color)
	StrokeRect(r PixelRect, c Color, width float64)
	DrawLine(from, to Pixel, c Color, width float64)
	DrawText(text string, at Pixel, style LabelStyle)
}

// RenderContext is what a plottable receives for one draw call.
type RenderContext struct {
	Surface Surface
	Axes    Transform
	// DataArea is the pixel rectangle the axes map onto.
	DataArea PixelRect
}

// Plottable is an element a Figure can scale to, list in its legend and
// draw. Drawing happens in two phases that the figure calls in a fixed
// global order: RenderBodies on every visible plottable first, then
// RenderOverlay on every visible plottable. Content drawn in the overlay
// phase therefore ends up above every body of the figure.
type Plottable interface {
	IsVisible() bool
	AxisLimits() AxisLimits
	LegendItems() []LegendItem
	RenderBodies(rc *RenderContext)
	RenderOverlay(rc *RenderContext)
}
