package lottie

// LinearGradient samples a color that varies linearly between Start
// and End along their connecting axis.
type LinearGradient struct {
	Start, End Vec2
	Stops      []GradientStop
	Extend     GradientExtend
}

// ColorAt projects p onto the gradient's axis and samples the stop
// table at the resulting normalized position.
func (g LinearGradient) ColorAt(p Vec2) Color {
	d := g.End.Sub(g.Start)
	lengthSq := d.LengthSq()
	if lengthSq == 0 {
		return firstStopColor(g.Stops)
	}
	t := p.Sub(g.Start).Dot(d) / lengthSq
	return colorAtOffset(g.Stops, t, g.Extend)
}

func firstStopColor(stops []GradientStop) Color {
	if len(stops) == 0 {
		return Transparent
	}
	return sortStops(stops)[0].Color
}
