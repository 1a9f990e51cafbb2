package geom

// Band divides a pixel range into N equally sized cells, one per
// category.
type Band struct {
	From, To float64
	N        int
}

// Step is the signed size of one cell.
func (b Band) Step() float64 {
	if b.N <= 0 {
		return 0
	}
	return (b.To - b.From) / float64(b.N)
}

// Center of cell i.
func (b Band) Center(i int) float64 {
	return b.From + (float64(i)+0.5)*b.Step()
}

// CaseOffset is the displacement of sub-category sub out of m from the
// nominal center of its cell. Neighbouring sub-categories are spacing
// cell widths apart and the group is centered on the cell.
func CaseOffset(sub, m int, spacing, cellWidth float64) float64 {
	if m <= 1 {
		return 0
	}
	return (float64(sub) - float64(m-1)/2) * spacing * cellWidth
}

// Dodge places element i of n side by side elements inside the width
// 2*halfWidth centered at center and returns its center and half width.
func Dodge(center, halfWidth float64, i, n int) (float64, float64) {
	if n <= 1 {
		return center, halfWidth
	}
	wh := halfWidth / float64(n)
	return center + float64(2*i-(n-1))*wh, wh
}

// Tiles splits the rectangle r into rows x cols equally sized tiles in
// row major order, the first row at YMin.
func Tiles(r Rect, rows, cols int, gap float64) []Rect {
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	r = r.Canonic()
	w := (r.Width() - float64(cols-1)*gap) / float64(cols)
	h := (r.Height() - float64(rows-1)*gap) / float64(rows)
	tiles := make([]Rect, 0, rows*cols)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			x := r.XMin + float64(col)*(w+gap)
			y := r.YMin + float64(row)*(h+gap)
			tiles = append(tiles, Rect{XMin: x, YMin: y, XMax: x + w, YMax: y + h})
		}
	}
	return tiles
}
