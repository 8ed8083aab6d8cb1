package render

import (
	"math"
	"strings"

	"github.com/mcp-tool-shop-org/websketch-ir/internal/core/domain"
)

// Default grid size.
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// Minimum cell rectangle for a box to be drawn.
const (
	minBoxWidth  = 4
	minBoxHeight = 3
)

// Renderer paints captures onto a character grid.
type Renderer struct {
	width  int
	height int
	colour bool
	filter map[domain.Role]bool
}

// Option configures the renderer.
type Option func(*Renderer)

// WithSize sets the grid dimensions in characters.
func WithSize(width, height int) Option {
	return func(r *Renderer) {
		if width > 0 {
			r.width = width
		}
		if height > 0 {
			r.height = height
		}
	}
}

// WithColour enables ANSI styling of labels and borders per role
// class. Plain mode is the default and returns pure ASCII.
func WithColour(enabled bool) Option {
	return func(r *Renderer) {
		r.colour = enabled
	}
}

// WithRoleFilter restricts painting to the given roles. Interactive
// leaves are always rendered regardless of the filter.
func WithRoleFilter(roles ...domain.Role) Option {
	return func(r *Renderer) {
		r.filter = make(map[domain.Role]bool, len(roles))
		for _, role := range roles {
			r.filter[role] = true
		}
	}
}

// New creates a renderer with the given options.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		width:  DefaultWidth,
		height: DefaultHeight,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// grid is the paint surface: one rune, one priority, and one role
// class per cell.
type grid struct {
	w, h     int
	cells    []rune
	priority []int
	class    []roleClass
}

func newGrid(w, h int) *grid {
	g := &grid{
		w:        w,
		h:        h,
		cells:    make([]rune, w*h),
		priority: make([]int, w*h),
		class:    make([]roleClass, w*h),
	}
	for i := range g.cells {
		g.cells[i] = ' '
		g.priority[i] = -1
	}
	return g
}

// set paints a cell when the incoming priority is at least the
// occupant's, so overlays overwrite page structure and never the
// reverse.
func (g *grid) set(col, row, pri int, class roleClass, r rune) {
	if col < 0 || col >= g.w || row < 0 || row >= g.h {
		return
	}
	idx := row*g.w + col
	if g.priority[idx] > pri {
		return
	}
	g.cells[idx] = r
	g.priority[idx] = pri
	g.class[idx] = class
}

// Render paints the capture and returns the grid as a string of
// height lines.
func (r *Renderer) Render(c *domain.Capture) string {
	g := newGrid(r.width, r.height)
	r.paint(g, &c.Root)
	return r.assemble(g)
}

func (r *Renderer) paint(g *grid, n *domain.Node) {
	if n.Visible {
		r.paintNode(g, n)
	}
	for i := range n.Children {
		r.paint(g, &n.Children[i])
	}
}

// wants reports whether the role filter admits this node. Interactive
// leaves bypass the filter.
func (r *Renderer) wants(n *domain.Node) bool {
	if n.Interactive && len(n.Children) == 0 {
		return true
	}
	if r.filter != nil {
		return r.filter[n.Role]
	}
	return true
}

func (r *Renderer) paintNode(g *grid, n *domain.Node) {
	if !r.wants(n) {
		return
	}

	col := cell(n.BBox[0], r.width)
	row := cell(n.BBox[1], r.height)
	w := cell(n.BBox[2], r.width)
	h := cell(n.BBox[3], r.height)

	pri := rolePriority(n.Role)
	class := classOf(n.Role)

	if n.Role.IsContainer() && w >= minBoxWidth && h >= minBoxHeight {
		r.paintBox(g, col, row, w, h, pri, class)
		r.paintLabel(g, col+1, row+1, pri, class, label(n, w-2))
		return
	}

	// Small containers and leaves get a bare label at their origin.
	r.paintLabel(g, col, row, pri, class, label(n, r.width-col))
}

func (r *Renderer) paintBox(g *grid, col, row, w, h, pri int, class roleClass) {
	right := col + w - 1
	bottom := row + h - 1
	for x := col; x <= right; x++ {
		edge := '-'
		if x == col || x == right {
			edge = '+'
		}
		g.set(x, row, pri, class, edge)
		g.set(x, bottom, pri, class, edge)
	}
	for y := row + 1; y < bottom; y++ {
		g.set(col, y, pri, class, '|')
		g.set(right, y, pri, class, '|')
	}
}

func (r *Renderer) paintLabel(g *grid, col, row, pri int, class roleClass, text string) {
	for i, ch := range text {
		g.set(col+i, row, pri, class, ch)
	}
}

// label builds the compact [ROLE:semantic] tag, truncated with an
// ellipsis when the available width is too narrow.
func label(n *domain.Node, maxLen int) string {
	text := string(n.Role)
	if n.Semantic != "" {
		text += ":" + n.Semantic
	}
	text = "[" + text + "]"
	if maxLen < 3 {
		maxLen = 3
	}
	if len(text) > maxLen {
		text = text[:maxLen-3] + "..]"
	}
	return text
}

// cell maps a normalised coordinate to a grid offset.
func cell(v float64, scale int) int {
	return int(math.Round(v * float64(scale)))
}

func (r *Renderer) assemble(g *grid) string {
	var b strings.Builder
	for row := 0; row < g.h; row++ {
		line := g.cells[row*g.w : (row+1)*g.w]
		if r.colour {
			b.WriteString(styleLine(line, g.class[row*g.w:(row+1)*g.w]))
		} else {
			b.WriteString(string(line))
		}
		if row < g.h-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
