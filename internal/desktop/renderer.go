package desktop

import (
	"fmt"
	"math"
	"unsafe"

	"bumpjump/internal/game"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// circleSegments is the triangle fan resolution for circles and ellipses.
const circleSegments = 20

// Renderer batches flat shapes and glyph quads in playfield pixels
// (600x800) and letterboxes them into the framebuffer. Shapes and text
// share one painter's order: switching kind flushes the other batch.
type Renderer struct {
	shapeProg    uint32
	shapeVAO     uint32
	shapeVBO     uint32
	shapeURes    int32
	shapeUOffset int32
	shapeBuf     []float32

	fontTex      uint32
	textProg     uint32
	textVAO      uint32
	textVBO      uint32
	textURes     int32
	textUOffset  int32
	textUFontTex int32
	textBuf      []float32

	offX, offY float32
}

func NewRenderer() (*Renderer, error) {
	shapeProg, err := linkProgram(shapeVertSrc, shapeFragSrc)
	if err != nil {
		return nil, fmt.Errorf("shape program: %w", err)
	}
	r := &Renderer{shapeProg: shapeProg}
	r.shapeURes = gl.GetUniformLocation(shapeProg, gl.Str("uResolution\x00"))
	r.shapeUOffset = gl.GetUniformLocation(shapeProg, gl.Str("uOffset\x00"))

	// Shape VAO/VBO: per-vertex pos(2) + color(4) = 6 floats.
	gl.GenVertexArrays(1, &r.shapeVAO)
	gl.GenBuffers(1, &r.shapeVBO)
	gl.BindVertexArray(r.shapeVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.shapeVBO)
	stride := int32(6 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, 4096*int(stride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0) // aPos
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1) // aColor
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, stride, glOffset(2*4))
	gl.BindVertexArray(0)

	if err := r.initFont(); err != nil {
		r.Destroy()
		return nil, fmt.Errorf("font: %w", err)
	}
	return r, nil
}

// initFont uploads the glyph atlas and sets up the text pipeline.
func (r *Renderer) initFont() error {
	atlas := buildFontAtlas()

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8,
		FontAtlasW, FontAtlasH, 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(atlas.Pix))
	r.fontTex = tex

	prog, err := linkProgram(textVertSrc, textFragSrc)
	if err != nil {
		return fmt.Errorf("text program: %w", err)
	}
	r.textProg = prog
	gl.UseProgram(prog)
	r.textURes = gl.GetUniformLocation(prog, gl.Str("uResolution\x00"))
	r.textUOffset = gl.GetUniformLocation(prog, gl.Str("uOffset\x00"))
	r.textUFontTex = gl.GetUniformLocation(prog, gl.Str("uFontTex\x00"))
	gl.Uniform1i(r.textUFontTex, 2) // texture unit 2

	// Text VAO/VBO: per-vertex pos(2) + uv(2) + color(4) = 8 floats.
	gl.GenVertexArrays(1, &r.textVAO)
	gl.GenBuffers(1, &r.textVBO)
	gl.BindVertexArray(r.textVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.textVBO)
	stride := int32(8 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, 512*6*int(stride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0) // aPos
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1) // aUV
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, glOffset(2*4))
	gl.EnableVertexAttribArray(2) // aColor
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(4*4))
	gl.BindVertexArray(0)
	return nil
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.shapeVBO, r.textVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.shapeVAO, r.textVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.shapeProg, r.textProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
	if r.fontTex != 0 {
		gl.DeleteTextures(1, &r.fontTex)
	}
}

// viewportFor fits the playfield into the framebuffer, keeping its aspect
// ratio and centring it.
func viewportFor(fbW, fbH int) (x, y, w, h int32) {
	scale := math.Min(float64(fbW)/game.ScreenWidth, float64(fbH)/game.ScreenHeight)
	w = int32(game.ScreenWidth * scale)
	h = int32(game.ScreenHeight * scale)
	return (int32(fbW) - w) / 2, (int32(fbH) - h) / 2, w, h
}

func (r *Renderer) BeginFrame(fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.Viewport(viewportFor(fbW, fbH))
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	r.offX, r.offY = 0, 0
}

// SetOffset shifts everything queued after it. Pending batches are drawn
// with the previous offset first.
func (r *Renderer) SetOffset(x, y float64) {
	if float32(x) == r.offX && float32(y) == r.offY {
		return
	}
	r.Flush()
	r.offX, r.offY = float32(x), float32(y)
}

func colorF(c game.RGB, a float32) (float32, float32, float32, float32) {
	return float32(c.R) / 255.0, float32(c.G) / 255.0, float32(c.B) / 255.0, a
}

func (r *Renderer) vertex(x, y float32, cr, cg, cb, ca float32) {
	r.shapeBuf = append(r.shapeBuf, x, y, cr, cg, cb, ca)
}

// FillTriangle queues one flat triangle.
func (r *Renderer) FillTriangle(x0, y0, x1, y1, x2, y2 float64, col game.RGB, alpha float32) {
	r.flushText()
	cr, cg, cb, ca := colorF(col, alpha)
	r.vertex(float32(x0), float32(y0), cr, cg, cb, ca)
	r.vertex(float32(x1), float32(y1), cr, cg, cb, ca)
	r.vertex(float32(x2), float32(y2), cr, cg, cb, ca)
}

func (r *Renderer) FillRect(x, y, w, h float64, col game.RGB) {
	r.FillRectA(x, y, w, h, col, 1)
}

func (r *Renderer) FillRectA(x, y, w, h float64, col game.RGB, alpha float32) {
	if w <= 0 || h <= 0 {
		return
	}
	r.FillTriangle(x, y, x+w, y, x, y+h, col, alpha)
	r.FillTriangle(x+w, y, x+w, y+h, x, y+h, col, alpha)
}

// FillPolygon fans a convex polygon from its first point.
func (r *Renderer) FillPolygon(pts [][2]float64, col game.RGB) {
	for i := 1; i+1 < len(pts); i++ {
		r.FillTriangle(pts[0][0], pts[0][1], pts[i][0], pts[i][1], pts[i+1][0], pts[i+1][1], col, 1)
	}
}

// FillEllipse fills the ellipse inscribed in the box (x, y, w, h).
func (r *Renderer) FillEllipse(x, y, w, h float64, col game.RGB) {
	r.FillEllipseA(x, y, w, h, col, 1)
}

func (r *Renderer) FillEllipseA(x, y, w, h float64, col game.RGB, alpha float32) {
	cx, cy := x+w/2, y+h/2
	rx, ry := w/2, h/2
	px, py := cx+rx, cy
	for i := 1; i <= circleSegments; i++ {
		a := 2 * math.Pi * float64(i) / circleSegments
		nx, ny := cx+rx*math.Cos(a), cy+ry*math.Sin(a)
		r.FillTriangle(cx, cy, px, py, nx, ny, col, alpha)
		px, py = nx, ny
	}
}

func (r *Renderer) FillCircle(cx, cy, radius float64, col game.RGB) {
	r.FillEllipse(cx-radius, cy-radius, radius*2, radius*2, col)
}

// DrawChar queues a single character as a textured quad in screen pixel space.
func (r *Renderer) DrawChar(ch rune, sx, sy, scale float32, col game.RGB) {
	if !hasGlyph(ch) {
		return
	}
	r.flushShapes()
	column, row := glyphCell(ch)

	u0 := float32(column*FontCellW) / float32(FontAtlasW)
	v0 := float32(row*FontCellH) / float32(FontAtlasH)
	u1 := float32((column+1)*FontCellW) / float32(FontAtlasW)
	v1 := float32((row+1)*FontCellH) / float32(FontAtlasH)

	w := float32(FontCellW) * scale
	h := float32(FontCellH) * scale

	cr, cg, cb, _ := colorF(col, 1)

	// Two triangles: TL, TR, BL then TR, BR, BL.
	r.textBuf = append(r.textBuf,
		sx, sy, u0, v0, cr, cg, cb, 1,
		sx+w, sy, u1, v0, cr, cg, cb, 1,
		sx, sy+h, u0, v1, cr, cg, cb, 1,
		sx+w, sy, u1, v0, cr, cg, cb, 1,
		sx+w, sy+h, u1, v1, cr, cg, cb, 1,
		sx, sy+h, u0, v1, cr, cg, cb, 1,
	)
}

// DrawString queues a string at screen pixel position (sx, sy) with given scale.
func (r *Renderer) DrawString(text string, sx, sy float64, scale float32, col game.RGB) {
	advance := float32(FontCellW) * scale
	x := float32(sx)
	for _, ch := range text {
		r.DrawChar(ch, x, float32(sy), scale, col)
		x += advance
	}
}

// DrawCentered queues text horizontally centred on the playfield.
func (r *Renderer) DrawCentered(text string, sy float64, scale float32, col game.RGB) {
	x := (game.ScreenWidth - TextWidth(text, scale)) / 2
	r.DrawString(text, float64(x), sy, scale, col)
}

// Flush draws everything queued so far.
func (r *Renderer) Flush() {
	r.flushShapes()
	r.flushText()
}

func (r *Renderer) flushShapes() {
	if len(r.shapeBuf) == 0 {
		return
	}
	gl.UseProgram(r.shapeProg)
	gl.BindVertexArray(r.shapeVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.shapeVBO)
	gl.Uniform2f(r.shapeURes, game.ScreenWidth, game.ScreenHeight)
	gl.Uniform2f(r.shapeUOffset, r.offX, r.offY)

	count := len(r.shapeBuf) / 6
	gl.BufferData(gl.ARRAY_BUFFER, len(r.shapeBuf)*4, gl.Ptr(r.shapeBuf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(count))
	r.shapeBuf = r.shapeBuf[:0]
}

func (r *Renderer) flushText() {
	if len(r.textBuf) == 0 {
		return
	}
	gl.UseProgram(r.textProg)
	gl.BindVertexArray(r.textVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.textVBO)
	gl.Uniform2f(r.textURes, game.ScreenWidth, game.ScreenHeight)
	gl.Uniform2f(r.textUOffset, r.offX, r.offY)

	gl.ActiveTexture(gl.TEXTURE2)
	gl.BindTexture(gl.TEXTURE_2D, r.fontTex)

	count := len(r.textBuf) / 8
	gl.BufferData(gl.ARRAY_BUFFER, len(r.textBuf)*4, gl.Ptr(r.textBuf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(count))

	gl.ActiveTexture(gl.TEXTURE0)
	r.textBuf = r.textBuf[:0]
}
