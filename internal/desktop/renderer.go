//go:build !android

package desktop

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"fruitsnake/internal/game"
	"fruitsnake/internal/sprites"
)

// Floats per vertex in each streaming buffer.
const (
	discStride = 7 // x, y, size, r, g, b, a
	quadStride = 8 // x, y, u, v, r, g, b, a
)

// Grass repeats this many times across each axis of the field.
const grassTiles = 4

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// Renderer draws game frames into a GLFW window and swaps buffers.
type Renderer struct {
	window *glfw.Window

	discProg    uint32
	discVAO     uint32
	discVBO     uint32
	dUCamera    int32
	dUZoom      int32
	dURes int32

	quadProg uint32
	quadVAO  uint32
	quadVBO  uint32
	qURes    int32
	qUTex    int32

	grassTex uint32
	foodTex  [game.FoodKindCount]uint32
	fontTex  uint32

	discBuf []float32
	quadBuf []float32
}

// NewRenderer builds the GL programs and uploads every texture. seed varies
// the procedural art.
func NewRenderer(window *glfw.Window, seed uint64) (*Renderer, error) {
	discProg, err := linkProgram(discVertSrc, discFragSrc)
	if err != nil {
		return nil, fmt.Errorf("disc program: %w", err)
	}
	quadProg, err := linkProgram(quadVertSrc, quadFragSrc)
	if err != nil {
		gl.DeleteProgram(discProg)
		return nil, fmt.Errorf("quad program: %w", err)
	}
	r := &Renderer{window: window, discProg: discProg, quadProg: quadProg}

	// Disc VAO/VBO: one point sprite per circle.
	gl.GenVertexArrays(1, &r.discVAO)
	gl.GenBuffers(1, &r.discVBO)
	gl.BindVertexArray(r.discVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.discVBO)
	stride := int32(discStride * 4)
	gl.EnableVertexAttribArray(0) // aFieldPos
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1) // aSize
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, stride, glOffset(2*4))
	gl.EnableVertexAttribArray(2) // aColor
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(3*4))

	gl.UseProgram(discProg)
	r.dUCamera = gl.GetUniformLocation(discProg, gl.Str("uCamera\x00"))
	r.dUZoom = gl.GetUniformLocation(discProg, gl.Str("uZoom\x00"))
	r.dURes = gl.GetUniformLocation(discProg, gl.Str("uResolution\x00"))

	// Quad VAO/VBO: triangles in framebuffer pixels.
	gl.GenVertexArrays(1, &r.quadVAO)
	gl.GenBuffers(1, &r.quadVBO)
	gl.BindVertexArray(r.quadVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.quadVBO)
	stride = int32(quadStride * 4)
	gl.EnableVertexAttribArray(0) // aPos
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1) // aUV
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, glOffset(2*4))
	gl.EnableVertexAttribArray(2) // aColor
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(4*4))

	gl.UseProgram(quadProg)
	r.qURes = gl.GetUniformLocation(quadProg, gl.Str("uResolution\x00"))
	r.qUTex = gl.GetUniformLocation(quadProg, gl.Str("uTex\x00"))
	gl.Uniform1i(r.qUTex, 0)
	gl.BindVertexArray(0)

	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	r.grassTex = uploadTexture(sprites.Grass(seed), gl.LINEAR, true)
	for k, img := range sprites.AllFood(seed) {
		r.foodTex[k] = uploadTexture(img, gl.LINEAR, false)
	}
	r.fontTex = uploadTexture(buildGlyphAtlas(), gl.NEAREST, false)

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.ClearColor(0, 0, 0, 1)
	return r, nil
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.discVBO, r.quadVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.discVAO, r.quadVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.discProg, r.quadProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
	texs := append([]uint32{r.grassTex, r.fontTex}, r.foodTex[:]...)
	gl.DeleteTextures(int32(len(texs)), &texs[0])
}

// Render implements game.Renderer. Draw order: grass, food, snake bodies,
// snake details, tongue, HUD text.
func (r *Renderer) Render(f *game.Frame) {
	fbW, fbH := r.window.GetFramebufferSize()
	if fbW <= 0 || fbH <= 0 {
		r.window.SwapBuffers()
		return
	}
	cam := fitCamera(fbW, fbH)

	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	if f.Background {
		x0, y0 := cam.toScreen(0, game.FieldSize, fbW, fbH)
		x1, y1 := cam.toScreen(game.FieldSize, 0, fbW, fbH)
		r.quadBuf = appendQuad(r.quadBuf[:0], x0, y0, x1, y1, 0, 0, grassTiles, grassTiles, 1, 1, 1, 1)
		r.drawQuads(r.grassTex, fbW, fbH)
	}

	if fs := f.Food; fs != nil {
		fx, fy := float64(fs.Cell.X*game.CellSize), float64(fs.Cell.Y*game.CellSize)
		x0, y0 := cam.toScreen(fx, fy+game.CellSize, fbW, fbH)
		x1, y1 := cam.toScreen(fx+game.CellSize, fy, fbW, fbH)
		r.quadBuf = appendQuad(r.quadBuf[:0], x0, y0, x1, y1, 0, 0, 1, 1, 1, 1, 1, float32(fs.Alpha))
		r.drawQuads(r.foodTex[fs.Kind], fbW, fbH)
	}

	r.discBuf = r.discBuf[:0]
	for i := range f.Segments {
		r.discBuf = appendDisc(r.discBuf, f.Segments[i].Circle)
	}
	for _, c := range f.Details {
		r.discBuf = appendDisc(r.discBuf, c)
	}
	if t := f.Tongue; t != nil {
		r.discBuf = appendLine(r.discBuf, *t)
	}
	r.drawDiscs(cam, fbW, fbH)

	sx, sy := uiScale(fbW, fbH)
	r.quadBuf = r.quadBuf[:0]
	for _, t := range f.Texts {
		r.quadBuf = appendText(r.quadBuf, t, sx, sy)
	}
	r.drawQuads(r.fontTex, fbW, fbH)

	gl.Disable(gl.BLEND)
	r.window.SwapBuffers()
}

func (r *Renderer) drawDiscs(cam camera, fbW, fbH int) {
	if len(r.discBuf) == 0 {
		return
	}
	gl.UseProgram(r.discProg)
	gl.BindVertexArray(r.discVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.discVBO)
	gl.Uniform2f(r.dUCamera, float32(cam.X), float32(cam.Y))
	gl.Uniform1f(r.dUZoom, float32(cam.Zoom))
	gl.Uniform2f(r.dURes, float32(fbW), float32(fbH))

	gl.BufferData(gl.ARRAY_BUFFER, len(r.discBuf)*4, gl.Ptr(r.discBuf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(len(r.discBuf)/discStride))
}

func (r *Renderer) drawQuads(tex uint32, fbW, fbH int) {
	if len(r.quadBuf) == 0 {
		return
	}
	gl.UseProgram(r.quadProg)
	gl.BindVertexArray(r.quadVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.quadVBO)
	gl.Uniform2f(r.qURes, float32(fbW), float32(fbH))
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tex)

	gl.BufferData(gl.ARRAY_BUFFER, len(r.quadBuf)*4, gl.Ptr(r.quadBuf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(r.quadBuf)/quadStride))
}

func appendDisc(buf []float32, c game.Circle) []float32 {
	cr, cg, cb := c.Color.Floats()
	return append(buf, float32(c.X), float32(c.Y), float32(c.Radius*2), cr, cg, cb, float32(c.Alpha))
}

// tongueDots is how many 2px dots stand in for the tongue line.
const tongueDots = 5

func appendLine(buf []float32, l game.Line) []float32 {
	for i := 0; i < tongueDots; i++ {
		t := float64(i) / (tongueDots - 1)
		buf = appendDisc(buf, game.Circle{
			X:      l.X0 + (l.X1-l.X0)*t,
			Y:      l.Y0 + (l.Y1-l.Y0)*t,
			Radius: 1,
			Color:  l.Color,
			Alpha:  l.Alpha,
		})
	}
	return buf
}
