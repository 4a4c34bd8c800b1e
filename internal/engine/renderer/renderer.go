// Package renderer draws the scene: sky, starfield, bodies and the page
// panels layered over them.
package renderer

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/planetfolio/internal/engine/lighting"
	"github.com/Faultbox/planetfolio/internal/engine/mesh"
	"github.com/Faultbox/planetfolio/internal/engine/shader"
	"github.com/Faultbox/planetfolio/internal/logger"
	"github.com/Faultbox/planetfolio/internal/rig"
	"github.com/Faultbox/planetfolio/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	FOV        float32 // vertical, degrees
	Background [3]float32
	Light      lighting.Sun
	Stars      []math.Vec3
	StarSize   float32
}

// Panel is a screen-space rectangle in window coordinates (origin top-left).
type Panel struct {
	X, Y, W, H float32
	Scale      float32
	Color      [4]float32
}

type gpuMesh struct {
	vao, vbo, ebo uint32
	count         int32
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config

	// logical window size used for panels; the framebuffer may be larger
	logicalW, logicalH float32

	bodyProgram *shader.Program
	starProgram *shader.Program
	flatProgram *shader.Program

	meshes map[string]*gpuMesh
	quad   *gpuMesh

	starVAO, starVBO uint32
	starCount        int32

	sky      uint32
	textures []uint32
}

// New creates a renderer. It must be called after the GL context exists.
func New(cfg Config) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	r := &Renderer{
		config:   cfg,
		logicalW: float32(cfg.Width),
		logicalH: float32(cfg.Height),
		meshes:   make(map[string]*gpuMesh),
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.Enable(gl.MULTISAMPLE)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	bg := cfg.Background
	gl.ClearColor(bg[0], bg[1], bg[2], 1)

	var err error
	if r.bodyProgram, err = shader.CompileProgram(bodyVertexShader, bodyFragmentShader); err != nil {
		return nil, fmt.Errorf("body shader: %w", err)
	}
	if r.starProgram, err = shader.CompileProgram(starVertexShader, starFragmentShader); err != nil {
		r.Close()
		return nil, fmt.Errorf("star shader: %w", err)
	}
	if r.flatProgram, err = shader.CompileProgram(flatVertexShader, flatFragmentShader); err != nil {
		r.Close()
		return nil, fmt.Errorf("flat shader: %w", err)
	}

	for _, shape := range []string{"cube", "sphere", "torus"} {
		m, _ := mesh.ForShape(shape)
		r.meshes[shape] = uploadMesh(m)
	}
	r.quad = uploadMesh(mesh.Quad())
	r.uploadStars(cfg.Stars)

	logger.Debug("renderer ready",
		zap.Int("meshes", len(r.meshes)),
		zap.Int32("stars", r.starCount),
	)
	return r, nil
}

// Close releases GPU resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	for _, m := range r.meshes {
		deleteMesh(m)
	}
	if r.quad != nil {
		deleteMesh(r.quad)
	}
	if len(r.textures) > 0 {
		gl.DeleteTextures(int32(len(r.textures)), &r.textures[0])
	}
	if r.starVAO != 0 {
		gl.DeleteVertexArrays(1, &r.starVAO)
		gl.DeleteBuffers(1, &r.starVBO)
	}
	for _, p := range []*shader.Program{r.bodyProgram, r.starProgram, r.flatProgram} {
		if p != nil {
			p.Delete()
		}
	}
}

// Resize updates the logical window size and the framebuffer viewport.
func (r *Renderer) Resize(width, height, drawableW, drawableH int) {
	r.logicalW = float32(width)
	r.logicalH = float32(height)
	r.config.Width = drawableW
	r.config.Height = drawableH
	gl.Viewport(0, 0, int32(drawableW), int32(drawableH))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Int("drawable_width", drawableW),
		zap.Int("drawable_height", drawableH),
	)
}

// SetSky sets the backdrop texture. Zero clears it.
func (r *Renderer) SetSky(tex uint32) {
	r.sky = tex
}

// Projection returns the scene projection for the current size.
func (r *Renderer) Projection() math.Mat4 {
	aspect := float32(1)
	if r.logicalH > 0 {
		aspect = r.logicalW / r.logicalH
	}
	return math.Perspective(r.config.FOV*math32.Pi/180, aspect, 0.1, 1000)
}

// Begin clears the frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// DrawSky draws the backdrop texture over the whole viewport.
func (r *Renderer) DrawSky() {
	if r.sky == 0 {
		return
	}
	gl.Disable(gl.DEPTH_TEST)
	r.drawFlat(math.Scale(2), [4]float32{1, 1, 1, 1}, r.sky)
	gl.Enable(gl.DEPTH_TEST)
}

// DrawStars draws the starfield.
func (r *Renderer) DrawStars(view math.Mat4) {
	if r.starCount == 0 {
		return
	}
	proj := r.Projection()
	p := r.starProgram
	p.Use()
	gl.UniformMatrix4fv(p.Uniform("uView"), 1, false, view.Ptr())
	gl.UniformMatrix4fv(p.Uniform("uProjection"), 1, false, proj.Ptr())
	gl.Uniform1f(p.Uniform("uSize"), r.config.StarSize)
	gl.Uniform1f(p.Uniform("uViewportHeight"), float32(r.config.Height))
	gl.BindVertexArray(r.starVAO)
	gl.DrawArrays(gl.POINTS, 0, r.starCount)
	gl.BindVertexArray(0)
}

// DrawBodies draws every body with its current transform.
func (r *Renderer) DrawBodies(view math.Mat4, bodies []*rig.Body) {
	proj := r.Projection()
	p := r.bodyProgram
	p.Use()
	gl.UniformMatrix4fv(p.Uniform("uView"), 1, false, view.Ptr())
	gl.UniformMatrix4fv(p.Uniform("uProjection"), 1, false, proj.Ptr())
	sun := r.config.Light.Direction()
	gl.Uniform3f(p.Uniform("uLightDir"), sun.X, sun.Y, sun.Z)
	gl.Uniform1f(p.Uniform("uAmbient"), r.config.Light.Ambient)
	gl.Uniform1i(p.Uniform("uTexture"), 0)

	for _, b := range bodies {
		m, ok := r.meshes[b.Shape]
		if !ok {
			continue
		}
		// entirely behind the camera
		if view.TransformVec3(b.Position).Z > b.Scale {
			continue
		}
		model := math.Model(b.Position, b.Rotation, b.Scale)
		gl.UniformMatrix4fv(p.Uniform("uModel"), 1, false, model.Ptr())
		gl.Uniform3f(p.Uniform("uColor"), b.Color[0], b.Color[1], b.Color[2])
		r.bindTexture(p, b.Texture)
		drawMesh(m)
	}
}

// DrawPanels draws translucent page panels over the scene.
func (r *Renderer) DrawPanels(panels []Panel) {
	if len(panels) == 0 {
		return
	}
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	ortho := math.Ortho(0, r.logicalW, r.logicalH, 0, -1, 1)
	for _, pn := range panels {
		if pn.Scale <= 0 || pn.Color[3] <= 0 {
			continue
		}
		cx, cy := pn.X+pn.W/2, pn.Y+pn.H/2
		size := math.Identity()
		size[0] = pn.W * pn.Scale
		size[5] = pn.H * pn.Scale
		m := ortho.Mul(math.Translate(math.Vec3{X: cx, Y: cy})).Mul(size)
		r.drawFlat(m, pn.Color, 0)
	}
	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
}

// ReadPixels returns the current framebuffer as RGBA rows, bottom row
// first.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}

func (r *Renderer) drawFlat(transform math.Mat4, color [4]float32, tex uint32) {
	p := r.flatProgram
	p.Use()
	gl.UniformMatrix4fv(p.Uniform("uTransform"), 1, false, transform.Ptr())
	gl.Uniform4f(p.Uniform("uColor"), color[0], color[1], color[2], color[3])
	gl.Uniform1i(p.Uniform("uTexture"), 0)
	r.bindTexture(p, tex)
	drawMesh(r.quad)
}

func (r *Renderer) bindTexture(p *shader.Program, tex uint32) {
	textured := int32(0)
	if tex != 0 {
		textured = 1
	}
	gl.Uniform1i(p.Uniform("uTextured"), textured)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tex)
}

func (r *Renderer) uploadStars(stars []math.Vec3) {
	if len(stars) == 0 {
		return
	}
	data := make([]float32, 0, len(stars)*3)
	for _, s := range stars {
		data = append(data, s.X, s.Y, s.Z)
	}
	gl.GenVertexArrays(1, &r.starVAO)
	gl.BindVertexArray(r.starVAO)
	gl.GenBuffers(1, &r.starVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.starVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, nil)
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)
	r.starCount = int32(len(stars))
}

func uploadMesh(m *mesh.Mesh) *gpuMesh {
	g := &gpuMesh{count: int32(len(m.Indices))}

	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*4, gl.Ptr(m.Vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &g.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, gl.Ptr(m.Indices), gl.STATIC_DRAW)

	stride := int32(mesh.Stride * 4)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, nil)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, gl.PtrOffset(6*4))
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)
	return g
}

func drawMesh(g *gpuMesh) {
	gl.BindVertexArray(g.vao)
	gl.DrawElements(gl.TRIANGLES, g.count, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

func deleteMesh(g *gpuMesh) {
	gl.DeleteVertexArrays(1, &g.vao)
	gl.DeleteBuffers(1, &g.vbo)
	gl.DeleteBuffers(1, &g.ebo)
}
