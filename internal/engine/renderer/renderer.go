// Package renderer draws the full-viewport ray-marching pass, composites
// overlay images on top and reads frames back for capture.
package renderer

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/marchview/internal/capture"
	"github.com/Faultbox/marchview/internal/engine/shader"
	"github.com/Faultbox/marchview/internal/engine/window"
	"github.com/Faultbox/marchview/internal/logger"
)

const blitVertexSource = `#version 410 core

uniform vec4 uRect;   // x, y, w, h in pixels, origin top-left
uniform vec2 uScreen;

out vec2 vUV;

void main() {
	vec2 corner = vec2(gl_VertexID & 1, gl_VertexID >> 1);
	vUV = corner;
	vec2 ndc = (uRect.xy + corner * uRect.zw) / uScreen * 2.0 - 1.0;
	gl_Position = vec4(ndc.x, -ndc.y, 0.0, 1.0);
}
`

const blitFragmentSource = `#version 410 core

uniform sampler2D uTexture;

in vec2 vUV;
out vec4 FragColor;

void main() {
	FragColor = texture(uTexture, vUV);
}
`

type texture struct {
	id   uint32
	used bool
}

// Renderer handles all OpenGL drawing for the preview.
type Renderer struct {
	win     *window.Window
	program *shader.RayProgram

	width  int
	height int

	// Attribute-less VAO; vertices come from gl_VertexID
	vao uint32

	blitProgram uint32
	locRect     int32
	locScreen   int32
	locTexture  int32

	textures map[*image.RGBA]*texture
}

// New creates a renderer for win drawing program.
// IMPORTANT: Must be called AFTER the OpenGL context is created!
func New(win *window.Window, program *shader.RayProgram) (*Renderer, error) {
	r := &Renderer{
		win:      win,
		program:  program,
		textures: make(map[*image.RGBA]*texture),
	}

	var err error
	r.blitProgram, err = shader.CompileProgram(blitVertexSource, blitFragmentSource)
	if err != nil {
		return nil, fmt.Errorf("overlay shader: %w", err)
	}
	r.locRect = shader.GetUniform(r.blitProgram, "uRect")
	r.locScreen = shader.GetUniform(r.blitProgram, "uScreen")
	r.locTexture = shader.GetUniform(r.blitProgram, "uTexture")

	gl.GenVertexArrays(1, &r.vao)

	gl.Disable(gl.DEPTH_TEST)
	gl.ClearColor(0, 0, 0, 1)

	w, h := win.Size()
	r.Resize(w, h)

	logger.Debug("renderer created", zap.Uint32("vao", r.vao), zap.Uint32("blit_program", r.blitProgram))
	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Debug("closing renderer")
	for img, tex := range r.textures {
		gl.DeleteTextures(1, &tex.id)
		delete(r.textures, img)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.blitProgram != 0 {
		gl.DeleteProgram(r.blitProgram)
	}
}

// Size returns the viewport size in pixels.
func (r *Renderer) Size() (int, int) {
	return r.width, r.height
}

// Resize updates the viewport to the new drawable size.
func (r *Renderer) Resize(width, height int) {
	r.width = max(width, 1)
	r.height = max(height, 1)
	gl.Viewport(0, 0, int32(r.width), int32(r.height))
	logger.Debug("viewport resized",
		zap.Int("width", r.width),
		zap.Int("height", r.height),
	)
}

// DrawFullscreen runs the ray-marching program over every pixel.
func (r *Renderer) DrawFullscreen() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
	r.program.Use()
	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
	gl.BindVertexArray(0)
}

// DrawImage composites img with its top-left corner at (x, y). Textures are
// cached per image and released once an image is not drawn for a frame.
func (r *Renderer) DrawImage(img *image.RGBA, x, y int) {
	tex := r.texture(img)
	b := img.Bounds()

	gl.Enable(gl.BLEND)
	// image.RGBA is alpha-premultiplied
	gl.BlendFunc(gl.ONE, gl.ONE_MINUS_SRC_ALPHA)

	gl.UseProgram(r.blitProgram)
	gl.Uniform4f(r.locRect, float32(x), float32(y), float32(b.Dx()), float32(b.Dy()))
	gl.Uniform2f(r.locScreen, float32(r.width), float32(r.height))
	gl.Uniform1i(r.locTexture, 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tex.id)
	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
	gl.BindVertexArray(0)

	gl.Disable(gl.BLEND)
}

func (r *Renderer) texture(img *image.RGBA) *texture {
	if tex, ok := r.textures[img]; ok {
		tex.used = true
		return tex
	}

	tex := &texture{used: true}
	gl.GenTextures(1, &tex.id)
	gl.BindTexture(gl.TEXTURE_2D, tex.id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	b := img.Bounds()
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(img.Stride/4))
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(b.Dx()), int32(b.Dy()), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)

	r.textures[img] = tex
	return tex
}

// Snapshot reads back the current frame.
func (r *Renderer) Snapshot() (image.Image, error) {
	pixels := make([]byte, r.width*r.height*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(r.width), int32(r.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	if code := gl.GetError(); code != gl.NO_ERROR {
		return nil, fmt.Errorf("glReadPixels: error 0x%x", code)
	}
	return capture.FromPixels(pixels, r.width, r.height)
}

// Present releases stale overlay textures and shows the frame.
func (r *Renderer) Present() {
	for img, tex := range r.textures {
		if !tex.used {
			gl.DeleteTextures(1, &tex.id)
			delete(r.textures, img)
			continue
		}
		tex.used = false
	}
	r.win.Present()
}
