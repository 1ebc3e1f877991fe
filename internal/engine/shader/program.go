package shader

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/marchview/pkg/math"
)

// RayProgram is the compiled user program with its uniform locations.
type RayProgram struct {
	path string
	id   uint32

	locPosition int32
	locMatrix   int32
	locTime     int32
}

// NewRayProgram compiles src (read from path) into a program.
func NewRayProgram(path, src string) (*RayProgram, error) {
	p := &RayProgram{path: path}
	if err := p.compile(src); err != nil {
		return nil, err
	}
	return p, nil
}

// Reload re-reads the source file and swaps in the new program. On error
// the previous program stays active.
func (p *RayProgram) Reload() error {
	src, err := ReadSource(p.path)
	if err != nil {
		return err
	}
	return p.compile(src)
}

func (p *RayProgram) compile(src string) error {
	id, err := CompileProgram(VertexSource, WrapFragment(src))
	if err != nil {
		return fmt.Errorf("%w from %s: %v", ErrCompile, p.path, err)
	}
	if p.id != 0 {
		gl.DeleteProgram(p.id)
	}
	p.id = id
	p.locPosition = GetUniform(id, UniformPosition)
	p.locMatrix = GetUniform(id, UniformFragCoordToRayDir)
	p.locTime = GetUniform(id, UniformTime)
	return nil
}

// Use binds the program.
func (p *RayProgram) Use() {
	gl.UseProgram(p.id)
}

// SetUniforms submits the per-frame camera state.
func (p *RayProgram) SetUniforms(position math.Vec3, fragCoordToRayDir math.Mat4, time float32) {
	gl.UseProgram(p.id)
	gl.Uniform3f(p.locPosition, position.X, position.Y, position.Z)
	gl.UniformMatrix4fv(p.locMatrix, 1, false, fragCoordToRayDir.Ptr())
	gl.Uniform1f(p.locTime, time)
}

// Delete releases the GL program.
func (p *RayProgram) Delete() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}
