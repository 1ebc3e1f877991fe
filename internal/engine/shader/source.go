package shader

import (
	"errors"
	"fmt"
	"os"
	"regexp"
)

var (
	// ErrUnsupported means the host cannot run GLSL programs.
	ErrUnsupported = errors.New("system does not support shaders")
	// ErrSource means the input shader file could not be read.
	ErrSource = errors.New("cannot read shader source")
	// ErrCompile means the wrapped program failed to compile or link.
	ErrCompile = errors.New("failed to load shader")
)

// Uniform names shared with the fragment preamble.
const (
	UniformPosition          = "position"
	UniformFragCoordToRayDir = "fragCoordToRayDir"
	UniformTime              = "time"
)

// VertexSource emits one triangle covering the viewport from gl_VertexID.
const VertexSource = `#version 410 core

void main() {
	vec2 p = vec2((gl_VertexID << 1) & 2, gl_VertexID & 2);
	gl_Position = vec4(p * 2.0 - 1.0, 0.0, 1.0);
}
`

const fragmentPreamble = `#version 410 core

layout(origin_upper_left) in vec4 gl_FragCoord;

uniform vec3 position;
uniform mat4 fragCoordToRayDir;
uniform float time;

out vec4 fragColor;

`

const fragmentMain = `
void main() {
	vec3 dir = normalize((fragCoordToRayDir * gl_FragCoord).xyz);
	fragColor = vec4(rayColor(position, dir), 1.0);
}
`

var rayColorDecl = regexp.MustCompile(`\bvec3\s+rayColor\s*\(`)

// WrapFragment surrounds user code with the uniform declarations and the
// entry point. A #line directive keeps compiler messages pointing at the
// user's own line numbers.
func WrapFragment(user string) string {
	return fragmentPreamble + "#line 1\n" + user + "\n" + fragmentMain
}

// HasRayColor reports whether src appears to define vec3 rayColor(...).
func HasRayColor(src string) bool {
	return rayColorDecl.MatchString(src)
}

// ReadSource reads and sanity-checks a user shader file.
func ReadSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSource, err)
	}
	src := string(data)
	if !HasRayColor(src) {
		return "", fmt.Errorf("%w: %s does not define vec3 rayColor(vec3 position, vec3 direction)", ErrCompile, path)
	}
	return src, nil
}
