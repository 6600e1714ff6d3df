// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// CubeVertexShader transforms the cube mesh.
//
//go:embed cube.vert
var CubeVertexShader string

// CubeFragmentShader shades the cube with a flat tint or a sampled texture.
//
//go:embed cube.frag
var CubeFragmentShader string
