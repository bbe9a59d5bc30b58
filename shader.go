// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package rampcache

import (
	_ "embed"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gogpu/naga"
)

// rampShaderSource is a linear-gradient fill that looks up its colors in
// the ramp texture by slot id.
//
//go:embed shaders/ramp.wgsl
var rampShaderSource string

// Uniform layout of the Gradient struct in shaders/ramp.wgsl.
const (
	// GradientUniformSize is the size in bytes of the Gradient uniform.
	GradientUniformSize = 32

	// Extend modes understood by the shader.
	ShaderExtendPad     uint32 = 0
	ShaderExtendRepeat  uint32 = 1
	ShaderExtendReflect uint32 = 2
)

// RampShaderSource returns the WGSL source of the ramp fill shader.
// Its fragment stage reads row Gradient.slot of the texture described by
// Ramps.TextureDescriptor.
func RampShaderSource() string {
	return rampShaderSource
}

// CompileRampShader compiles the ramp fill shader to SPIR-V words.
func CompileRampShader() ([]uint32, error) {
	spirvBytes, err := naga.Compile(rampShaderSource)
	if err != nil {
		return nil, fmt.Errorf("rampcache: compile ramp shader: %w", err)
	}

	// SPIR-V is little-endian 32-bit words
	spirvCode := make([]uint32, len(spirvBytes)/4)
	for i := range spirvCode {
		spirvCode[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return spirvCode, nil
}

// GradientUniform is the host-side value of the shader's Gradient uniform.
type GradientUniform struct {
	P0, P1 [2]float32
	Slot   uint32 // slot id returned by Cache.Add
	Extend uint32 // one of the ShaderExtend constants
}

// Bytes encodes u in the shader's uniform layout (little-endian,
// GradientUniformSize bytes).
func (u GradientUniform) Bytes() []byte {
	buf := make([]byte, GradientUniformSize)
	binary.LittleEndian.PutUint32(buf[0:], math.Float32bits(u.P0[0]))
	binary.LittleEndian.PutUint32(buf[4:], math.Float32bits(u.P0[1]))
	binary.LittleEndian.PutUint32(buf[8:], math.Float32bits(u.P1[0]))
	binary.LittleEndian.PutUint32(buf[12:], math.Float32bits(u.P1[1]))
	binary.LittleEndian.PutUint32(buf[16:], u.Slot)
	binary.LittleEndian.PutUint32(buf[20:], u.Extend)
	return buf
}
