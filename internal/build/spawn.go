package build

import (
	"context"

	"github.com/yndnr/uebridge-go/internal/protocol"
)

// Common basic shape meshes shipped with the engine.
const (
	MeshCube     = "/Engine/BasicShapes/Cube.Cube"
	MeshCylinder = "/Engine/BasicShapes/Cylinder.Cylinder"
	MeshSphere   = "/Engine/BasicShapes/Sphere.Sphere"
	MeshCone     = "/Engine/BasicShapes/Cone.Cone"
)

// Sender dispatches one command and returns its normalized response.
// Satisfied by *engine.Conn.
type Sender interface {
	Send(ctx context.Context, command string, params any) protocol.Response
}

// Vec3 is a world-space vector in editor units (centimeters).
type Vec3 [3]float64

// Add returns v offset by w.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{v[0] + w[0], v[1] + w[1], v[2] + w[2]}
}

// Uniform returns a vector with all three components set to s.
func Uniform(s float64) Vec3 { return Vec3{s, s, s} }

// Spawn is one planned actor placement.
type Spawn struct {
	Name     string
	Location Vec3
	Rotation Vec3
	Scale    Vec3
	Mesh     string
}

// params converts the spawn into the editor's spawn_actor parameters.
func (s Spawn) params() map[string]any {
	scale := s.Scale
	if scale == (Vec3{}) {
		scale = Uniform(1)
	}
	mesh := s.Mesh
	if mesh == "" {
		mesh = MeshCube
	}
	return map[string]any{
		"name":        s.Name,
		"type":        "StaticMeshActor",
		"location":    []float64{s.Location[0], s.Location[1], s.Location[2]},
		"rotation":    []float64{s.Rotation[0], s.Rotation[1], s.Rotation[2]},
		"scale":       []float64{scale[0], scale[1], scale[2]},
		"static_mesh": mesh,
	}
}
