package scene

import "github.com/go-gl/mathgl/mgl32"

// SharedUniforms is pushed once per frame.
type SharedUniforms struct {
	LightWorldPos mgl32.Vec3
	ViewInverse   mgl32.Mat4
	LightColor    mgl32.Vec4
}

func (u *SharedUniforms) Each(fn func(name string, value any)) {
	fn("u_lightWorldPos", u.LightWorldPos)
	fn("u_viewInverse", u.ViewInverse)
	fn("u_lightColor", u.LightColor)
}

// ObjectUniforms is the per-draw scratch set. Update overwrites every field.
type ObjectUniforms struct {
	World                 mgl32.Mat4
	WorldViewProjection   mgl32.Mat4
	WorldInverseTranspose mgl32.Mat4
}

func (u *ObjectUniforms) Update(world, viewProjection mgl32.Mat4) {
	u.World = world
	u.WorldViewProjection = viewProjection.Mul4(world)
	u.WorldInverseTranspose = world.Inv().Transpose()
}

func (u *ObjectUniforms) Each(fn func(name string, value any)) {
	fn("u_world", u.World)
	fn("u_worldViewProjection", u.WorldViewProjection)
	fn("u_worldInverseTranspose", u.WorldInverseTranspose)
}
