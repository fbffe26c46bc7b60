// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package physics implements the deterministic rigid-body physics kernel:
// force model, RK4 integrator, disc-vs-ground-plane collision detection and
// impulse response, and the stability detector.
package physics

// Material describes the friction and restitution of a coin's surface
// against the ground plane.
type Material struct {
	Friction    float64
	Restitution float64
}

// DefaultMaterial returns the calibrated default coin/ground contact
// material.
func DefaultMaterial() Material {
	return Material{Friction: 0.3, Restitution: 0.5}
}
