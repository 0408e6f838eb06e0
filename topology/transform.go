package topology

import (
	"math"

	"github.com/rofi-go/rofi/spatial"
)

// JointTransform returns T_joint(alpha, beta, gamma), the fixed transform
// mapping side A's frame to side B's frame across the module body, as
// specified:
//
//	T_joint(α, β, γ) = Rx(α) · Rz(γ) · Tz(+1) · Ry(π) · Rx(−β)
//
// alpha, beta, gamma are in radians.
func JointTransform(alpha, beta, gamma float64) spatial.Mat4 {
	return spatial.MulChain(
		spatial.RotateX(alpha),
		spatial.RotateZ(gamma),
		spatial.TranslateZ(1),
		spatial.RotateY(math.Pi),
		spatial.RotateX(-beta),
	)
}

// faceToDock rotates a shoe's own frame so that the named dock faces +Z,
// ready to be stepped across the connector gap. Indexed by Dock.
var faceToDock = [3]spatial.Mat4{
	spatial.Mul(spatial.RotateY(-math.Pi/2), spatial.RotateZ(-math.Pi/2)), // X+
	spatial.Mul(spatial.RotateY(math.Pi/2), spatial.RotateZ(math.Pi/2)),   // X-
	spatial.Identity(),                                                   // Z-
}

// dockFaceUp is the inverse family: given the peer dock that was reached,
// rotate back into that shoe's own frame. Indexed by Dock.
var dockFaceUp = [3]spatial.Mat4{
	spatial.Mul(spatial.RotateZ(-math.Pi/2), spatial.RotateY(math.Pi/2)), // X+
	spatial.Mul(spatial.RotateZ(math.Pi/2), spatial.RotateY(-math.Pi/2)), // X-
	spatial.Identity(),                                                  // Z-
}

// ConnTransform returns T_conn(dock1, ori, dock2), the fixed transform
// mapping side1's frame across an edge to side2's frame, as specified:
//
//	T_conn(d1, ori, d2) = F(d1) · Rz(ori·π/2) · Tz(−1) · U(d2) · Rx(π)
//
// where F is faceToDock and U is dockFaceUp.
func ConnTransform(dock1 Dock, ori Orientation, dock2 Dock) spatial.Mat4 {
	return spatial.MulChain(
		faceToDock[dock1],
		spatial.RotateZ(float64(ori)*math.Pi/2),
		spatial.TranslateZ(-1),
		dockFaceUp[dock2],
		spatial.RotateX(math.Pi),
	)
}
