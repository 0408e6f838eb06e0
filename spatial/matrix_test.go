package spatial_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rofi-go/rofi/spatial"
)

func TestIdentityIsMulUnit(t *testing.T) {
	m := spatial.RotateZ(1.234)
	require.True(t, spatial.ApproxEqual(spatial.Mul(m, spatial.Identity()), m))
	require.True(t, spatial.ApproxEqual(spatial.Mul(spatial.Identity(), m), m))
}

func TestRotateZQuarterTurn(t *testing.T) {
	m := spatial.RotateZ(math.Pi / 2)
	got := spatial.MulVec(m, spatial.Vec4{1, 0, 0, 1})
	require.True(t, spatial.ApproxEqualVec(got, spatial.Vec4{0, 1, 0, 1}))
}

func TestTranslateZCenter(t *testing.T) {
	m := spatial.TranslateZ(1)
	require.True(t, spatial.ApproxEqualVec(spatial.Center(m), spatial.Vec4{0, 0, 1, 1}))
}

func TestDistanceVecRoundsToGrid(t *testing.T) {
	a := spatial.Vec4{0, 0, 0, 1}
	b := spatial.Vec4{1.0 / 3, 0, 0, 1}
	d := spatial.DistanceVec(a, b)
	require.InDelta(t, 0.333, d, 1e-9)
}

func TestApproxEqualToleratesSubThreshold(t *testing.T) {
	a := spatial.Identity()
	b := spatial.Identity()
	b[0][0] += 0.0004
	require.True(t, spatial.ApproxEqual(a, b))
	b[0][0] += 0.01
	require.False(t, spatial.ApproxEqual(a, b))
}
