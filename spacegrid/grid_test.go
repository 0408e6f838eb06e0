package spacegrid_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rofi-go/rofi/spacegrid"
)

func TestFreenessSingleOccupantCountsAllSixFaces(t *testing.T) {
	occ := []spacegrid.Occupant{{X: 0, Y: 0, Z: 0, ID: 1}}
	require.Equal(t, 6, spacegrid.Freeness(occ, 1))
}

func TestFreenessAdjacentOccupantsShareNoDoubleCount(t *testing.T) {
	occ := []spacegrid.Occupant{
		{X: 0, Y: 0, Z: 0, ID: 1},
		{X: 1, Y: 0, Z: 0, ID: 2},
	}
	// each occupant has 5 free/out-of-bounds neighbors (the 6th faces the
	// other occupant and is not counted).
	require.Equal(t, 10, spacegrid.Freeness(occ, 2))
}
