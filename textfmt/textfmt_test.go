package textfmt_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rofi-go/rofi/action"
	"github.com/rofi-go/rofi/robot"
	"github.com/rofi-go/rofi/textfmt"
	"github.com/rofi-go/rofi/topology"
)

const sample = `M 0 0 0 0
M 1 0 0 0
E 0 A +X N -X A 1
`

func TestParseConfigurationRoundTrips(t *testing.T) {
	c, err := textfmt.ParseConfiguration(strings.NewReader(sample))
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())
	require.True(t, c.IsValid())

	var buf strings.Builder
	require.NoError(t, textfmt.WriteConfiguration(&buf, c))

	reparsed, err := textfmt.ParseConfiguration(strings.NewReader(buf.String()))
	require.NoError(t, err)
	require.True(t, c.Equal(reparsed))
}

func TestParseConfigurationRejectsUnknownTag(t *testing.T) {
	_, err := textfmt.ParseConfiguration(strings.NewReader("Q garbage\n"))
	require.ErrorIs(t, err, textfmt.ErrUnknownRecord)
}

func TestParseConfigurationsSplitsOnBlankLines(t *testing.T) {
	input := "M 0 0 0 0\n\nM 0 10 0 0\n"
	cs, err := textfmt.ParseConfigurations(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, cs, 2)
}

func TestParseAndWriteAction(t *testing.T) {
	a := action.Action{
		Rotations: []action.Rotate{{ID: 0, Joint: robot.Alpha, Delta: 45}},
		Reconnections: []action.Reconnect{{Add: true, Edge: topology.Edge{
			ID1: 0, Side1: robot.SideA, Dock1: topology.XPlus,
			Ori:   topology.North,
			Dock2: topology.XMinus, Side2: robot.SideA, ID2: 1,
		}}},
	}
	var buf strings.Builder
	require.NoError(t, textfmt.WriteAction(&buf, a))

	reparsed, err := textfmt.ParseAction(strings.NewReader(buf.String()))
	require.NoError(t, err)
	require.Len(t, reparsed.Rotations, 1)
	require.Len(t, reparsed.Reconnections, 1)
}
