package textfmt

import (
	"fmt"

	"github.com/rofi-go/rofi/robot"
	"github.com/rofi-go/rofi/topology"
)

func parseSide(tok string) (robot.Side, error) {
	switch tok {
	case "A", "0":
		return robot.SideA, nil
	case "B", "1":
		return robot.SideB, nil
	default:
		return 0, fmt.Errorf("%q: %w", tok, ErrUnknownSide)
	}
}

func formatSide(s robot.Side) string {
	if s == robot.SideA {
		return "A"
	}
	return "B"
}

func parseDock(tok string) (topology.Dock, error) {
	switch tok {
	case "+X", "0":
		return topology.XPlus, nil
	case "-X", "1":
		return topology.XMinus, nil
	case "-Z", "2":
		return topology.ZMinus, nil
	default:
		return 0, fmt.Errorf("%q: %w", tok, ErrUnknownDock)
	}
}

func formatDock(d topology.Dock) string {
	switch d {
	case topology.XPlus:
		return "+X"
	case topology.XMinus:
		return "-X"
	default:
		return "-Z"
	}
}

func parseOrientation(tok string) (topology.Orientation, error) {
	switch tok {
	case "N", "0":
		return topology.North, nil
	case "E", "1":
		return topology.East, nil
	case "S", "2":
		return topology.South, nil
	case "W", "3":
		return topology.West, nil
	default:
		return 0, fmt.Errorf("%q: %w", tok, ErrUnknownOrientation)
	}
}

func formatOrientation(o topology.Orientation) string {
	switch o {
	case topology.North:
		return "N"
	case topology.East:
		return "E"
	case topology.South:
		return "S"
	default:
		return "W"
	}
}

func parseJoint(tok string) (robot.Joint, error) {
	switch tok {
	case "Alpha", "0":
		return robot.Alpha, nil
	case "Beta", "1":
		return robot.Beta, nil
	case "Gamma", "2":
		return robot.Gamma, nil
	default:
		return 0, fmt.Errorf("%q: %w", tok, ErrUnknownJoint)
	}
}

func formatJoint(j robot.Joint) string {
	return j.String()
}
