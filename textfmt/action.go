package textfmt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rofi-go/rofi/action"
	"github.com/rofi-go/rofi/topology"
)

// ParseAction reads an Action from r: R (rotate), C (connect) and D
// (disconnect) records, one per line, until EOF or a blank line.
func ParseAction(r io.Reader) (action.Action, error) {
	var a action.Action
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			break
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "R":
			rot, err := parseRotate(fields)
			if err != nil {
				return action.Action{}, err
			}
			a.Rotations = append(a.Rotations, rot)
		case "C", "D":
			e, err := parseActionEdge(fields)
			if err != nil {
				return action.Action{}, err
			}
			a.Reconnections = append(a.Reconnections, action.Reconnect{Add: fields[0] == "C", Edge: e})
		default:
			return action.Action{}, fmt.Errorf("%q: %w", fields[0], ErrUnknownRecord)
		}
	}
	if err := scanner.Err(); err != nil {
		return action.Action{}, err
	}
	return a, nil
}

func parseRotate(fields []string) (action.Rotate, error) {
	if len(fields) != 4 {
		return action.Rotate{}, fmt.Errorf("R record wants 3 fields, got %d: %w", len(fields)-1, ErrMalformedRecord)
	}
	id, err := strconv.Atoi(fields[1])
	if err != nil {
		return action.Rotate{}, fmt.Errorf("R id: %w", ErrMalformedRecord)
	}
	j, err := parseJoint(fields[2])
	if err != nil {
		return action.Rotate{}, err
	}
	angle, err := strconv.ParseFloat(fields[3], 64)
	if err != nil {
		return action.Rotate{}, fmt.Errorf("R angle: %w", ErrMalformedRecord)
	}
	return action.Rotate{ID: id, Joint: j, Delta: angle}, nil
}

func parseActionEdge(fields []string) (topology.Edge, error) {
	if len(fields) != 8 {
		return topology.Edge{}, fmt.Errorf("%s record wants 7 fields, got %d: %w", fields[0], len(fields)-1, ErrMalformedRecord)
	}
	id1, err := strconv.Atoi(fields[1])
	if err != nil {
		return topology.Edge{}, fmt.Errorf("edge id1: %w", ErrMalformedRecord)
	}
	side1, err := parseSide(fields[2])
	if err != nil {
		return topology.Edge{}, err
	}
	dock1, err := parseDock(fields[3])
	if err != nil {
		return topology.Edge{}, err
	}
	ori, err := parseOrientation(fields[4])
	if err != nil {
		return topology.Edge{}, err
	}
	dock2, err := parseDock(fields[5])
	if err != nil {
		return topology.Edge{}, err
	}
	side2, err := parseSide(fields[6])
	if err != nil {
		return topology.Edge{}, err
	}
	id2, err := strconv.Atoi(fields[7])
	if err != nil {
		return topology.Edge{}, fmt.Errorf("edge id2: %w", ErrMalformedRecord)
	}
	return topology.Edge{ID1: id1, Side1: side1, Dock1: dock1, Ori: ori, Dock2: dock2, Side2: side2, ID2: id2}, nil
}

// WriteAction serializes a as R/C/D records: every rotation first, then
// every reconnection in a.Reconnections order (C for an add, D for a
// remove). This is not the execution order (disconnects, then connects,
// then rotations); the format itself carries no ordering semantics.
func WriteAction(w io.Writer, a action.Action) error {
	bw := bufio.NewWriter(w)
	for _, r := range a.Rotations {
		if _, err := fmt.Fprintf(bw, "R %d %s %g\n", r.ID, formatJoint(r.Joint), r.Delta); err != nil {
			return err
		}
	}
	for _, rc := range a.Reconnections {
		tag := "D"
		if rc.Add {
			tag = "C"
		}
		e := rc.Edge
		if _, err := fmt.Fprintf(bw, "%s %d %s %s %s %s %s %d\n",
			tag, e.ID1, formatSide(e.Side1), formatDock(e.Dock1),
			formatOrientation(e.Ori), formatDock(e.Dock2), formatSide(e.Side2), e.ID2); err != nil {
			return err
		}
	}
	return bw.Flush()
}
