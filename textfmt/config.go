package textfmt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rofi-go/rofi/configuration"
	"github.com/rofi-go/rofi/topology"
)

// ParseConfiguration reads a single configuration from r: zero or more
// M/E records terminated by a blank line or EOF. Unknown record tags are
// an error; no filesystem access is performed.
func ParseConfiguration(r io.Reader) (*configuration.Configuration, error) {
	c := configuration.New()
	scanner := bufio.NewScanner(r)
	sawAny := false

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			if sawAny {
				break
			}
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "M":
			if err := parseModuleRecord(c, fields); err != nil {
				return nil, err
			}
		case "E":
			if err := parseEdgeRecord(c, fields); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("%q: %w", fields[0], ErrUnknownRecord)
		}
		sawAny = true
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return c, nil
}

func parseModuleRecord(c *configuration.Configuration, fields []string) error {
	if len(fields) != 5 {
		return fmt.Errorf("M record wants 4 fields, got %d: %w", len(fields)-1, ErrMalformedRecord)
	}
	id, err := strconv.Atoi(fields[1])
	if err != nil {
		return fmt.Errorf("M id: %w", ErrMalformedRecord)
	}
	alpha, err1 := strconv.ParseFloat(fields[2], 64)
	beta, err2 := strconv.ParseFloat(fields[3], 64)
	gamma, err3 := strconv.ParseFloat(fields[4], 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return fmt.Errorf("M angles: %w", ErrMalformedRecord)
	}
	c.AddModule(alpha, beta, gamma, id)
	return nil
}

func parseEdgeRecord(c *configuration.Configuration, fields []string) error {
	if len(fields) != 8 {
		return fmt.Errorf("E record wants 7 fields, got %d: %w", len(fields)-1, ErrMalformedRecord)
	}
	id1, err := strconv.Atoi(fields[1])
	if err != nil {
		return fmt.Errorf("E id1: %w", ErrMalformedRecord)
	}
	side1, err := parseSide(fields[2])
	if err != nil {
		return err
	}
	dock1, err := parseDock(fields[3])
	if err != nil {
		return err
	}
	ori, err := parseOrientation(fields[4])
	if err != nil {
		return err
	}
	dock2, err := parseDock(fields[5])
	if err != nil {
		return err
	}
	side2, err := parseSide(fields[6])
	if err != nil {
		return err
	}
	id2, err := strconv.Atoi(fields[7])
	if err != nil {
		return fmt.Errorf("E id2: %w", ErrMalformedRecord)
	}
	e := topology.Edge{ID1: id1, Side1: side1, Dock1: dock1, Ori: ori, Dock2: dock2, Side2: side2, ID2: id2}
	if !c.AddEdge(e) {
		return fmt.Errorf("E %v: %w", e, ErrMalformedRecord)
	}
	return nil
}

// ParseConfigurations reads every blank-line-delimited configuration in
// r, in order.
func ParseConfigurations(r io.Reader) ([]*configuration.Configuration, error) {
	scanner := bufio.NewScanner(r)
	var blocks []string
	var cur []string
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			if len(cur) > 0 {
				blocks = append(blocks, strings.Join(cur, "\n"))
				cur = nil
			}
			continue
		}
		cur = append(cur, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(cur) > 0 {
		blocks = append(blocks, strings.Join(cur, "\n"))
	}

	out := make([]*configuration.Configuration, 0, len(blocks))
	for _, b := range blocks {
		c, err := ParseConfiguration(strings.NewReader(b))
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// WriteConfiguration serializes c as M/E records followed by a blank
// line.
func WriteConfiguration(w io.Writer, c *configuration.Configuration) error {
	bw := bufio.NewWriter(w)
	for _, m := range c.Modules() {
		if _, err := fmt.Fprintf(bw, "M %d %g %g %g\n", m.ID(), m.Joint(0), m.Joint(1), m.Joint(2)); err != nil {
			return err
		}
	}
	written := make(map[topology.Edge]bool)
	for _, id := range c.SortedIDs() {
		for _, e := range c.EdgesOf(id) {
			canon := e
			if canon.ID1 > canon.ID2 {
				canon = canon.Reverse()
			}
			if written[canon] {
				continue
			}
			written[canon] = true
			if _, err := fmt.Fprintf(bw, "E %d %s %s %s %s %s %d\n",
				canon.ID1, formatSide(canon.Side1), formatDock(canon.Dock1),
				formatOrientation(canon.Ori), formatDock(canon.Dock2),
				formatSide(canon.Side2), canon.ID2); err != nil {
				return err
			}
		}
	}
	if _, err := fmt.Fprintln(bw); err != nil {
		return err
	}
	return bw.Flush()
}
