package configuration

import (
	"errors"

	"github.com/rofi-go/rofi/robot"
	"github.com/rofi-go/rofi/spatial"
	"github.com/rofi-go/rofi/topology"
)

// Sentinel errors for Configuration lookups. No function in this package
// returns them at present: accessors report a missing module or edge with
// a bool, and mutators that can fail in the course of normal search
// (joint out of range, dock already occupied) report failure via a bool
// return as well.
var (
	// ErrModuleNotFound indicates a referenced module id is absent.
	ErrModuleNotFound = errors.New("configuration: module not found")
	// ErrEmptyConfiguration indicates an operation requiring at least one
	// module was attempted on an empty Configuration.
	ErrEmptyConfiguration = errors.New("configuration: no modules")
)

// CacheState is the tri-state tag attached to every derived, lazily
// computed view of a Configuration: it starts Unknown, may be downgraded
// to Unknown by any mutation that could invalidate it, and is only ever
// raised to True by a successful validation pass (or set directly to
// False when a mutation is known to have broken it, e.g. SetFixed).
type CacheState int

const (
	Unknown CacheState = iota
	True
	False
)

// shoeMatrices holds the world transform of a module's two shoes.
type shoeMatrices [2]spatial.Mat4

// Configuration owns a set of modules, the edges between their docks, a
// fixed world anchor, and the derived caches described in the package
// doc comment. The zero value is not usable; construct with New.
type Configuration struct {
	modules      map[int]*robot.Module
	order        []int // insertion order, for deterministic iteration
	edgeSlots    map[int][topology.NumDockSlots]*topology.Edge
	fixedID      int
	fixedSide    robot.Side
	fixedMatrix  spatial.Mat4
	fixedIsAuto  bool // true until SetFixed is called explicitly
	hasAnyModule bool

	connected     CacheState
	matricesValid CacheState
	matrices      map[int]shoeMatrices

	tree *spanningTree
}

// New returns an empty Configuration. The fixed anchor starts at module 0
// / side A / identity and is re-pointed automatically at the
// lowest-numbered module as modules are added, until SetFixed is called
// explicitly.
func New() *Configuration {
	return &Configuration{
		modules:       make(map[int]*robot.Module),
		edgeSlots:     make(map[int][topology.NumDockSlots]*topology.Edge),
		fixedSide:     robot.SideA,
		fixedMatrix:   spatial.Identity(),
		fixedIsAuto:   true,
		connected:     Unknown,
		matricesValid: Unknown,
		matrices:      make(map[int]shoeMatrices),
	}
}
