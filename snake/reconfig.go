package snake

import (
	"github.com/google/uuid"

	"github.com/rofi-go/rofi/configuration"
	"github.com/rofi-go/rofi/search"
)

// ReconfigToSnake drives the full six-stage pipeline — aerate, treefy,
// tree-to-snake, fix-parity, fix-docks, flatten-circle — recording one
// StageReport per stage and stopping early (Finished=false) the moment a
// stage fails to converge within its iteration bound.
func ReconfigToSnake(init *configuration.Configuration, opts Options) Result {
	runID := uuid.New()
	path := []*configuration.Configuration{init}
	cur := init
	var reports []StageReport

	aerated, aIter := AerateConfig(cur, opts.AerateBeamWidth(cur.Len()))
	if len(aerated) > 0 {
		cur = aerated[len(aerated)-1]
		path = append(path, aerated[1:]...)
	}
	reports = append(reports, StageReport{Name: "aerate", Finished: true, Iterations: aIter})

	treed := Treefy(cur)
	cur = treed
	path = append(path, cur)
	reports = append(reports, StageReport{Name: "treefy", Finished: true, Iterations: 1})

	ttsPath, ttsFinished, ttsIter := TreeToSnake(cur, opts)
	if len(ttsPath) > 0 {
		cur = ttsPath[len(ttsPath)-1]
		path = append(path, ttsPath[1:]...)
	}
	reports = append(reports, StageReport{Name: "tree-to-snake", Finished: ttsFinished, Iterations: ttsIter})
	if !ttsFinished {
		return Result{RunID: runID, Path: path, Finished: false, StageReports: reports}
	}

	fpPath, fpFinished := FixParity(cur, opts.MaxFixParityRounds)
	if len(fpPath) > 0 {
		cur = fpPath[len(fpPath)-1]
		path = append(path, fpPath[1:]...)
	}
	reports = append(reports, StageReport{Name: "fix-parity", Finished: fpFinished, Iterations: len(fpPath) - 1})
	if !fpFinished {
		return Result{RunID: runID, Path: path, Finished: false, StageReports: reports}
	}

	fdPath, fdFinished := FixDocks(cur, opts.MaxFixDocksIterations)
	if len(fdPath) > 0 {
		cur = fdPath[len(fdPath)-1]
		path = append(path, fdPath[1:]...)
	}
	reports = append(reports, StageReport{Name: "fix-docks", Finished: fdFinished, Iterations: len(fdPath) - 1})
	if !fdFinished {
		return Result{RunID: runID, Path: path, Finished: false, StageReports: reports}
	}

	fcPath, fcFinished := FlattenCircle(cur, opts.AerateBeamWidth(cur.Len()))
	if len(fcPath) > 0 {
		path = append(path, fcPath[1:]...)
	}
	reports = append(reports, StageReport{Name: "flatten-circle", Finished: fcFinished, Iterations: len(fcPath) - 1})

	return Result{RunID: runID, Path: path, Finished: fcFinished, StageReports: reports}
}

// ReconfigBetween reconfigures a into b by driving both to their own
// canonical snake shape and bridging the two snakes with a bounded A*
// search. This is a simplification of the tighter id-remapped splice the
// original snake reconfiguration performs: since module identities never
// change across any stage here, a direct search between the two snake
// endpoints is always well-defined, just not guaranteed shortest.
func ReconfigBetween(a, b *configuration.Configuration, opts Options) Result {
	runID := uuid.New()
	ra := ReconfigToSnake(a, opts)
	rb := ReconfigToSnake(b, opts)

	reports := append(append([]StageReport{}, ra.StageReports...), rb.StageReports...)
	if !ra.Finished || !rb.Finished {
		path := append(append([]*configuration.Configuration{}, ra.Path...), rb.Path...)
		return Result{RunID: runID, Path: path, Finished: false, StageReports: reports}
	}

	snakeA := ra.Path[len(ra.Path)-1]
	snakeB := rb.Path[len(rb.Path)-1]

	bridge, ok := search.AStar(snakeA, snakeB, 90, 1, search.ShoeCenterHeuristic)
	reports = append(reports, StageReport{Name: "bridge", Finished: ok, Iterations: len(bridge)})

	path := append([]*configuration.Configuration{}, ra.Path...)
	if ok && len(bridge) > 0 {
		path = append(path, bridge[1:]...)
	}

	revB := make([]*configuration.Configuration, len(rb.Path))
	for i, c := range rb.Path {
		revB[len(rb.Path)-1-i] = c
	}
	if len(revB) > 0 {
		path = append(path, revB[1:]...)
	}

	return Result{RunID: runID, Path: path, Finished: ok, StageReports: reports}
}
