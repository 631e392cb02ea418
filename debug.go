package scrollverse

import (
	"context"
	"log/slog"
	"time"
)

// debugStats holds per-frame timing and command metrics.
// Only populated when the engine is in debug mode.
type debugStats struct {
	stepTime     time.Duration
	submitTime   time.Duration
	phase        PhaseState
	commandCount int
}

// debugLog logs the last frame's stats at debug level.
func (e *Engine) debugLog() {
	if !e.debug {
		return
	}
	l := Logger()
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	l.Debug("scrollverse: frame",
		"frame", e.frames,
		"phase", e.stats.phase.Phase,
		"local", e.stats.phase.Local,
		"step", e.stats.stepTime,
		"submit", e.stats.submitTime,
		"commands", e.stats.commandCount,
		"draw_calls", countDrawCalls(e.out.Commands()),
		sourceGroup(SourceCounts(e.out.Commands())),
	)
}

// sourceGroup renders per-source counts as a "sources" group, in Source
// order so records are stable across frames.
func sourceGroup(counts map[Source]int) slog.Attr {
	attrs := make([]any, 0, len(counts))
	for src := SourceNone; src < sourceCount; src++ {
		if n, ok := counts[src]; ok {
			attrs = append(attrs, slog.Int(src.String(), n))
		}
	}
	return slog.Group("sources", attrs...)
}

// countDrawCalls counts the primitive draw calls a command list expands to.
// Crosses are two strokes; everything else is one.
func countDrawCalls(cmds []DrawCommand) int {
	n := 0
	for i := range cmds {
		if cmds[i].Type == CommandStrokeCross {
			n += 2
			continue
		}
		n++
	}
	return n
}

// SourceCounts returns the number of commands per source in cmds. Sources
// with no commands are absent.
func SourceCounts(cmds []DrawCommand) map[Source]int {
	counts := make(map[Source]int)
	for i := range cmds {
		counts[cmds[i].Source]++
	}
	return counts
}
