// Command scrollverse-capture renders frames headlessly to PNG, either at a
// list of scroll positions or by playing a JSON test script.
//
//	scrollverse-capture -progress 0,0.3,0.6,1 -out shots
//	scrollverse-capture -script tour.json -out shots
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/phanxgames/scrollverse"
)

var (
	dim   = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	white = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))

	// One color per phase, in band order.
	phaseStyles = [...]lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true),
		lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Bold(true),
		lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
		lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Bold(true),
	}
)

// row formats one written capture for the summary printed to stdout.
func row(p float64, commands int, path string) string {
	ph := scrollverse.SelectPhase(p).Phase
	name := phaseStyles[int(ph)%len(phaseStyles)].Width(10).Render(ph.String())
	return lipgloss.JoinHorizontal(lipgloss.Top,
		name,
		white.Width(8).Render(strconv.FormatFloat(p, 'f', 3, 64)),
		dim.Width(8).Render(strconv.Itoa(commands)),
		path,
	)
}

func main() {
	var (
		width     = flag.Int("width", 1280, "canvas width")
		height    = flag.Int("height", 720, "canvas height")
		seed      = flag.Uint64("seed", 1, "population seed")
		progress  = flag.String("progress", "0,0.125,0.3,0.45,0.6,0.8,1", "comma-separated scroll positions")
		at        = flag.Float64("time", 2, "animation clock for -progress captures")
		light     = flag.Bool("light", false, "light theme")
		script    = flag.String("script", "", "JSON test script to play instead of -progress")
		maxFrames = flag.Int("max-frames", 10000, "frame limit for -script")
		out       = flag.String("out", "screenshots", "output root; a session directory is created inside")
	)
	flag.Parse()

	scrollverse.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	cfg := scrollverse.DefaultConfig()
	cfg.Seed = *seed
	size := scrollverse.Size{Width: *width, Height: *height}
	in := scrollverse.NewInputs(size)
	in.SetDarkTheme(!*light)
	engine := scrollverse.NewEngine(cfg, in)

	surface := scrollverse.NewRasterSurface(size)
	defer surface.Close()
	capture := scrollverse.NewCapture(*out)

	if *script != "" {
		data, err := os.ReadFile(*script)
		if err != nil {
			log.Fatal(err)
		}
		runner, err := scrollverse.LoadTestScript(data)
		if err != nil {
			log.Fatal(err)
		}
		paths, err := scrollverse.RunScript(engine, surface, runner, capture, *maxFrames)
		for _, p := range paths {
			fmt.Println(dim.Render("wrote"), p)
		}
		if err != nil {
			log.Fatal(err)
		}
		return
	}

	values, err := parseProgress(*progress)
	if err != nil {
		log.Fatal(err)
	}
	engine.SetTime(*at)
	fmt.Println(dim.Render(fmt.Sprintf("%-10s%-8s%-8s%s", "phase", "progress", "cmds", "path")))
	for _, p := range values {
		snap := scrollverse.InputSnapshot{Progress: p, Size: size, Dark: !*light}
		cmds := engine.Render(snap)
		if err := surface.Begin(size, engine.ClearColor()); err != nil {
			log.Fatal(err)
		}
		if err := surface.Submit(cmds.Commands()); err != nil {
			scrollverse.Logger().Warn("capture: draw", "progress", p, "err", err)
		}
		label := fmt.Sprintf("%s_%03d", scrollverse.SelectPhase(p).Phase, int(p*1000+0.5))
		path, err := capture.Save(label, surface.RGBA())
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(row(p, cmds.Len(), path))
	}
}

func parseProgress(s string) ([]float64, error) {
	var out []float64
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("bad progress %q: %w", f, err)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no progress values")
	}
	return out, nil
}
