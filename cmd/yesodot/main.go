package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/yarbel/yesodot/internal/analysis"
	"github.com/yarbel/yesodot/internal/atom"
	"github.com/yarbel/yesodot/internal/audio"
	"github.com/yarbel/yesodot/internal/config"
	"github.com/yarbel/yesodot/internal/elements"
	"github.com/yarbel/yesodot/internal/export"
	"github.com/yarbel/yesodot/internal/gui"
	"github.com/yarbel/yesodot/internal/hebrew"
	"github.com/yarbel/yesodot/internal/tui"
	"github.com/yarbel/yesodot/internal/viz"
)

var (
	configFile string
	preset     string
	background string
	element    string
	seed       int64
	fps        int
	speed      float64
	// list/search filters
	category string
	phase    string
	search   string
	// show
	snapshot bool
	// export
	outFile string
	// gif/svg rendering
	frames   int
	gifFPS   int
	canvasW  int
	canvasH  int
	svgScale float64
	svgClock float64
	plotSVG  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "yesodot",
		Short: "interactive Hebrew periodic table",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return tui.Run(cfg)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "layout preset to start from (see 'presets')")
	rootCmd.PersistentFlags().StringVar(&background, "background", config.DefaultBackground, "background theme")
	rootCmd.PersistentFlags().StringVar(&element, "element", "", "element to select (symbol, name, or number)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed for shell tilts (0 = different every run)")
	rootCmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frame rate")
	rootCmd.Flags().Float64Var(&speed, "speed", config.DefaultSpeed, "animation speed multiplier")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list elements",
		RunE:  listElements,
	}
	listCmd.Flags().StringVar(&category, "category", "", "filter by chemical family")
	listCmd.Flags().StringVar(&phase, "phase", "", "filter by standard-state phase")
	listCmd.Flags().StringVar(&search, "search", "", "substring filter (hebrew, english, symbol, number)")

	showCmd := &cobra.Command{
		Use:   "show [element]",
		Short: "show one element in detail",
		Args:  cobra.ExactArgs(1),
		RunE:  showElement,
	}
	showCmd.Flags().BoolVar(&snapshot, "snapshot", false, "include a braille snapshot of the atom")

	searchCmd := &cobra.Command{
		Use:   "search [term]",
		Short: "search elements by substring",
		Args:  cobra.ExactArgs(1),
		RunE:  searchElements,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [element|property]",
		Short: "plot shell occupancy for one element, or a property across the table",
		Long: "Plot an element's electrons per shell, or one of the properties\n" +
			"mass, neutrons, shells, electrons as a curve over atomic number.",
		Args: cobra.MaximumNArgs(1),
		RunE: plotElement,
	}
	plotCmd.Flags().StringVar(&plotSVG, "svg", "", "also write the curve as an svg file")

	soundCmd := &cobra.Command{
		Use:   "sound [element]",
		Short: "preview an element's chord and spectrum",
		Args:  cobra.ExactArgs(1),
		RunE:  soundElement,
	}

	gifCmd := &cobra.Command{
		Use:   "gif [element]",
		Short: "render an orbit animation to a gif",
		Args:  cobra.ExactArgs(1),
		RunE:  renderGIF,
	}
	gifCmd.Flags().IntVar(&frames, "frames", 120, "frame count")
	gifCmd.Flags().IntVar(&gifFPS, "fps", 30, "playback frame rate")
	gifCmd.Flags().IntVar(&canvasW, "width", 80, "canvas width in cells")
	gifCmd.Flags().IntVar(&canvasH, "height", 24, "canvas height in cells")
	gifCmd.Flags().StringVar(&outFile, "out", "", "output path (default atom-<symbol>.gif)")

	svgCmd := &cobra.Command{
		Use:   "svg [element]",
		Short: "render one frame to an svg",
		Args:  cobra.ExactArgs(1),
		RunE:  renderSVG,
	}
	svgCmd.Flags().IntVar(&canvasW, "width", 100, "canvas width in cells")
	svgCmd.Flags().IntVar(&canvasH, "height", 40, "canvas height in cells")
	svgCmd.Flags().Float64Var(&svgScale, "scale", 4, "dot size in svg units")
	svgCmd.Flags().Float64Var(&svgClock, "clock", 1.2, "animation clock of the captured frame")
	svgCmd.Flags().StringVar(&outFile, "out", "", "output path (default atom-<symbol>.svg)")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json",
		Short: "export the element table to JSON",
		RunE:  exportJSON,
	}
	exportCSVCmd := &cobra.Command{
		Use:   "export-csv",
		Short: "export the element table to CSV",
		RunE:  exportCSV,
	}
	exportYAMLCmd := &cobra.Command{
		Use:   "export-yaml",
		Short: "export the element table to YAML",
		RunE:  exportYAML,
	}
	for _, c := range []*cobra.Command{exportJSONCmd, exportCSVCmd, exportYAMLCmd} {
		c.Flags().StringVar(&search, "search", "", "substring filter")
		c.Flags().StringVar(&outFile, "out", "", "output path (default stdout)")
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list layout presets",
		RunE:  listPresets,
	}

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write a default config file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "yesodot.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			if err := config.Save(path, config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	}

	guiCmd := &cobra.Command{
		Use:   "gui [element]",
		Short: "open the graphical atom viewer",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if len(args) > 0 {
				cfg.Element = args[0]
			}
			gui.Run(cfg)
			return nil
		},
	}

	rootCmd.AddCommand(listCmd, showCmd, searchCmd, plotCmd, soundCmd, gifCmd,
		svgCmd, exportJSONCmd, exportCSVCmd, exportYAMLCmd, presetsCmd, initCmd,
		guiCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves the effective config: file values first, then a
// preset if asked for, then any explicitly set flags on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if preset != "" {
		p, ok := config.GetPreset(preset)
		if !ok {
			return nil, fmt.Errorf("unknown preset %q, run 'yesodot presets' for the list", preset)
		}
		cfg.Apply(p)
	}

	if cmd.Flags().Changed("background") {
		cfg.Background = background
	}
	if cmd.Flags().Changed("element") {
		cfg.Element = element
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("fps") {
		cfg.FPS = fps
	}
	if cmd.Flags().Changed("speed") {
		cfg.Speed = speed
	}
	return cfg, nil
}

func filtered() []*elements.Element {
	els := elements.Search(search)
	if category == "" && phase == "" {
		return els
	}
	out := els[:0:0]
	for _, el := range els {
		if category != "" && string(el.Category) != category {
			continue
		}
		if phase != "" && string(el.Phase) != phase {
			continue
		}
		out = append(out, el)
	}
	return out
}

func shellsString(shells []int) string {
	parts := make([]string, len(shells))
	for i, c := range shells {
		parts[i] = strconv.Itoa(c)
	}
	return strings.Join(parts, "-")
}

func writeTable(els []*elements.Element) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NUM\tSYMBOL\tNAME\tCATEGORY\tPHASE\tMASS\tSHELLS\tHEBREW")
	for _, el := range els {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			el.Number, el.Symbol, el.Name, el.Category, el.Phase,
			el.AtomicMass, shellsString(el.Shells), hebrew.Visual(el.HebrewName))
	}
	return w.Flush()
}

func listElements(cmd *cobra.Command, args []string) error {
	els := filtered()
	if len(els) == 0 {
		fmt.Println("no elements match")
		return nil
	}
	return writeTable(els)
}

func searchElements(cmd *cobra.Command, args []string) error {
	els := elements.Search(args[0])
	if len(els) == 0 {
		fmt.Printf("no elements match %q\n", args[0])
		return nil
	}
	fmt.Printf("%d elements match %q:\n\n", len(els), args[0])
	return writeTable(els)
}

func showElement(cmd *cobra.Command, args []string) error {
	el, err := elements.Find(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("%s (%s) · %s\n", el.Name, el.Symbol, hebrew.Visual(el.HebrewName))
	fmt.Printf("number:    %d\n", el.Number)
	fmt.Printf("mass:      %s\n", el.AtomicMass)
	fmt.Printf("category:  %s · %s\n", el.Category, hebrew.Visual(el.Category.HebrewLabel()))
	fmt.Printf("phase:     %s · %s\n", el.Phase, hebrew.Visual(el.Phase.HebrewLabel()))
	fmt.Printf("neutrons:  %d\n", el.Neutrons())
	fmt.Printf("electrons: %d\n", el.Electrons())

	fmt.Println("shells:")
	letters := "KLMNOPQ"
	for i, c := range el.Shells {
		letter := '?'
		if i < len(letters) {
			letter = rune(letters[i])
		}
		capacity := 2 * (i + 1) * (i + 1)
		if capacity > 32 {
			capacity = 32
		}
		fmt.Printf("  %c %s %d\n", letter, viz.ProgressBar(float64(c)/float64(capacity), 16), c)
	}

	if el.HebrewSummary != "" {
		fmt.Printf("\n%s\n", hebrew.Visual(el.HebrewSummary))
	}

	if snapshot {
		rng := tiltSource()
		a := atom.New(el, rng)
		const w, h = 64, 20
		canvas := viz.NewCanvas(w, h)
		camera := viz.NewCamera()
		camera.Fit(a.Radius())

		th := viz.GetTheme(viz.Background(background))
		if th.Stars {
			canvas.Scatter(viz.Starfield(w, h, w*h/12, rng), viz.InkStar)
		}
		viz.Render3D(canvas, viz.BuildAtomScene(a, 1.2), camera)
		fmt.Printf("\n%s\n", canvas.Render(th))
	}
	return nil
}

// plotProperty extracts one numeric property, or reports that the name is
// not a property at all.
func plotProperty(el *elements.Element, prop string) (float64, bool) {
	switch prop {
	case "mass":
		m, err := strconv.ParseFloat(strings.TrimSpace(el.AtomicMass), 64)
		if err != nil {
			return 0, false
		}
		return m, true
	case "neutrons":
		return float64(el.Neutrons()), true
	case "shells":
		return float64(len(el.Shells)), true
	case "electrons":
		return float64(el.Electrons()), true
	}
	return 0, false
}

func plotElement(cmd *cobra.Command, args []string) error {
	arg := "mass"
	if len(args) == 1 {
		arg = strings.ToLower(strings.TrimSpace(args[0]))
	}

	var data []float64
	var caption string
	var pts []export.Point

	switch arg {
	case "mass", "neutrons", "shells", "electrons":
		for _, el := range elements.All() {
			v, ok := plotProperty(el, arg)
			if !ok {
				continue
			}
			data = append(data, v)
			pts = append(pts, export.Point{X: float64(el.Number), Y: v})
		}
		caption = fmt.Sprintf("%s by atomic number", arg)
	default:
		el, err := elements.Find(args[0])
		if err != nil {
			return fmt.Errorf("%w (properties: mass, neutrons, shells, electrons)", err)
		}
		for i, c := range el.Shells {
			data = append(data, float64(c))
			pts = append(pts, export.Point{X: float64(i), Y: float64(c)})
		}
		caption = fmt.Sprintf("%s: electrons per shell, K outward", el.Symbol)
	}

	if len(data) < 2 {
		return fmt.Errorf("not enough data to plot")
	}

	fmt.Println(asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	))

	if plotSVG != "" {
		svg := export.PathSVG(pts, 640, 360, "#8be9fd")
		if err := os.WriteFile(plotSVG, []byte(svg), 0o644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", plotSVG)
	}
	return nil
}

func soundElement(cmd *cobra.Command, args []string) error {
	el, err := elements.Find(args[0])
	if err != nil {
		return err
	}

	rep := analysis.Analyze(el, audio.SampleRate)

	fmt.Printf("%s (%s) · %s\n\n", el.Name, el.Symbol, hebrew.Visual(el.HebrewName))
	fmt.Println("chord:")
	letters := "KLMNOPQ"
	for i, p := range rep.Partials {
		letter := '?'
		if i < len(letters) {
			letter = rune(letters[i])
		}
		fmt.Printf("  %c  %6.1f Hz  %-3s  gain %.2f\n",
			letter, p.Freq, analysis.NoteName(p.Freq), p.Gain)
	}
	fmt.Printf("cutoff: %.0f Hz\n", rep.Cutoff)
	fmt.Printf("peak:   %.0f Hz (%s)\n\n", rep.Peak, analysis.NoteName(rep.Peak))

	// The chord tops out under 1 kHz, so the low bins carry the picture.
	bins := int(1200 / rep.BinWidth)
	if bins > len(rep.Spectrum) {
		bins = len(rep.Spectrum)
	}
	fmt.Println(asciigraph.Plot(rep.Spectrum[:bins],
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("%s chord spectrum to 1.2 kHz", el.Symbol)),
	))
	return nil
}

func renderGIF(cmd *cobra.Command, args []string) error {
	el, err := elements.Find(args[0])
	if err != nil {
		return err
	}

	opts := export.GIFOptions{
		Width:  canvasW,
		Height: canvasH,
		Frames: frames,
		FPS:    gifFPS,
		Seed:   seed,
	}
	th := viz.GetTheme(viz.Background(background))

	g := export.AtomGIF(el, th, opts)

	path := outFile
	if path == "" {
		path = fmt.Sprintf("atom-%s.gif", el.Symbol)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := export.WriteGIF(f, g); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d frames)\n", path, len(g.Image))
	return nil
}

// tiltSource seeds the shell tilt and starfield randomness. Zero means a
// fresh pose per invocation.
func tiltSource() *rand.Rand {
	s := seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(s))
}

func renderSVG(cmd *cobra.Command, args []string) error {
	el, err := elements.Find(args[0])
	if err != nil {
		return err
	}

	rng := tiltSource()
	a := atom.New(el, rng)
	canvas := viz.NewCanvas(canvasW, canvasH)
	camera := viz.NewCamera()
	camera.Fit(a.Radius())

	th := viz.GetTheme(viz.Background(background))
	if th.Stars {
		canvas.Scatter(viz.Starfield(canvasW, canvasH, canvasW*canvasH/12, rng), viz.InkStar)
	}
	viz.Render3D(canvas, viz.BuildAtomScene(a, svgClock), camera)

	path := outFile
	if path == "" {
		path = fmt.Sprintf("atom-%s.svg", el.Symbol)
	}
	if err := os.WriteFile(path, []byte(export.CanvasSVG(canvas, th, svgScale)), 0o644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func exportWriter() (*os.File, func(), error) {
	if outFile == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(outFile)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	w, done, err := exportWriter()
	if err != nil {
		return err
	}
	defer done()
	return export.WriteJSON(w, elements.Search(search))
}

func exportCSV(cmd *cobra.Command, args []string) error {
	w, done, err := exportWriter()
	if err != nil {
		return err
	}
	defer done()
	return export.WriteCSV(w, elements.Search(search))
}

func exportYAML(cmd *cobra.Command, args []string) error {
	w, done, err := exportWriter()
	if err != nil {
		return err
	}
	defer done()
	return export.WriteYAML(w, elements.Search(search))
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tBACKGROUND\tVIEW\tPANELS\tSPEED\tDESCRIPTION")
	for _, p := range config.Presets() {
		panels := "none"
		switch {
		case p.ShowInfo && p.ShowList:
			panels = "both"
		case p.ShowInfo:
			panels = "info"
		case p.ShowList:
			panels = "list"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.1fx\t%s\n",
			p.Name, p.Background, p.ViewMode, panels, p.Speed, p.Description)
	}
	return w.Flush()
}
