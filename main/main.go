/*Command surfarray builds binned surface arrays for the detector layers
described by a config file and reports their grid statistics. With -PlotDir
set it also writes a bin-occupancy heat map per layer.

Example config:

	surfarray -ExampleConfig

Typical run:

	surfarray -Config layers.cfg -PlotDir plots/
*/
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/trackgeom/surfarray/array"
	"github.com/trackgeom/surfarray/builder"
	surfio "github.com/trackgeom/surfarray/io"
	"github.com/trackgeom/surfarray/render"
	"github.com/trackgeom/surfarray/surface"
)

func main() {
	var (
		configPath, logPath, plotDir string
		exampleConfig                bool
	)

	flag.StringVar(&configPath, "Config", "",
		"Layer config file. Required unless -ExampleConfig is given.")
	flag.StringVar(&logPath, "Log", "",
		"Location to write log statements to. Default is stderr.")
	flag.StringVar(&plotDir, "PlotDir", "",
		"Directory to write occupancy plots to. Default is no plots.")
	flag.BoolVar(&exampleConfig, "ExampleConfig", false,
		"Print an example layer config file and exit.")

	flag.Parse()

	if exampleConfig {
		fmt.Println(surfio.ExampleLayerFile)
		return
	}
	if configPath == "" {
		log.Fatalln("A config file must be given through the -Config flag.")
	}

	if logPath != "" {
		lf, err := os.Create(logPath)
		if err != nil {
			log.Fatalln(err.Error())
		}
		defer lf.Close()
		log.SetOutput(lf)
	}

	layers, err := surfio.ReadLayerConfig(configPath)
	if err != nil {
		log.Fatalln(err.Error())
	}

	names := make([]string, 0, len(layers))
	for name := range layers {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := buildLayer(name, layers[name], plotDir); err != nil {
			log.Fatalf("Layer '%s': %v", name, err)
		}
	}
}

func buildLayer(name string, lc *surfio.LayerConfig, plotDir string) error {
	surfs, err := surfio.ReadSurfaceTable(lc.SurfaceFile)
	if err != nil {
		return err
	}
	log.Printf("Layer '%s': %d surfaces read from %s",
		name, len(surfs), lc.SurfaceFile)

	var sArray *array.SurfaceArray
	switch lc.Type {
	case "cylinder":
		sArray, err = builder.OnCylinder(surfs, lc.Radius,
			lc.MinPhi, lc.MaxPhi, lc.HalfZ, lc.BinsPhi, lc.BinsZ, nil)
	case "disc":
		sArray, err = builder.OnDisc(surfs, lc.MinR, lc.MaxR,
			lc.MinPhi, lc.MaxPhi, lc.BinsR, lc.BinsPhi, nil)
	default:
		err = builder.ErrNotSupported
	}
	if err != nil {
		return err
	}

	logSummary(name, sArray, surfs)

	if plotDir != "" {
		if err := os.MkdirAll(plotDir, 0777); err != nil {
			return err
		}
		fname := filepath.Join(plotDir, name+"_occupancy.png")
		if err := render.OccupancyPlot(sArray, surfs, name, fname); err != nil {
			return err
		}
		log.Printf("Layer '%s': occupancy plot written to %s", name, fname)
	}
	return nil
}

func logSummary(name string, sArray *array.SurfaceArray, surfs []surface.Surface) {
	util := sArray.BinUtility()
	bins := util.Bins(0) * util.Bins(1) * util.Bins(2)
	distinct := len(sArray.Surfaces())

	log.Printf("Layer '%s': %d x %d bins, %d distinct of %d input surfaces in grid",
		name, util.Bins(0), util.Bins(1), distinct, len(surfs))
	if distinct < len(surfs) {
		log.Printf("Layer '%s': %d surfaces are not referenced by any bin",
			name, len(surfs)-distinct)
	}
	if bins > len(surfs) {
		log.Printf("Layer '%s': %d bins filled by nearest-surface completion",
			name, bins-len(surfs))
	}
}
