package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/flowfield/audio"
	"github.com/lixenwraith/flowfield/parameter"
	"github.com/lixenwraith/flowfield/scenario"
)

var (
	scenarioFlag = flag.String("scenario", "", "TOML scenario file; empty uses an open map")
	widthFlag    = flag.Float64("width", parameter.WorldWidth, "World width in world units (no scenario)")
	heightFlag   = flag.Float64("height", parameter.WorldHeight, "World height in world units (no scenario)")
	cellFlag     = flag.Int("cell", parameter.CellSize, "Cell size in world units (no scenario)")
	debugFlag    = flag.Bool("debug", false, "Write logs to "+logDir+"/"+logFileName)
	muteFlag     = flag.Bool("mute", false, "Start with sound muted")
)

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	scn, err := loadScenario()
	if err != nil {
		fmt.Fprintf(os.Stderr, "flowview: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic Recovery: restore the terminal before printing the trace
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nFLOWVIEW CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	// Normal exit terminal cleanup
	defer screen.Fini()

	sound := audio.NewSoundManager()
	sound.SetMuted(*muteFlag)
	if err := sound.Initialize(); err != nil {
		log.Printf("audio initialization failed: %v (continuing without audio)", err)
	} else {
		defer sound.Cleanup()
	}

	NewApp(screen, scn, sound).Run()
}

func loadScenario() (*scenario.Scenario, error) {
	if *scenarioFlag == "" {
		s := scenario.Default(*widthFlag, *heightFlag, *cellFlag)
		if err := s.Validate(); err != nil {
			return nil, err
		}
		return s, nil
	}
	return scenario.Load(*scenarioFlag)
}
