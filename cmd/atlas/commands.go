package main

import (
	"flag"
	"fmt"
	"strings"

	"atlas-engine/internal/engineconfig"
	"atlas-engine/internal/logger"
	"atlas-engine/internal/render"
	"atlas-engine/internal/scene"
)

// registerCommands wires the "cmd ..." terminal subcommands: overlay toggles,
// scene save/load, PNG snapshots, gameplay mode, script execution.
func registerCommands(a *app) {
	reg := a.reg

	gridFs := flag.NewFlagSet("grid", flag.ContinueOnError)
	gridVisible := gridFs.Bool("visible", true, "show the ground grid and axes")
	reg.Register("grid", gridFs, func() error {
		a.rend.GridVisible = *gridVisible
		a.prefs.GridVisible = *gridVisible
		return engineconfig.Save(a.prefs)
	})

	fpsFs := flag.NewFlagSet("fps", flag.ContinueOnError)
	fpsShow := fpsFs.Bool("show", true, "show the FPS counter")
	reg.Register("fps", fpsFs, func() error {
		a.dbg.SetShowFPS(*fpsShow)
		a.prefs.ShowFPS = *fpsShow
		return engineconfig.Save(a.prefs)
	})

	memFs := flag.NewFlagSet("mem", flag.ContinueOnError)
	memShow := memFs.Bool("show", true, "show heap allocation")
	reg.Register("mem", memFs, func() error {
		a.dbg.SetShowMemAlloc(*memShow)
		a.prefs.ShowMemAlloc = *memShow
		return engineconfig.Save(a.prefs)
	})

	statsFs := flag.NewFlagSet("stats", flag.ContinueOnError)
	statsShow := statsFs.Bool("show", true, "show scene stats")
	reg.Register("stats", statsFs, func() error {
		a.dbg.ShowScene = *statsShow
		return nil
	})

	saveFs := flag.NewFlagSet("save", flag.ContinueOnError)
	saveFile := saveFs.String("file", "scene.yaml", "scene file to write")
	reg.Register("save", saveFs, func() error {
		if err := a.scn.Save(*saveFile); err != nil {
			return err
		}
		a.log.Log(logger.LevelSuccess, "Scene saved to "+*saveFile)
		return nil
	})

	loadFs := flag.NewFlagSet("load", flag.ContinueOnError)
	loadFile := loadFs.String("file", "scene.yaml", "scene file to read")
	reg.Register("load", loadFs, func() error {
		if err := a.scn.Load(*loadFile); err != nil {
			return err
		}
		a.log.Log(logger.LevelSuccess, fmt.Sprintf("Scene loaded: %d shapes", a.scn.Len()))
		return nil
	})

	snapFs := flag.NewFlagSet("snapshot", flag.ContinueOnError)
	snapFile := snapFs.String("file", "snapshot.png", "PNG file to write")
	snapW := snapFs.Int("w", 800, "snapshot width")
	snapH := snapFs.Int("h", 600, "snapshot height")
	reg.Register("snapshot", snapFs, func() error {
		soft, err := render.NewSoftCanvas(*snapW, *snapH)
		if err != nil {
			return err
		}
		a.rend.Draw(soft, a.scn)
		if err := soft.SavePNG(*snapFile); err != nil {
			return err
		}
		a.log.Log(logger.LevelSuccess, "Snapshot written to "+*snapFile)
		return nil
	})

	modeFs := flag.NewFlagSet("mode", flag.ContinueOnError)
	modeSet := modeFs.String("set", "", "gameplay mode: shooter, explorer, builder, rpg, puzzle, racing, survival, sandbox")
	reg.Register("mode", modeFs, func() error {
		if *modeSet == "" {
			a.log.Info("Gameplay mode: " + string(a.scn.Gameplay))
			return nil
		}
		switch m := scene.GameplayMode(*modeSet); m {
		case scene.GameplayShooter, scene.GameplayExplorer, scene.GameplayBuilder,
			scene.GameplayRPG, scene.GameplayPuzzle, scene.GameplayRacing,
			scene.GameplaySurvival, scene.GameplaySandbox:
			a.scn.Gameplay = m
			a.log.Info("Gameplay mode set to " + *modeSet)
			return nil
		default:
			return fmt.Errorf("unknown gameplay mode: %s", *modeSet)
		}
	})

	runFs := flag.NewFlagSet("run", flag.ContinueOnError)
	runFile := runFs.String("file", "", "script file to run (.tcc)")
	reg.Register("run", runFs, func() error {
		if *runFile == "" {
			return fmt.Errorf("missing -file")
		}
		return a.interp.RunFile(*runFile)
	})

	clearFs := flag.NewFlagSet("clear", flag.ContinueOnError)
	reg.Register("clear", clearFs, func() error {
		a.scn.Clear()
		a.log.Info("Scene cleared")
		return nil
	})

	physFs := flag.NewFlagSet("physics", flag.ContinueOnError)
	physOn := physFs.Bool("on", true, "run the physics step")
	reg.Register("physics", physFs, func() error {
		a.scn.PhysicsEnabled = *physOn
		return nil
	})

	helpFs := flag.NewFlagSet("help", flag.ContinueOnError)
	reg.Register("help", helpFs, func() error {
		a.log.Info("Commands: cmd " + strings.Join(reg.Names(), ", cmd "))
		return nil
	})
}
