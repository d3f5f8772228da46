package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/dashkid/character"
	"github.com/milk9111/dashkid/demo"
	"github.com/milk9111/dashkid/obj"
	"github.com/milk9111/dashkid/profiles"
)

func main() {
	profileFlag := flag.String("profile", "dash", "motion profile: builtin name (dash, platform) or a yaml path")
	demoMode := flag.Bool("demo", false, "drive the character from the attract-mode script instead of the keyboard")
	debug := flag.Bool("debug", false, "enable the debug overlay")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	var (
		prof    character.Profile
		watched string
		err     error
	)
	if _, statErr := os.Stat(*profileFlag); statErr == nil {
		prof, err = profiles.LoadFile(*profileFlag)
		watched = *profileFlag
	} else {
		prof, err = profiles.Load(*profileFlag)
	}
	if err != nil {
		log.Fatalf("profile: %v", err)
	}

	char, err := character.New(prof)
	if err != nil {
		log.Fatalf("character: %v", err)
	}

	var source Source = obj.NewInput()
	if *demoMode {
		driver, err := demo.New(demo.DefaultScript())
		if err != nil {
			log.Fatalf("demo script: %v", err)
		}
		source = driver
	}

	game := NewGame(char, source, *debug)
	if watched != "" {
		if err := game.WatchProfile(watched); err != nil {
			log.Printf("profile watch disabled: %v", err)
		}
		defer game.CloseWatcher()
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("dashkid")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
