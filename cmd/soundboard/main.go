package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/soundscape"
	"github.com/milk9111/soundscape/audio"
	"github.com/milk9111/soundscape/audio/component"
	"github.com/milk9111/soundscape/ecs"
)

const (
	baseWidth  = 640
	baseHeight = 360
)

type game struct {
	world *ecs.World
	sched *ecs.Scheduler
	plug  *soundscape.Plugin
	names []string
	last  ecs.Entity
}

func (g *game) Update() error {
	for i, name := range g.names {
		if i >= 9 {
			break
		}
		if !inpututil.IsKeyJustPressed(ebiten.KeyDigit1 + ebiten.Key(i)) {
			continue
		}
		asset, ok := g.plug.Sound(name)
		if !ok || !asset.Ready() {
			continue
		}
		target := g.world.CreateEntity()
		g.last = target
		g.plug.Events.PlaySound(audio.PlaySoundEvent{
			Sound:  asset.Sound(),
			Target: target,
		})
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) && g.last.Valid() {
		if sounds, ok := ecs.Get(g.world, g.last, component.PlayingSoundsComponent.Kind()); ok {
			for _, inst := range sounds.Sounds {
				switch inst.State() {
				case audio.PlaybackPlaying:
					inst.Pause()
				case audio.PlaybackPaused:
					inst.Resume()
				}
			}
		}
	}

	main := g.plug.Context.MainTrack()
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		main.SetVolume(main.Volume() + 0.1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		main.SetVolume(main.Volume() - 0.1)
	}

	g.sched.Update(g.world)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	var b strings.Builder
	fmt.Fprintf(&b, "soundboard    playing: %d    volume: %.1f\n\n",
		g.plug.Context.NumPlaying(), g.plug.Context.MainTrack().Volume())
	for i, name := range g.names {
		if i >= 9 {
			break
		}
		state := "loading"
		if asset, ok := g.plug.Sound(name); ok {
			state = asset.State().String()
		}
		fmt.Fprintf(&b, "  [%d] %s (%s)\n", i+1, name, state)
	}
	b.WriteString("\n  space: pause/resume last    up/down: main volume")
	ebitenutil.DebugPrint(screen, b.String())
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}

func main() {
	dir := flag.String("assets", "assets", "directory with sound files and the bank manifest")
	manifest := flag.String("manifest", "bank.yaml", "bank manifest name inside the assets directory")
	watch := flag.Bool("watch", false, "reload sounds when files change")
	debug := flag.Bool("debug", false, "log audio counters once a second")
	flag.Parse()

	world := ecs.NewWorld()
	sched := ecs.NewScheduler()

	plug, err := soundscape.Register(sched, world, soundscape.Config{
		FS:       os.DirFS(*dir),
		Manifest: *manifest,
		Debug:    *debug,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer plug.Close()

	if *watch {
		if err := plug.Bank.Watch(*dir); err != nil {
			log.Printf("soundboard: watch %s: %v", *dir, err)
		}
	}

	ebiten.SetWindowSize(baseWidth*2, baseHeight*2)
	ebiten.SetWindowTitle("soundboard")

	g := &game{world: world, sched: sched, plug: plug, names: plug.SoundNames()}
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
