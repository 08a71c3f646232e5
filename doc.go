// Package soundscape exposes the Ebiten audio engine inside a sparse-set
// ECS: sounds are bank assets, tracks and playing instances are components,
// and playback is requested through events drained once per tick. The
// package is glue; mixing, decoding, and the real-time audio thread all
// belong to the wrapped engine.
//
// Startup code registers the plugin explicitly:
//
//	w := ecs.NewWorld()
//	sched := ecs.NewScheduler()
//	plug, err := soundscape.Register(sched, w, soundscape.Config{
//		FS:       os.DirFS("assets"),
//		Manifest: "bank.yaml",
//	})
//
// and each game tick runs sched.Update(w). Gameplay code plays sounds by
// pushing events:
//
//	plug.Events.PlaySound(audio.PlaySoundEvent{Sound: asset.Sound()})
package soundscape
