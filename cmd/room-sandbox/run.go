package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/roomsim/audio"
	"github.com/lixenwraith/roomsim/engine"
	"github.com/lixenwraith/roomsim/input"
	"github.com/lixenwraith/roomsim/status"
)

func runCmd(opts *options) *cobra.Command {
	var (
		mute  bool
		chain int
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the level interactively in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := open(opts)
			if err != nil {
				return err
			}
			defer s.close()
			if mute {
				s.cfg.Audio.Enabled = false
			}
			return run(s, chain)
		},
	}

	cmd.Flags().BoolVar(&mute, "mute", false, "disable audio output")
	cmd.Flags().IntVar(&chain, "chain", 0, "trigger chain fired by the action key")
	return cmd
}

func run(s *session, chain int) error {
	stats := status.NewRegistry()

	player := audio.NewPlayer(s.cfg.Audio, &s.level.Sounds, s.log, stats, s.cfg.Sim.Seed)
	if err := player.Initialize(); err != nil {
		s.log.WithError(err).Warn("audio unavailable, continuing muted")
	}
	defer player.Cleanup()

	scene := engine.NewScene(s.level, engine.Options{
		Log:      s.log,
		Sound:    player,
		Listener: player,
		Stats:    stats,
		Seed:     s.cfg.Sim.Seed,
		Track:    s.cfg.Sim.Track,
		Camera:   s.cfg.Camera,
	})

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	go screen.ChannelEvents(events, quit)

	interval := time.Second / time.Duration(s.cfg.Sim.TickRate)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	dt := float32(interval.Seconds())

	machine := input.NewMachine()
	v := newView(screen, s.level)

	s.log.WithFields(logrus.Fields{
		"tick_rate": s.cfg.Sim.TickRate,
		"track":     s.cfg.Sim.Track,
	}).Info("sandbox running")

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if _, resized := ev.(*tcell.EventResize); resized {
				screen.Sync()
			}
			machine.Process(ev)

		case <-ticker.C:
			in := machine.Poll()
			if in.Held(input.ButtonQuit) {
				s.log.WithField("tick", scene.Tick()).Info("sandbox stopped")
				return nil
			}
			if in.Held(input.ButtonAction) && !fire(scene, s.cfg.Sim.Track, chain) {
				s.log.WithField("chain", chain).Debug("trigger chain not started")
			}
			scene.ApplyInput(in)
			scene.Update(dt)
			v.draw(scene, stats, in.Held(input.ButtonPause))
		}
	}
}
