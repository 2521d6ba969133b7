package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/roomsim/engine"
	"github.com/lixenwraith/roomsim/snapshot"
	"github.com/lixenwraith/roomsim/status"
)

func recordCmd(opts *options) *cobra.Command {
	var (
		ticks int
		from  string
		out   string
		chain int
	)

	cmd := &cobra.Command{
		Use:   "record",
		Short: "Run the level headless and write a snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := open(opts)
			if err != nil {
				return err
			}
			defer s.close()

			stats := status.NewRegistry()
			scene := engine.NewScene(s.level, engine.Options{
				Log:    s.log,
				Stats:  stats,
				Seed:   s.cfg.Sim.Seed,
				Track:  s.cfg.Sim.Track,
				Camera: s.cfg.Camera,
			})

			if from != "" {
				data, err := os.ReadFile(from)
				if err != nil {
					return fmt.Errorf("reading snapshot: %w", err)
				}
				f, err := snapshot.Decode(data)
				if err != nil {
					return err
				}
				if err := snapshot.Restore(scene, f); err != nil {
					return err
				}
			} else if chain >= 0 {
				fire(scene, s.cfg.Sim.Track, chain)
			}

			dt := 1 / float32(s.cfg.Sim.TickRate)
			for i := 0; i < ticks; i++ {
				scene.Update(dt)
			}

			data, err := snapshot.Encode(snapshot.Capture(scene))
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("writing snapshot: %w", err)
			}

			s.log.WithFields(logrus.Fields{
				"ticks": ticks,
				"bytes": len(data),
				"path":  out,
			}).Info("snapshot written")
			for _, line := range stats.Lines() {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&ticks, "ticks", "n", 300, "ticks to simulate")
	cmd.Flags().StringVar(&from, "from", "", "resume from this snapshot instead of the level start")
	cmd.Flags().StringVarP(&out, "out", "o", "snapshot.msgpack", "snapshot destination")
	cmd.Flags().IntVar(&chain, "chain", 0, "trigger chain fired by the tracked entity at start, negative for none")
	return cmd
}

// fire activates chain on the tracked entity's controller
func fire(scene *engine.Scene, track, chain int) bool {
	if chain < 0 || chain >= len(scene.Level.Chains) || track < 0 {
		return false
	}
	c := scene.Controller(track)
	if c == nil {
		return false
	}
	return c.Activate(scene.Level.Chains[chain])
}
