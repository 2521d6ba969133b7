package main

import (
	"fmt"
	"strconv"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/roomsim/constant"
	"github.com/lixenwraith/roomsim/controller"
)

func traceCmd(opts *options) *cobra.Command {
	var camera bool

	cmd := &cobra.Command{
		Use:   "trace ROOM FX FY FZ TX TY TZ",
		Short: "March a segment through the room graph and print where it stops",
		Args:  cobra.ExactArgs(7),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := ints(args)
			if err != nil {
				return err
			}
			s, err := open(opts)
			if err != nil {
				return err
			}
			defer s.close()

			if err := checkRoom(s, v[0]); err != nil {
				return err
			}
			from := mgl32.Vec3{float32(v[1]), float32(v[2]), float32(v[3])}
			to := mgl32.Vec3{float32(v[4]), float32(v[5]), float32(v[6])}
			pos, room := controller.Trace(s.level, v[0], from, to, camera)
			fmt.Fprintf(cmd.OutOrStdout(), "pos=(%.1f, %.1f, %.1f) room=%d reached=%t\n",
				pos[0], pos[1], pos[2], room, pos == to)
			return nil
		},
	}

	cmd.Flags().BoolVar(&camera, "camera", false, "slide out of solid cells instead of stopping")
	return cmd
}

func floorCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "floor ROOM X Z",
		Short: "Print the column query for a point",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := ints(args)
			if err != nil {
				return err
			}
			s, err := open(opts)
			if err != nil {
				return err
			}
			defer s.close()

			if err := checkRoom(s, v[0]); err != nil {
				return err
			}
			info := s.level.FloorInfo(v[0], v[1], 0, v[2])
			fmt.Fprintf(cmd.OutOrStdout(), "floor=%d ceiling=%d room_floor=%d room_ceiling=%d below=%d above=%d next=%d box=%d\n",
				info.Floor, info.Ceiling, info.RoomFloor, info.RoomCeiling,
				info.RoomBelow, info.RoomAbove, info.RoomNext, info.Box)
			return nil
		},
	}
}

func overlapCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "overlap ROOM FX FZ TX TZ",
		Short: "Print the navigation box floor delta between two columns",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := ints(args)
			if err != nil {
				return err
			}
			s, err := open(opts)
			if err != nil {
				return err
			}
			defer s.close()

			if err := checkRoom(s, v[0]); err != nil {
				return err
			}
			d := s.level.OverlapDelta(v[0], v[1], 0, v[2], v[3], v[4])
			if d == constant.NoOverlap {
				fmt.Fprintln(cmd.OutOrStdout(), "no overlap")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "delta=%d\n", d)
			return nil
		},
	}
}

func checkRoom(s *session, room int) error {
	if room < 0 || room >= len(s.level.Rooms) {
		return fmt.Errorf("room %d out of range [0,%d)", room, len(s.level.Rooms))
	}
	return nil
}

func ints(args []string) ([]int, error) {
	v := make([]int, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		v[i] = n
	}
	return v, nil
}
