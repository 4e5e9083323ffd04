package arm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/arm.go/pkg/l1"
	env "github.com/robotalks/arm.go/pkg/l1/env/controller"
	"github.com/robotalks/arm.go/pkg/sim/visualization/see"
)

func testEnv() *env.Env {
	return &env.Env{Config: &env.Config{
		Info: l1.ControllerInfo{Ref: l1.ControllerRef{Type: "sim-arm", ID: "test"}},
	}}
}

func TestSegments(t *testing.T) {
	conf := Config{Channels: "base,elbow", SegmentLen: 100, HomeDegrees: 90}
	ctl, err := conf.NewController(testEnv())
	require.NoError(t, err)
	require.NoError(t, ctl.Arm.Rig.Home(90, time.Time{}))

	segs := ctl.Segments()
	require.Len(t, segs, 2)
	// home is straight up
	require.InDelta(t, 90, segs[0].Degrees, 1e-9)
	require.InDelta(t, 0, segs[1].From.X, 1e-9)
	require.InDelta(t, 100, segs[1].From.Y, 1e-9)
	require.InDelta(t, 90, segs[1].Degrees, 1e-9)

	// bend the elbow to the left
	require.NoError(t, ctl.Arm.Rig.Move(1, 180, time.Time{}))
	segs = ctl.Segments()
	require.InDelta(t, 90, segs[0].Degrees, 1e-9)
	require.InDelta(t, 180, segs[1].Degrees, 1e-9)
}

func TestMapObject(t *testing.T) {
	conf := Config{Channels: "base,elbow,grip", SegmentLen: 100}
	ctl, err := conf.NewController(testEnv())
	require.NoError(t, err)

	objs := MapObject(ctl)
	require.Len(t, objs, 5)
	require.Equal(t, "arm", objs[0][see.PropType])
	require.Equal(t, "sim-arm.test.seg0", objs[1][see.PropID])
	require.Equal(t, "grip", objs[4][see.PropType])
}
