package maestro

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/arm.go/pkg/servo"
)

type fakeConn struct {
	writes [][]byte
}

func (c *fakeConn) Read(p []byte) (int, error)  { return 0, nil }
func (c *fakeConn) Write(p []byte) (int, error) { c.writes = append(c.writes, p); return len(p), nil }
func (c *fakeConn) Close() error                { return nil }

func TestTargetForDuty(t *testing.T) {
	// 16-bit counts over a 20ms period, in quarter-microseconds
	require.Equal(t, 2563, TargetForDuty(servo.CountLow))
	require.Equal(t, 9155, TargetForDuty(servo.CountHigh))
	require.Equal(t, 4211, TargetForDuty(3450))

	// wire targets are 14-bit
	require.Equal(t, 0, TargetForDuty(-100))
	require.Equal(t, maxTarget, TargetForDuty(20000))
}

func TestSetTargetEncoding(t *testing.T) {
	conn := &fakeConn{}
	d := &Driver{conn: conn}
	require.NoError(t, d.Configure(3))

	require.NoError(t, d.SetDuty(1, 3450))
	require.Equal(t, [][]byte{{cmdSetTarget, 1, 0x73, 0x20}}, conn.writes)

	require.Equal(t, servo.ErrChannelRange, d.SetDuty(3, 3450))
	require.Equal(t, servo.ErrChannelRange, d.SetDuty(-1, 3450))
}

func TestGoHome(t *testing.T) {
	conn := &fakeConn{}
	d := &Driver{conn: conn}
	require.NoError(t, d.Configure(1))
	require.NoError(t, d.GoHome())
	require.Equal(t, [][]byte{{cmdGoHome}}, conn.writes)
}

func TestConfigure(t *testing.T) {
	d := &Driver{conn: &fakeConn{}}
	require.Error(t, d.Configure(0))
	require.Error(t, d.Configure(25))
	require.NoError(t, d.Configure(24))
}
