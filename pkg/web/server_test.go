package web

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robotalks/arm.go/pkg/l1"
	l1msgs "github.com/robotalks/arm.go/pkg/l1/msgs"
)

func TestStatusEndpoint(t *testing.T) {
	s := &Server{
		Config: NewConfig(),
		Info:   l1.ControllerInfo{Ref: l1.ControllerRef{Type: "arm", ID: "test"}},
	}

	rec := httptest.NewRecorder()
	s.Status(rec, httptest.NewRequest("GET", "/status", nil))
	require.Equal(t, 200, rec.Code)
	var reply struct {
		Name   string           `json:"name"`
		Status *l1msgs.ArmStatus `json:"status"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reply))
	assert.Equal(t, "arm/test", reply.Name)
	require.NotNil(t, reply.Status)
	assert.False(t, reply.Status.Live)

	err := s.SendEvent(context.Background(), &l1msgs.ArmStatus{
		Live: true,
		Channels: []*l1msgs.ArmChannelState{
			{Channel: 0, Name: "base", Degrees: 90, Duty: 3450, Set: true},
		},
	})
	require.NoError(t, err)

	rec = httptest.NewRecorder()
	s.Status(rec, httptest.NewRequest("GET", "/status", nil))
	require.Equal(t, 200, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reply))
	assert.True(t, reply.Status.Live)
	require.Len(t, reply.Status.Channels, 1)
	assert.Equal(t, "base", reply.Status.Channels[0].Name)
	assert.EqualValues(t, 3450, reply.Status.Channels[0].Duty)
}
