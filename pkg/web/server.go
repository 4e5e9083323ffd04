// Package web hosts the status dashboard of an arm controller and a
// websocket endpoint carrying the L1 pipe protocol.
package web

import (
	"context"
	"encoding/json"
	"html/template"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/golang/glog"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	xws "golang.org/x/net/websocket"

	fx "github.com/robotalks/arm.go/pkg/framework"
	"github.com/robotalks/arm.go/pkg/l1"
	"github.com/robotalks/arm.go/pkg/l1/comm"
	l1ws "github.com/robotalks/arm.go/pkg/l1/comm/websocket"
	env "github.com/robotalks/arm.go/pkg/l1/env/controller"
	l1msgs "github.com/robotalks/arm.go/pkg/l1/msgs"
)

// DefaultPushInterval is the default period of websocket status pushes.
const DefaultPushInterval = time.Second

// Server is the status dashboard. It implements l1.Registrar to
// observe status events from the controller, and serves the L1 pipe
// protocol over /l1 when Pipes is set.
type Server struct {
	Config *Config
	Info   l1.ControllerInfo
	Pipes  *comm.PipeRegistrar

	ctx        context.Context
	wsUpgrader websocket.Upgrader

	lock   sync.RWMutex
	status *l1msgs.ArmStatus
}

// NewServer creates the server and registers it with the env so the
// controller's status events reach the dashboard.
func (c *Config) NewServer(e *env.Env) *Server {
	s := &Server{
		Config: c,
		Info:   e.Config.Info,
		Pipes:  e.Pipes,
	}
	e.Registrar.Add(s)
	return s
}

// SendEvent implements Registrar.
func (s *Server) SendEvent(ctx context.Context, msg fx.Message) error {
	if status, ok := msg.(*l1msgs.ArmStatus); ok {
		s.lock.Lock()
		s.status = status
		s.lock.Unlock()
	}
	return nil
}

// AddToLoop implements LoopAdder.
func (s *Server) AddToLoop(loop *fx.Loop) {
	loop.AddRunnable(s)
}

// Run implements Runnable.
func (s *Server) Run(ctx context.Context) error {
	s.ctx = ctx
	router := mux.NewRouter()
	if s.Pipes != nil {
		router.Handle("/l1", xws.Handler(s.servePipe))
	}
	router.HandleFunc("/status", s.Status).Methods("GET", "HEAD")
	router.HandleFunc("/websocket", s.Websocket).Methods("GET", "HEAD")
	if s.Config.StaticDir != "" {
		router.PathPrefix("/static/").Handler(
			http.StripPrefix("/static/", http.FileServer(http.Dir(s.Config.StaticDir))))
	}
	router.HandleFunc("/", s.Home).Methods("GET", "HEAD")

	ln, err := net.Listen("tcp", s.Config.ListenAddr)
	if err != nil {
		return err
	}
	glog.Infof("web listening on %s", ln.Addr())
	httpServer := &http.Server{Handler: router}
	return fx.RunWithContextCloser(ctx, ln, func() error {
		return httpServer.Serve(ln)
	})
}

func (s *Server) servePipe(ws *xws.Conn) {
	s.Pipes.ServePipe(s.ctx, l1ws.New(ws))
}

func (s *Server) snapshot() *l1msgs.ArmStatus {
	s.lock.RLock()
	defer s.lock.RUnlock()
	if s.status == nil {
		return &l1msgs.ArmStatus{}
	}
	return s.status
}

// Status serves the latest status as JSON.
func (s *Server) Status(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"name":   s.Info.Ref.Name(),
		"status": s.snapshot(),
	})
}

// Websocket pushes the status as JSON periodically. The period is
// overridden with ?poll=500ms.
func (s *Server) Websocket(w http.ResponseWriter, r *http.Request) {
	interval := DefaultPushInterval
	if v, ok := r.URL.Query()["poll"]; ok {
		if d, err := time.ParseDuration(v[0]); err == nil {
			interval = d
		}
	}
	conn, err := s.wsUpgrader.Upgrade(w, r, nil)
	if err != nil {
		glog.Warningf("websocket upgrade error: %v", err)
		return
	}
	go func() {
		defer conn.Close()
		for {
			if err := conn.WriteJSON(s.snapshot()); err != nil {
				return
			}
			select {
			case <-time.After(interval):
			case <-s.ctx.Done():
				return
			}
		}
	}()
}

// Home serves the built-in status page.
func (s *Server) Home(w http.ResponseWriter, r *http.Request) {
	if err := homeTemplate.Execute(w, map[string]interface{}{
		"Name": s.Info.Ref.Name(),
	}); err != nil {
		glog.Warningf("render home error: %v", err)
	}
}

var homeTemplate = template.Must(template.New("home").Parse(`<!DOCTYPE html>
<html>
<head><title>{{.Name}}</title></head>
<body>
<h1>{{.Name}}</h1>
<p>link <span id="live">-</span></p>
<table border="1" cellpadding="4">
<thead><tr><th>channel</th><th>name</th><th>degrees</th><th>duty</th></tr></thead>
<tbody id="channels"></tbody>
</table>
<script>
var ws = new WebSocket((location.protocol == "https:" ? "wss://" : "ws://") + location.host + "/websocket");
ws.onmessage = function (ev) {
	var st = JSON.parse(ev.data);
	document.getElementById("live").textContent = st.live ? "live" : "down";
	var rows = "";
	(st.channels || []).forEach(function (ch) {
		rows += "<tr><td>" + (ch.channel || 0) + "</td><td>" + (ch.name || "") +
			"</td><td>" + (ch.set ? (ch.degrees || 0) : "-") +
			"</td><td>" + (ch.set ? (ch.duty || 0) : "-") + "</td></tr>";
	});
	document.getElementById("channels").innerHTML = rows;
};
</script>
</body>
</html>
`))
