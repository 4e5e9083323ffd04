// Package sh implements the interactive shell of the arm CLI.
// Command providers register sub-commands from their init func
// with AddCmds.
package sh

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"reflect"
	"time"

	"github.com/abiosoft/ishell"

	fx "github.com/robotalks/arm.go/pkg/framework"
	"github.com/robotalks/arm.go/pkg/l1"
	env "github.com/robotalks/arm.go/pkg/l1/env/connector"
	"github.com/robotalks/arm.go/pkg/l1/msgs"
)

// Shell wraps ishell with a connection to one arm at a time.
type Shell struct {
	Interactive bool
	OutputJSON  bool
	AutoConnect bool

	Shell   *ishell.Shell
	Config  *env.Config
	session *session
}

// session is the message loop of the current connection.
type session struct {
	ref    l1.ControllerRef
	ctx    context.Context
	cancel func()
	loop   *fx.Loop
	conn   l1.ControllerConn
}

const (
	shellKey       = "$shell"
	idlePrompt     = "(no arm) > "
	promptFormat   = "%s > "
	defaultTimeout = time.Second
)

var (
	evalOnly   bool
	outputJSON bool
	cmdTimeout = defaultTimeout

	commands = []*ishell.Cmd{
		&DiscoverCmd,
		&ConnectCmd,
		&DisconnectCmd,
	}
)

func init() {
	flag.BoolVar(&evalOnly, "e", evalOnly, "Evaluate the command line only, no interactive shell.")
	flag.BoolVar(&outputJSON, "json", outputJSON, "Print replies in JSON.")
	flag.DurationVar(&cmdTimeout, "timeout", cmdTimeout, "Time to wait for a command reply.")
}

// AddCmds registers sub-commands, usually from an init func.
func AddCmds(cmds ...*ishell.Cmd) {
	commands = append(commands, cmds...)
}

// New creates a shell with all registered sub-commands.
func New(conf *env.Config) *Shell {
	s := &Shell{
		Interactive: !evalOnly,
		OutputJSON:  outputJSON,

		Shell:  ishell.New(),
		Config: conf,
	}
	s.Shell.Set(shellKey, s)
	s.Shell.SetPrompt(idlePrompt)
	for _, cmd := range commands {
		s.Shell.AddCmd(cmd)
	}
	return s
}

// ShellFrom gets Shell from ishell context.
func ShellFrom(c *ishell.Context) *Shell {
	return c.Get(shellKey).(*Shell)
}

// MustBeConnected guards a command func which requires an arm
// connection.
func MustBeConnected(fn func(c *ishell.Context)) func(c *ishell.Context) {
	return func(c *ishell.Context) {
		if ShellFrom(c).session == nil {
			c.Err(fmt.Errorf("not connected"))
			return
		}
		fn(c)
	}
}

// DoCommand sends a command over the current connection, waits for
// the reply and prints it.
func DoCommand(c *ishell.Context, msg fx.Message) error {
	s := ShellFrom(c)
	if s.session == nil {
		err := fmt.Errorf("not connected")
		c.Err(err)
		return err
	}
	select {
	case res := <-s.session.conn.DoCommand(msg).ResultChan():
		if res.Err != nil {
			c.Err(res.Err)
			return res.Err
		}
		return s.printReply(c, res.Msg)
	case <-time.After(cmdTimeout):
		c.Err(fmt.Errorf("command timeout"))
		return context.DeadlineExceeded
	}
}

func (s *Shell) printReply(c *ishell.Context, msg fx.Message) error {
	serializable := msg.(msgs.SerializableMessage).Serializable()
	if s.OutputJSON {
		out, err := json.Marshal(serializable)
		if err != nil {
			c.Err(err)
			return err
		}
		c.Println(string(out))
		return nil
	}
	if _, ok := msg.(*msgs.CommandOK); ok {
		c.Println("OK")
		return nil
	}
	c.Printf("%s %s\n",
		reflect.Indirect(reflect.ValueOf(msg)).Type().Name(),
		serializable.String())
	return nil
}

// WithAutoConnect makes Run connect the arm named by the config
// before processing commands.
func (s *Shell) WithAutoConnect(en bool) *Shell {
	s.AutoConnect = en
	return s
}

// DiscoverControllers enumerates arms from the registry, optionally
// filtered.
func (s *Shell) DiscoverControllers(filter func(l1.ControllerInfo) bool) (l1.Connector, []l1.ControllerInfo, error) {
	connector, err := s.Config.NewConnector()
	if err != nil {
		return nil, nil, err
	}
	infoList, err := connector.Discover(context.TODO())
	if err != nil {
		return connector, nil, err
	}
	if filter == nil {
		return connector, infoList, nil
	}
	items := make([]l1.ControllerInfo, 0, len(infoList))
	for _, info := range infoList {
		if filter(info) {
			items = append(items, info)
		}
	}
	return connector, items, nil
}

// SelectController discovers arms and asks for a choice when more
// than one matches.
func (s *Shell) SelectController(filter func(l1.ControllerInfo) bool) (l1.Connector, *l1.ControllerInfo, error) {
	connector, infoList, err := s.DiscoverControllers(filter)
	if err != nil {
		return nil, nil, err
	}
	if len(infoList) == 0 {
		return connector, nil, nil
	}
	var index int
	if len(infoList) > 1 {
		if !s.Interactive {
			return nil, nil, fmt.Errorf("%d arms discovered in non-interactive mode", len(infoList))
		}
		items := make([]string, len(infoList))
		for n, info := range infoList {
			items[n] = formatInfo(info)
		}
		index = s.Shell.MultiChoice(items, "Which arm?")
	}
	return connector, &infoList[index], nil
}

func formatInfo(info l1.ControllerInfo) string {
	if info.Meta.Description == "" {
		return info.Ref.Name()
	}
	return info.Ref.Name() + ": " + info.Meta.Description
}

// Connect establishes a connection, replacing the current one.
func (s *Shell) Connect(ref l1.ControllerRef) error {
	connector, err := s.Config.NewConnector()
	if err != nil {
		return err
	}
	sess := &session{ref: ref}
	sess.ctx, sess.cancel = context.WithCancel(context.Background())
	if sess.conn, err = connector.Connect(sess.ctx, ref); err != nil {
		sess.cancel()
		return err
	}
	sess.loop = fx.NewLoop()
	if adder, ok := sess.conn.(fx.LoopAdder); ok {
		sess.loop.Add(adder)
	}
	s.Disconnect()
	s.session = sess
	go sess.loop.Run(sess.ctx)
	s.Shell.SetPrompt(fmt.Sprintf(promptFormat, ref.Name()))
	return nil
}

// Disconnect tears the current connection down.
func (s *Shell) Disconnect() {
	if s.session != nil {
		s.session.cancel()
		s.session = nil
		s.Shell.SetPrompt(idlePrompt)
	}
}

// Run processes the command line, or enters the interactive shell
// when no commands are given.
func (s *Shell) Run(args ...string) {
	if s.AutoConnect && s.Config.Ref.IsValid() {
		if s.Interactive {
			s.Shell.Printf("Connecting %s ...\n", s.Config.Ref.Name())
		}
		if err := s.Connect(s.Config.Ref); err != nil {
			log.Fatalf("connect %q failed: %v", s.Config.Ref.Name(), err)
		}
	}

	if len(args) > 0 {
		if err := s.Shell.Process(args...); err != nil {
			log.Fatalln(err)
		}
		return
	}
	if s.Interactive {
		s.Shell.Run()
		return
	}
	log.Fatalln("command expected")
}

var (
	// DiscoverCmd lists arms known to the registry.
	DiscoverCmd = ishell.Cmd{
		Name:    "discover",
		Aliases: []string{"list", "l"},
		Help:    "",
		Func: func(c *ishell.Context) {
			s := ShellFrom(c)
			_, infoList, err := s.DiscoverControllers(nil)
			if err != nil {
				c.Err(err)
				return
			}
			if s.OutputJSON {
				if infoList == nil {
					infoList = []l1.ControllerInfo{}
				}
				out, err := json.Marshal(infoList)
				if err != nil {
					c.Err(err)
					return
				}
				c.Println(string(out))
				return
			}
			if len(infoList) == 0 {
				c.Println("No arms found")
				return
			}
			for _, info := range infoList {
				c.Println(formatInfo(info))
			}
		},
	}

	// ConnectCmd connects an arm, discovering one when TYPE and ID
	// are not both given.
	ConnectCmd = ishell.Cmd{
		Name:    "connect",
		Aliases: []string{"c"},
		Help:    "TYPE ID",
		Func: func(c *ishell.Context) {
			s := ShellFrom(c)
			var ref l1.ControllerRef
			if len(c.Args) >= 2 {
				ref.Type, ref.ID = c.Args[0], c.Args[1]
			} else {
				var filter func(l1.ControllerInfo) bool
				if len(c.Args) == 1 {
					filter = func(info l1.ControllerInfo) bool {
						return info.Ref.Type == c.Args[0]
					}
				}
				_, info, err := s.SelectController(filter)
				if err != nil {
					c.Err(err)
					return
				}
				if info == nil {
					c.Err(fmt.Errorf("no arm discovered"))
					return
				}
				ref = info.Ref
			}
			if err := s.Connect(ref); err != nil {
				c.Err(err)
			}
		},
	}

	// DisconnectCmd drops the current connection.
	DisconnectCmd = ishell.Cmd{
		Name:    "disconnect",
		Aliases: []string{"d"},
		Help:    "",
		Func: func(c *ishell.Context) {
			ShellFrom(c).Disconnect()
		},
	}
)

// Main parses flags and runs the shell. It is the whole main func
// of the CLI.
func Main() {
	flag.Parse()
	New(env.NewConfig()).WithAutoConnect(true).Run(flag.Args()...)
}
