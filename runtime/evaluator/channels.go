package evaluator

import (
	"fmt"
	"net"
	"time"

	"github.com/minipar-lang/minipar/compiler/ast"
	"github.com/minipar-lang/minipar/runtime/connection"
	"github.com/minipar-lang/minipar/runtime/value"
)

// portOf converts a NUMBER value to the integer TCP port it names.
func portOf(v value.Value) int64 {
	switch v.Kind {
	case value.KindInt:
		return v.I
	case value.KindFloat:
		return int64(v.F)
	default:
		fail("port must be NUMBER, found %s", v.TypeName())
		return 0
	}
}

// execCChannel opens a client connection, reads its up-to-2040-byte
// greeting, and registers the socket under name (spec.md §4.4/§6).
func (e *Evaluator) execCChannel(n *ast.CChannel) {
	host := e.evalExpr(n.Host).String()
	port := portOf(e.evalExpr(n.Port))
	addr := fmt.Sprintf("%s:%d", host, port)

	var conn net.Conn
	var err error
	if e.channelTimeout > 0 {
		conn, err = net.DialTimeout("tcp", addr, e.channelTimeout)
	} else {
		conn, err = net.Dial("tcp", addr)
	}
	if err != nil {
		fail("c_channel %q: could not connect: %s", n.Name, err)
	}

	buf := make([]byte, 2040)
	read, err := conn.Read(buf)
	if err != nil && read == 0 {
		fail("c_channel %q: could not read greeting: %s", n.Name, err)
	}
	fmt.Fprintln(e.stdout, string(buf[:read]))

	e.conns.Open(n.Name, connection.RoleClient, conn)
}

// execSChannel binds a listening socket, accepts exactly one connection,
// sends the description greeting, then loops: recv up to 2048 bytes, run
// the bound function on the decoded text, send its textual result back. An
// empty read closes the connection and ends the loop (spec.md §4.4/§6).
//
// Go's net package does not expose the listen backlog directly the way a
// raw socket() / listen(fd, 10) call does; since only the first accepted
// connection is ever used (the listener is closed right after), the
// observable behavior — exactly one client served — matches the spec
// regardless of the OS's default backlog.
func (e *Evaluator) execSChannel(n *ast.SChannel) {
	fn, ok := e.funcs[n.FuncName]
	if !ok {
		fail("s_channel %q: function %q not defined", n.Name, n.FuncName)
	}

	host := e.evalExpr(n.Host).String()
	port := portOf(e.evalExpr(n.Port))

	ln, err := net.Listen("tcp", fmt.Sprintf("%s:%d", host, port))
	if err != nil {
		fail("s_channel %q: could not listen: %s", n.Name, err)
	}
	if e.channelTimeout > 0 {
		if tl, ok := ln.(*net.TCPListener); ok {
			tl.SetDeadline(time.Now().Add(e.channelTimeout))
		}
	}
	conn, err := ln.Accept()
	ln.Close()
	if err != nil {
		fail("s_channel %q: could not accept: %s", n.Name, err)
	}

	e.conns.Open(n.Name, connection.RoleServer, conn)

	description := e.evalExpr(n.Description)
	if !description.IsNone() {
		if _, err := conn.Write([]byte(description.String())); err != nil {
			fail("s_channel %q: could not send greeting: %s", n.Name, err)
		}
	}

	buf := make([]byte, 2048)
	for {
		read, err := conn.Read(buf)
		if err != nil || read == 0 {
			e.conns.Close(n.Name)
			return
		}
		result := e.callUserFuncWithValues(fn, []value.Value{value.Str(string(buf[:read]))})
		if _, err := conn.Write([]byte(result.String())); err != nil {
			e.conns.Close(n.Name)
			return
		}
	}
}

// callSend implements the `conn.send(data)` builtin: one write followed by
// one up-to-2048-byte read, returning the decoded response.
func (e *Evaluator) callSend(n *ast.Call) value.Value {
	connName := n.Token.Value
	entry, ok := e.conns.Get(connName)
	if !ok {
		fail("send: channel %q is not open", connName)
	}
	if len(n.Args) != 1 {
		fail("send: expected exactly one argument")
	}
	data := e.evalExpr(n.Args[0])

	if _, err := entry.Conn.Write([]byte(data.String())); err != nil {
		fail("send on %q: write failed: %s", connName, err)
	}
	buf := make([]byte, 2048)
	read, err := entry.Conn.Read(buf)
	if err != nil && read == 0 {
		fail("send on %q: read failed: %s", connName, err)
	}
	return value.Str(string(buf[:read]))
}

// callClose implements the `conn.close()` builtin.
func (e *Evaluator) callClose(n *ast.Call) value.Value {
	connName := n.Token.Value
	if err := e.conns.Close(connName); err != nil {
		fail("close: %s", err)
	}
	return value.None()
}
