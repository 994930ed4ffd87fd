package evaluator

import (
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/minipar-lang/minipar/compiler/ast"
	"github.com/minipar-lang/minipar/runtime/connection"
)

// execPar runs each statement in n.Body on its own goroutine, joining all
// before returning (spec.md §4.4/§5). Each child gets its own deep-copied
// variable and function tables — so writes never become visible to the
// parent or to siblings — and a brand-new, empty connection table, matching
// the reference executor: it constructs a fresh Executor for each spawned
// thread, passing along only the copied var/function tables, so a channel
// already open in the parent is not reachable from a par child either.
//
// There is deliberately no context/cancellation: a child that blocks
// forever (e.g. an s_channel with no client) blocks the whole par block
// forever, per spec.md §5's "Cancellation and timeouts: None".
func (e *Evaluator) execPar(n *ast.Par) {
	var g errgroup.Group

	for _, stmt := range n.Body {
		stmt := stmt
		child := &Evaluator{
			vars:           e.vars.Clone(),
			funcs:          cloneFuncs(e.funcs),
			conns:          connection.New(),
			stdout:         e.stdout,
			stdin:          e.stdin,
			log:            e.log,
			channelTimeout: e.channelTimeout,
		}
		threadID := uuid.New()

		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					if rerr, ok := r.(*RuntimeError); ok {
						err = rerr
						return
					}
					err = fmt.Errorf("par thread panicked: %v", r)
				}
			}()
			child.log.Debugw("par thread started", "thread_id", threadID)
			child.execStmt(stmt)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		fail("par: %s", err)
	}
}

func cloneFuncs(funcs map[string]*ast.FuncDef) map[string]*ast.FuncDef {
	clone := make(map[string]*ast.FuncDef, len(funcs))
	for k, v := range funcs {
		clone[k] = v
	}
	return clone
}
