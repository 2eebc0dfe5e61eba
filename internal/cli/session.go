package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BrandonKowalski/outlet/pkg/outlet/dom"
	"github.com/BrandonKowalski/outlet/pkg/outlet/history"
	"github.com/BrandonKowalski/outlet/pkg/outlet/manifest"
	"github.com/BrandonKowalski/outlet/pkg/outlet/router"
)

type stepKind string

const (
	stepPush    stepKind = "push"
	stepBack    stepKind = "back"
	stepForward stepKind = "forward"
	stepGo      stepKind = "go"
)

// step is one parsed replay argument.
type step struct {
	Kind     stepKind `json:"kind"`
	Pathname string   `json:"pathname,omitempty"`
	Outlet   bool     `json:"outlet,omitempty"`
	Delta    int      `json:"delta,omitempty"`
}

// parseStep parses push:/path, push:/path:outlet, back, forward and go:N.
func parseStep(raw string) (step, error) {
	parts := strings.Split(raw, ":")

	switch stepKind(parts[0]) {
	case stepPush:
		if len(parts) < 2 || parts[1] == "" {
			return step{}, fmt.Errorf("step %q: push needs a pathname", raw)
		}
		s := step{Kind: stepPush, Pathname: parts[1]}
		if len(parts) == 3 {
			if parts[2] != "outlet" {
				return step{}, fmt.Errorf("step %q: unknown push option %q", raw, parts[2])
			}
			s.Outlet = true
		} else if len(parts) > 3 {
			return step{}, fmt.Errorf("step %q: too many fields", raw)
		}
		return s, nil
	case stepBack, stepForward:
		if len(parts) != 1 {
			return step{}, fmt.Errorf("step %q: %s takes no arguments", raw, parts[0])
		}
		return step{Kind: stepKind(parts[0])}, nil
	case stepGo:
		if len(parts) != 2 {
			return step{}, fmt.Errorf("step %q: go needs a delta", raw)
		}
		delta, err := strconv.Atoi(parts[1])
		if err != nil {
			return step{}, fmt.Errorf("step %q: invalid delta: %w", raw, err)
		}
		return step{Kind: stepGo, Delta: delta}, nil
	default:
		return step{}, fmt.Errorf("step %q: unknown step", raw)
	}
}

// stepResult is what one step did to the document.
type stepResult struct {
	Step      step   `json:"step"`
	Pathname  string `json:"pathname"`
	Container string `json:"container,omitempty"`
	Cleared   bool   `json:"cleared"`
	Moved     bool   `json:"moved"`
	HTML      string `json:"html"`
	Error     string `json:"error,omitempty"`
}

// session wires a router to an in-memory document and history.
type session struct {
	doc    *dom.Document
	hist   *history.Memory
	router *router.Router
	popErr error
}

func newSession(m *manifest.Manifest) (*session, error) {
	s := &session{hist: history.NewMemory("/")}

	root := dom.NewElement("div", m.Root)
	s.doc = dom.NewDocument(root)

	r, err := router.New(root, m.RouteTree(),
		router.WithHistory(s.hist),
		router.WithDocument(s.doc),
		router.WithRenderer(dom.Renderer{}),
		router.WithPopErrorHandler(func(_ string, err error) { s.popErr = err }),
	)
	if err != nil {
		return nil, err
	}
	s.router = r
	return s, nil
}

// run executes a step. Navigation failures are reported in the result;
// the returned error is only set when the step itself failed.
func (s *session) run(st step) (stepResult, error) {
	before := s.router.Mounts()
	s.popErr = nil

	res := stepResult{Step: st, Moved: true}
	var err error

	switch st.Kind {
	case stepPush:
		err = s.router.Push(st.Pathname, router.PushOptions{Outlet: st.Outlet})
	case stepBack:
		res.Moved = s.hist.Back()
	case stepForward:
		res.Moved = s.hist.Forward()
	case stepGo:
		res.Moved = s.hist.Go(st.Delta)
	}
	if err == nil {
		err = s.popErr
	}

	res.Pathname = s.hist.Pathname()
	if m, ok := s.router.LastMount(); ok && m.Seq > before {
		res.Container = m.Container
		res.Cleared = m.Cleared
	}
	res.HTML = s.doc.HTML()
	if err != nil {
		res.Error = err.Error()
	}
	return res, err
}
