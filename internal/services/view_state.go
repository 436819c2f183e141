package services

import (
	"context"
	"sync"

	"prlinks/internal/domain"
	"prlinks/internal/logging"
)

// Phase is the state of the fetch cycle
type Phase string

const (
	PhaseIdle      Phase = "idle"
	PhaseLoading   Phase = "loading"
	PhaseWithData  Phase = "idle-with-data"
	PhaseWithError Phase = "idle-with-error"
)

// Snapshot is an immutable copy of the view state
type Snapshot struct {
	Err         error
	LastRequest domain.RequestDescriptor
	Loading     bool
	Mode        domain.ViewMode
	Params      domain.QueryParameters
	Phase       Phase
	Results     domain.ResultSet
	Version     uint64
}

// View maps the snapshot's results to its view mode
func (s Snapshot) View() domain.ViewModel {
	return domain.Present(s.Results, s.Mode)
}

// ViewState owns the query parameters, view mode, loading flag and result
// set. It changes only through its transition methods and publishes a
// Snapshot to subscribers after each one.
type ViewState struct {
	mu          sync.Mutex
	nextSubID   int
	state       Snapshot
	subscribers map[int]func(Snapshot)
}

// NewViewState creates a controller in the Idle phase
func NewViewState(params domain.QueryParameters, mode domain.ViewMode) *ViewState {
	if mode == "" {
		mode = domain.ViewModeList
	}
	return &ViewState{
		state: Snapshot{
			Mode:    mode,
			Params:  params,
			Phase:   PhaseIdle,
			Results: domain.ResultSet{},
		},
		subscribers: make(map[int]func(Snapshot)),
	}
}

// Snapshot returns the current state
func (v *ViewState) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.copyLocked()
}

// Subscribe registers fn to receive every published snapshot.
// The returned function removes the subscription.
func (v *ViewState) Subscribe(fn func(Snapshot)) func() {
	v.mu.Lock()
	id := v.nextSubID
	v.nextSubID++
	v.subscribers[id] = fn
	v.mu.Unlock()

	return func() {
		v.mu.Lock()
		delete(v.subscribers, id)
		v.mu.Unlock()
	}
}

// SetParams replaces the query parameters. Allowed while loading; it does
// not affect the fetch in flight.
func (v *ViewState) SetParams(params domain.QueryParameters) {
	v.transition(func(s *Snapshot) bool {
		s.Params = params
		return true
	})
}

// SetViewMode selects the render mode
func (v *ViewState) SetViewMode(mode domain.ViewMode) {
	v.transition(func(s *Snapshot) bool {
		if s.Mode == mode {
			return false
		}
		s.Mode = mode
		return true
	})
}

// ToggleViewMode switches between list and links
func (v *ViewState) ToggleViewMode() domain.ViewMode {
	var mode domain.ViewMode
	v.transition(func(s *Snapshot) bool {
		s.Mode = s.Mode.Toggle()
		mode = s.Mode
		return true
	})
	return mode
}

// BeginFetch moves Idle → Loading and returns the request to run.
// ok is false when a fetch is already loading or params are invalid; in the
// latter case the ValidationError is returned and the state moves to
// Idle-with-error without ever entering Loading.
func (v *ViewState) BeginFetch() (domain.RequestDescriptor, bool, error) {
	var (
		req    domain.RequestDescriptor
		ok     bool
		reqErr error
	)

	v.transition(func(s *Snapshot) bool {
		if s.Loading {
			logging.Logger.Debug("Fetch trigger ignored, already loading")
			return false
		}

		built, err := domain.BuildRequest(s.Params)
		if err != nil {
			reqErr = err
			s.Err = err
			s.Phase = PhaseWithError
			s.Results = domain.ResultSet{}
			return true
		}

		req = built
		ok = true
		s.Err = nil
		s.LastRequest = built
		s.Loading = true
		s.Phase = PhaseLoading
		return true
	})

	return req, ok, reqErr
}

// CompleteFetch moves Loading → Idle-with-data. Ignored when not loading.
func (v *ViewState) CompleteFetch(results domain.ResultSet) bool {
	var applied bool
	v.transition(func(s *Snapshot) bool {
		if !s.Loading {
			return false
		}
		applied = true
		s.Err = nil
		s.Loading = false
		s.Phase = PhaseWithData
		s.Results = results.Clone()
		return true
	})
	return applied
}

// FailFetch moves Loading → Idle-with-error and empties the result set.
// Ignored when not loading.
func (v *ViewState) FailFetch(err error) bool {
	var applied bool
	v.transition(func(s *Snapshot) bool {
		if !s.Loading {
			return false
		}
		applied = true
		s.Err = err
		s.Loading = false
		s.Phase = PhaseWithError
		s.Results = domain.ResultSet{}
		return true
	})
	return applied
}

// ClearError drops the recorded error without touching results
func (v *ViewState) ClearError() {
	v.transition(func(s *Snapshot) bool {
		if s.Err == nil {
			return false
		}
		s.Err = nil
		if s.Phase == PhaseWithError {
			s.Phase = PhaseIdle
		}
		return true
	})
}

// Refresh runs a whole fetch cycle synchronously through svc.
// Returns false without calling svc when a fetch is already loading.
func (v *ViewState) Refresh(ctx context.Context, svc *PullRequestService) (bool, error) {
	req, ok, err := v.BeginFetch()
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	results, err := svc.Fetch(ctx, req)
	if err != nil {
		v.FailFetch(err)
		return true, err
	}
	v.CompleteFetch(results)
	return true, nil
}

func (v *ViewState) transition(apply func(s *Snapshot) bool) {
	v.mu.Lock()
	if !apply(&v.state) {
		v.mu.Unlock()
		return
	}
	v.state.Version++
	snap := v.copyLocked()
	subs := make([]func(Snapshot), 0, len(v.subscribers))
	for _, fn := range v.subscribers {
		subs = append(subs, fn)
	}
	v.mu.Unlock()

	logging.Logger.Debug("View state changed",
		"phase", snap.Phase,
		"mode", snap.Mode,
		"count", snap.Results.Len(),
		"version", snap.Version)

	for _, fn := range subs {
		fn(snap)
	}
}

func (v *ViewState) copyLocked() Snapshot {
	snap := v.state
	snap.Results = v.state.Results.Clone()
	return snap
}
