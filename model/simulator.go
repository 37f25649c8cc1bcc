package model

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"bitrpc/reference"
)

// SimulatorMode selects between single and batch RPC simulation.
type SimulatorMode int

const (
	ModeSingle SimulatorMode = iota
	ModeBatch
)

func (m SimulatorMode) String() string {
	if m == ModeBatch {
		return "batch"
	}
	return "single"
}

// DefaultMethod is preselected on the single-request form.
const DefaultMethod = "getblockchaininfo"

// SimulatorState holds the RPC simulator screen. Response is empty until a
// simulation finishes.
type SimulatorState struct {
	Mode     SimulatorMode
	Method   string
	Params   string
	Batch    *BatchList
	Response string
	Pending  bool

	assistant Assistant
}

func NewSimulatorState(assistant Assistant) *SimulatorState {
	return &SimulatorState{
		Mode:   ModeSingle,
		Method: DefaultMethod,
		Batch: NewBatchList(
			[2]string{"getblockhash", "0"},
			[2]string{"getblock", reference.GenesisBlockHash},
		),
		assistant: assistant,
	}
}

// SetMode switches between single and batch simulation and clears the response.
func (s *SimulatorState) SetMode(mode SimulatorMode) {
	s.Mode = mode
	s.Response = ""
}

// SelectMethod applies a method picked from the catalog. In single mode it
// becomes the current method; in batch mode it is appended as a new command.
func (s *SimulatorState) SelectMethod(name string) {
	if s.Mode == ModeSingle {
		s.Method = name
		s.Response = ""
		return
	}
	s.Batch.Append(name, "")
}

// MethodDescription returns the catalog description of the current method.
func (s *SimulatorState) MethodDescription() string {
	m, ok := reference.FindMethod(s.Method)
	if !ok {
		return ""
	}
	return m.Description
}

// CanSubmit reports whether Submit would issue a request.
func (s *SimulatorState) CanSubmit() bool {
	if s.Pending {
		return false
	}
	if s.Mode == ModeSingle {
		return strings.TrimSpace(s.Method) != ""
	}
	return len(s.Batch.Valid()) > 0
}

// Submit starts a simulation in the current mode. Batch commands with a blank
// method are left out of the request. Returns nil if nothing can be sent.
func (s *SimulatorState) Submit() tea.Cmd {
	if s.Pending {
		return nil
	}
	s.Response = ""

	if !s.CanSubmit() {
		return nil
	}

	s.Pending = true
	assistant := s.assistant

	if s.Mode == ModeSingle {
		method, params := s.Method, s.Params
		return func() tea.Msg {
			return SimulationDoneMsg{Text: assistant.SimulateSingle(context.Background(), method, params)}
		}
	}

	commands := s.Batch.Valid()
	return func() tea.Msg {
		return SimulationDoneMsg{Text: assistant.SimulateBatch(context.Background(), commands)}
	}
}

// Complete stores the simulation response and leaves the pending state.
func (s *SimulatorState) Complete(msg SimulationDoneMsg) {
	s.Response = msg.Text
	s.Pending = false
}
