package console

// Phase estado de la pantalla. Un único valor a la vez: no existe "cargando y éxito".
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSubmitting
	PhaseSucceeded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseSubmitting:
		return "submitting"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFailed:
		return "failed"
	default:
		return "idle"
	}
}

// Status canal de estado visible para la vista. Message solo tiene sentido en Succeeded y Failed.
type Status struct {
	Phase   Phase
	Message string
}

// Busy indica que hay una llamada de red en curso.
func (s Status) Busy() bool { return s.Phase == PhaseLoading || s.Phase == PhaseSubmitting }

func (s Status) Loading() bool    { return s.Phase == PhaseLoading }
func (s Status) Submitting() bool { return s.Phase == PhaseSubmitting }
func (s Status) Succeeded() bool  { return s.Phase == PhaseSucceeded }
func (s Status) Failed() bool     { return s.Phase == PhaseFailed }

func idle() Status                { return Status{Phase: PhaseIdle} }
func succeeded(msg string) Status { return Status{Phase: PhaseSucceeded, Message: msg} }
func failed(msg string) Status    { return Status{Phase: PhaseFailed, Message: msg} }
