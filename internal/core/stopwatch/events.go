package stopwatch

// ControlFlow tells a scheduler whether a schedule should fire again.
type ControlFlow bool

const (
	Continue ControlFlow = true
	Break    ControlFlow = false
)

// HandlerID identifies a connected update observer.
type HandlerID uint64

// UpdateFunc receives the elapsed hours and minutes on every tick.
type UpdateFunc func(timer *Timer, hours, minutes uint32)

type updateHandler struct {
	id HandlerID
	fn UpdateFunc
}
