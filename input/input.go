// Package input maps keys onto viewer actions.
package input

import "fmt"

// Key is a key press. Printable keys are their own rune; arrow keys are
// negative so they can never collide with a character.
type Key rune

const (
	KeyUp Key = -(iota + 1)
	KeyDown
	KeyLeft
	KeyRight
)

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	}
	if k < 0 {
		return fmt.Sprintf("Key(%d)", int32(k))
	}
	return fmt.Sprintf("%q", rune(k))
}

// Step is the factor line and fade widths grow or shrink by per key press.
const Step = 1.1

// Actions is everything a key can trigger.
type Actions interface {
	Quit()
	ToggleFullscreen()
	ToggleJulia()
	ToggleDerivative()
	TogglePause()
	AdjustLineWidth(factor float64)
	AdjustFadeWidth(factor float64)
	Snapshot()
}

// Dispatcher maps keys to actions.
type Dispatcher struct {
	bindings map[Key]func()
}

// NewDispatcher returns a Dispatcher with the default key table bound to a.
func NewDispatcher(a Actions) *Dispatcher {
	d := &Dispatcher{
		bindings: make(map[Key]func()),
	}

	d.Bind('q', a.Quit)
	d.Bind('f', a.ToggleFullscreen)
	d.Bind('j', a.ToggleJulia)
	d.Bind('d', a.ToggleDerivative)
	d.Bind('p', a.TogglePause)
	d.Bind('s', a.Snapshot)

	d.Bind(KeyUp, func() { a.AdjustLineWidth(Step) })
	d.Bind(KeyDown, func() { a.AdjustLineWidth(1 / Step) })
	d.Bind(KeyLeft, func() { a.AdjustFadeWidth(1 / Step) })
	d.Bind(KeyRight, func() { a.AdjustFadeWidth(Step) })

	return d
}

// Bind sets the function run when k is dispatched, replacing any previous
// binding. A nil f removes the binding.
func (d *Dispatcher) Bind(k Key, f func()) {
	if f == nil {
		delete(d.bindings, k)
		return
	}
	d.bindings[k] = f
}

// Dispatch runs the function bound to k and reports whether there was one.
func (d *Dispatcher) Dispatch(k Key) bool {
	f, ok := d.bindings[k]
	if !ok {
		return false
	}
	f()
	return true
}
