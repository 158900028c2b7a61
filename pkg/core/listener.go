package core

// Listener is the capability a widget invokes when the user acts on it.
// Implementations live in application code and may have arbitrary side
// effects, but must not re-enter the widget that invoked them.
type Listener interface {
	// OnClick is called when the widget's primary interaction fires with no
	// payload.
	OnClick()

	// OnChange is called when the widget's state changes as a direct result
	// of user interaction, with the new value.
	OnChange(value string)
}

// ListenerFuncs adapts plain functions to the Listener interface. Nil fields
// are simply not called, so callers can wire only the reaction they need:
//
//	widgets.NewCheckbox("cb1").WithListener(core.ListenerFuncs{
//	    Change: func(v string) { model.SetAccepted(v) },
//	})
type ListenerFuncs struct {
	Click  func()
	Change func(value string)
}

func (l ListenerFuncs) OnClick() {
	if l.Click != nil {
		l.Click()
	}
}

func (l ListenerFuncs) OnChange(value string) {
	if l.Change != nil {
		l.Change(value)
	}
}
