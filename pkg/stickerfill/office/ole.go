package office

import (
	"fmt"

	"github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"
)

// InitCOM initializes the COM runtime for the calling thread and returns the
// matching teardown. Call once per run, before attaching to any application.
func InitCOM() func() {
	// S_FALSE (already initialized) also surfaces as an error here, so the
	// result is deliberately ignored.
	_ = ole.CoInitializeEx(0, ole.COINIT_APARTMENTTHREADED)
	return ole.CoUninitialize
}

// App is an attached automation application (Excel or PowerPoint).
type App struct {
	dispatch *ole.IDispatch
	progID   string
}

// Attach connects to a running instance of the named application, launching a
// new visible instance when none is running.
func Attach(progID string) (*App, error) {
	unknown, err := oleutil.GetActiveObject(progID)
	if err == nil {
		dispatch, err := unknown.QueryInterface(ole.IID_IDispatch)
		if err != nil {
			unknown.Release()
			return nil, fmt.Errorf("attach to %s: %w", progID, err)
		}
		return &App{dispatch: dispatch, progID: progID}, nil
	}

	unknown, err = oleutil.CreateObject(progID)
	if err != nil {
		return nil, fmt.Errorf("start or attach to %s: %w", progID, err)
	}
	dispatch, err := unknown.QueryInterface(ole.IID_IDispatch)
	if err != nil {
		unknown.Release()
		return nil, fmt.Errorf("start %s: %w", progID, err)
	}
	// A fresh instance starts hidden.
	if _, err := oleutil.PutProperty(dispatch, "Visible", true); err != nil {
		dispatch.Release()
		return nil, fmt.Errorf("show %s window: %w", progID, err)
	}
	return &App{dispatch: dispatch, progID: progID}, nil
}

// Close releases the application handle. The application itself keeps
// running; the user owns its lifetime.
func (a *App) Close() {
	if a.dispatch != nil {
		a.dispatch.Release()
		a.dispatch = nil
	}
}
