//go:build darwin

package platform

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/ebitengine/purego/objc"
)

// Supported reports that this platform has a native transparency routine
const Supported = true

// floatingWindowLevel is NSFloatingWindowLevel
const floatingWindowLevel = 3

var (
	selSharedApplication    = objc.RegisterName("sharedApplication")
	selWindows              = objc.RegisterName("windows")
	selCount                = objc.RegisterName("count")
	selObjectAtIndex        = objc.RegisterName("objectAtIndex:")
	selTitle                = objc.RegisterName("title")
	selUTF8String           = objc.RegisterName("UTF8String")
	selStringWithUTF8String = objc.RegisterName("stringWithUTF8String:")
	selSetOpaque            = objc.RegisterName("setOpaque:")
	selClearColor           = objc.RegisterName("clearColor")
	selSetBackgroundColor   = objc.RegisterName("setBackgroundColor:")
	selSetHasShadow         = objc.RegisterName("setHasShadow:")
	selSetLevel             = objc.RegisterName("setLevel:")
	selContentView          = objc.RegisterName("contentView")
	selSubviews             = objc.RegisterName("subviews")
	selNumberWithBool       = objc.RegisterName("numberWithBool:")
	selSetValueForKey       = objc.RegisterName("setValue:forKey:")
)

// ApplyTransparency finds the NSWindow with the given title in this process
// and makes it a clear, shadowless floating panel. AppKit requires the main
// thread, so the work is dispatched synchronously onto the main queue; it
// must not be called from the main thread itself.
func ApplyTransparency(title string) error {
	var err error
	if dispatchErr := onMainThread(func() {
		err = applyOnMain(title)
	}); dispatchErr != nil {
		return fmt.Errorf("dispatch to main thread: %w", dispatchErr)
	}
	return err
}

func applyOnMain(title string) error {
	app := objc.ID(objc.GetClass("NSApplication")).Send(selSharedApplication)
	if app == 0 {
		return fmt.Errorf("no NSApplication instance")
	}

	windows := app.Send(selWindows)
	count := objc.Send[uint](windows, selCount)
	for i := uint(0); i < count; i++ {
		w := windows.Send(selObjectAtIndex, i)
		if goString(objc.Send[*byte](w.Send(selTitle), selUTF8String)) == title {
			makeTransparent(w)
			return nil
		}
	}
	return fmt.Errorf("no window titled %q", title)
}

func makeTransparent(w objc.ID) {
	w.Send(selSetOpaque, false)
	w.Send(selSetBackgroundColor, objc.ID(objc.GetClass("NSColor")).Send(selClearColor))
	w.Send(selSetHasShadow, false)
	w.Send(selSetLevel, floatingWindowLevel)

	// The web view paints its own white background unless told not to.
	subviews := w.Send(selContentView).Send(selSubviews)
	if objc.Send[uint](subviews, selCount) == 0 {
		return
	}
	webview := subviews.Send(selObjectAtIndex, uint(0))
	no := objc.ID(objc.GetClass("NSNumber")).Send(selNumberWithBool, false)
	key := objc.ID(objc.GetClass("NSString")).Send(selStringWithUTF8String, "drawsBackground")
	webview.Send(selSetValueForKey, no, key)
}

func goString(p *byte) string {
	if p == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	return string(unsafe.Slice(p, n))
}

var (
	dispatchOnce  sync.Once
	dispatchErr   error
	dispatchSyncF func(queue, ctx, work uintptr)
	mainQueue     uintptr
	trampoline    uintptr

	// pending is the closure run by trampoline; dispatchMu serializes users.
	dispatchMu sync.Mutex
	pending    func()
)

func loadDispatch() error {
	dispatchOnce.Do(func() {
		lib, err := purego.Dlopen("/usr/lib/libSystem.B.dylib", purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err != nil {
			dispatchErr = err
			return
		}
		// dispatch_get_main_queue() is a macro for &_dispatch_main_q
		mainQueue, err = purego.Dlsym(lib, "_dispatch_main_q")
		if err != nil {
			dispatchErr = err
			return
		}
		purego.RegisterLibFunc(&dispatchSyncF, lib, "dispatch_sync_f")
		trampoline = purego.NewCallback(func(uintptr) {
			pending()
		})
	})
	return dispatchErr
}

func onMainThread(fn func()) error {
	if err := loadDispatch(); err != nil {
		return err
	}

	dispatchMu.Lock()
	defer dispatchMu.Unlock()

	pending = fn
	dispatchSyncF(mainQueue, 0, trampoline)
	pending = nil
	return nil
}
