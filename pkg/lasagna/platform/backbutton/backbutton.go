// Package backbutton binds a handheld's hardware back button to a
// navigation controller: every release of the configured key becomes a pop.
package backbutton

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/holoplot/go-evdev"

	"github.com/BrandonKowalski/lasagna/pkg/lasagna/internal"
)

// Navigator is the slice of the navigation controller the listener drives.
type Navigator interface {
	CanPop() bool
	Pop(result any) error
}

// Config describes which input device and key act as the back button.
type Config struct {
	// DevicePath is the evdev device node carrying button events.
	DevicePath string

	// ButtonCode is the key code that triggers a pop.
	ButtonCode evdev.EvCode

	// CoolDown suppresses releases that follow a handled one too quickly,
	// so switch bounce and nervous thumbs do not unwind several screens.
	CoolDown time.Duration
}

// DefaultConfig returns the button wiring for the current handheld.
// TG5050 family boards expose buttons on /dev/input/event2, all others on
// /dev/input/event1.
func DefaultConfig() Config {
	devicePath := "/dev/input/event1"
	platformEnv := strings.ToUpper(os.Getenv("PLATFORM"))
	if strings.Contains(platformEnv, "TG5050") {
		devicePath = "/dev/input/event2"
	}

	return Config{
		DevicePath: devicePath,
		ButtonCode: evdev.KEY_BACK,
		CoolDown:   250 * time.Millisecond,
	}
}

// Listen opens the configured device and pops the navigator on every
// qualifying button release until ctx is cancelled. It blocks; run it on
// its own goroutine. The returned error is ctx.Err after cancellation or
// the device failure that ended the loop.
func Listen(ctx context.Context, cfg Config, nav Navigator) error {
	dev, err := evdev.Open(cfg.DevicePath)
	if err != nil {
		return fmt.Errorf("backbutton: open %s: %w", cfg.DevicePath, err)
	}
	// Closing the device is also what unblocks the reader goroutine when
	// ctx ends between events.
	defer dev.Close()

	events := make(chan *evdev.InputEvent)
	readErr := make(chan error, 1)
	go func() {
		for {
			ev, err := dev.ReadOne()
			if err != nil {
				readErr <- err
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	var lastHandled time.Time
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-readErr:
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("backbutton: read %s: %w", cfg.DevicePath, err)
		case ev := <-events:
			if !isRelease(ev, cfg.ButtonCode) {
				continue
			}
			now := time.Now()
			if !shouldPop(nav, now, lastHandled, cfg.CoolDown) {
				continue
			}
			lastHandled = now
			if err := nav.Pop(nil); err != nil {
				internal.GetInternalLogger().Debug("Back press with nothing to pop", "error", err)
			}
		}
	}
}

// isRelease reports whether ev is the release of the configured button.
// Value 1 is press, 0 release, 2 autorepeat; navigation fires on release so
// a held button does not unwind the whole stack.
func isRelease(ev *evdev.InputEvent, code evdev.EvCode) bool {
	return ev.Type == evdev.EV_KEY && ev.Code == code && ev.Value == 0
}

// shouldPop applies the cooldown debounce, then asks the navigator whether
// a pop would land anywhere.
func shouldPop(nav Navigator, now, lastHandled time.Time, coolDown time.Duration) bool {
	if !lastHandled.IsZero() && now.Sub(lastHandled) < coolDown {
		return false
	}
	return nav.CanPop()
}
