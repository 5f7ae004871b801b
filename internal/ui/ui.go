package ui

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-clock/internal/config"
	"github.com/tartampluch/go-clock/internal/engine"
	"github.com/tartampluch/go-clock/internal/render"
	"github.com/tartampluch/go-clock/internal/server"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// iconTime is the classic 10:10 pose used for the application icon.
var iconTime = time.Date(2000, 1, 1, 10, 10, 30, 0, time.Local)

// ClockApp encapsulates the UI state, preferences, and the redraw pipeline.
type ClockApp struct {
	App         fyne.App
	Window      fyne.Window // settings window, nil when closed
	ClockWindow fyne.Window
	Preferences fyne.Preferences
	I18nBundle  *i18n.Bundle
	Localizer   *i18n.Localizer
	Ctx         context.Context

	// Settings are the environment-level defaults; preferences win over them.
	Settings *config.Settings
	Palette  render.Palette

	Renderer  *engine.Renderer
	Scheduler *engine.Scheduler
	Face      *ClockFace

	Tray desktop.App
	Menu *fyne.Menu

	TrayStatusItem   *fyne.MenuItem
	TrayClockItem    *fyne.MenuItem
	TraySettingsItem *fyne.MenuItem

	SupportedLanguages []string
	configChan         chan struct{}

	// Snapshot server state. The active server is read on every frame.
	server      atomic.Pointer[server.SnapshotServer]
	serverMu    sync.Mutex
	serverStop  context.CancelFunc
	serverDone  chan struct{}
	snapshots   rate.Sometimes
	trayUpdates rate.Sometimes
}

// NewClockApp constructs the application and wires dependencies.
func NewClockApp(a fyne.App, ctx context.Context, settings *config.Settings) *ClockApp {
	if settings == nil {
		settings = config.Defaults()
	}
	palette := render.DefaultPalette()

	app := &ClockApp{
		App:                a,
		Preferences:        a.Preferences(),
		Ctx:                ctx,
		Settings:           settings,
		Palette:            palette,
		Renderer:           engine.NewRenderer(engine.DefaultLayout()),
		Face:               NewClockFace(palette),
		SupportedLanguages: config.SupportedLanguages,
		configChan:         make(chan struct{}, config.ChannelBufferSize),
		snapshots:          rate.Sometimes{Interval: config.SnapshotInterval},
		trayUpdates:        rate.Sometimes{Interval: config.TrayInterval},
	}

	app.Scheduler = engine.NewScheduler(app.Renderer, app.tickInterval(), app.onFrame)
	app.Scheduler.OnError = app.onFrameError
	app.applyPreferences()
	app.setIcon()

	return app
}

// Run launches the background services and the main UI loop.
func (app *ClockApp) Run() {
	app.SetupI18n()
	app.watchPreferences()

	if desk, ok := app.App.(desktop.App); ok {
		app.Tray = desk
		app.Tray.SetSystemTrayIcon(app.App.Icon())
		app.setupTrayMenu()
	} else {
		slog.Warn(config.ErrTrayNotSupported,
			config.LogKeyComponent, config.CompUI)
	}

	app.ShowClockWindow()

	go app.runServices()
	app.App.Run()
}

// runServices owns the scheduler and the preference watcher until the
// application context is cancelled.
func (app *ClockApp) runServices() {
	g, ctx := errgroup.WithContext(app.Ctx)

	g.Go(func() error {
		return app.Scheduler.Run(ctx)
	})
	g.Go(func() error {
		app.watchConfig(ctx)
		return nil
	})

	app.syncServer(ctx)

	if err := g.Wait(); err != nil {
		slog.Error(config.ErrAppFailed,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyError, err)
	}
	app.stopServer()
}

// watchPreferences signals watchConfig whenever a preference changes.
func (app *ClockApp) watchPreferences() {
	app.Preferences.AddChangeListener(func() {
		select {
		case app.configChan <- struct{}{}:
		default:
		}
	})
}

// watchConfig applies preference changes until ctx is done.
func (app *ClockApp) watchConfig(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-app.configChan:
			slog.Info(config.MsgPrefsChanged, config.LogKeyComponent, config.CompUI)
			app.applyPreferences()
			app.syncServer(ctx)
			fyne.Do(func() {
				app.UpdateLocalizer()
				app.RefreshTrayMenu()
			})
		}
	}
}

// applyPreferences pushes the layout and tick interval to the pipeline.
func (app *ClockApp) applyPreferences() {
	layout := app.layoutFromPrefs()
	app.Renderer.SetLayout(layout)
	app.Scheduler.SetInterval(app.tickInterval())

	slog.Debug(config.MsgPrefsChanged,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyStyle, layout.MinuteStyle.String(),
		config.LogKeyInterval, app.tickInterval())
}

// layoutFromPrefs derives the face layout from preferences and settings.
func (app *ClockApp) layoutFromPrefs() engine.Layout {
	layout := engine.DefaultLayout()
	layout.MinuteStyle = engine.ParseMinuteStyle(
		app.Preferences.StringWithFallback(config.PrefMinuteStyle, app.Settings.MinuteStyle))
	layout.ShowSeconds = app.Preferences.BoolWithFallback(config.PrefShowSeconds, app.Settings.ShowSeconds)
	return layout
}

// tickInterval returns the redraw period. Out-of-range preferences fall
// back to the settings value.
func (app *ClockApp) tickInterval() time.Duration {
	fallback := int(app.Settings.TickInterval / time.Millisecond)
	ms := app.Preferences.IntWithFallback(config.PrefTickMillis, fallback)
	if ms < config.MinTickMillis || ms > config.MaxTickMillis {
		ms = fallback
	}
	return time.Duration(ms) * time.Millisecond
}

// onFrame receives every rendered frame from the scheduler goroutine.
func (app *ClockApp) onFrame(face engine.Face) {
	app.Face.SetFace(face)
	fyne.Do(app.Face.Refresh)

	if srv := app.server.Load(); srv != nil {
		app.snapshots.Do(func() {
			app.publishSnapshot(srv, face)
		})
	}

	app.trayUpdates.Do(func() {
		now := app.Renderer.Clock.Now()
		fyne.Do(func() { app.updateTrayStatus(now) })
	})
}

// onFrameError drops the frame; the next tick tries again.
func (app *ClockApp) onFrameError(err error) {
	slog.Error(config.MsgFrameSkipped,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyError, err)
}

// publishSnapshot encodes face and hands it to the snapshot server.
func (app *ClockApp) publishSnapshot(srv *server.SnapshotServer, face engine.Face) {
	png, err := render.EncodePNG(face, app.Palette, config.DefaultSnapshotSize)
	if err != nil {
		slog.Error(config.ErrPNGEncode,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyError, err)
		return
	}
	srv.Update(png)
}

// syncServer starts, stops or restarts the snapshot server to match the
// current preferences.
func (app *ClockApp) syncServer(ctx context.Context) {
	enabled := app.Preferences.BoolWithFallback(config.PrefServerEnabled, app.Settings.ServerEnabled)
	port := app.Preferences.StringWithFallback(config.PrefServerPort, app.Settings.ServerPort)

	app.serverMu.Lock()
	defer app.serverMu.Unlock()

	if running := app.server.Load(); running != nil {
		if enabled && running.Port == port {
			return
		}
		app.stopServerLocked()
	}

	if !enabled {
		slog.Debug(config.MsgServerDisabled, config.LogKeyComponent, config.CompUI)
		return
	}

	srv := server.NewSnapshotServer(port)
	sctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	app.server.Store(srv)
	app.serverStop = cancel
	app.serverDone = done

	go func() {
		defer close(done)
		if err := srv.Start(sctx); err != nil {
			slog.Error(config.ErrServerStartup,
				config.LogKeyError, err,
				config.LogKeyComponent, config.CompUI)

			app.server.CompareAndSwap(srv, nil)
			app.App.SendNotification(fyne.NewNotification(
				config.TitleStartupError,
				fmt.Sprintf(config.MsgPortBusy, port)))
		}
	}()
}

// stopServer shuts the snapshot server down and waits for it.
func (app *ClockApp) stopServer() {
	app.serverMu.Lock()
	defer app.serverMu.Unlock()
	app.stopServerLocked()
}

func (app *ClockApp) stopServerLocked() {
	app.server.Store(nil)
	if app.serverStop == nil {
		return
	}
	app.serverStop()
	<-app.serverDone
	app.serverStop = nil
	app.serverDone = nil
}

// ShowClockWindow opens the dial window, or focuses it if already open.
func (app *ClockApp) ShowClockWindow() {
	if app.ClockWindow != nil {
		app.ClockWindow.RequestFocus()
		return
	}

	w := app.App.NewWindow(app.GetMsg(config.TKeyWinClock))
	w.SetContent(app.Face)
	w.Resize(fyne.NewSize(config.ClockWindowSize, config.ClockWindowSize))

	// Without a tray there is no other way back into the app.
	if app.Tray == nil {
		w.SetMaster()
	}
	w.SetOnClosed(func() { app.ClockWindow = nil })

	app.ClockWindow = w
	w.Show()
}

// setupTrayMenu constructs the system tray menu.
func (app *ClockApp) setupTrayMenu() {
	// The status item doubles as a live digital readout.
	app.TrayStatusItem = fyne.NewMenuItem(config.FallbackTrayLabel, func() {
		app.ShowClockWindow()
	})

	app.TrayClockItem = fyne.NewMenuItem(app.GetMsg(config.TKeyMenuShowClock), func() {
		app.ShowClockWindow()
	})

	app.TraySettingsItem = fyne.NewMenuItem(app.GetMsg(config.TKeyMenuSettings), func() {
		app.ShowSettingsWindow()
	})

	app.Menu = fyne.NewMenu(config.AppName,
		app.TrayStatusItem,
		fyne.NewMenuItemSeparator(),
		app.TrayClockItem,
		app.TraySettingsItem,
	)

	if app.Tray != nil {
		app.Tray.SetSystemTrayMenu(app.Menu)
	}
}

// RefreshTrayMenu updates localized labels in the tray menu and the clock
// window title.
func (app *ClockApp) RefreshTrayMenu() {
	if app.ClockWindow != nil {
		app.ClockWindow.SetTitle(app.GetMsg(config.TKeyWinClock))
	}
	if app.Menu == nil {
		return
	}
	app.TrayClockItem.Label = app.GetMsg(config.TKeyMenuShowClock)
	app.TraySettingsItem.Label = app.GetMsg(config.TKeyMenuSettings)
	app.Menu.Refresh()
}

// updateTrayStatus shows the current time in the top menu item.
func (app *ClockApp) updateTrayStatus(now time.Time) {
	if app.Menu == nil || app.TrayStatusItem == nil {
		return
	}

	clock := now.Format(config.TrayTimeFormat)
	label := app.Localize(config.TKeyTrayStatus, map[string]interface{}{"Time": clock})
	if label == config.TKeyTrayStatus {
		label = config.FallbackTrayLabel + " " + clock
	}

	app.TrayStatusItem.Label = label
	app.Menu.Refresh()
}

// setIcon renders the dial at 10:10 and uses it as the application icon.
func (app *ClockApp) setIcon() {
	face, err := app.Renderer.Render(iconTime)
	if err == nil {
		var png []byte
		png, err = render.EncodePNG(face, app.Palette, config.IconSize)
		if err == nil {
			app.App.SetIcon(fyne.NewStaticResource(config.IconFile, png))
			return
		}
	}
	slog.Warn(config.ErrIconRender,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyError, err)
}
