package ui

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-clock/internal/config"
)

// settingsWidgets holds references to UI elements to simplify data retrieval during save.
type settingsWidgets struct {
	langSelect   *widget.Select
	entryTick    *NumericalEntry
	styleSelect  *widget.Select
	checkSeconds *widget.Check
	checkServer  *widget.Check
	entryPort    *NumericalEntry
	portForm     *widget.Form
}

// ShowSettingsWindow displays the configuration dialog.
func (app *ClockApp) ShowSettingsWindow() {
	if app.Window != nil {
		slog.Debug("Settings window already open, requesting focus", config.LogKeyComponent, config.CompUISet)
		app.Window.RequestFocus()
		return
	}

	slog.Info("Opening settings window", config.LogKeyComponent, config.CompUISet)
	w := app.App.NewWindow(app.GetMsg(config.TKeyWinSettings))
	app.Window = w

	sw := app.buildSettingsWidgets()

	var refreshLayout func()
	onLayoutChange := func() {
		if refreshLayout != nil {
			refreshLayout()
		}
	}

	generalCard := app.buildGeneralCard(sw)
	displayCard := app.buildDisplayCard(sw)
	snapshotCard := app.buildSnapshotCard(sw, onLayoutChange)

	saveAction := func() {
		if err := app.validateSettings(sw); err != nil {
			dialog.ShowError(err, w)
			return
		}
		app.saveSettings(sw)
		w.Close()
	}

	btnSave := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnSave), theme.DocumentSaveIcon(), saveAction)
	btnSave.Importance = widget.HighImportance
	btnCancel := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnCancel), theme.CancelIcon(), func() { w.Close() })

	footerLabel := widget.NewLabel(fmt.Sprintf(app.GetMsg(config.TKeyLblFooter), config.Version))
	footerLabel.Alignment = fyne.TextAlignCenter
	footerLabel.TextStyle = fyne.TextStyle{Italic: true}

	paddedContent := container.NewPadded(container.NewVBox(
		generalCard,
		displayCard,
		snapshotCard,
		container.NewGridWithColumns(config.LayoutColumnsDouble, btnCancel, btnSave),
		footerLabel,
	))

	refreshLayout = func() {
		paddedContent.Refresh()
		w.Resize(fyne.NewSize(config.SettingsWindowWidth, paddedContent.MinSize().Height))
	}

	w.SetContent(paddedContent)
	w.SetFixedSize(true)
	w.SetOnClosed(func() { app.Window = nil })

	refreshLayout()
	w.Show()
}

// buildSettingsWidgets creates the inputs pre-filled from preferences.
func (app *ClockApp) buildSettingsWidgets() *settingsWidgets {
	sw := &settingsWidgets{}

	sw.langSelect = widget.NewSelect(app.SupportedLanguages, nil)
	sw.langSelect.SetSelected(app.Preferences.StringWithFallback(config.PrefLanguage, app.Settings.Language))

	sw.entryTick = NewRangeEntry(config.MinTickMillis, config.MaxTickMillis, RangeErrors{
		Required:   errors.New(app.GetMsg(config.TKeyErrTickRange)),
		NotNumber:  errors.New(app.GetMsg(config.TKeyErrTickRange)),
		OutOfRange: errors.New(app.GetMsg(config.TKeyErrTickRange)),
	})
	sw.entryTick.SetText(strconv.Itoa(int(app.tickInterval().Milliseconds())))

	sw.styleSelect = widget.NewSelect([]string{
		app.GetMsg(config.TKeyStyleTapered),
		app.GetMsg(config.TKeyStyleLine),
	}, nil)
	if app.layoutFromPrefs().MinuteStyle.String() == config.MinuteStyleLine {
		sw.styleSelect.SetSelected(app.GetMsg(config.TKeyStyleLine))
	} else {
		sw.styleSelect.SetSelected(app.GetMsg(config.TKeyStyleTapered))
	}

	sw.checkSeconds = widget.NewCheck(app.GetMsg(config.TKeyLblShowSeconds), nil)
	sw.checkSeconds.Checked = app.layoutFromPrefs().ShowSeconds

	sw.checkServer = widget.NewCheck(app.GetMsg(config.TKeyLblEnableServer), nil)
	sw.checkServer.Checked = app.Preferences.BoolWithFallback(config.PrefServerEnabled, app.Settings.ServerEnabled)

	sw.entryPort = NewRangeEntry(config.MinPort, config.MaxPort, RangeErrors{
		Required:   errors.New(app.GetMsg(config.TKeyErrPortReq)),
		NotNumber:  errors.New(app.GetMsg(config.TKeyErrPortNum)),
		OutOfRange: errors.New(app.GetMsg(config.TKeyErrPortRange)),
	})
	sw.entryPort.SetText(app.Preferences.StringWithFallback(config.PrefServerPort, app.Settings.ServerPort))

	return sw
}

// buildGeneralCard holds language and redraw interval.
func (app *ClockApp) buildGeneralCard(sw *settingsWidgets) *widget.Card {
	itemLang := widget.NewFormItem(app.GetMsg(config.TKeyLblLanguage), sw.langSelect)
	itemLang.HintText = app.GetMsg(config.TKeyHelpLanguage)

	widTick := container.NewBorder(nil, nil, nil, widget.NewLabel(app.GetMsg(config.TKeyLblMillis)), sw.entryTick)
	itemTick := widget.NewFormItem(app.GetMsg(config.TKeyLblTick), widTick)
	itemTick.HintText = app.GetMsg(config.TKeyHelpTick)

	return widget.NewCard(app.GetMsg(config.TKeyLblGeneral), "", widget.NewForm(itemLang, itemTick))
}

// buildDisplayCard holds the hand options.
func (app *ClockApp) buildDisplayCard(sw *settingsWidgets) *widget.Card {
	itemStyle := widget.NewFormItem(app.GetMsg(config.TKeyLblMinuteStyle), sw.styleSelect)
	return widget.NewCard(app.GetMsg(config.TKeyLblDisplay), "",
		container.NewVBox(widget.NewForm(itemStyle), sw.checkSeconds))
}

// buildSnapshotCard holds the snapshot server toggle; the port row is only
// visible while the server is enabled.
func (app *ClockApp) buildSnapshotCard(sw *settingsWidgets, onLayoutChange func()) *widget.Card {
	itemPort := widget.NewFormItem(app.GetMsg(config.TKeyLblPort), sw.entryPort)
	itemPort.HintText = app.GetMsg(config.TKeyHelpPort)
	sw.portForm = widget.NewForm(itemPort)

	updateVis := func(enabled bool) {
		if enabled {
			sw.portForm.Show()
		} else {
			sw.portForm.Hide()
		}
	}
	sw.checkServer.OnChanged = func(b bool) {
		updateVis(b)
		if onLayoutChange != nil {
			onLayoutChange()
		}
	}
	updateVis(sw.checkServer.Checked)

	return widget.NewCard(app.GetMsg(config.TKeyLblSnapshot), "", container.NewVBox(sw.checkServer, sw.portForm))
}

// validateSettings blocks saving on invalid numeric fields. The port is
// only checked while the server is enabled.
func (app *ClockApp) validateSettings(sw *settingsWidgets) error {
	if err := sw.entryTick.Validate(); err != nil {
		return err
	}
	if sw.checkServer.Checked {
		return sw.entryPort.Validate()
	}
	return nil
}

// saveSettings persists the form and applies it to the running clock.
func (app *ClockApp) saveSettings(sw *settingsWidgets) {
	slog.Info(config.MsgSettingsSaved, config.LogKeyComponent, config.CompUISet)

	app.Preferences.SetString(config.PrefLanguage, sw.langSelect.Selected)

	if ms, ok := sw.entryTick.Int(); ok {
		app.Preferences.SetInt(config.PrefTickMillis, ms)
	}

	style := config.MinuteStyleTapered
	if sw.styleSelect.Selected == app.GetMsg(config.TKeyStyleLine) {
		style = config.MinuteStyleLine
	}
	app.Preferences.SetString(config.PrefMinuteStyle, style)
	app.Preferences.SetBool(config.PrefShowSeconds, sw.checkSeconds.Checked)

	app.Preferences.SetBool(config.PrefServerEnabled, sw.checkServer.Checked)
	if sw.entryPort.Text != "" {
		app.Preferences.SetString(config.PrefServerPort, sw.entryPort.Text)
	}

	slog.Debug(config.MsgSettingsSaved,
		config.LogKeyComponent, config.CompUISet,
		config.LogKeyStyle, style,
		config.LogKeyEnabled, sw.checkServer.Checked)

	// The preference listener restarts the server; the layout and labels
	// are applied right away so the next frame already uses them.
	app.UpdateLocalizer()
	app.RefreshTrayMenu()
	app.applyPreferences()
}
