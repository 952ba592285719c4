package cli

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/streax/internal/teatest"
	"github.com/alexanderramin/streax/internal/timer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTimerDriver(t *testing.T, app *App) *teatest.Driver {
	t.Helper()
	d := teatest.New(t, newTimerModel(context.Background(), app.Timer), teatest.WithSize(80, 24))
	d.DrainInit()
	return d
}

func timerState(t *testing.T, d *teatest.Driver) *timer.State {
	t.Helper()
	m, ok := d.Model.(*timerModel)
	require.True(t, ok)
	require.NotNil(t, m.state)
	return m.state
}

func TestTimerView_Idle(t *testing.T) {
	app, _ := onboardedApp(t)
	d := newTimerDriver(t, app)

	d.ViewContains("POMODORO", "IDLE", "No timer running")

	// Pause and stop are ignored without a running timer.
	d.PressSpace()
	d.PressKey('s')
	assert.Equal(t, timer.PhaseIdle, timerState(t, d).Phase)
}

func TestTimerView_TicksFromService(t *testing.T) {
	app, clock := onboardedApp(t)
	_, err := app.Timer.Start(context.Background(), "Essay", timer.DefaultPreset)
	require.NoError(t, err)

	d := newTimerDriver(t, app)
	d.ViewContains("FOCUS", "25:00", "Essay", "Classic (25/5)")
	assert.Positive(t, d.Dropped, "the periodic tick is left to the test")

	clock.Advance(5 * time.Minute)
	d.Send(timerTickMsg(clock.Now()))
	d.ViewContains("20:00")
	assert.Equal(t, 1200, timerState(t, d).RemainingSeconds)
}

func TestTimerView_PauseResume(t *testing.T) {
	app, clock := onboardedApp(t)
	_, err := app.Timer.Start(context.Background(), "Essay", timer.DefaultPreset)
	require.NoError(t, err)
	d := newTimerDriver(t, app)

	clock.Advance(10 * time.Minute)
	d.PressSpace()
	assert.Equal(t, timer.PhasePaused, timerState(t, d).Phase)
	d.ViewContains("(paused)", "15:00")

	clock.Advance(time.Hour)
	d.Send(timerTickMsg(clock.Now()))
	d.ViewContains("15:00")

	d.PressKey('p')
	assert.Equal(t, timer.PhaseFocus, timerState(t, d).Phase)
}

func TestTimerView_StopLogsSession(t *testing.T) {
	app, clock := onboardedApp(t)
	_, err := app.Timer.Start(context.Background(), "Essay", timer.DefaultPreset)
	require.NoError(t, err)
	d := newTimerDriver(t, app)

	clock.Advance(12 * time.Minute)
	d.PressKey('s')
	d.ViewContains("Session logged", "12m / 4h", "IDLE")

	today, err := app.Tracker.Today(context.Background())
	require.NoError(t, err)
	require.Len(t, today.Sessions, 1)
	assert.False(t, today.Sessions[0].Completed)
	assert.Equal(t, 12, today.Sessions[0].DurationMinutes)
}

func TestTimerView_StopUnderAMinute(t *testing.T) {
	app, clock := onboardedApp(t)
	_, err := app.Timer.Start(context.Background(), "Essay", timer.DefaultPreset)
	require.NoError(t, err)
	d := newTimerDriver(t, app)

	clock.Advance(30 * time.Second)
	d.PressKey('s')
	d.ViewContains("nothing logged")
}

func TestTimerView_FullCycle(t *testing.T) {
	app, clock := onboardedApp(t)
	_, err := app.Timer.Start(context.Background(), "Essay", 0)
	require.NoError(t, err)
	d := newTimerDriver(t, app)

	clock.Advance(time.Minute)
	d.Send(timerTickMsg(clock.Now()))
	d.ViewContains("BREAK", "Focus complete!")

	clock.Advance(time.Minute)
	d.Send(timerTickMsg(clock.Now()))
	d.ViewContains("Session logged", "1m / 4h")
	assert.Equal(t, timer.PhaseIdle, timerState(t, d).Phase)
}

func TestTimerView_Quit(t *testing.T) {
	keys := map[string]func(d *teatest.Driver){
		"q":      func(d *teatest.Driver) { d.PressKey('q') },
		"esc":    func(d *teatest.Driver) { d.PressEsc() },
		"ctrl+c": func(d *teatest.Driver) { d.PressCtrlC() },
	}
	for name, press := range keys {
		t.Run(name, func(t *testing.T) {
			app, _ := onboardedApp(t)
			_, err := app.Timer.Start(context.Background(), "Essay", timer.DefaultPreset)
			require.NoError(t, err)
			d := newTimerDriver(t, app)

			press(d)
			assert.True(t, d.Quitting)

			// The timer keeps running after the view closes.
			upd, err := app.Timer.Current(context.Background())
			require.NoError(t, err)
			assert.Equal(t, timer.PhaseFocus, upd.State.Phase)
		})
	}
}

func TestTimerView_ShowsServiceErrors(t *testing.T) {
	app, _ := testApp(t)
	d := newTimerDriver(t, app)

	d.ViewContains("Error:", "onboard")
}
