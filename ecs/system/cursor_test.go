package system

import (
	"testing"

	"github.com/milk9111/flycam/ecs"
	"github.com/milk9111/flycam/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestCursorSystemInsertsDefault(t *testing.T) {
	w := ecs.NewWorld()
	NewCursorSystem(w, &fakeWindow{}, nil)

	hide, ok := ecs.Resource[component.HideCursor](w)
	require.True(t, ok)
	assert.True(t, hide.Hide)
}

func TestCursorSystemTransitions(t *testing.T) {
	tests := []struct {
		name    string
		focused bool
		hide    bool
		want    []windowCall
	}{
		{"focused_and_hidden_is_startup_state", true, true, nil},
		{"unfocused_releases", false, true, []windowCall{{"grab", false}, {"hide", false}}},
		{"hide_off_releases", true, false, []windowCall{{"grab", false}, {"hide", false}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			win := &fakeWindow{}
			s := NewCursorSystem(w, win, nil)
			setFocus(w, tc.focused, tc.hide)

			for frame := 0; frame < 5; frame++ {
				s.Update(w)
			}
			assert.Equal(t, tc.want, win.calls, "at most one transition for steady input")
		})
	}
}

func TestCursorSystemEdgeTriggered(t *testing.T) {
	w := ecs.NewWorld()
	win := &fakeWindow{}
	s := NewCursorSystem(w, win, nil)
	setFocus(w, false, true)
	focus, _ := ecs.Resource[component.WindowFocus](w)
	hide, _ := ecs.Resource[component.HideCursor](w)

	s.Update(w)
	require.False(t, s.Hidden())

	focus.IsFocused = true
	s.Update(w)
	s.Update(w)
	require.True(t, s.Hidden())

	hide.Hide = false
	s.Update(w)
	assert.False(t, s.Hidden())

	assert.Equal(t, []windowCall{
		{"grab", false}, {"hide", false},
		{"grab", true}, {"hide", true},
		{"grab", false}, {"hide", false},
	}, win.calls)
}

func TestCursorSystemGrabFailureIsLogged(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	w := ecs.NewWorld()
	win := &fakeWindow{grabErr: errRefused}
	s := NewCursorSystem(w, win, zap.New(core))

	setFocus(w, false, true)
	s.Update(w)
	focus, _ := ecs.Resource[component.WindowFocus](w)
	focus.IsFocused = true
	s.Update(w)

	assert.Equal(t, []windowCall{
		{"grab", false}, {"hide", false},
		{"grab", true}, {"hide", true},
	}, win.calls, "hide is still attempted after a failed grab")
	assert.True(t, s.Hidden())

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, "unable to release the cursor", logs.All()[0].Message)
	assert.Equal(t, "unable to grab the cursor", logs.All()[1].Message)
}

func TestCursorSystemMissingFocusReadsUnfocused(t *testing.T) {
	w := ecs.NewWorld()
	win := &fakeWindow{}
	s := NewCursorSystem(w, win, nil)

	s.Update(w)
	assert.False(t, s.Hidden())
}
