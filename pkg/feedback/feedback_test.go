package feedback

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiSurvivesPanickingEmitter(t *testing.T) {
	var got []Signal
	m := Multi{
		Func(func(Signal) { panic("boom") }),
		nil,
		Func(func(s Signal) { got = append(got, s) }),
	}

	assert.NotPanics(t, func() {
		m.Emit(Signal{GameID: "g", Points: 1, Positive: true})
	})
	require.Len(t, got, 1)
	assert.True(t, got[0].Positive)
}

func TestNilFuncIsNoop(t *testing.T) {
	var f Func
	assert.NotPanics(t, func() { f.Emit(Signal{}) })
	assert.NotPanics(t, func() { Safe(nil, Signal{}) })
	assert.NotPanics(t, func() { Nop{}.Emit(Signal{}) })
	assert.NotPanics(t, func() { Logger{}.Emit(Signal{}) })
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.Emit(Signal{GameID: "password-power", Points: 1, Positive: true})
	m.Emit(Signal{GameID: "password-power", Points: 1, Positive: true})
	m.Emit(Signal{GameID: "password-power"})
	m.Emit(Signal{GameID: "popup-reflex", TimedOut: true})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.answers.WithLabelValues("password-power", "correct")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.answers.WithLabelValues("password-power", "incorrect")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.answers.WithLabelValues("popup-reflex", "timeout")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.points.WithLabelValues("password-power")))

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	assert.True(t, strings.Contains(rec.Body.String(), "citizen_dojo_session_answers_total"))
}
