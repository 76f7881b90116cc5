package std

import (
	"testing"
	"time"

	"github.com/mewisme/mew/objects"
	"github.com/stretchr/testify/assert"
)

func TestWakeUpWithExplicitMillis(t *testing.T) {
	tm := Time()
	v := callMember(t, tm, "wakeUp", &objects.Number{Value: 0})
	d, ok := v.(*objects.Date)
	assert.True(t, ok)
	assert.Equal(t, int64(0), d.Millis)
}

func TestDateComponentExtraction(t *testing.T) {
	tm := Time()
	local := time.Date(2026, time.March, 15, 13, 30, 45, 0, time.Local)
	d := &objects.Date{Millis: local.UnixMilli()}

	assert.Equal(t, float64(2026), callMember(t, tm, "fullYear", d).(*objects.Number).Value)
	assert.Equal(t, float64(2), callMember(t, tm, "month", d).(*objects.Number).Value) // 0-indexed
	assert.Equal(t, float64(15), callMember(t, tm, "day", d).(*objects.Number).Value)
	assert.Equal(t, float64(13), callMember(t, tm, "hours", d).(*objects.Number).Value)
	assert.Equal(t, float64(30), callMember(t, tm, "minutes", d).(*objects.Number).Value)
	assert.Equal(t, float64(45), callMember(t, tm, "seconds", d).(*objects.Number).Value)
}

func TestToMeowFormatsDate(t *testing.T) {
	tm := Time()
	local := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.Local)
	d := &objects.Date{Millis: local.UnixMilli()}
	v := callMember(t, tm, "toMeow", d)
	assert.Equal(t, "2026-01-01 00:00:00", v.(*objects.String).Value)
}
