package std

import (
	"time"

	"github.com/mewisme/mew/objects"
)

// Time builds the CatTime namespace. All component extractors read the
// host's local time zone, per the specification.
func Time() *objects.BuiltinNamespace {
	return &objects.BuiltinNamespace{
		Name: "CatTime",
		Members: map[string]objects.Value{
			"now": fn("now", func(args []objects.Value) (objects.Value, error) {
				return num(float64(time.Now().UnixMilli())), nil
			}),
			"wakeUp": fn("wakeUp", func(args []objects.Value) (objects.Value, error) {
				if len(args) > 0 {
					return &objects.Date{Millis: int64(argNumber(args, 0))}, nil
				}
				return &objects.Date{Millis: time.Now().UnixMilli()}, nil
			}),
			"fullYear": dateComponent(func(t time.Time) float64 { return float64(t.Year()) }),
			"month":    dateComponent(func(t time.Time) float64 { return float64(t.Month() - 1) }),
			"day":      dateComponent(func(t time.Time) float64 { return float64(t.Day()) }),
			"weekday":  dateComponent(func(t time.Time) float64 { return float64(t.Weekday()) }),
			"hours":    dateComponent(func(t time.Time) float64 { return float64(t.Hour()) }),
			"minutes":  dateComponent(func(t time.Time) float64 { return float64(t.Minute()) }),
			"seconds":  dateComponent(func(t time.Time) float64 { return float64(t.Second()) }),
			"milliseconds": dateComponent(func(t time.Time) float64 {
				return float64(t.Nanosecond() / int(time.Millisecond))
			}),
			"toMeow": fn("toMeow", func(args []objects.Value) (objects.Value, error) {
				d, ok := arg(args, 0).(*objects.Date)
				if !ok {
					return nil, typeErr("CatTime.toMeow expects a Date argument")
				}
				return &objects.String{Value: d.Display()}, nil
			}),
		},
	}
}

func dateComponent(extract func(time.Time) float64) objects.Value {
	return fn("", func(args []objects.Value) (objects.Value, error) {
		d, ok := arg(args, 0).(*objects.Date)
		if !ok {
			return nil, typeErr("expected a Date argument")
		}
		return num(extract(time.UnixMilli(d.Millis).Local())), nil
	})
}
