package notifier

import (
	"time"

	"github.com/mailru/easyjson/jlexer"
	"github.com/mailru/easyjson/jwriter"
)

// ThresholdEvent is delivered to observers when a value reached the threshold
type ThresholdEvent struct {
	Threshold   int
	TimeReached time.Time
}

// MarshalEasyJSON writes the event as {"threshold":5,"time_reached":"..."}
func (e ThresholdEvent) MarshalEasyJSON(w *jwriter.Writer) {
	w.RawString(`{"threshold":`)
	w.Int(e.Threshold)
	w.RawString(`,"time_reached":`)
	w.Raw(e.TimeReached.MarshalJSON())
	w.RawByte('}')
}

// MarshalJSON implements json.Marshaler
func (e ThresholdEvent) MarshalJSON() ([]byte, error) {
	w := jwriter.Writer{}
	e.MarshalEasyJSON(&w)
	return w.BuildBytes()
}

// UnmarshalEasyJSON reads the event, unknown fields are skipped
func (e *ThresholdEvent) UnmarshalEasyJSON(in *jlexer.Lexer) {

	if in.IsNull() {
		in.Skip()
		return
	}

	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeString()
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}

		switch key {
		case "threshold":
			e.Threshold = in.Int()
		case "time_reached":
			if data := in.Raw(); in.Ok() {
				in.AddError(e.TimeReached.UnmarshalJSON(data))
			}
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}

// UnmarshalJSON implements json.Unmarshaler
func (e *ThresholdEvent) UnmarshalJSON(data []byte) error {
	r := jlexer.Lexer{Data: data}
	e.UnmarshalEasyJSON(&r)
	return r.Error()
}
