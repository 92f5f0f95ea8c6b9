package optional

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/xerrors"
)

var (
	// ErrValueAbsent matches every *AbsentError via errors.Is.
	ErrValueAbsent = xerrors.New("value is absent")
	// ErrCastFailed matches every *CastError via errors.Is.
	ErrCastFailed = xerrors.New("cast failed")
)

// AbsentError is returned when an unwrapped value is missing.
//
// Error supports brief and full formatting using %v and %+v format specifiers,
// the full form includes the call site.
type AbsentError struct {
	Site Site
}

func (e *AbsentError) Error() string {
	return "failed to extract necessary data"
}

// Detail describes the failure together with its location.
func (e *AbsentError) Detail() string {
	return fmt.Sprintf("failed to unwrap value in file %s, line %d", e.Site.Base(), e.Site.Line)
}

func (e *AbsentError) Is(target error) bool {
	return target == ErrValueAbsent
}

func (e *AbsentError) Format(s fmt.State, v rune) { xerrors.FormatError(e, s, v) }

func (e *AbsentError) FormatError(p xerrors.Printer) (next error) {
	p.Print(e.Error())
	if p.Detail() {
		printSite(p, e.Site)
	}
	return nil
}

func (e *AbsentError) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("kind", "value_absent")
	return e.Site.MarshalLogObject(enc)
}

// CastError is returned when a present value has an unexpected dynamic type.
type CastError struct {
	Value  any
	Target reflect.Type
	Site   Site
}

func (e *CastError) Error() string {
	return "failed to convert data to expected type"
}

// Detail describes the failure together with offending value, target type and location.
func (e *CastError) Detail() string {
	return fmt.Sprintf("failed to convert value %v to type %s in file %s, line %d",
		e.Value, e.Target, e.Site.Base(), e.Site.Line)
}

func (e *CastError) Is(target error) bool {
	return target == ErrCastFailed
}

func (e *CastError) Format(s fmt.State, v rune) { xerrors.FormatError(e, s, v) }

func (e *CastError) FormatError(p xerrors.Printer) (next error) {
	p.Print(e.Error())
	if p.Detail() {
		p.Printf("\n    value: %v (%T)\n    target: %s", e.Value, e.Value, e.Target)
		printSite(p, e.Site)
	}
	return nil
}

func (e *CastError) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("kind", "cast_failed")
	enc.AddString("value", fmt.Sprint(e.Value))
	if e.Target != nil {
		enc.AddString("target", e.Target.String())
	}
	return e.Site.MarshalLogObject(enc)
}

func printSite(p xerrors.Printer, s Site) {
	if s.Function != "" {
		p.Printf("\n    %s", s.Function)
	}
	p.Printf("\n        %s:%d", s.File, s.Line)
}

// Field creates a log field for err. Unwrap failures are logged as objects
// carrying their call site, other errors fall back to zap.Error.
func Field(err error) zap.Field {
	var absent *AbsentError
	if xerrors.As(err, &absent) {
		return zap.Object("unwrap", absent)
	}

	var cast *CastError
	if xerrors.As(err, &cast) {
		return zap.Object("unwrap", cast)
	}

	return zap.Error(err)
}
