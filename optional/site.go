package optional

import (
	"fmt"
	"path/filepath"
	"runtime"

	"go.uber.org/zap/zapcore"
)

// Site is the location of a failed unwrap.
type Site struct {
	File     string
	Line     int
	Function string
}

// callerSite must be called directly from the exported function whose caller is recorded.
func callerSite(skip int) Site {
	pc, file, line, ok := runtime.Caller(skip + 2)
	if !ok {
		return Site{}
	}

	s := Site{File: file, Line: line}
	if fn := runtime.FuncForPC(pc); fn != nil {
		s.Function = fn.Name()
	}
	return s
}

// Base returns the file name without directories.
func (s Site) Base() string {
	return filepath.Base(s.File)
}

func (s Site) String() string {
	return fmt.Sprintf("%s:%d", s.Base(), s.Line)
}

func (s Site) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("file", s.File)
	enc.AddInt("line", s.Line)
	if s.Function != "" {
		enc.AddString("function", s.Function)
	}
	return nil
}
