package logger

import (
	"log/slog"
	"strconv"

	"github.com/dmitrymomot/contractkit/pkg/lens"
)

// Error records err under "error"; nil yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Errors groups the non-nil errors under "errors".
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func Status(code int) slog.Attr {
	return slog.Int("status", code)
}

// Route groups the method and path of a request under "route".
func Route(method, path string) slog.Attr {
	return slog.Group("route", slog.String("method", method), slog.String("path", path))
}

// Failures lists the slots of a contract breach under "failures", one
// "<location>:<name>" = "<reason>" pair each. Other errors yield an empty Attr.
func Failures(err error) slog.Attr {
	failures := lens.Failures(err)
	if len(failures) == 0 {
		return slog.Attr{}
	}
	as := make([]slog.Attr, 0, len(failures))
	for _, f := range failures {
		as = append(as, slog.String(string(f.Location)+":"+f.Name, string(f.Reason)))
	}
	return slog.Attr{Key: "failures", Value: slog.GroupValue(as...)}
}
