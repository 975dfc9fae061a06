package coordinator

import (
	"errors"

	"github.com/open-sunsama/shell/internal/domain"
)

// MultiUI fans emission out to several sinks. It reports ErrNoUI only when
// no sink accepted the call.
type MultiUI []UI

func (m MultiUI) Emit(event string, payload any) error {
	return m.each(func(u UI) error { return u.Emit(event, payload) })
}

func (m MultiUI) Reload() error {
	return m.each(func(u UI) error { return u.Reload() })
}

func (m MultiUI) each(fn func(UI) error) error {
	var errs []error
	delivered := false
	for _, u := range m {
		if u == nil {
			continue
		}
		err := fn(u)
		switch {
		case err == nil:
			delivered = true
		case errors.Is(err, domain.ErrNoUI):
		default:
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	if !delivered {
		return domain.ErrNoUI
	}
	return nil
}
