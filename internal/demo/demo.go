// Package demo prints, for each singleton variant, whether repeated
// requests hand back the same object.
package demo

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/kenelite/go-singleton/internal/registry"
)

func Run(w io.Writer, reg *registry.Registry, repeat int) error {
	if repeat < 2 {
		return errors.Errorf("repeat must be at least 2, got %d", repeat)
	}
	for _, key := range reg.Keys() {
		first, same, err := resolve(reg, key, repeat)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s: %s, Same instance: %s\n", reg.Label(key), first, pyBool(same)); err != nil {
			return errors.Wrap(err, "write result")
		}
	}
	return nil
}

func resolve(reg *registry.Registry, key registry.Key, repeat int) (registry.Instance, bool, error) {
	first, err := reg.Get(key)
	if err != nil {
		return nil, false, err
	}
	same := true
	for i := 1; i < repeat; i++ {
		next, err := reg.Get(key)
		if err != nil {
			return nil, false, err
		}
		same = same && next == first
	}
	return first, same, nil
}

func pyBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
