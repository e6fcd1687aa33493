package registry

import "github.com/kenelite/go-singleton/internal/singleton"

const (
	Classic   Key = "classic"
	Raw       Key = "raw"
	Metaclass Key = "metaclass"
)

func init() {
	Register(Classic, "Thread-safe", Held(singleton.NewClassic))
	Register(Raw, "CTypes", Held(singleton.NewRaw))
	Register(Metaclass, "Metaclass", Typed(singleton.NewMeta))
}
