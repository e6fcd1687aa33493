package singleton

const (
	ClassicPayload   = "Classic Singleton"
	RawPayload       = "Singleton with ctypes"
	MetaclassPayload = "Metaclass Singleton"
)

// Classic is built directly under a Holder's double-checked lock.
type Classic struct{ *Value }

func NewClassic() (*Classic, error) {
	return &Classic{Value: NewValue(ClassicPayload)}, nil
}

// Raw keeps its payload as bytes and decodes it on construction.
type Raw struct{ *Value }

func NewRaw() (*Raw, error) {
	return newRaw([]byte(RawPayload))
}

func newRaw(payload []byte) (*Raw, error) {
	v, err := DecodeValue(payload)
	if err != nil {
		return nil, err
	}
	return &Raw{Value: v}, nil
}

// Meta is requested through a TypeRegistry, which memoizes it by type.
type Meta struct{ *Value }

func NewMeta() (*Meta, error) {
	return &Meta{Value: NewValue(MetaclassPayload)}, nil
}
