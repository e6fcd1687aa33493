package registry

// Status describes one variant for the admin API.
type Status struct {
	Key           Key    `json:"key"`
	Label         string `json:"label"`
	State         string `json:"state"`
	Constructions int64  `json:"constructions"`
	ID            string `json:"id,omitempty"`
	Value         string `json:"value,omitempty"`
}

// Status reports key without constructing anything.
func (r *Registry) Status(key Key) (Status, error) {
	e, err := r.lookup(key)
	if err != nil {
		return Status{}, err
	}
	return r.status(key, e), nil
}

func (r *Registry) status(key Key, e *entry) Status {
	st := Status{
		Key:           key,
		Label:         e.label,
		State:         e.variant.State().String(),
		Constructions: e.variant.Constructions(),
	}
	if st.Constructions > 0 {
		// already built, so Resolve is a read
		if inst, err := e.variant.Resolve(); err == nil {
			st.ID = inst.ID().String()
			st.Value = inst.String()
		}
	}
	return st
}

func (r *Registry) Snapshot() []Status {
	keys := r.Keys()
	out := make([]Status, 0, len(keys))
	for _, key := range keys {
		e, err := r.lookup(key)
		if err != nil {
			continue
		}
		out = append(out, r.status(key, e))
	}
	return out
}
