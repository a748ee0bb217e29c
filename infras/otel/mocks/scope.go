package mocks

// span satisfies otel.Scope. Attributes and events are dropped; errors are
// kept on the owning Otel so tests can assert what was traced.
type span struct {
	name  string
	owner *Otel
}

func (*span) AddEvent(string) {}

func (*span) End() {}

func (*span) SetAttribute(string, any) {}

func (*span) SetAttributes(map[string]any) {}

func (s *span) TraceError(err error) {
	if err == nil {
		return
	}

	s.owner.recordError(s.name, err)
}

func (s *span) TraceIfError(err error) {
	s.TraceError(err)
}
