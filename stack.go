package tracelog

// The scope stack is a diagnostic trace maintained by the caller, not
// the machine call stack. Labels are pushed on entering a unit of work
// and popped on leaving it; error-or-worse records dump the stack so
// the log shows where the failure happened.

// Push records entry into a scope. An empty label is rejected and
// leaves the stack unchanged. Otherwise an info "BEGIN" record is
// emitted and the label becomes the new top of the stack.
func (s *Service) Push(label string) bool {
	if s == nil || label == emptyString {
		return false
	}
	s.Info(beginPrefix + label)

	s.mu.Lock()
	s.stack = append(s.stack, label)
	s.mu.Unlock()
	return true
}

// Pop removes and returns the top label, emitting an info "END"
// record. On an empty stack it returns the empty string and has no
// side effect.
func (s *Service) Pop() string {
	if s == nil {
		return emptyString
	}

	s.mu.Lock()
	if len(s.stack) == 0 {
		s.mu.Unlock()
		return emptyString
	}
	top := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	s.mu.Unlock()

	s.Info(endPrefix + top)
	return top
}

// Peek returns the top label without removing it. Peeking an empty
// stack returns ErrEmptyStack.
func (s *Service) Peek() (string, error) {
	if s == nil {
		return emptyString, ErrEmptyStack
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.stack) == 0 {
		return emptyString, ErrEmptyStack
	}
	return s.stack[len(s.stack)-1], nil
}

// Depth returns the number of labels currently on the stack.
func (s *Service) Depth() int {
	if s == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.stack)
}

// StackTrace returns a copy of the stack, most recent label first.
func (s *Service) StackTrace() []string {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	trace := make([]string, len(s.stack))
	for i, label := range s.stack {
		trace[len(s.stack)-1-i] = label
	}
	return trace
}

// Scope pushes the label and returns a function that pops it, so a
// single defer keeps push and pop matched on every exit path:
//
//	defer svc.Scope("loadAssets")()
//
// When the push is rejected (empty label) the returned function is a
// no-op.
func (s *Service) Scope(label string) func() {
	if !s.Push(label) {
		return func() {}
	}
	return func() { s.Pop() }
}

// dumpStack writes the scope stack between the fixed banner lines,
// most recent label first. The banners are written even when the
// stack is empty.
func (s *Service) dumpStack() {
	trace := s.StackTrace()

	s.Write(stackTraceHeader)
	for _, label := range trace {
		s.Write(label)
	}
	s.Write(stackTraceFooter)
}
