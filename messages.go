package ember

// The message pool keeps the latest message thrown at every guard depth. A
// throw from a cleanup that runs while unwinding towards an outer guard is
// stored one level deeper than that guard and never replaces its message.

func (s *Stack) store(msg string) {
	// grow pool
	if s.depth > len(s.messages) {
		messages := make([]string, s.depth+10)
		copy(messages, s.messages)
		s.messages = messages
	}

	// replace message of this depth
	s.messages[s.depth-1] = msg
}

// Message returns the latest message thrown at the specified depth, with depth
// one being the outermost guard.
func (s *Stack) Message(depth int) string {
	// check range
	if depth < 1 || depth > len(s.messages) {
		return ""
	}

	return s.messages[depth-1]
}
