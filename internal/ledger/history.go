package ledger

// Undo steps the ledger back to the previous snapshot. It returns false at
// the start of history, where undo is a no-op. The restored state is written
// through to storage like any mutation.
func (s *Store) Undo() bool {
	if s.cursor <= 0 {
		return false
	}
	s.cursor--
	s.state = s.history[s.cursor].Clone()
	s.persist()
	return true
}

// Redo steps the ledger forward to the next snapshot, reversing an undo.
// It returns false at the end of history, where redo is a no-op.
func (s *Store) Redo() bool {
	if s.cursor >= len(s.history)-1 {
		return false
	}
	s.cursor++
	s.state = s.history[s.cursor].Clone()
	s.persist()
	return true
}

// CanUndo reports whether a prior snapshot exists.
func (s *Store) CanUndo() bool {
	return s.cursor > 0
}

// CanRedo reports whether an undone snapshot can be restored.
func (s *Store) CanRedo() bool {
	return s.cursor < len(s.history)-1
}

// HistoryLength returns the number of snapshots currently held, including the
// seed snapshot.
func (s *Store) HistoryLength() int {
	return len(s.history)
}
