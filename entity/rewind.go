package entity

// Rewind looks back in the position history of the entity and returns the committed position closest
// to the given tick. False is returned if nothing has been committed yet.
func (e *Entity) Rewind(tick int64) (HistoricalPosition, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.history.Size() == 0 {
		return HistoricalPosition{}, false
	}

	var (
		result HistoricalPosition
		delta  int64 = -1
	)
	for i := range e.history.Size() {
		hp := e.history.at(i)
		if hp.Tick == tick {
			return hp, true
		}
		d := hp.Tick - tick
		if d < 0 {
			d = -d
		}
		if delta < 0 || d < delta {
			result, delta = hp, d
		}
	}
	return result, true
}
