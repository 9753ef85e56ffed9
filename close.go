package bayesgo

// Close releases the classifier's store, flushing buffered writes and
// dropping the writer lock so another process can open the model.
func (c *Classifier) Close() error {
	if c == nil || c.store == nil {
		return nil
	}
	return translateError(c.store.Close())
}
