package iterkit

// Break can be returned from a ForEach block to stop the iteration early without an error.
const Break constErr = `iterkit: break`

// ForEach drains the iterator and calls the block on every produced element.
// Returning Break from the block stops the iteration, any other error aborts it and is returned.
func ForEach[T any](i Iterator[T], blk func(T) error) error {
	for v, ok := i.Next().Get(); ok; v, ok = i.Next().Get() {
		if err := blk(v); err != nil {
			if err == Break {
				break
			}
			return err
		}
	}
	return nil
}
