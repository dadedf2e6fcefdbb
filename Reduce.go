package iterkit

// Reduce folds the iterator into a single result value, starting from initial.
// The block either returns the next accumulated value,
// or additionally an error that aborts the fold and is returned as is.
func Reduce[
	T, Result any,
	BLK func(Result, T) Result |
		func(Result, T) (Result, error),
](i Iterator[T], initial Result, blk BLK) (Result, error) {
	var do func(Result, T) (Result, error)
	switch blk := any(blk).(type) {
	case func(Result, T) Result:
		do = func(result Result, v T) (Result, error) {
			return blk(result, v), nil
		}
	case func(Result, T) (Result, error):
		do = blk
	}
	var result = initial
	for v, ok := i.Next().Get(); ok; v, ok = i.Next().Get() {
		var err error
		result, err = do(result, v)
		if err != nil {
			return result, err
		}
	}
	return result, nil
}
