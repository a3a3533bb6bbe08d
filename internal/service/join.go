package service

import "cmp"

// mergeJoin walks two slices sorted by key and calls fn once per key. The
// side that lacks the key is passed as the zero value. Keys must be unique
// within each slice.
func mergeJoin[T any, K cmp.Ordered](left, right []T, key func(T) K, fn func(l, r T) error) error {
	var zero T
	i, j := 0, 0
	for i < len(left) || j < len(right) {
		var err error
		switch {
		case j == len(right):
			err = fn(left[i], zero)
			i++
		case i == len(left):
			err = fn(zero, right[j])
			j++
		default:
			switch c := cmp.Compare(key(left[i]), key(right[j])); {
			case c < 0:
				err = fn(left[i], zero)
				i++
			case c > 0:
				err = fn(zero, right[j])
				j++
			default:
				err = fn(left[i], right[j])
				i++
				j++
			}
		}
		if err != nil {
			return err
		}
	}
	return nil
}
