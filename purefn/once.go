package purefn

// Once returns a function that runs fn on its first call only. Every later
// call, whatever its arguments, returns that first result.
//
// The first call is recorded before fn runs: a call re-entering from inside
// fn does not run fn again and sees the zero value, and a panicking fn is
// never retried.
func Once[A, R any](fn func(args ...A) R) func(args ...A) R {
	var (
		called bool
		result R
	)
	return func(args ...A) R {
		if !called {
			called = true
			result = fn(args...)
		}
		return result
	}
}
