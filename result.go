package nset

// Result is the outcome of TryParse: either a set or a parse error.
type Result struct {
	set *Set
	err error
}

// TryParse is like Parse, but returns a Result to be matched by the caller:
//
//     var s *nset.Set
//     var err error
//     switch m := nset.TryParse(text).Match(); m {
//     case m.Ok(&s):
//         …
//     case m.Err(&err):
//         …
//     }
//
func TryParse(text string, opts ...Option) Result {
	s, err := Parse(text, opts...)
	return Result{set: s, err: err}
}

// Match returns a matcher for the two cases of r.
func (r Result) Match() ResultMatcher {
	return &resultMatcher{r: r}
}

// WithDefault returns the parsed set, or def if parsing failed.
func (r Result) WithDefault(def *Set) *Set {
	if r.err != nil {
		return def
	}
	return r.set
}

// --- Matching --------------------------------------------------------------

// ResultMatcher selects a case in a switch over a Result.
type ResultMatcher interface {
	Ok(**Set) ResultMatcher
	Err(*error) ResultMatcher
}

type resultMatcher struct {
	r Result
}

func (rm *resultMatcher) Ok(s **Set) ResultMatcher {
	if rm.r.err == nil {
		*s = rm.r.set
		return rm
	}
	return nil
}

func (rm *resultMatcher) Err(err *error) ResultMatcher {
	if rm.r.err != nil {
		*err = rm.r.err
		return rm
	}
	return nil
}
