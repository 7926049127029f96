package combex

// Branch probes a matcher without committing and then continues with one of
// two alternatives from the original offset: onMatch when the probe
// succeeded, otherwise when it failed. The probe runs without a capture
// store, and the cursor is restored before either continuation runs — this is
// the one construct that deliberately saves and restores the cursor around a
// full sub-match.
func Branch(probe, onMatch, otherwise Matcher) Matcher {
	return MatcherFunc(func(c *Cursor, caps *Captures) (Span, error) {
		off := c.Offset()
		_, perr := probe.Match(c, nil)
		if err := c.Seek(off); err != nil {
			return Span{}, err
		}
		if perr == nil {
			return onMatch.Match(c, caps)
		}
		return otherwise.Match(c, caps)
	})
}
