package trust

// Report is an outcome report of a single vehicle-to-vehicle
// message exchange. Ephemeral input of the pairwise update,
// never persisted.
type Report struct {
	reporter PeerID

	subject PeerID

	truthful bool
}

// Reporter returns ID of the vehicle which reported the outcome.
func (x Report) Reporter() PeerID {
	return x.reporter
}

// SetReporter sets ID of the vehicle which reported the outcome.
func (x *Report) SetReporter(id PeerID) {
	x.reporter = id
}

// Subject returns ID of the vehicle being reported on.
func (x Report) Subject() PeerID {
	return x.subject
}

// SetSubject sets ID of the vehicle being reported on.
func (x *Report) SetSubject(id PeerID) {
	x.subject = id
}

// Truthful returns true if the reported message was assessed
// as truthful.
func (x Report) Truthful() bool {
	return x.truthful
}

// SetTruthful sets the assessment of the reported message.
func (x *Report) SetTruthful(t bool) {
	x.truthful = t
}
