package nats

// Subject name suffixes of the trust request stream.
const (
	subjectInit      = "init"
	subjectReport    = "report"
	subjectRecompute = "recompute"
)

// DefaultSubjectPrefix is a subject prefix of the trust request
// stream used when no custom one is configured.
const DefaultSubjectPrefix = "vanet.trust"

type initMessage struct {
	// base58-encoded vehicle ID
	Vehicle string `json:"vehicle"`

	InitialTrust float64 `json:"initial_trust"`
}

type reportMessage struct {
	// base58-encoded vehicle IDs
	Reporter string `json:"reporter"`
	Subject  string `json:"subject"`

	Truthful bool `json:"truthful"`
}

type recomputeMessage struct {
	Epoch uint64 `json:"epoch"`
}
