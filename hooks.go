package bucketcache

// Hooks lightweight callbacks for high-signal events.
// Implementations MUST be cheap and non-blocking.
// The cache calls them on hot paths.
type Hooks interface {
	// An expired entry was removed during a read (lazy expiry).
	ExpiredEntry(objectName string)

	// An undecodable entry was removed during a read.
	// reason ∈ {"corrupt", "value_decode"}
	SelfHeal(objectName, reason string)

	// A store fault was swallowed by a fail-soft operation.
	// op ∈ {"get", "set", "delete", "clear"}
	StoreFault(op, objectName string, err error)

	// Clear finished its sweep. failed > 0 means some objects survived.
	SweepDone(removed, failed int)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) ExpiredEntry(string)              {}
func (NopHooks) SelfHeal(string, string)          {}
func (NopHooks) StoreFault(string, string, error) {}
func (NopHooks) SweepDone(int, int)               {}
