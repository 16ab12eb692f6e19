package aem

// AecpStatus is the AECP-AEM response status code. READ_DESCRIPTOR response
// decoders take this as an argument and stop at the common header unless it
// is StatusSuccess.
type AecpStatus uint8

// Status domain, IEEE 1722.1 clause 9.2.1.1.5. Only Success gates full
// descriptor decode; the rest are opaque to the codec.
const (
	StatusSuccess               AecpStatus = 0
	StatusNotImplemented        AecpStatus = 1
	StatusNoSuchDescriptor      AecpStatus = 2
	StatusEntityLocked          AecpStatus = 3
	StatusEntityAcquired        AecpStatus = 4
	StatusNotAuthenticated      AecpStatus = 5
	StatusAuthenticationDisabled AecpStatus = 6
	StatusBadArguments          AecpStatus = 7
	StatusNoResources           AecpStatus = 8
	StatusInProgress            AecpStatus = 9
	StatusEntityMisbehaving     AecpStatus = 10
	StatusNotSupported          AecpStatus = 11
	StatusStreamIsRunning       AecpStatus = 12
)

// String names the status for diagnostics.
func (s AecpStatus) String() string {
	switch s {
	case StatusSuccess:
		return "SUCCESS"
	case StatusNotImplemented:
		return "NOT_IMPLEMENTED"
	case StatusNoSuchDescriptor:
		return "NO_SUCH_DESCRIPTOR"
	case StatusEntityLocked:
		return "ENTITY_LOCKED"
	case StatusEntityAcquired:
		return "ENTITY_ACQUIRED"
	case StatusNotAuthenticated:
		return "NOT_AUTHENTICATED"
	case StatusAuthenticationDisabled:
		return "AUTHENTICATION_DISABLED"
	case StatusBadArguments:
		return "BAD_ARGUMENTS"
	case StatusNoResources:
		return "NO_RESOURCES"
	case StatusInProgress:
		return "IN_PROGRESS"
	case StatusEntityMisbehaving:
		return "ENTITY_MISBEHAVING"
	case StatusNotSupported:
		return "NOT_SUPPORTED"
	case StatusStreamIsRunning:
		return "STREAM_IS_RUNNING"
	default:
		return "UNKNOWN"
	}
}
