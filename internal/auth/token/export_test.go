package token

// Test-only aliases so the external test package can reach internals
// without importing the mocks package from inside package token (which
// would create an import cycle).

const (
	SecretBytes     = secretBytes
	HintLen         = hintLen
	DefaultResetExp = defaultResetExp
)

var ParseExpiry = parseExpiry
