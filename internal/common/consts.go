package common

// UnknownStr is the fallback String() value for unrecognized enum values.
const UnknownStr = "unknown"
