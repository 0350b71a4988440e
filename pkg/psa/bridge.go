package psa

// Decode maps a native status code through the default contract.
func Decode(code int32) Status {
	return DefaultContract().Decode(code)
}

// Encode maps a Status to a native code through the default contract.
func Encode(s Status) int32 {
	return DefaultContract().Encode(s)
}

// Check decodes code and returns it as an error, nil on success. Bindings use
// it to convert the result of a native call in one step.
func Check(code int32) error {
	return Decode(code).ToResult()
}
