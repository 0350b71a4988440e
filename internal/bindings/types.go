package bindings

// StatusNotSupported mirrors PSA_ERROR_NOT_SUPPORTED. Builds without the
// native library report it from every entry point so callers see a regular
// status code rather than a Go-only error.
const StatusNotSupported int32 = -134
