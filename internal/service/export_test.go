package service

// EncodeStringSlice exposes encodeStringSlice to external tests.
var EncodeStringSlice = encodeStringSlice
