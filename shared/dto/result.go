package dto

// Tagged result discriminators shared by action-style responses. The client
// branches on Type instead of inspecting HTTP status codes, which keeps the
// progressive-enhancement form flow and the JSON flow identical.
const (
	ResultTypeSuccess  = "success"
	ResultTypeError    = "error"
	ResultTypeRedirect = "redirect"
)
