package soap

import "errors"

var (
	ErrBadHTTPStatus       = errors.New("bad HTTP status")
	ErrBodyMissing         = errors.New("SOAP body is missing")
	ErrEndpointMissing     = errors.New("service endpoint is missing")
	ErrEnvelopeMalformed   = errors.New("SOAP envelope is malformed")
	ErrNamespaceMissing    = errors.New("target namespace is missing")
	ErrParamNameEmpty      = errors.New("parameter name is empty")
	ErrParamTypeNotSupport = errors.New("parameter type is not supported")
	ErrResponseMissing     = errors.New("procedure response element is missing")
	ErrWSDLMalformed       = errors.New("WSDL document is malformed")
)
