package soap

// Fault is a SOAP 1.1 fault returned by the remote service.
type Fault struct {
	Code   string
	String string
	Actor  string
	Detail string
}

func (f *Fault) Error() string {
	if f.String == "" {
		return "SOAP fault " + f.Code
	}
	return f.String
}
