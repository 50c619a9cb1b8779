package headers

import "net/http"

func SetUserAgent(request *http.Request) {
	request.Header.Set("User-Agent", "SMSGlobal-Gateway quentin.mcgaw@gmail.com")
}

func SetContentType(request *http.Request, contentType string) {
	request.Header.Set("Content-Type", contentType)
}

func SetAccept(request *http.Request, acceptContent string) {
	request.Header.Set("Accept", acceptContent)
}

// SetSOAPAction sets the SOAPAction header, quoted as SOAP 1.1 requires.
func SetSOAPAction(request *http.Request, action string) {
	request.Header.Set("SOAPAction", `"`+action+`"`)
}
