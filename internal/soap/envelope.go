package soap

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"
)

const (
	envelopeNamespace = "http://schemas.xmlsoap.org/soap/envelope/"
	encodingNamespace = "http://schemas.xmlsoap.org/soap/encoding/"
	xsdNamespace      = "http://www.w3.org/2001/XMLSchema"
	xsiNamespace      = "http://www.w3.org/2001/XMLSchema-instance"
)

// buildEnvelope encodes an RPC/encoded SOAP 1.1 request for the procedure
// given, with one child element per parameter in the order of params.
func buildEnvelope(namespace, procedure string, params Params) (data []byte, err error) {
	document := etree.NewDocument()
	document.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	envelope := document.CreateElement("SOAP-ENV:Envelope")
	envelope.CreateAttr("xmlns:SOAP-ENV", envelopeNamespace)
	envelope.CreateAttr("xmlns:ns1", namespace)
	envelope.CreateAttr("xmlns:xsd", xsdNamespace)
	envelope.CreateAttr("xmlns:xsi", xsiNamespace)
	envelope.CreateAttr("xmlns:SOAP-ENC", encodingNamespace)
	envelope.CreateAttr("SOAP-ENV:encodingStyle", encodingNamespace)

	body := envelope.CreateElement("SOAP-ENV:Body")
	call := body.CreateElement("ns1:" + procedure)

	for _, param := range params {
		if param.Name == "" {
			return nil, fmt.Errorf("%w: for procedure %s", ErrParamNameEmpty, procedure)
		}
		element := call.CreateElement(param.Name)
		switch value := param.Value.(type) {
		case nil:
			element.CreateAttr("xsi:nil", "true")
		case string:
			element.CreateAttr("xsi:type", "xsd:string")
			element.SetText(value)
		case int:
			element.CreateAttr("xsi:type", "xsd:int")
			element.SetText(strconv.Itoa(value))
		default:
			return nil, fmt.Errorf("%w: %T for parameter %s",
				ErrParamTypeNotSupport, value, param.Name)
		}
	}

	data, err = document.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("writing envelope: %w", err)
	}
	return data, nil
}

// decodeEnvelope returns the text of the return value of the procedure
// response. A SOAP fault is returned as a *Fault error.
func decodeEnvelope(data []byte, procedure string) (payload string, err error) {
	document := etree.NewDocument()
	err = document.ReadFromBytes(data)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEnvelopeMalformed, err)
	}

	envelope := document.Root()
	if envelope == nil || envelope.Tag != "Envelope" {
		return "", fmt.Errorf("%w: root element is not an envelope", ErrEnvelopeMalformed)
	}

	body := childElement(envelope, "Body")
	if body == nil {
		return "", fmt.Errorf("%w", ErrBodyMissing)
	}

	if faultElement := childElement(body, "Fault"); faultElement != nil {
		return "", &Fault{
			Code:   childText(faultElement, "faultcode"),
			String: childText(faultElement, "faultstring"),
			Actor:  childText(faultElement, "faultactor"),
			Detail: childText(faultElement, "detail"),
		}
	}

	response := childElement(body, procedure+"Response")
	if response == nil {
		return "", fmt.Errorf("%w: %sResponse", ErrResponseMissing, procedure)
	}

	returned := response.ChildElements()
	if len(returned) == 0 {
		return "", nil
	}

	result := returned[0]
	if result.SelectAttrValue("xsi:nil", "") == "true" {
		return "", nil
	}
	return result.Text(), nil
}

// childElement returns the first child element with the local name given,
// regardless of its namespace prefix.
func childElement(parent *etree.Element, localName string) *etree.Element {
	for _, child := range parent.ChildElements() {
		if child.Tag == localName {
			return child
		}
	}
	return nil
}

func childElements(parent *etree.Element, localName string) (children []*etree.Element) {
	for _, child := range parent.ChildElements() {
		if child.Tag == localName {
			children = append(children, child)
		}
	}
	return children
}

func childText(parent *etree.Element, localName string) string {
	child := childElement(parent, localName)
	if child == nil {
		return ""
	}
	return child.Text()
}
