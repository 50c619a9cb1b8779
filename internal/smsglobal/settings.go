package smsglobal

import (
	"fmt"
	"net/url"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gotree"
)

// DefaultWSDLURL is the service description of the SMSGlobal SOAP gateway.
const DefaultWSDLURL = "http://www.smsglobal.com/mobileworks/soapserver.php?wsdl"

const defaultISOCountry = "AU"

type Credentials struct {
	User     string
	Password string
}

type Settings struct {
	Credentials Credentials
	// WSDLURL defaults to DefaultWSDLURL and is only meant
	// to be changed for testing.
	WSDLURL string
	// DefaultISOCountry is the country used to check the balance
	// when none is given. It defaults to AU.
	DefaultISOCountry string
}

func (s *Settings) SetDefaults() {
	s.WSDLURL = gosettings.DefaultComparable(s.WSDLURL, DefaultWSDLURL)
	s.DefaultISOCountry = gosettings.DefaultComparable(s.DefaultISOCountry, defaultISOCountry)
}

func (s Settings) Validate() (err error) {
	switch {
	case s.Credentials.User == "":
		return fmt.Errorf("%w", ErrUserNotSet)
	case s.Credentials.Password == "":
		return fmt.Errorf("%w", ErrPasswordNotSet)
	}

	_, err = url.ParseRequestURI(s.WSDLURL)
	if err != nil {
		return fmt.Errorf("WSDL URL: %w", err)
	}

	const isoCountryLength = 2
	if len(s.DefaultISOCountry) != isoCountryLength {
		return fmt.Errorf("%w: %q", ErrISOCountryNotValid, s.DefaultISOCountry)
	}

	return nil
}

func (s Settings) String() string {
	return s.ToLinesNode().String()
}

func (s Settings) ToLinesNode() *gotree.Node {
	node := gotree.New("SMSGlobal")
	node.Appendf("User: %s", s.Credentials.User)
	node.Appendf("Password: %s", obfuscate(s.Credentials.Password))
	node.Appendf("WSDL URL: %s", s.WSDLURL)
	node.Appendf("Default ISO country: %s", s.DefaultISOCountry)
	return node
}

func obfuscate(s string) string {
	if s == "" {
		return "[not set]"
	}
	return "[set]"
}
