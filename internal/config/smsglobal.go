package config

import (
	"strings"

	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/smsglobal/internal/smsglobal"
)

func readSMSGlobal(r *reader.Reader) (settings smsglobal.Settings) {
	settings.Credentials.User = r.String("SMSGLOBAL_USER", reader.ForceLowercase(false))
	settings.Credentials.Password = r.String("SMSGLOBAL_PASSWORD", reader.ForceLowercase(false))
	settings.WSDLURL = r.String("SMSGLOBAL_WSDL_URL", reader.ForceLowercase(false))
	settings.DefaultISOCountry = strings.ToUpper(r.String("SMSGLOBAL_DEFAULT_ISO_COUNTRY"))
	return settings
}
